package ui

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/careerscope/internal/model"
)

func fixedScore(n int) ScoreFunc {
	return func() int { return n }
}

func decode(t *testing.T, raw string) *model.AnalysisResult {
	t.Helper()
	var r model.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	return &r
}

func TestRender_BerlinScenario(t *testing.T) {
	r := decode(t, `{
		"matchScore": 85,
		"missingSkills": [],
		"learningPlan": ["Learn X"],
		"successfulCVProfile": "...",
		"candidateLocation": "Berlin, Germany",
		"specificJobTitles": ["Backend Engineer"]
	}`)

	view := Render(r, fixedScore(1))

	assert.Equal(t, "85", view.Score)
	assert.False(t, view.ScoreSynthesized)
	assert.Equal(t, []SkillItem{{Label: "No critical gaps detected."}}, view.MissingSkills)
	assert.Equal(t, []PlanStep{{Index: "01", Text: "Learn X"}}, view.LearningPlan)
	assert.Equal(t, "...", view.Profile)
	assert.Nil(t, view.Pivot)

	require.Len(t, view.Resources, 1)
	listings := view.Resources[0]
	assert.Equal(t, HeaderListings, listings.Header)
	assert.Equal(t, []Link{
		{
			Kind:  LinkLinkedIn,
			Label: "Backend Engineer (LinkedIn)",
			URL:   "https://www.linkedin.com/jobs/search/?keywords=Backend%20Engineer&location=Berlin%2C%20Germany&f_TPR=r604800",
		},
		{
			Kind:  LinkGoogleJobs,
			Label: "Backend Engineer (Google Jobs)",
			URL:   "https://www.google.com/search?q=Backend%20Engineer%20jobs%20in%20Berlin%2C%20Germany&ibp=htl;jobs",
		},
	}, listings.Links)
}

func TestRender_EmptyResult(t *testing.T) {
	for name, r := range map[string]*model.AnalysisResult{
		"nil":         nil,
		"empty":       {},
		"all null":    decode(t, `{"matchScore":null,"missingSkills":null,"learningPlan":null,"successfulCVProfile":null,"suggestedRole":null,"targetCompanies":null,"specificJobTitles":null,"helpfulLinks":null}`),
		"empty lists": decode(t, `{"missingSkills":[],"learningPlan":[],"targetCompanies":[],"specificJobTitles":[],"helpfulLinks":[]}`),
	} {
		t.Run(name, func(t *testing.T) {
			var view ResultView
			require.NotPanics(t, func() { view = Render(r, fixedScore(77)) })

			assert.Equal(t, "77", view.Score)
			assert.True(t, view.ScoreSynthesized)
			assert.Equal(t, []SkillItem{{Label: NoGapsText}}, view.MissingSkills)
			assert.Empty(t, view.LearningPlan)
			assert.Equal(t, ProfileMissingText, view.Profile)
			assert.Nil(t, view.Pivot)
			assert.Empty(t, view.Resources)
		})
	}
}

func TestRandomScore_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		s := RandomScore()
		assert.GreaterOrEqual(t, s, 70)
		assert.LessOrEqual(t, s, 95)
	}
}

func TestRender_DefaultScoreFunc(t *testing.T) {
	view := Render(&model.AnalysisResult{}, nil)
	assert.True(t, view.ScoreSynthesized)
	assert.NotEmpty(t, view.Score)
}

func TestRender_ZeroScoreIsShown(t *testing.T) {
	view := Render(decode(t, `{"matchScore": 0}`), fixedScore(90))
	assert.Equal(t, "0", view.Score)
	assert.False(t, view.ScoreSynthesized)
}

func TestRender_MissingSkills(t *testing.T) {
	r := decode(t, `{"missingSkills": [
		{"skill": "Kubernetes", "link": "https://kubernetes.io/docs/tutorials/"},
		{"skill": "Kafka", "link": "#"},
		{"skill": "gRPC"},
		"Terraform",
		null
	]}`)

	view := Render(r, fixedScore(80))

	assert.Equal(t, []SkillItem{
		{Skill: "Kubernetes", Label: "Learn Kubernetes", URL: "https://kubernetes.io/docs/tutorials/"},
		{Skill: "Kafka", Label: "Kafka"},
		{Skill: "gRPC", Label: "gRPC"},
		{Skill: "Terraform", Label: "Terraform"},
	}, view.MissingSkills)
	assert.True(t, view.MissingSkills[0].IsAction())
	assert.False(t, view.MissingSkills[1].IsAction())
}

func TestRender_OffTypeFieldStillRendersTheRest(t *testing.T) {
	r := decode(t, `{
		"matchScore": "N/A",
		"missingSkills": ["Docker"],
		"learningPlan": [{"step": "bad"}, "Learn X"],
		"targetCompanies": [{"name": "Acme"}],
		"specificJobTitles": ["SRE"],
		"candidateLocation": "Berlin"
	}`)

	view := Render(r, fixedScore(77))

	assert.Equal(t, "77", view.Score)
	assert.True(t, view.ScoreSynthesized)
	assert.Equal(t, []SkillItem{{Skill: "Docker", Label: "Docker"}}, view.MissingSkills)
	assert.Equal(t, []PlanStep{{Index: "01", Text: "Learn X"}}, view.LearningPlan)
	require.Len(t, view.Resources, 1)
	assert.Equal(t, HeaderListings, view.Resources[0].Header)
}

func TestRender_SkillWithoutName(t *testing.T) {
	view := Render(decode(t, `{"missingSkills": [{"link": "https://x.dev/course"}, {"link": "#"}, {}]}`), fixedScore(80))

	assert.Equal(t, []SkillItem{
		{Label: "https://x.dev/course", URL: "https://x.dev/course"},
	}, view.MissingSkills)
	assert.NotEqual(t, NoGapsText, view.MissingSkills[0].Label)
}

func TestRender_LegacySkillsMatchPlaceholderObjects(t *testing.T) {
	legacy := decode(t, `{"matchScore": 70, "missingSkills": ["Docker", "Rust"]}`)
	objects := decode(t, `{"matchScore": 70, "missingSkills": [{"skill": "Docker", "link": "#"}, {"skill": "Rust", "link": "#"}]}`)

	assert.Equal(t, Render(objects, nil), Render(legacy, nil))
}

func TestRender_LearningPlanOrder(t *testing.T) {
	plan := make([]string, 11)
	for i := range plan {
		plan[i] = string(rune('A' + i))
	}

	view := Render(&model.AnalysisResult{LearningPlan: plan}, fixedScore(80))

	require.Len(t, view.LearningPlan, 11)
	assert.Equal(t, PlanStep{Index: "01", Text: "A"}, view.LearningPlan[0])
	assert.Equal(t, PlanStep{Index: "09", Text: "I"}, view.LearningPlan[8])
	assert.Equal(t, PlanStep{Index: "11", Text: "K"}, view.LearningPlan[10])
}

func TestRender_Pivot(t *testing.T) {
	view := Render(&model.AnalysisResult{
		SuggestedRole:       "Platform Engineer",
		SuggestedRoleReason: "Your infra experience fits better.",
	}, fixedScore(80))

	require.NotNil(t, view.Pivot)
	assert.Equal(t, Pivot{Role: "Platform Engineer", Reason: "Your infra experience fits better."}, *view.Pivot)
}

func TestRender_ResourceGroupOrder(t *testing.T) {
	r := &model.AnalysisResult{
		CandidateLocation: "Lisbon, Portugal",
		TargetCompanies:   []string{"Acme", "Globex"},
		SpecificJobTitles: []string{"SRE", "Go Developer"},
		HelpfulLinks:      []model.HelpfulLink{{Title: "Go by Example", URL: "https://gobyexample.com"}},
	}

	view := Render(r, fixedScore(80))

	require.Len(t, view.Resources, 3)
	assert.Equal(t, HeaderCompanies, view.Resources[0].Header)
	assert.Equal(t, HeaderListings, view.Resources[1].Header)
	assert.Equal(t, HeaderIntel, view.Resources[2].Header)

	companies := view.Resources[0].Links
	require.Len(t, companies, 2)
	assert.Equal(t, "Apply at Acme", companies[0].Label)
	assert.Equal(t, "https://www.google.com/search?q=Acme%20careers%20SRE%20Lisbon%2C%20Portugal&ibp=htl;jobs", companies[0].URL)

	assert.Len(t, view.Resources[1].Links, 4)
	assert.Equal(t, "Go Developer (Google Jobs)", view.Resources[1].Links[3].Label)

	assert.Equal(t, []Link{{Kind: LinkResource, Label: "Go by Example", URL: "https://gobyexample.com"}}, view.Resources[2].Links)
}

func TestRender_CompaniesWithoutTitlesOrLocation(t *testing.T) {
	view := Render(&model.AnalysisResult{TargetCompanies: []string{"Initech"}}, fixedScore(80))

	require.Len(t, view.Resources, 1)
	assert.Equal(t, "https://www.google.com/search?q=Initech%20careers%20%20&ibp=htl;jobs", view.Resources[0].Links[0].URL)
}

func TestRender_ListingsDefaultToRemote(t *testing.T) {
	view := Render(&model.AnalysisResult{SpecificJobTitles: []string{"Data Engineer"}}, fixedScore(80))

	links := view.Resources[0].Links
	assert.Contains(t, links[0].URL, "&location=Remote&")
	assert.Contains(t, links[1].URL, "q=Data%20Engineer%20jobs%20in%20Remote&")
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	r := decode(t, `{"missingSkills": ["Go"], "learningPlan": ["a"], "targetCompanies": ["Acme"]}`)
	before := *r
	before.MissingSkills = append([]model.MissingSkill(nil), r.MissingSkills...)

	Render(r, fixedScore(80))

	assert.Equal(t, before.MissingSkills, r.MissingSkills)
	assert.Equal(t, []string{"a"}, r.LearningPlan)
	assert.Equal(t, []string{"Acme"}, r.TargetCompanies)
}

func TestResultState_ApplyIsIdempotent(t *testing.T) {
	r := decode(t, `{
		"matchScore": 64,
		"missingSkills": ["Docker"],
		"learningPlan": ["one", "two"],
		"specificJobTitles": ["SRE"],
		"helpfulLinks": [{"title": "Docs", "url": "https://example.com"}]
	}`)

	state := NewResultState(fixedScore(80))
	state.Apply(r)
	first := state.View

	state.Apply(r)

	assert.Equal(t, first, state.View)
	assert.Len(t, state.View.LearningPlan, 2)
	assert.Len(t, state.View.Resources, 2)
	assert.True(t, state.Visible)
	assert.True(t, state.ScrolledIntoView)
}

func TestResultState_Hide(t *testing.T) {
	state := NewResultState(fixedScore(80))
	state.Apply(&model.AnalysisResult{})
	state.Hide()

	assert.False(t, state.Visible)
	assert.False(t, state.ScrolledIntoView)
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "C%2B%2B%20%26%20Rust", encodeURIComponent("C++ & Rust"))
	assert.Equal(t, "S%C3%A3o%20Paulo", encodeURIComponent("São Paulo"))
	assert.Equal(t, "Engineer%20(Go)!*'~", encodeURIComponent("Engineer (Go)!*'~"))
	assert.Equal(t, "a-b_c.d", encodeURIComponent("a-b_c.d"))
}
