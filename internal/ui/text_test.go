package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/careerscope/internal/model"
)

func TestWriteText(t *testing.T) {
	view := Render(&model.AnalysisResult{
		MissingSkills:       []model.MissingSkill{{Skill: "Go", Link: "https://go.dev/tour"}, {Skill: "SQL", Link: "#"}},
		LearningPlan:        []string{"Finish the Go tour"},
		SuccessfulCVProfile: "A pragmatic backend engineer.",
		SuggestedRole:       "Platform Engineer",
		SuggestedRoleReason: "Infra heavy background.",
		HelpfulLinks:        []model.HelpfulLink{{Title: "Effective Go", URL: "https://go.dev/doc/effective_go"}},
	}, fixedScore(88))

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, view))
	out := buf.String()

	assert.Contains(t, out, "MATCH SCORE: 88 (estimated)")
	assert.Contains(t, out, "  - Learn Go <https://go.dev/tour>\n")
	assert.Contains(t, out, "  - SQL\n")
	assert.Contains(t, out, "  01  Finish the Go tour\n")
	assert.Contains(t, out, "A pragmatic backend engineer.")
	assert.Contains(t, out, "CAREER PIVOT: Platform Engineer\n  Infra heavy background.")
	assert.Contains(t, out, "STRATEGIC INTEL\n  > Effective Go\n    https://go.dev/doc/effective_go\n")
}

func TestWriteText_Minimal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Render(nil, fixedScore(70))))

	out := buf.String()
	assert.Contains(t, out, NoGapsText)
	assert.Contains(t, out, ProfileMissingText)
	assert.NotContains(t, out, "LEARNING PLAN")
	assert.NotContains(t, out, "CAREER PIVOT")
}
