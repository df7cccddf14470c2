package model

import (
	"bytes"
	"encoding/json"
)

// ── Candidate profile types ───────────────────────────

type Personal struct {
	Name       string `json:"name" yaml:"name"`
	Country    string `json:"country" yaml:"country"`
	TargetRole string `json:"targetRole" yaml:"targetRole"`
}

type Education struct {
	Degree     string `json:"degree" yaml:"degree"`
	Major      string `json:"major" yaml:"major"`
	University string `json:"university" yaml:"university"`
}

type Experience struct {
	Role        string `json:"role" yaml:"role"`
	Company     string `json:"company" yaml:"company"`
	Description string `json:"description" yaml:"description"`
}

// CandidateProfile is the résumé data collected from the form for one submission
type CandidateProfile struct {
	Personal       Personal     `json:"personal" yaml:"personal"`
	Education      Education    `json:"education" yaml:"education"`
	Experience     []Experience `json:"experience" yaml:"experience"`
	Skills         string       `json:"skills" yaml:"skills"`
	Certifications string       `json:"certifications" yaml:"certifications"`
}

// AnalysisRequest is the body of POST /analyze
type AnalysisRequest struct {
	CVData  *CandidateProfile `json:"cvData" yaml:"cvData" binding:"required"`
	JobText string            `json:"jobText" yaml:"jobText" binding:"required"`
}

// ── Analysis result types ─────────────────────────────

// AnalysisResult is the structured analysis returned by the model.
// Every field is optional; the service relays whatever the model produced.
type AnalysisResult struct {
	MatchScore          *json.Number   `json:"matchScore,omitempty"`
	MissingSkills       []MissingSkill `json:"missingSkills,omitempty"`
	LearningPlan        []string       `json:"learningPlan,omitempty"`
	SuccessfulCVProfile string         `json:"successfulCVProfile,omitempty"`
	SuggestedRole       string         `json:"suggestedRole,omitempty"`
	SuggestedRoleReason string         `json:"suggestedRoleReason,omitempty"`
	CandidateLocation   string         `json:"candidateLocation,omitempty"`
	TargetCompanies     []string       `json:"targetCompanies,omitempty"`
	SpecificJobTitles   []string       `json:"specificJobTitles,omitempty"`
	HelpfulLinks        []HelpfulLink  `json:"helpfulLinks,omitempty"`
}

// UnmarshalJSON decodes each field on its own. A field, or a list entry, of
// the wrong type is dropped so the rest of the analysis still renders.
func (r *AnalysisResult) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*r = AnalysisResult{}

	if raw, ok := fields["matchScore"]; ok {
		var n json.Number
		if json.Unmarshal(raw, &n) == nil && n != "" {
			r.MatchScore = &n
		}
	}

	r.MissingSkills = decodeList[MissingSkill](fields["missingSkills"])
	r.LearningPlan = decodeStrings(fields["learningPlan"])
	r.SuccessfulCVProfile = decodeString(fields["successfulCVProfile"])
	r.SuggestedRole = decodeString(fields["suggestedRole"])
	r.SuggestedRoleReason = decodeString(fields["suggestedRoleReason"])
	r.CandidateLocation = decodeString(fields["candidateLocation"])
	r.TargetCompanies = decodeStrings(fields["targetCompanies"])
	r.SpecificJobTitles = decodeStrings(fields["specificJobTitles"])
	r.HelpfulLinks = decodeList[HelpfulLink](fields["helpfulLinks"])
	return nil
}

func decodeString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// decodeStrings keeps the string entries of a list and skips null or off-type ones
func decodeStrings(raw json.RawMessage) []string {
	var out []string
	for _, item := range rawItems(raw) {
		var s string
		if isNull(item) || json.Unmarshal(item, &s) != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

func decodeList[T any](raw json.RawMessage) []T {
	var out []T
	for _, item := range rawItems(raw) {
		var v T
		if json.Unmarshal(item, &v) != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

func rawItems(raw json.RawMessage) []json.RawMessage {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return nil
	}
	return items
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// PlaceholderLink marks a missing skill that has no learning resource
const PlaceholderLink = "#"

// MissingSkill is a skill gap. Older responses send a bare string instead of an object.
type MissingSkill struct {
	Skill string `json:"skill"`
	Link  string `json:"link"`
}

// UnmarshalJSON accepts either "Skill" or {"skill": "...", "link": "..."}.
// A bare string decodes with the placeholder link.
func (m *MissingSkill) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if isNull(data) {
		*m = MissingSkill{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*m = MissingSkill{Skill: name, Link: PlaceholderLink}
		return nil
	}

	type plain MissingSkill
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*m = MissingSkill(p)
	return nil
}

// HasLink reports whether the skill points at a real learning resource
func (m MissingSkill) HasLink() bool {
	return m.Link != "" && m.Link != PlaceholderLink
}

type HelpfulLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
