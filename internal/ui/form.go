// Package ui holds the client-side state of the analysis page: the form being
// filled in, the analyze trigger, and the rendered results. Every region is a
// plain value so it can be rendered and tested without a live document.
package ui

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/careerscope/internal/model"
)

// FormState is the current content of the candidate form
type FormState struct {
	Personal       model.Personal
	Education      model.Education
	Experience     []model.Experience
	Skills         string
	Certifications string
	JobText        string
}

// AddExperience appends an empty experience entry and returns its position.
// There is no upper bound on the number of entries.
func (f *FormState) AddExperience() int {
	f.Experience = append(f.Experience, model.Experience{})
	return len(f.Experience) - 1
}

// ExperienceAt returns the entry at position i for editing
func (f *FormState) ExperienceAt(i int) (*model.Experience, bool) {
	if i < 0 || i >= len(f.Experience) {
		return nil, false
	}
	return &f.Experience[i], true
}

// Collect snapshots the form into a CandidateProfile, entries in form order.
// The snapshot shares no memory with the form.
func (f *FormState) Collect() model.CandidateProfile {
	experience := make([]model.Experience, len(f.Experience))
	copy(experience, f.Experience)

	return model.CandidateProfile{
		Personal:       f.Personal,
		Education:      f.Education,
		Experience:     experience,
		Skills:         f.Skills,
		Certifications: f.Certifications,
	}
}

// ── Loading from a file ───────────────────────────────

type formDocument struct {
	CVData  *model.CandidateProfile `yaml:"cvData"`
	JobText string                  `yaml:"jobText"`
}

// LoadForm reads a YAML or JSON document into a FormState.
// The document is either {cvData, jobText} or a bare profile.
func LoadForm(r io.Reader) (*FormState, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &FormState{}, nil
	}

	var doc formDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	if doc.CVData == nil {
		var bare model.CandidateProfile
		if err := yaml.Unmarshal(data, &bare); err != nil {
			return nil, fmt.Errorf("parsing profile: %w", err)
		}
		doc.CVData = &bare
	}

	form := &FormState{
		Personal:       doc.CVData.Personal,
		Education:      doc.CVData.Education,
		Skills:         doc.CVData.Skills,
		Certifications: doc.CVData.Certifications,
		JobText:        doc.JobText,
	}
	for _, e := range doc.CVData.Experience {
		i := form.AddExperience()
		form.Experience[i] = e
	}
	return form, nil
}
