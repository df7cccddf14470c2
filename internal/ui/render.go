package ui

import (
	"fmt"
	"math/rand/v2"

	"github.com/yourusername/careerscope/internal/model"
)

const (
	NoGapsText         = "No critical gaps detected."
	ProfileMissingText = "Analysis not available."
)

const (
	minPlaceholderScore = 70
	maxPlaceholderScore = 95
)

// ScoreFunc supplies a display score when the analysis has none
type ScoreFunc func() int

// RandomScore is the presentation placeholder used when the model omits matchScore.
// It is not a computed score.
func RandomScore() int {
	return minPlaceholderScore + rand.IntN(maxPlaceholderScore-minPlaceholderScore+1)
}

type SkillItem struct {
	Skill string
	Label string
	URL   string // empty when the item is a plain label
}

// IsAction reports whether the item links to a learning resource
func (s SkillItem) IsAction() bool {
	return s.URL != ""
}

type PlanStep struct {
	Index string
	Text  string
}

type Pivot struct {
	Role   string
	Reason string
}

// ResultView is everything the results region displays
type ResultView struct {
	Score            string
	ScoreSynthesized bool
	MissingSkills    []SkillItem
	LearningPlan     []PlanStep
	Profile          string
	Pivot            *Pivot // nil hides the pivot card
	Resources        []ResourceGroup
}

// Render maps an analysis onto the result regions. It never mutates r,
// and every optional field may be absent.
func Render(r *model.AnalysisResult, score ScoreFunc) ResultView {
	if r == nil {
		r = &model.AnalysisResult{}
	}
	if score == nil {
		score = RandomScore
	}

	var view ResultView

	if r.MatchScore != nil && r.MatchScore.String() != "" {
		view.Score = r.MatchScore.String()
	} else {
		view.Score = fmt.Sprint(score())
		view.ScoreSynthesized = true
	}

	view.MissingSkills = renderSkills(r.MissingSkills)

	for i, step := range r.LearningPlan {
		view.LearningPlan = append(view.LearningPlan, PlanStep{
			Index: fmt.Sprintf("%02d", i+1),
			Text:  step,
		})
	}

	view.Profile = r.SuccessfulCVProfile
	if view.Profile == "" {
		view.Profile = ProfileMissingText
	}

	if r.SuggestedRole != "" {
		view.Pivot = &Pivot{Role: r.SuggestedRole, Reason: r.SuggestedRoleReason}
	}

	view.Resources = buildResources(r)
	return view
}

func renderSkills(skills []model.MissingSkill) []SkillItem {
	var items []SkillItem
	for _, s := range skills {
		if s.Skill == "" {
			// a nameless entry with a resource still counts as a gap
			if s.HasLink() {
				items = append(items, SkillItem{Label: s.Link, URL: s.Link})
			}
			continue
		}
		if s.HasLink() {
			items = append(items, SkillItem{Skill: s.Skill, Label: "Learn " + s.Skill, URL: s.Link})
		} else {
			items = append(items, SkillItem{Skill: s.Skill, Label: s.Skill})
		}
	}

	if len(items) == 0 {
		return []SkillItem{{Label: NoGapsText}}
	}
	return items
}

// ── Result region ─────────────────────────────────────

// ResultState is the results region of the page
type ResultState struct {
	View             ResultView
	Visible          bool
	ScrolledIntoView bool

	score ScoreFunc
}

func NewResultState(score ScoreFunc) *ResultState {
	return &ResultState{score: score}
}

// Apply replaces every region with a fresh render of r and reveals the region
func (s *ResultState) Apply(r *model.AnalysisResult) {
	s.View = Render(r, s.score)
	s.Visible = true
	s.ScrolledIntoView = true
}

// Hide conceals the region while a new analysis runs
func (s *ResultState) Hide() {
	s.Visible = false
	s.ScrolledIntoView = false
}
