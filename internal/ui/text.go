package ui

import (
	"bufio"
	"fmt"
	"io"
)

// WriteText prints a result view for a terminal
func WriteText(w io.Writer, v ResultView) error {
	bw := bufio.NewWriter(w)

	score := v.Score
	if v.ScoreSynthesized {
		score += " (estimated)"
	}
	fmt.Fprintf(bw, "MATCH SCORE: %s\n\n", score)

	fmt.Fprintln(bw, "MISSING SKILLS")
	for _, s := range v.MissingSkills {
		if s.IsAction() {
			fmt.Fprintf(bw, "  - %s <%s>\n", s.Label, s.URL)
		} else {
			fmt.Fprintf(bw, "  - %s\n", s.Label)
		}
	}

	if len(v.LearningPlan) > 0 {
		fmt.Fprintln(bw, "\nLEARNING PLAN")
		for _, step := range v.LearningPlan {
			fmt.Fprintf(bw, "  %s  %s\n", step.Index, step.Text)
		}
	}

	fmt.Fprintf(bw, "\nSUCCESSFUL PROFILE DNA\n  %s\n", v.Profile)

	if v.Pivot != nil {
		fmt.Fprintf(bw, "\nCAREER PIVOT: %s\n  %s\n", v.Pivot.Role, v.Pivot.Reason)
	}

	for _, g := range v.Resources {
		fmt.Fprintf(bw, "\n%s\n", g.Header)
		for _, l := range g.Links {
			fmt.Fprintf(bw, "  > %s\n    %s\n", l.Label, l.URL)
		}
	}

	return bw.Flush()
}
