package service

import (
	"fmt"
	"strings"

	"github.com/yourusername/careerscope/internal/model"
)

// ── Analysis prompt ───────────────────────────────────

const analysisPromptTemplate = `You are an elite AI Career Strategist from the future. Analyze the following Candidate Profile against the Target Mission (Job Offer).

CANDIDATE PROFILE:
%s

TARGET MISSION:
%s

Provide a strategic analysis in JSON format with the following fields:
{
    "matchScore": (integer 0-100),
    "missingSkills": [{"skill": "Skill Name", "link": "URL to a high-quality tutorial or documentation"}],
    "learningPlan": ["step 1", "step 2"],
    "successfulCVProfile": "A paragraph describing what a perfect candidate for this specific job looks like. Use professional, inspiring language.",
    "suggestedRole": "Alternative Job Title (Only if matchScore < 80, otherwise null)",
    "suggestedRoleReason": "Why this alternative role fits the candidate's current skills better (Only if suggestedRole is not null)",
    "candidateLocation": "City, Country (extracted from CV, or 'Remote' if not found)",
    "targetCompanies": ["Company A", "Company B", "Company C"],
    "specificJobTitles": ["Exact Title 1", "Exact Title 2"],
    "helpfulLinks": [{"title": "Resource Name", "url": "http://..."}]
}

"targetCompanies": Identify 3 top companies that are known to hire for this role/tech stack and are likely to have presence in the candidate's location (or globally if remote).
"specificJobTitles": 2-3 precise job titles to search for.
"missingSkills": Provide a specific, high-quality URL for each missing skill.
Do not include markdown formatting. Return raw JSON.`

// BuildAnalysisPrompt embeds the candidate block and the raw job text into the fixed prompt
func BuildAnalysisPrompt(profile *model.CandidateProfile, jobText string) string {
	return fmt.Sprintf(analysisPromptTemplate, FormatCandidate(profile), jobText)
}

// FormatCandidate renders the profile as the labelled block the prompt expects
func FormatCandidate(profile *model.CandidateProfile) string {
	if profile == nil {
		profile = &model.CandidateProfile{}
	}

	experience := make([]string, 0, len(profile.Experience))
	for _, e := range profile.Experience {
		experience = append(experience, fmt.Sprintf("%s at %s: %s", e.Role, e.Company, e.Description))
	}

	edu := profile.Education
	lines := []string{
		fmt.Sprintf("Name: %s", profile.Personal.Name),
		fmt.Sprintf("Role: %s", profile.Personal.TargetRole),
		fmt.Sprintf("Country: %s", profile.Personal.Country),
		fmt.Sprintf("Education: %s in %s at %s", edu.Degree, edu.Major, edu.University),
		fmt.Sprintf("Experience: %s", strings.Join(experience, "; ")),
		fmt.Sprintf("Skills: %s", profile.Skills),
		fmt.Sprintf("Certifications: %s", profile.Certifications),
	}
	return strings.Join(lines, "\n")
}
