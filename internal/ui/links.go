package ui

import (
	"net/url"
	"strings"

	"github.com/yourusername/careerscope/internal/model"
)

const (
	HeaderCompanies = "TOP TARGET COMPANIES"
	HeaderListings  = "ACTIVE LISTINGS (MULTI-SOURCE)"
	HeaderIntel     = "STRATEGIC INTEL"

	defaultLocation = "Remote"
)

// Link kinds
const (
	LinkCompany    = "company"
	LinkLinkedIn   = "linkedin"
	LinkGoogleJobs = "google_jobs"
	LinkResource   = "resource"
)

type Link struct {
	Kind  string
	Label string
	URL   string
}

type ResourceGroup struct {
	Header string
	Links  []Link
}

// buildResources returns the non-empty resource groups in display order:
// target companies, job-board listings, then helpful links
func buildResources(r *model.AnalysisResult) []ResourceGroup {
	var groups []ResourceGroup

	if len(r.TargetCompanies) > 0 {
		firstTitle := ""
		if len(r.SpecificJobTitles) > 0 {
			firstTitle = r.SpecificJobTitles[0]
		}

		group := ResourceGroup{Header: HeaderCompanies}
		for _, company := range r.TargetCompanies {
			group.Links = append(group.Links, Link{
				Kind:  LinkCompany,
				Label: "Apply at " + company,
				URL:   companySearchURL(company, firstTitle, r.CandidateLocation),
			})
		}
		groups = append(groups, group)
	}

	if len(r.SpecificJobTitles) > 0 {
		location := r.CandidateLocation
		if location == "" {
			location = defaultLocation
		}

		group := ResourceGroup{Header: HeaderListings}
		for _, title := range r.SpecificJobTitles {
			group.Links = append(group.Links,
				Link{Kind: LinkLinkedIn, Label: title + " (LinkedIn)", URL: linkedInSearchURL(title, location)},
				Link{Kind: LinkGoogleJobs, Label: title + " (Google Jobs)", URL: googleJobsURL(title + " jobs in " + location)},
			)
		}
		groups = append(groups, group)
	}

	if len(r.HelpfulLinks) > 0 {
		group := ResourceGroup{Header: HeaderIntel}
		for _, l := range r.HelpfulLinks {
			group.Links = append(group.Links, Link{Kind: LinkResource, Label: l.Title, URL: l.URL})
		}
		groups = append(groups, group)
	}

	return groups
}

func companySearchURL(company, title, location string) string {
	return googleJobsURL(company + " careers " + title + " " + location)
}

func googleJobsURL(query string) string {
	return "https://www.google.com/search?q=" + encodeURIComponent(query) + "&ibp=htl;jobs"
}

// f_TPR=r604800 limits results to the past week
func linkedInSearchURL(title, location string) string {
	return "https://www.linkedin.com/jobs/search/?keywords=" + encodeURIComponent(title) +
		"&location=" + encodeURIComponent(location) + "&f_TPR=r604800"
}

// uriUnreserved restores the marks encodeURIComponent leaves alone but QueryEscape escapes
var uriUnreserved = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes s for a query value the way browsers do
func encodeURIComponent(s string) string {
	return uriUnreserved.Replace(url.QueryEscape(s))
}
