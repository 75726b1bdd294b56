package scraper

import (
	"net/url"
	"strings"
	"time"

	"career-connect/internal/domain/opportunity"
	"career-connect/internal/domain/student"
)

// Curated company career pages per branch. These never go stale the way
// listing pages do, so they are merged into every refresh as-is.
type companyLink struct {
	Company string
	URL     string
	Title   string
}

var companyLinks = map[student.Branch][]companyLink{
	student.BranchComputerScience: {
		{Company: "Microsoft", URL: "https://careers.microsoft.com/students/us/en/internships", Title: "Software Engineering Intern"},
		{Company: "Google", URL: "https://careers.google.com/jobs/results/?employment_type=INTERN", Title: "Software Developer Intern"},
		{Company: "Amazon", URL: "https://www.amazon.jobs/en/teams/internships-for-students", Title: "SDE Intern"},
		{Company: "Intel", URL: "https://www.intel.com/content/www/us/en/jobs/locations/india/interns.html", Title: "Hardware/Software Intern"},
		{Company: "NVIDIA", URL: "https://www.nvidia.com/en-in/about-nvidia/careers/university-recruiting/", Title: "AI/ML Intern"},
	},
	student.BranchElectricalEngineering: {
		{Company: "Siemens", URL: "https://new.siemens.com/global/en/company/jobs/students.html", Title: "Electrical Engineering Intern"},
		{Company: "ABB", URL: "https://careers.abb.com/global/en/students", Title: "Power Systems Intern"},
		{Company: "Schneider Electric", URL: "https://www.se.com/in/en/about-us/careers/students.jsp", Title: "Electrical Design Intern"},
		{Company: "Tesla", URL: "https://www.tesla.com/careers/search/?keyword=intern&department=3", Title: "Electrical Systems Intern"},
	},
	student.BranchCivilEngineering: {
		{Company: "Larsen & Toubro", URL: "https://www.larsentoubro.com/careers/early-careers/", Title: "Civil Engineering Intern"},
		{Company: "Jacobs", URL: "https://careers.jacobs.com/jobs/interns-co-ops/", Title: "Civil Engineering Intern"},
		{Company: "AECOM", URL: "https://aecom.com/careers/students-graduates/", Title: "Civil Engineering Intern"},
	},
	student.BranchMechanicalEngineering: {
		{Company: "Tata Motors", URL: "https://www.tatamotors.com/careers/graduate-engineering-apprentice-program/", Title: "Mechanical Engineering Intern"},
		{Company: "Mahindra", URL: "https://www.mahindra.com/careers", Title: "Mechanical Design Intern"},
		{Company: "John Deere", URL: "https://jobs.deere.com/careers/internships", Title: "Mechanical Engineering Intern"},
	},
}

type governmentLink struct {
	Title   string
	Company string
	URL     string
}

var governmentLinks = []governmentLink{
	{Title: "ISRO Internship Program", Company: "Indian Space Research Organization", URL: "https://www.isro.gov.in/careers"},
	{Title: "DRDO Internship", Company: "Defence Research and Development Organisation", URL: "https://www.drdo.gov.in/drdo/internships"},
	{Title: "IIT Summer Internship", Company: "IIT Research Internships", URL: "https://www.iitsystem.ac.in/internships"},
	{Title: "NIT Internship Program", Company: "National Institutes of Technology", URL: "https://www.nitc.ac.in/internships/"},
}

const (
	SourceCompanies   = "company_careers"
	SourceGovernment  = "government"
	SourcePlatforms   = "platforms"
	SourceInternshala = "internshala"
)

// CompanyOpportunities returns the curated per-branch career pages for all
// branches, stamped with the given scrape time.
func CompanyOpportunities(scrapedAt time.Time) []opportunity.Opportunity {
	branches := []student.Branch{
		student.BranchComputerScience,
		student.BranchElectricalEngineering,
		student.BranchCivilEngineering,
		student.BranchMechanicalEngineering,
	}

	out := make([]opportunity.Opportunity, 0, 16)
	for _, b := range branches {
		for _, link := range companyLinks[b] {
			out = append(out, opportunity.Opportunity{
				Source:    SourceCompanies,
				Title:     link.Title,
				Company:   link.Company,
				Location:  "Various Locations",
				Category:  string(b),
				URL:       link.URL,
				Stipend:   "Competitive",
				ScrapedAt: scrapedAt,
			})
		}
	}
	return out
}

func GovernmentOpportunities(scrapedAt time.Time) []opportunity.Opportunity {
	out := make([]opportunity.Opportunity, 0, len(governmentLinks))
	for _, link := range governmentLinks {
		out = append(out, opportunity.Opportunity{
			Source:    SourceGovernment,
			Title:     link.Title,
			Company:   link.Company,
			Location:  "Various Locations",
			Category:  "Engineering",
			URL:       link.URL,
			Stipend:   "Government Rates",
			ScrapedAt: scrapedAt,
		})
	}
	return out
}

// PlatformOpportunities builds per-skill search pages on the big listing
// platforms; one entry per platform per skill.
func PlatformOpportunities(skills []string, scrapedAt time.Time) []opportunity.Opportunity {
	out := make([]opportunity.Opportunity, 0, len(skills)*5)
	for _, raw := range skills {
		skill := strings.ToLower(strings.TrimSpace(raw))
		if skill == "" {
			continue
		}
		slug := strings.ReplaceAll(skill, " ", "-")
		escaped := url.QueryEscape(skill)

		pages := []struct {
			company string
			url     string
		}{
			{"Internshala", "https://internshala.com/internships/" + slug + "-internship"},
			{"LinkedIn", "https://www.linkedin.com/jobs/search/?keywords=" + escaped + "%20intern"},
			{"Indeed", "https://www.indeed.com/jobs?q=" + escaped + "+intern&l="},
			{"Naukri", "https://www.naukri.com/" + slug + "-internship-jobs"},
			{"Glassdoor", "https://www.glassdoor.co.in/Job/jobs.htm?sc.keyword=" + escaped + "%20intern"},
		}
		for _, p := range pages {
			out = append(out, opportunity.Opportunity{
				Source:    SourcePlatforms,
				Title:     titleWord(skill) + " Internship Opportunities",
				Company:   "Multiple Companies",
				Location:  "Nationwide",
				Category:  skill,
				URL:       p.url,
				Stipend:   "Varies",
				ScrapedAt: scrapedAt,
			})
		}
	}
	return out
}

func titleWord(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
