package scraper

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"career-connect/internal/domain/opportunity"

	"github.com/gocolly/colly/v2"
)

// InternshalaScraper pulls live internship cards off Internshala category
// pages. Listing markup only; detail pages are skipped since the card
// already carries everything the catalog needs.
type InternshalaScraper struct {
	baseURL     string
	allowedHost string
	userAgent   string
}

func NewInternshalaScraper(userAgent string) *InternshalaScraper {
	s := &InternshalaScraper{baseURL: "https://internshala.com", userAgent: userAgent}
	s.allowedHost = hostFromBaseURL(s.baseURL)
	return s
}

func NewInternshalaScraperWithBaseURL(baseURL, userAgent string) *InternshalaScraper {
	s := &InternshalaScraper{baseURL: strings.TrimSpace(baseURL), userAgent: userAgent}
	if s.baseURL == "" {
		s.baseURL = "https://internshala.com"
	}
	s.allowedHost = hostFromBaseURL(s.baseURL)
	return s
}

// Categories the scraper walks on a full refresh; slugs follow
// internshala.com/internships/<slug>-internship.
var internshalaCategories = []string{
	"computer-science",
	"electronics",
	"civil",
	"mechanical",
	"web-development",
	"data-science",
}

func (s *InternshalaScraper) ScrapeCategory(category string, pages int) ([]opportunity.Opportunity, error) {
	if pages <= 0 {
		pages = 1
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, fmt.Errorf("empty category")
	}

	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	if s.userAgent != "" {
		c.UserAgent = s.userAgent
	}

	_ = c.Limit(&colly.LimitRule{
		DomainGlob:  "*" + s.allowedHost + "*",
		Parallelism: 2,
		Delay:       400 * time.Millisecond,
		RandomDelay: 750 * time.Millisecond,
	})

	now := time.Now().UTC()
	items := make([]opportunity.Opportunity, 0)

	c.OnHTML("div.individual_internship", func(e *colly.HTMLElement) {
		title := strings.TrimSpace(e.ChildText("h3.job-internship-name"))
		if title == "" {
			title = strings.TrimSpace(e.ChildText("div.heading_4_5 a"))
		}
		company := strings.TrimSpace(e.ChildText("p.company-name"))
		if company == "" {
			company = strings.TrimSpace(e.ChildText("div.heading_6 a"))
		}
		location := strings.TrimSpace(e.ChildText("div.locations"))
		stipend := strings.TrimSpace(e.ChildText("span.stipend"))

		href := strings.TrimSpace(e.ChildAttr("a", "href"))
		if href == "" || title == "" {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs == "" {
			return
		}

		items = append(items, opportunity.Opportunity{
			Source:    SourceInternshala,
			Title:     title,
			Company:   company,
			Location:  location,
			Category:  category,
			URL:       abs,
			Stipend:   stipend,
			ScrapedAt: now,
		})
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	base := strings.TrimRight(s.baseURL, "/")
	for page := 1; page <= pages; page++ {
		pageURL := fmt.Sprintf("%s/internships/%s-internship", base, category)
		if page > 1 {
			pageURL = fmt.Sprintf("%s/page-%d", pageURL, page)
		}
		if err := c.Visit(pageURL); err != nil && reqErr == nil {
			reqErr = err
		}
	}
	c.Wait()

	if len(items) == 0 && reqErr != nil {
		return nil, reqErr
	}
	return dedupeByURL(items), nil
}

func dedupeByURL(items []opportunity.Opportunity) []opportunity.Opportunity {
	seen := make(map[string]bool, len(items))
	out := make([]opportunity.Opportunity, 0, len(items))
	for _, it := range items {
		key := strings.ToLower(it.URL)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}

func hostFromBaseURL(base string) string {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil || u == nil {
		return ""
	}
	return u.Host
}
