package ingest

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector matches page chrome that never holds the posting
const noiseSelector = "nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

// JobPostingSelectors are tried in order to find the posting body
var JobPostingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	".jobs-description-content__text",
	".show-more-less-html__markup",
	"#job-details",
	".description__text",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// Page is the text pulled out of a job posting page
type Page struct {
	Title string
	Text  string
}

// ExtractPage strips page chrome and returns the posting text along with the
// page title. The first matching selector wins; the body is the fallback.
func ExtractPage(html string, selectors []string) (Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Page{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	title, _, _ = strings.Cut(title, " - ")
	title, _, _ = strings.Cut(title, " | ")

	doc.Find(noiseSelector).Remove()

	var main *goquery.Selection
	for _, sel := range selectors {
		if s := doc.Find(sel); s.Length() > 0 {
			main = s.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	text := cleanWhitespace(main.Text())
	if text == "" {
		if meta, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
			text = strings.TrimSpace(meta)
		}
	}
	return Page{Title: strings.TrimSpace(title), Text: text}, nil
}

// cleanWhitespace trims every line and drops blank ones
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
