package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Defaults for fetching pages
const (
	DefaultUserAgent = "Mozilla/5.0 (compatible; careerkit/1.0)"
	DefaultTimeout   = 20 * time.Second
	maxBodySize      = 2 << 20
)

// MinPageText is the text length below which a page is assumed to need
// JavaScript to render its posting
const MinPageText = 200

// Options configures URL fetching
type Options struct {
	UserAgent  string
	Timeout    time.Duration
	UseBrowser bool
	Selectors  []string
	Log        logrus.FieldLogger

	// render replaces the headless browser in tests
	render func(ctx context.Context, url string, timeout time.Duration, log logrus.FieldLogger) (string, error)
}

func (o *Options) withDefaults() Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.UserAgent == "" {
		out.UserAgent = DefaultUserAgent
	}
	if out.Timeout <= 0 {
		out.Timeout = DefaultTimeout
	}
	if len(out.Selectors) == 0 {
		out.Selectors = JobPostingSelectors
	}
	if out.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		out.Log = l
	}
	if out.render == nil {
		out.render = renderPage
	}
	return out
}

// FetchError describes a page that could not be fetched
type FetchError struct {
	URL        string
	StatusCode int
	Cause      error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// FromURL downloads a job posting and extracts its text. Pages that come back
// nearly empty are rendered in headless Chrome when UseBrowser is set.
func FromURL(ctx context.Context, client *http.Client, rawURL string, opts *Options) (Page, error) {
	o := opts.withDefaults()

	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Page{}, &FetchError{URL: rawURL, Cause: fmt.Errorf("invalid URL")}
	}
	if client == nil {
		client = &http.Client{Timeout: o.Timeout}
	}

	html, err := fetchHTML(ctx, client, rawURL, o.UserAgent)
	if err != nil {
		return Page{}, err
	}
	page, err := ExtractPage(html, o.Selectors)
	if err != nil {
		return Page{}, err
	}

	log := o.Log.WithField("url", rawURL)
	if utf8.RuneCountInString(page.Text) >= MinPageText {
		log.WithField("chars", len(page.Text)).Debug("extracted posting over HTTP")
		return page, nil
	}
	if !o.UseBrowser {
		log.Debug("page text is short and browser rendering is off")
		return page, nil
	}

	log.Debug("page text is short, rendering with headless browser")
	rendered, err := o.render(ctx, rawURL, o.Timeout, log)
	if err != nil {
		log.WithError(err).Warn("browser rendering failed, keeping HTTP result")
		return page, nil
	}
	better, err := ExtractPage(rendered, o.Selectors)
	if err != nil || utf8.RuneCountInString(better.Text) <= utf8.RuneCountInString(page.Text) {
		return page, nil
	}
	if better.Title == "" {
		better.Title = page.Title
	}
	return better, nil
}

func fetchHTML(ctx context.Context, client *http.Client, rawURL, userAgent string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &FetchError{URL: rawURL, Cause: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: rawURL, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &FetchError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", &FetchError{URL: rawURL, Cause: fmt.Errorf("read body: %w", err)}
	}
	return string(body), nil
}
