package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"
)

// createBrowserContext starts a headless Chrome with automation hints turned
// off
func createBrowserContext(parent context.Context, log logrus.FieldLogger) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("excludeSwitches", "enable-automation"),
		chromedp.UserAgent("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, v ...interface{}) {
		msg := fmt.Sprintf(format, v...)
		if strings.Contains(msg, "could not unmarshal event") ||
			strings.Contains(msg, "unknown PrivateNetworkRequestPolicy") ||
			strings.Contains(msg, "unknown ClientNavigationReason") {
			return
		}
		log.Debug(msg)
	}))

	return ctx, func() {
		cancelCtx()
		cancelAlloc()
	}
}

// showMoreSelectors expand collapsed descriptions on common job boards
var showMoreSelectors = []string{
	`button[aria-label*="Show more"]`,
	`button[aria-label*="see more"]`,
	`.show-more-less-html__button`,
	`button.jobs-description__footer-button`,
}

// renderPage loads url in headless Chrome and returns the rendered HTML
func renderPage(parent context.Context, url string, timeout time.Duration, log logrus.FieldLogger) (string, error) {
	ctx, cancel := createBrowserContext(parent, log)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			for _, sel := range showMoreSelectors {
				var n int
				if err := chromedp.Evaluate(fmt.Sprintf("document.querySelectorAll(%q).length", sel), &n).Do(ctx); err != nil || n == 0 {
					continue
				}
				_ = chromedp.Click(sel, chromedp.ByQuery).Do(ctx)
			}
			return nil
		}),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}
	return html, nil
}
