package pagescan

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rotisserie/eris"
)

// BrowserScanner renders the page in headless Chrome so JS-driven
// sites expose their real DOM. One throwaway browser per scan.
type BrowserScanner struct {
	timeout time.Duration
}

// NewBrowserScanner creates a BrowserScanner. timeout bounds the whole
// navigate-and-extract sequence.
func NewBrowserScanner(timeout time.Duration) *BrowserScanner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &BrowserScanner{timeout: timeout}
}

func (b *BrowserScanner) Name() string { return "browser" }

// Scan navigates to the URL, waits for JS to settle, and extracts the
// UI inventory in-page.
func (b *BrowserScanner) Scan(ctx context.Context, targetURL string) (*Snapshot, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("log-level", "3"),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		chromedp.WindowSize(1280, 800),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, b.timeout)
	defer cancelTimeout()

	var (
		snap  Snapshot
		title string
		html  string
	)
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(targetURL),
		chromedp.Sleep(2*time.Second), // give JS time to render
		chromedp.Title(&title),
		chromedp.OuterHTML("html", &html),
		chromedp.Evaluate(inventoryJS, &snap),
	)
	if err != nil {
		return nil, eris.Wrapf(err, "browser: scan %s", targetURL)
	}

	snap.Title = title
	snap.HTML = html
	return &snap, nil
}

// inventoryJS runs in-page and mirrors the Snapshot JSON shape. The
// fold boundary is half the viewport height.
const inventoryJS = `(function() {
	var text = function(el) { return (el.textContent || "").trim(); };

	var headings = Array.from(document.querySelectorAll("h1, h2, h3"))
		.map(text).filter(Boolean);

	var buttons = Array.from(document.querySelectorAll('button, a.btn, .button, [role="button"]'))
		.map(text).filter(Boolean);

	var navigation = Array.from(document.querySelectorAll("nav a, header a, .navigation a"))
		.map(function(el) {
			return { text: text(el), href: el.getAttribute("href") || "" };
		}).filter(function(l) { return l.text !== ""; });

	var ctaSelectors = [
		"a.btn-primary", "a.cta", "button.cta", ".cta a", "a.btn",
		"button.btn-primary", 'a[href*="signup"]', 'a[href*="register"]',
		'a[href*="contact"]', "a.button", "button.button"
	];
	var seen = new Set();
	var mainCTAs = [];
	ctaSelectors.forEach(function(sel) {
		document.querySelectorAll(sel).forEach(function(el) {
			if (seen.has(el)) return;
			seen.add(el);
			mainCTAs.push({
				text: text(el),
				type: el.tagName.toLowerCase(),
				location: el.getBoundingClientRect().top < window.innerHeight / 2
					? "above-fold" : "below-fold"
			});
		});
	});

	var formFields = Array.from(document.querySelectorAll("form input, form select, form textarea"))
		.map(function(el) {
			return {
				type: el.getAttribute("type") || el.tagName.toLowerCase(),
				name: el.getAttribute("name") || "",
				placeholder: el.getAttribute("placeholder") || "",
				required: el.hasAttribute("required")
			};
		});

	return {
		pageTitle: document.title,
		headings: headings,
		buttons: buttons,
		navigation: navigation,
		mainCTAs: mainCTAs,
		formFields: formFields,
		forms: document.querySelectorAll("form").length,
		images: document.querySelectorAll("img").length
	};
})()`
