package pagescan

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"golang.org/x/net/html"
)

const maxBodyBytes = 1 << 20

// ctaSelectors matches elements that typically carry the primary
// calls to action.
var ctaSelectors = []string{
	"a.btn-primary", "a.cta", "button.cta", ".cta a", "a.btn",
	"button.btn-primary", `a[href*="signup"]`, `a[href*="register"]`,
	`a[href*="contact"]`, "a.button", "button.button",
}

// StaticScanner fetches the page over plain HTTP and parses the served
// markup. No JS execution, so it misses client-rendered content, but
// it needs no browser and works almost everywhere.
type StaticScanner struct {
	client *http.Client
}

// NewStaticScanner creates a StaticScanner with sensible defaults.
func NewStaticScanner() *StaticScanner {
	return &StaticScanner{
		client: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

// NewStaticScannerWithClient creates a StaticScanner using the given
// HTTP client.
func NewStaticScannerWithClient(client *http.Client) *StaticScanner {
	return &StaticScanner{client: client}
}

func (s *StaticScanner) Name() string { return "static" }

// Scan fetches the URL and builds the inventory from the parsed DOM.
func (s *StaticScanner) Scan(ctx context.Context, targetURL string) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "static: create request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; ScorizBot/1.0)")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "static: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, eris.Errorf("static: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, eris.Wrap(err, "static: read body")
	}
	if len(body) < 100 {
		return nil, eris.New("static: empty page")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, eris.Wrap(err, "static: parse html")
	}

	snap := &Snapshot{
		Title:  strings.TrimSpace(doc.Find("title").First().Text()),
		Forms:  doc.Find("form").Length(),
		Images: doc.Find("img").Length(),
		HTML:   string(body),
	}

	doc.Find("h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			snap.Headings = append(snap.Headings, t)
		}
	})
	doc.Find(`button, a.btn, .button, [role="button"]`).Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			snap.Buttons = append(snap.Buttons, t)
		}
	})
	doc.Find("nav a, header a, .navigation a").Each(func(_ int, sel *goquery.Selection) {
		t := strings.TrimSpace(sel.Text())
		if t == "" {
			return
		}
		href, _ := sel.Attr("href")
		snap.NavLinks = append(snap.NavLinks, NavLink{Text: t, Href: href})
	})
	seen := map[*html.Node]bool{}
	for _, selector := range ctaSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			node := sel.Get(0)
			if seen[node] {
				return
			}
			seen[node] = true
			snap.CTAs = append(snap.CTAs, CTA{
				Text: strings.TrimSpace(sel.Text()),
				Type: goquery.NodeName(sel),
			})
		})
	}
	doc.Find("form input, form select, form textarea").Each(func(_ int, sel *goquery.Selection) {
		typ, ok := sel.Attr("type")
		if !ok {
			typ = goquery.NodeName(sel)
		}
		name, _ := sel.Attr("name")
		placeholder, _ := sel.Attr("placeholder")
		_, required := sel.Attr("required")
		snap.FormFields = append(snap.FormFields, FormField{
			Type:        typ,
			Name:        name,
			Placeholder: placeholder,
			Required:    required,
		})
	})

	return snap, nil
}
