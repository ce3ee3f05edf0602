// Package fetcher looks up page titles for new links. Every failure is
// swallowed: callers always get a usable title, at worst the domain.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/nikbrunner/marks/internal/model"
)

const (
	// maxBodyBytes bounds how much of a page is read looking for <title>.
	maxBodyBytes = 512 * 1024
	maxTitleLen  = 200
	userAgent    = "marks/1.0 (+title fetch)"
)

// Fetcher fetches page titles over HTTP.
type Fetcher struct {
	client    *http.Client
	log       *zap.Logger
	sanitizer *bluemonday.Policy
}

// New creates a Fetcher with the given request timeout. A nil logger
// disables logging.
func New(timeout time.Duration, log *zap.Logger) *Fetcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
		log:       log,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// NormalizeURL trims rawURL and adds https:// when no scheme is present.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if !strings.Contains(rawURL, "://") {
		return "https://" + rawURL
	}
	return rawURL
}

// FaviconURL returns an icon service URL for domain, or "" for an empty
// domain.
func FaviconURL(domain string) string {
	if domain == "" {
		return ""
	}
	return "https://www.google.com/s2/favicons?sz=64&domain=" + url.QueryEscape(domain)
}

// Title returns the page title of rawURL. On any failure it falls back to
// the domain, and to rawURL itself when there is no domain.
func (f *Fetcher) Title(ctx context.Context, rawURL string) string {
	fallback := model.DomainOf(rawURL)
	if fallback == "" {
		fallback = rawURL
	}

	title, err := f.fetchTitle(ctx, NormalizeURL(rawURL))
	if err != nil {
		f.log.Debug("title fetch failed", zap.String("url", rawURL), zap.Error(err))
		return fallback
	}
	if title == "" {
		return fallback
	}
	return title
}

func (f *Fetcher) fetchTitle(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "html") {
		return "", fmt.Errorf("not html: %s", ct)
	}

	return f.parseTitle(io.LimitReader(resp.Body, maxBodyBytes))
}

// parseTitle extracts and cleans the first <title> in the document.
func (f *Fetcher) parseTitle(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var title string
	var find func(*html.Node) bool
	find = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			var sb strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					sb.WriteString(c.Data)
				}
			}
			title = sb.String()
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if find(c) {
				return true
			}
		}
		return false
	}
	find(doc)

	return f.clean(title), nil
}

// clean strips markup, collapses whitespace and caps the length.
func (f *Fetcher) clean(title string) string {
	title = f.sanitizer.Sanitize(title)
	title = html.UnescapeString(title)
	title = strings.Join(strings.Fields(title), " ")

	runes := []rune(title)
	if len(runes) > maxTitleLen {
		title = strings.TrimSpace(string(runes[:maxTitleLen])) + "…"
	}
	return title
}
