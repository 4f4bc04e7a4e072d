package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/ismailco/pwa2native/internal/errors"
	"github.com/ismailco/pwa2native/internal/logging"
)

// maxManifestSize bounds how much of a manifest response is read.
const maxManifestSize = 1 << 20

// Fetcher retrieves web app manifests and related page metadata over HTTP.
// All requests share one client with a bounded timeout; a timeout is
// reported as "manifest unavailable", never as a fatal error.
type Fetcher struct {
	client *http.Client
	logger logging.Logger
}

// NewFetcher creates a fetcher whose requests time out after the given
// duration.
func NewFetcher(timeout time.Duration, logger logging.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.NewLogger(nil)
	}

	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger.WithComponent("fetcher"),
	}
}

// Fetch locates and parses the manifest for the app at baseURL. It first
// fetches the page itself and follows a <link rel="manifest"> reference;
// when the page yields nothing it falls back to <base>/manifest.json.
// Every failure path returns a recoverable manifest fetch error.
func (f *Fetcher) Fetch(ctx context.Context, baseURL string) (*Manifest, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.NewManifestFetchError(baseURL, err)
	}

	if href := f.discoverManifestLink(ctx, base); href != "" {
		if m, err := f.fetchManifestJSON(ctx, href); err == nil {
			f.logger.Debug(ctx, "manifest located via link element", "href", href)
			return m, nil
		}
	}

	fallback := base.String() + "/manifest.json"
	m, err := f.fetchManifestJSON(ctx, fallback)
	if err != nil {
		return nil, errors.NewManifestFetchError(fallback, err)
	}

	return m, nil
}

// discoverManifestLink fetches the page at base and returns the resolved
// href of its <link rel="manifest">, or "" when none can be found.
func (f *Fetcher) discoverManifestLink(ctx context.Context, base *url.URL) string {
	doc, err := f.fetchDocument(ctx, base.String())
	if err != nil {
		f.logger.Debug(ctx, "could not fetch page for manifest discovery", "url", base.String(), "reason", err.Error())
		return ""
	}

	var href string
	walkElements(doc, func(n *html.Node) {
		if href != "" || n.Data != "link" {
			return
		}
		if !strings.EqualFold(attr(n, "rel"), "manifest") {
			return
		}
		if h := attr(n, "href"); h != "" {
			if resolved, err := base.Parse(h); err == nil {
				href = resolved.String()
			}
		}
	})

	return href
}

// FetchNavLinks scrapes navigation anchors from the page's <nav> and
// <header> elements. Failures degrade to an empty list.
func (f *Fetcher) FetchNavLinks(ctx context.Context, baseURL string) []NavLink {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil
	}

	doc, err := f.fetchDocument(ctx, base.String())
	if err != nil {
		f.logger.Warn(ctx, err, "could not fetch navigation links", "url", base.String())
		return nil
	}

	var links []NavLink
	seen := make(map[string]bool)

	walkElements(doc, func(n *html.Node) {
		if n.Data != "nav" && n.Data != "header" {
			return
		}
		walkElements(n, func(a *html.Node) {
			if a.Data != "a" {
				return
			}
			href := attr(a, "href")
			title := strings.TrimSpace(textContent(a))
			if title == "" || href == "" || strings.HasPrefix(href, "#") {
				return
			}
			resolved, err := base.Parse(href)
			if err != nil {
				return
			}
			key := title + "|" + resolved.String()
			if seen[key] {
				return
			}
			seen[key] = true
			links = append(links, NavLink{Title: title, URL: resolved.String()})
		})
	})

	return links
}

func (f *Fetcher) fetchManifestJSON(ctx context.Context, manifestURL string) (*Manifest, error) {
	body, err := f.get(ctx, manifestURL)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("malformed manifest JSON: %w", err)
	}

	return &m, nil
}

func (f *Fetcher) fetchDocument(ctx context.Context, pageURL string) (*html.Node, error) {
	body, err := f.get(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	return html.Parse(strings.NewReader(string(body)))
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxManifestSize))
}

// walkElements calls fn for every element node under n, including n.
func walkElements(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkElements(c, fn)
	}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}

	return ""
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}

	return sb.String()
}
