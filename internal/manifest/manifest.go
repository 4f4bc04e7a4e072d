// Package manifest fetches and normalizes web app manifests. The fetcher
// locates the manifest through the page's <link rel="manifest"> element
// or the conventional /manifest.json path, and normalization merges the
// parsed document with CLI overrides into an immutable AppConfig.
package manifest

// Manifest mirrors the web app manifest JSON document.
// https://developer.mozilla.org/docs/Web/Manifest
type Manifest struct {
	Name            string     `json:"name"`
	ShortName       string     `json:"short_name"`
	Description     string     `json:"description"`
	StartURL        string     `json:"start_url"`
	Display         string     `json:"display"`
	ThemeColor      string     `json:"theme_color"`
	BackgroundColor string     `json:"background_color"`
	Icons           []Icon     `json:"icons"`
	Shortcuts       []Shortcut `json:"shortcuts"`
}

// Icon is a single entry from the manifest's icons array.
type Icon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// Shortcut is a named secondary URL from the manifest's shortcuts array,
// exposed as a menu entry in the generated native app.
type Shortcut struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// NavLink is a navigation anchor scraped from the PWA's landing page.
type NavLink struct {
	Title string
	URL   string
}
