package manifest

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ismailco/pwa2native/internal/errors"
)

// Default values applied when the manifest omits a field.
const (
	DefaultDisplay         = "standalone"
	DefaultStartURL        = "/"
	DefaultThemeColor      = "#FFFFFF"
	DefaultBackgroundColor = "#FFFFFF"

	bundleIDPrefix = "com.pwa.wrapper."
)

// AppConfig is the normalized application configuration derived from the
// fetched manifest merged with CLI overrides. Created once per invocation
// and read-only afterwards; every downstream component shares the same
// value.
type AppConfig struct {
	AppName         string
	URL             string
	StartURL        string
	Display         string
	Description     string
	ThemeColor      string
	BackgroundColor string
	Icons           []Icon
	Shortcuts       []Shortcut
	NavLinks        []NavLink
}

// NewAppConfig builds the AppConfig for rawURL. The manifest may be nil
// (fetch failed); the configuration then falls back to defaults derived
// from the URL alone. An explicit overrideName always wins over the
// manifest's name and short_name.
func NewAppConfig(rawURL, overrideName string, m *Manifest, navLinks []NavLink) (*AppConfig, error) {
	parsed, err := url.Parse(strings.TrimRight(rawURL, "/"))
	if err != nil {
		return nil, errors.NewConfigError("invalid application URL "+rawURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.NewConfigError("application URL must be absolute http or https, got "+rawURL, nil)
	}
	if parsed.Host == "" {
		return nil, errors.NewConfigError("application URL has no host: "+rawURL, nil)
	}

	cfg := &AppConfig{
		URL:             parsed.String(),
		StartURL:        DefaultStartURL,
		Display:         DefaultDisplay,
		ThemeColor:      DefaultThemeColor,
		BackgroundColor: DefaultBackgroundColor,
		Icons:           []Icon{},
		Shortcuts:       []Shortcut{},
		NavLinks:        navLinks,
	}

	if m != nil {
		cfg.AppName = firstNonEmpty(m.Name, m.ShortName)
		cfg.Description = m.Description
		if m.StartURL != "" {
			cfg.StartURL = m.StartURL
		}
		if m.Display != "" {
			cfg.Display = m.Display
		}
		if m.ThemeColor != "" {
			cfg.ThemeColor = m.ThemeColor
		}
		if m.BackgroundColor != "" {
			cfg.BackgroundColor = m.BackgroundColor
		}
		if len(m.Icons) > 0 {
			cfg.Icons = append([]Icon(nil), m.Icons...)
		}
		if len(m.Shortcuts) > 0 {
			cfg.Shortcuts = append([]Shortcut(nil), m.Shortcuts...)
		}
	}

	if overrideName != "" {
		cfg.AppName = overrideName
	}
	if cfg.AppName == "" {
		cfg.AppName = nameFromHost(parsed.Host)
	}

	return cfg, nil
}

// ProjectName is the app name with whitespace stripped, usable in
// identifiers and file names.
func (c *AppConfig) ProjectName() string {
	return strings.Join(strings.Fields(c.AppName), "")
}

// BundleID derives the reverse-DNS bundle identifier for Apple and
// Windows project files.
func (c *AppConfig) BundleID() string {
	return bundleIDPrefix + strings.ToLower(c.ProjectName())
}

// ResolveURL makes ref absolute against the application URL. Already
// absolute references pass through unchanged; unparsable ones are
// returned as-is.
func (c *AppConfig) ResolveURL(ref string) string {
	base, err := url.Parse(c.URL)
	if err != nil {
		return ref
	}
	resolved, err := base.Parse(ref)
	if err != nil {
		return ref
	}

	return resolved.String()
}

// nameFromHost derives a presentable default app name from a URL host:
// "www.example.com:8080" becomes "Example".
func nameFromHost(host string) string {
	host = strings.ToLower(host)
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}
	host = strings.TrimPrefix(host, "www.")

	label := host
	if i := strings.Index(host, "."); i > 0 {
		label = host[:i]
	}
	if label == "" {
		return "PWA App"
	}

	return cases.Title(language.English).String(label)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
