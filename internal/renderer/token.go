package renderer

import (
	"regexp"

	"github.com/ismailco/pwa2native/internal/manifest"
)

// tokenPattern matches ${name} placeholder markers in template text.
var tokenPattern = regexp.MustCompile(`\$\{([A-Za-z0-9_]+)\}`)

// scalarResolvers is the closed vocabulary of scalar placeholders. Tokens
// outside this table (and the block tokens) are left as literal text so
// forward/backward template mismatches degrade gracefully.
var scalarResolvers = map[string]func(cfg *manifest.AppConfig) string{
	"app_name":         func(cfg *manifest.AppConfig) string { return cfg.AppName },
	"name":             func(cfg *manifest.AppConfig) string { return cfg.AppName },
	"project_name":     func(cfg *manifest.AppConfig) string { return cfg.ProjectName() },
	"url":              func(cfg *manifest.AppConfig) string { return cfg.URL },
	"start_url":        func(cfg *manifest.AppConfig) string { return cfg.StartURL },
	"bundle_id":        func(cfg *manifest.AppConfig) string { return cfg.BundleID() },
	"theme_color":      func(cfg *manifest.AppConfig) string { return cfg.ThemeColor },
	"background_color": func(cfg *manifest.AppConfig) string { return cfg.BackgroundColor },
	"description":      func(cfg *manifest.AppConfig) string { return cfg.Description },
	"display":          func(cfg *manifest.AppConfig) string { return cfg.Display },
}

// substitute replaces every token the resolver knows; unknown tokens are
// returned verbatim.
func substitute(text string, resolve func(name string) (string, bool)) string {
	return tokenPattern.ReplaceAllStringFunc(text, func(m string) string {
		name := tokenPattern.FindStringSubmatch(m)[1]
		if value, ok := resolve(name); ok {
			return value
		}

		return m
	})
}

// substituteScalars resolves the scalar vocabulary against cfg, escaping
// each value for the destination syntax.
func substituteScalars(text string, syntax Syntax, cfg *manifest.AppConfig) string {
	return substitute(text, func(name string) (string, bool) {
		resolver, ok := scalarResolvers[name]
		if !ok {
			return "", false
		}

		return Escape(resolver(cfg), syntax), true
	})
}
