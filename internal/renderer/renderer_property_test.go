//go:build property

package renderer

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ismailco/pwa2native/internal/manifest"
	"github.com/ismailco/pwa2native/internal/registry"
)

func propertyConfig() *manifest.AppConfig {
	cfg, err := manifest.NewAppConfig("https://example.com", "Demo", nil, nil)
	if err != nil {
		panic(err)
	}
	return cfg
}

// TestRendererProperties validates substitution invariants over generated
// template text.
func TestRendererProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	cfg := propertyConfig()

	render := func(relPath, content string) string {
		bundle := &registry.TemplateBundle{
			Platform: registry.PlatformMacOS,
			Files:    []registry.TemplateFile{{RelPath: relPath, Raw: []byte(content)}},
		}
		project, err := Render(bundle, cfg)
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		return string(project.Files[0].Data)
	}

	// Property: text without placeholder markers renders to itself.
	properties.Property("token-free text is untouched", prop.ForAll(
		func(text string) bool {
			if strings.Contains(text, "${") {
				return true
			}
			return render("main.swift", text) == text
		},
		gen.AnyString(),
	))

	// Property: tokens outside the vocabulary survive verbatim.
	properties.Property("unknown tokens pass through", prop.ForAll(
		func(name string) bool {
			if _, known := scalarResolvers[name]; known {
				return true
			}
			if name == tokenNavigationLinks || name == tokenShortcutsMenu {
				return true
			}
			token := "${" + name + "}"
			return render("main.swift", "a "+token+" b") == "a "+token+" b"
		},
		gen.RegexMatch(`[a-z_][a-z0-9_]{0,15}`),
	))

	// Property: rendering is idempotent once all known tokens are resolved.
	properties.Property("render is idempotent", prop.ForAll(
		func(text string) bool {
			once := render("notes.txt", text)
			return render("notes.txt", once) == once
		},
		gen.RegexMatch(`([a-zA-Z0-9 _.\n]|\$\{(app_name|url|unknown_token)\})*`),
	))

	properties.TestingRun(t)
}
