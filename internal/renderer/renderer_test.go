package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/ismailco/pwa2native/internal/errors"
	"github.com/ismailco/pwa2native/internal/manifest"
	"github.com/ismailco/pwa2native/internal/registry"
)

func demoConfig(t *testing.T) *manifest.AppConfig {
	t.Helper()
	cfg, err := manifest.NewAppConfig("https://example.com", "Demo", &manifest.Manifest{
		Shortcuts: []manifest.Shortcut{
			{Name: "A", URL: "/a"},
			{Name: "B", URL: "/b"},
		},
	}, []manifest.NavLink{
		{Title: "Docs", URL: "https://example.com/docs"},
	})
	require.NoError(t, err)
	return cfg
}

func singleFileBundle(relPath, content string) *registry.TemplateBundle {
	return &registry.TemplateBundle{
		Platform: registry.PlatformMacOS,
		Files:    []registry.TemplateFile{{RelPath: relPath, Raw: []byte(content)}},
	}
}

func TestRenderScalars(t *testing.T) {
	bundle := singleFileBundle("main.swift", `window.title = "${app_name}"
load("${url}")`)

	project, err := Render(bundle, demoConfig(t))
	require.NoError(t, err)
	require.Len(t, project.Files, 1)

	out := string(project.Files[0].Data)
	assert.Contains(t, out, `window.title = "Demo"`)
	assert.Contains(t, out, `load("https://example.com")`)
	assert.NotContains(t, out, "${app_name}")
	assert.NotContains(t, out, "${url}")
}

func TestRenderEscapesPerSyntax(t *testing.T) {
	cfg, err := manifest.NewAppConfig("https://example.com", `Say "Hi" & <Go>`, nil, nil)
	require.NoError(t, err)

	tests := []struct {
		relPath string
		want    string
	}{
		{"main.swift", `Say \"Hi\" & <Go>`},
		{"AndroidManifest.xml", "Say &quot;Hi&quot; &amp; &lt;Go&gt;"},
		{"build.sh", `Say \"Hi\" & <Go>`},
		{"notes.txt", `Say "Hi" & <Go>`},
	}

	for _, tt := range tests {
		project, err := Render(singleFileBundle(tt.relPath, "${app_name}"), cfg)
		require.NoError(t, err, tt.relPath)
		assert.Equal(t, tt.want, string(project.Files[0].Data), tt.relPath)
	}
}

func TestRenderEscapesSingleQuoteInGradle(t *testing.T) {
	cfg, err := manifest.NewAppConfig("https://example.com", "O'Brien App", nil, nil)
	require.NoError(t, err)

	// Groovy settings scripts carry the project name in a single-quoted
	// literal; the apostrophe must not terminate it.
	bundle := singleFileBundle("settings.gradle", "rootProject.name = '${project_name}'\n")
	project, err := Render(bundle, cfg)
	require.NoError(t, err)

	assert.Equal(t, "rootProject.name = 'O\\'BrienApp'\n", string(project.Files[0].Data))
}

func TestRenderUnknownTokensSurvive(t *testing.T) {
	bundle := singleFileBundle("main.swift", "keep ${future_token} and ${another_one} intact")

	project, err := Render(bundle, demoConfig(t))
	require.NoError(t, err)
	assert.Equal(t, "keep ${future_token} and ${another_one} intact", string(project.Files[0].Data))
}

func TestRenderShortcutsMenuPreservesOrder(t *testing.T) {
	bundle := singleFileBundle("main.swift", "        ${shortcuts_menu}\n")

	project, err := Render(bundle, demoConfig(t))
	require.NoError(t, err)

	out := string(project.Files[0].Data)
	posA := strings.Index(out, `title: "A"`)
	posB := strings.Index(out, `title: "B"`)
	require.GreaterOrEqual(t, posA, 0)
	require.GreaterOrEqual(t, posB, 0)
	assert.Less(t, posA, posB, "shortcut A must expand before B")

	// shortcut URLs resolved against the app URL
	assert.Contains(t, out, `shortcutURLs["A"] = "https://example.com/a"`)
	assert.Contains(t, out, `shortcutURLs["B"] = "https://example.com/b"`)

	// block token fully consumed
	assert.NotContains(t, out, "${shortcuts_menu}")
}

func TestRenderShortcutsKeepsDuplicates(t *testing.T) {
	cfg, err := manifest.NewAppConfig("https://example.com", "Demo", &manifest.Manifest{
		Shortcuts: []manifest.Shortcut{
			{Name: "Same", URL: "/1"},
			{Name: "Same", URL: "/2"},
		},
	}, nil)
	require.NoError(t, err)

	project, err := Render(singleFileBundle("main.swift", "${shortcuts_menu}"), cfg)
	require.NoError(t, err)

	out := string(project.Files[0].Data)
	assert.Equal(t, 2, strings.Count(out, `title: "Same"`))
}

func TestRenderEmptyBlocksBecomeComments(t *testing.T) {
	cfg, err := manifest.NewAppConfig("https://example.com", "Demo", nil, nil)
	require.NoError(t, err)

	project, err := Render(singleFileBundle("main.swift", "${navigation_links}\n${shortcuts_menu}"), cfg)
	require.NoError(t, err)

	out := string(project.Files[0].Data)
	assert.Contains(t, out, "// No navigation links found")
	assert.Contains(t, out, "// No shortcuts available")
}

func TestRenderBlockIndentation(t *testing.T) {
	bundle := singleFileBundle("main.swift", "start\n        ${navigation_links}\nend")

	project, err := Render(bundle, demoConfig(t))
	require.NoError(t, err)

	for _, line := range strings.Split(string(project.Files[0].Data), "\n") {
		if strings.Contains(line, "navItem0.target") {
			assert.True(t, strings.HasPrefix(line, "        "), "continuation lines keep token indent: %q", line)
		}
	}
}

func TestRenderPathPlaceholders(t *testing.T) {
	cfg, err := manifest.NewAppConfig("https://example.com", "My App", nil, nil)
	require.NoError(t, err)

	bundle := &registry.TemplateBundle{
		Platform: registry.PlatformWindows,
		Files: []registry.TemplateFile{
			{RelPath: "${project_name}/${project_name}.csproj", Raw: []byte("<Project/>")},
		},
	}

	project, err := Render(bundle, cfg)
	require.NoError(t, err)
	assert.Equal(t, "MyApp/MyApp.csproj", project.Files[0].RelPath)
}

func TestRenderBinaryPassthrough(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x00, 0xFF, '$', '{', 'u', 'r', 'l', '}'}
	bundle := &registry.TemplateBundle{
		Platform: registry.PlatformAndroid,
		Files:    []registry.TemplateFile{{RelPath: "icon.png", Raw: raw}},
	}

	project, err := Render(bundle, demoConfig(t))
	require.NoError(t, err)
	assert.Equal(t, raw, project.Files[0].Data)
}

func TestRenderMissingURLFails(t *testing.T) {
	cfg := &manifest.AppConfig{AppName: "Demo"}

	_, err := Render(singleFileBundle("main.swift", "${url}"), cfg)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeRender))
}

func TestRenderFullMacOSBundle(t *testing.T) {
	bundle, err := registry.TemplatesFor(registry.PlatformMacOS)
	require.NoError(t, err)

	project, err := Render(bundle, demoConfig(t))
	require.NoError(t, err)

	var mainSwift, infoPlist, buildSh string
	for _, f := range project.Files {
		switch f.RelPath {
		case "main.swift":
			mainSwift = string(f.Data)
		case "Demo.app/Contents/Info.plist":
			infoPlist = string(f.Data)
		case "build.sh":
			buildSh = string(f.Data)
		}
	}

	require.NotEmpty(t, mainSwift)
	assert.Contains(t, mainSwift, `window.title = "Demo"`)
	assert.Contains(t, mainSwift, `URL(string: "https://example.com")`)
	for name := range map[string]bool{"app_name": true, "url": true, "navigation_links": true, "shortcuts_menu": true} {
		assert.NotContains(t, mainSwift, "${"+name+"}")
	}

	require.NotEmpty(t, infoPlist, "app bundle path must render from ${app_name}")
	assert.Contains(t, infoPlist, "<string>Demo</string>")
	assert.Contains(t, infoPlist, "<string>com.pwa.wrapper.demo</string>")

	require.NotEmpty(t, buildSh)
	assert.Contains(t, buildSh, `"Demo.app/Contents/MacOS/Demo"`)
	// intentional shell constructs in the template body stay untouched
	assert.Contains(t, buildSh, "$(xcrun --show-sdk-path)")
}
