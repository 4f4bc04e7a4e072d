package generator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/ismailco/pwa2native/internal/errors"
	"github.com/ismailco/pwa2native/internal/logging"
)

const demoManifest = `{
	"name": "Demo",
	"start_url": "/",
	"shortcuts": [
		{"name": "A", "url": "/a"},
		{"name": "B", "url": "/b"}
	]
}`

func demoServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/manifest.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(demoManifest))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><nav><a href="/docs">Docs</a></nav></body></html>`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newGenerator() *Generator {
	return New(5*time.Second, logging.NewTestLogger())
}

func TestGenerateSinglePlatform(t *testing.T) {
	srv := demoServer(t)
	out := t.TempDir()

	result, err := newGenerator().Generate(context.Background(), Options{
		URL:       srv.URL,
		Platforms: []string{"macos"},
		Output:    out,
		SkipIcons: true,
	})
	require.NoError(t, err)
	require.Len(t, result.Platforms, 1)
	assert.Equal(t, StatusSuccess, result.Platforms[0].Status)
	assert.True(t, result.Succeeded())
	assert.True(t, result.ManifestFetched)

	data, err := os.ReadFile(filepath.Join(out, "macos", "main.swift"))
	require.NoError(t, err)
	mainSwift := string(data)
	assert.Contains(t, mainSwift, `"Demo"`)
	assert.Contains(t, mainSwift, srv.URL)
	for _, token := range []string{"${app_name}", "${url}", "${navigation_links}", "${shortcuts_menu}"} {
		assert.NotContains(t, mainSwift, token)
	}

	// shortcut order preserved down to the emitted source
	posA := strings.Index(mainSwift, `title: "A"`)
	posB := strings.Index(mainSwift, `title: "B"`)
	require.GreaterOrEqual(t, posA, 0)
	assert.Less(t, posA, posB)
}

func TestGenerateAllPlatforms(t *testing.T) {
	srv := demoServer(t)
	out := t.TempDir()

	result, err := newGenerator().Generate(context.Background(), Options{
		URL:       srv.URL,
		Platforms: []string{"android", "ios", "macos", "windows"},
		Output:    out,
		SkipIcons: true,
	})
	require.NoError(t, err)
	require.Len(t, result.Platforms, 4)
	for _, p := range result.Platforms {
		assert.Equal(t, StatusSuccess, p.Status, p.Platform)
		assert.Positive(t, p.FilesWritten, p.Platform)
		assert.NotEmpty(t, p.Hint, p.Platform)
	}

	assert.FileExists(t, filepath.Join(out, "android", "app", "src", "main", "java", "com", "pwa", "wrapper", "MainActivity.java"))
	assert.FileExists(t, filepath.Join(out, "ios", "Demo", "ViewController.swift"))
	assert.FileExists(t, filepath.Join(out, "windows", "Demo", "MainWindow.cs"))
}

func TestGenerateUnknownPlatformIsIsolated(t *testing.T) {
	srv := demoServer(t)

	result, err := newGenerator().Generate(context.Background(), Options{
		URL:       srv.URL,
		Platforms: []string{"linux", "macos"},
		Output:    t.TempDir(),
		SkipIcons: true,
	})
	require.NoError(t, err)
	require.Len(t, result.Platforms, 2)

	assert.Equal(t, StatusSkipped, result.Platforms[0].Status)
	assert.True(t, pkgerrors.IsType(result.Platforms[0].Err, pkgerrors.ErrorTypePlatform))
	assert.Equal(t, StatusSuccess, result.Platforms[1].Status)
	assert.True(t, result.Succeeded())
}

func TestGeneratePartialOnFileWriteFailure(t *testing.T) {
	srv := demoServer(t)
	out := t.TempDir()

	// occupy one destination path with a directory so that single write
	// fails while the rest of the platform still emits
	require.NoError(t, os.MkdirAll(filepath.Join(out, "macos", "main.swift"), 0o755))

	result, err := newGenerator().Generate(context.Background(), Options{
		URL:       srv.URL,
		Platforms: []string{"macos"},
		Output:    out,
		SkipIcons: true,
	})
	require.NoError(t, err)
	require.Len(t, result.Platforms, 1)

	p := result.Platforms[0]
	assert.Equal(t, StatusPartial, p.Status)
	assert.Positive(t, p.FilesWritten)
	require.Error(t, p.Err)
	assert.Contains(t, p.Err.Error(), "main.swift")

	// a partial platform is not a full success
	assert.False(t, result.Succeeded())
	assert.FileExists(t, filepath.Join(out, "macos", "build.sh"))
}

func TestGenerateDegradesWithoutManifest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	result, err := newGenerator().Generate(context.Background(), Options{
		URL:       srv.URL,
		Name:      "Fallback",
		Platforms: []string{"android", "macos"},
		Output:    t.TempDir(),
		SkipIcons: true,
	})
	require.NoError(t, err)
	assert.False(t, result.ManifestFetched)
	assert.Equal(t, "Fallback", result.Config.AppName)
	for _, p := range result.Platforms {
		assert.Equal(t, StatusSuccess, p.Status, p.Platform)
	}
}

func TestGenerateCLINameBeatsManifest(t *testing.T) {
	srv := demoServer(t)

	result, err := newGenerator().Generate(context.Background(), Options{
		URL:       srv.URL,
		Name:      "Override",
		Platforms: []string{"macos"},
		Output:    t.TempDir(),
		SkipIcons: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Override", result.Config.AppName)
}

func TestGenerateInvalidURLIsFatal(t *testing.T) {
	_, err := newGenerator().Generate(context.Background(), Options{
		URL:       "not-a-url",
		Platforms: []string{"macos"},
		Output:    t.TempDir(),
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeConfig))
}

func TestGenerateIdempotent(t *testing.T) {
	srv := demoServer(t)
	out := t.TempDir()
	opts := Options{
		URL:       srv.URL,
		Platforms: []string{"macos"},
		Output:    out,
		SkipIcons: true,
	}

	g := newGenerator()
	_, err := g.Generate(context.Background(), opts)
	require.NoError(t, err)

	first, err := os.ReadFile(filepath.Join(out, "macos", "main.swift"))
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), opts)
	require.NoError(t, err)

	second, err := os.ReadFile(filepath.Join(out, "macos", "main.swift"))
	require.NoError(t, err)
	assert.Equal(t, first, second, "re-running generation must yield byte-identical output")
}

func TestGenerateFromLocalManifest(t *testing.T) {
	manifestPath := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, os.WriteFile(manifestPath, []byte(demoManifest), 0o644))

	result, err := newGenerator().Generate(context.Background(), Options{
		URL:          "https://example.com",
		Platforms:    []string{"macos"},
		Output:       t.TempDir(),
		SkipIcons:    true,
		ManifestPath: manifestPath,
	})
	require.NoError(t, err)
	assert.True(t, result.ManifestFetched)
	assert.Equal(t, "Demo", result.Config.AppName)
	assert.Equal(t, StatusSuccess, result.Platforms[0].Status)
}
