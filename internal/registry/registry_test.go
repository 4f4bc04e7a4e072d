package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/ismailco/pwa2native/internal/errors"
)

func TestParsePlatform(t *testing.T) {
	for _, name := range []string{"android", "ios", "MACOS", " windows "} {
		p, err := ParsePlatform(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, p)
	}

	_, err := ParsePlatform("linux")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypePlatform))
}

func TestExpandPlatforms(t *testing.T) {
	assert.Equal(t, []string{"android", "ios", "macos", "windows"}, ExpandPlatforms("all"))
	assert.Equal(t, []string{"android", "ios", "macos", "windows"}, ExpandPlatforms(""))
	assert.Equal(t, []string{"macos", "linux"}, ExpandPlatforms("macos, linux"))
	assert.Equal(t, []string{"ios"}, ExpandPlatforms("ios,"))
}

func TestTemplatesForAllPlatforms(t *testing.T) {
	for _, platform := range AllPlatforms() {
		bundle, err := TemplatesFor(platform)
		require.NoError(t, err, platform)
		require.NotNil(t, bundle)
		assert.Equal(t, platform, bundle.Platform)
		assert.NotEmpty(t, bundle.Files)

		for _, f := range bundle.Files {
			assert.NotEmpty(t, f.RelPath, "%s bundle has file with empty path", platform)
			assert.NotEmpty(t, f.Raw, "%s template %s is empty", platform, f.RelPath)
		}
	}
}

func TestTemplatesForNonCanonicalName(t *testing.T) {
	for _, name := range []string{"MacOS", " android ", "IOS"} {
		bundle, err := TemplatesFor(Platform(name))
		require.NoError(t, err, name)
		require.NotNil(t, bundle, name)
		assert.NotEmpty(t, bundle.Files, name)
	}
}

func TestTemplatesForUnsupportedPlatform(t *testing.T) {
	_, err := TemplatesFor(Platform("linux"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypePlatform))
}

func TestBuildScriptsAreExecutable(t *testing.T) {
	for _, platform := range []Platform{PlatformIOS, PlatformMacOS} {
		bundle, err := TemplatesFor(platform)
		require.NoError(t, err)

		found := false
		for _, f := range bundle.Files {
			if strings.HasSuffix(f.RelPath, "build.sh") {
				found = true
				assert.True(t, f.Executable, "%s build.sh must be executable", platform)
			}
		}
		assert.True(t, found, "%s bundle must ship a build.sh", platform)
	}
}

func TestMacOSMainCarriesMenuTokens(t *testing.T) {
	bundle, err := TemplatesFor(PlatformMacOS)
	require.NoError(t, err)

	var mainSwift string
	for _, f := range bundle.Files {
		if f.RelPath == "main.swift" {
			mainSwift = string(f.Raw)
		}
	}
	require.NotEmpty(t, mainSwift)
	assert.Contains(t, mainSwift, "${navigation_links}")
	assert.Contains(t, mainSwift, "${shortcuts_menu}")
}

func TestBundlesAreStableAcrossCalls(t *testing.T) {
	a, err := TemplatesFor(PlatformAndroid)
	require.NoError(t, err)
	b, err := TemplatesFor(PlatformAndroid)
	require.NoError(t, err)

	// singleton: same bundle value, loaded once
	assert.Same(t, a, b)
}
