package registry

import (
	"strings"

	"github.com/ismailco/pwa2native/internal/errors"
)

// Platform identifies a supported packaging target.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformMacOS   Platform = "macos"
	PlatformWindows Platform = "windows"
)

// AllPlatforms returns the full supported platform set in stable order.
func AllPlatforms() []Platform {
	return []Platform{PlatformAndroid, PlatformIOS, PlatformMacOS, PlatformWindows}
}

// ParsePlatform validates a platform name. Unknown names yield an
// unsupported-platform error.
func ParsePlatform(name string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(name))) {
	case PlatformAndroid:
		return PlatformAndroid, nil
	case PlatformIOS:
		return PlatformIOS, nil
	case PlatformMacOS:
		return PlatformMacOS, nil
	case PlatformWindows:
		return PlatformWindows, nil
	default:
		return "", errors.NewUnsupportedPlatformError(name)
	}
}

// ExpandPlatforms turns a comma-separated platform spec into a list of
// names, expanding "all" to the full supported set. Names are not
// validated here; ParsePlatform decides per entry so one bad name does
// not hide the valid ones.
func ExpandPlatforms(spec string) []string {
	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, "all") {
		all := AllPlatforms()
		names := make([]string, len(all))
		for i, p := range all {
			names[i] = string(p)
		}
		return names
	}

	var names []string
	for _, part := range strings.Split(spec, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}

	return names
}
