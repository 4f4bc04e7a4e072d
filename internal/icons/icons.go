// Package icons downloads manifest icons and rescales them for each
// platform's density requirements. Icon work is best-effort: any failure
// is logged as a warning and never fails platform generation.
package icons

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/draw"

	"github.com/ismailco/pwa2native/internal/logging"
	"github.com/ismailco/pwa2native/internal/manifest"
	"github.com/ismailco/pwa2native/internal/registry"
	"github.com/ismailco/pwa2native/internal/renderer"
)

const maxIconSize = 4 << 20

// Preferred source sizes per platform, from each vendor's guidelines.
const (
	androidTargetSize = 192
	appleTargetSize   = 1024
	windowsTargetSize = 256
)

// androidDensities maps mipmap density names to launcher icon sizes.
var androidDensities = map[string]int{
	"mdpi":    48,
	"hdpi":    72,
	"xhdpi":   96,
	"xxhdpi":  144,
	"xxxhdpi": 192,
}

// iosIconSet lists the AppIcon.appiconset entries: point size, scale and
// the resulting pixel size.
var iosIconSet = []struct {
	Size  string
	Idiom string
	Scale string
	Pix   int
}{
	{"20x20", "iphone", "2x", 40},
	{"20x20", "iphone", "3x", 60},
	{"29x29", "iphone", "2x", 58},
	{"29x29", "iphone", "3x", 87},
	{"40x40", "iphone", "2x", 80},
	{"40x40", "iphone", "3x", 120},
	{"60x60", "iphone", "2x", 120},
	{"60x60", "iphone", "3x", 180},
	{"1024x1024", "ios-marketing", "1x", 1024},
}

// Processor downloads and rescales manifest icons.
type Processor struct {
	client *http.Client
	logger logging.Logger
}

// NewProcessor creates an icon processor sharing the fetcher's timeout
// policy.
func NewProcessor(timeout time.Duration, logger logging.Logger) *Processor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.NewLogger(nil)
	}

	return &Processor{
		client: &http.Client{Timeout: timeout},
		logger: logger.WithComponent("icons"),
	}
}

// Apply downloads the best manifest icon for the platform and writes the
// rescaled variants into the emitted project tree. Returns nil whenever
// icon material is simply unavailable.
func (p *Processor) Apply(ctx context.Context, cfg *manifest.AppConfig, platform registry.Platform, platformDir string) error {
	target := androidTargetSize
	switch platform {
	case registry.PlatformIOS, registry.PlatformMacOS:
		target = appleTargetSize
	case registry.PlatformWindows:
		target = windowsTargetSize
	}

	icon := Best(cfg.Icons, target)
	if icon == nil {
		p.logger.Debug(ctx, "no usable icon in manifest", "platform", string(platform))
		return nil
	}

	img, err := p.download(ctx, cfg.ResolveURL(icon.Src))
	if err != nil {
		p.logger.Warn(ctx, err, "could not download icon", "src", icon.Src)
		return nil
	}

	switch platform {
	case registry.PlatformAndroid:
		err = p.applyAndroid(img, platformDir)
	case registry.PlatformIOS:
		err = p.applyIOS(img, filepath.Join(platformDir, pathSafe(cfg.ProjectName()), "Assets.xcassets", "AppIcon.appiconset"))
	case registry.PlatformMacOS:
		err = p.writeScaled(img, appleTargetSize, filepath.Join(platformDir, pathSafe(cfg.AppName)+".app", "Contents", "Resources", "icon_1024.png"))
	case registry.PlatformWindows:
		err = p.writeScaled(img, windowsTargetSize, filepath.Join(platformDir, pathSafe(cfg.ProjectName()), "app.png"))
	}

	if err != nil {
		p.logger.Warn(ctx, err, "could not process icon", "platform", string(platform))
	}

	return nil
}

// pathSafe sanitizes a name exactly like path placeholders are rendered,
// so icon files land in the same directories as the emitted project tree
// and a hostile manifest name cannot point outside it.
func pathSafe(name string) string {
	return renderer.Escape(name, renderer.SyntaxPath)
}

// Best selects the icon whose declared size is closest to target.
// Entries without a parsable sizes field are skipped.
func Best(icons []manifest.Icon, target int) *manifest.Icon {
	var best *manifest.Icon
	bestDiff := -1

	for i := range icons {
		size := parseSize(icons[i].Sizes)
		if size <= 0 || icons[i].Src == "" {
			continue
		}
		diff := size - target
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			bestDiff = diff
			best = &icons[i]
		}
	}

	return best
}

func (p *Processor) applyAndroid(img image.Image, platformDir string) error {
	for density, size := range androidDensities {
		dir := filepath.Join(platformDir, "app", "src", "main", "res", "mipmap-"+density)
		if err := p.writeScaled(img, size, filepath.Join(dir, "ic_launcher.png")); err != nil {
			return err
		}
	}

	return nil
}

func (p *Processor) applyIOS(img image.Image, iconsetDir string) error {
	type contentsImage struct {
		Size     string `json:"size"`
		Idiom    string `json:"idiom"`
		Filename string `json:"filename"`
		Scale    string `json:"scale"`
	}
	contents := struct {
		Images []contentsImage `json:"images"`
		Info   struct {
			Version int    `json:"version"`
			Author  string `json:"author"`
		} `json:"info"`
	}{}
	contents.Info.Version = 1
	contents.Info.Author = "pwa2native"

	for _, entry := range iosIconSet {
		name := fmt.Sprintf("icon_%d.png", entry.Pix)
		if err := p.writeScaled(img, entry.Pix, filepath.Join(iconsetDir, name)); err != nil {
			return err
		}
		contents.Images = append(contents.Images, contentsImage{
			Size:     entry.Size,
			Idiom:    entry.Idiom,
			Filename: name,
			Scale:    entry.Scale,
		})
	}

	data, err := json.MarshalIndent(contents, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(iconsetDir, "Contents.json"), data, 0o644)
}

func (p *Processor) writeScaled(img image.Image, size int, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, Scale(img, size)); err != nil {
		return err
	}

	return os.WriteFile(target, buf.Bytes(), 0o644)
}

// Scale resamples img to a size x size square using Catmull-Rom
// interpolation.
func Scale(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	return dst
}

func (p *Processor) download(ctx context.Context, iconURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, iconURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIconSize))
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding icon: %w", err)
	}
	if format != "png" {
		return nil, fmt.Errorf("unsupported icon format %q", format)
	}

	return img, nil
}

// parseSize extracts the width from a manifest sizes value like
// "192x192"; multi-size values take the first entry.
func parseSize(sizes string) int {
	sizes = strings.TrimSpace(sizes)
	if i := strings.IndexByte(sizes, ' '); i > 0 {
		sizes = sizes[:i]
	}
	if i := strings.IndexAny(sizes, "xX"); i > 0 {
		sizes = sizes[:i]
	}

	n, err := strconv.Atoi(sizes)
	if err != nil {
		return 0
	}

	return n
}
