// Package generator orchestrates the packaging pipeline: resolve the app
// configuration once, then fetch templates, render, and emit for each
// requested platform in turn. Failures are platform-scoped; one broken
// platform never prevents the others from generating.
package generator

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/ismailco/pwa2native/internal/emitter"
	"github.com/ismailco/pwa2native/internal/errors"
	"github.com/ismailco/pwa2native/internal/icons"
	"github.com/ismailco/pwa2native/internal/logging"
	"github.com/ismailco/pwa2native/internal/manifest"
	"github.com/ismailco/pwa2native/internal/registry"
	"github.com/ismailco/pwa2native/internal/renderer"
)

// Options configure one generation run.
type Options struct {
	URL          string
	Name         string
	Platforms    []string
	Output       string
	Timeout      time.Duration
	SkipIcons    bool
	ManifestPath string // local manifest file used instead of fetching
}

// PlatformStatus classifies a platform's outcome.
type PlatformStatus string

const (
	StatusSuccess PlatformStatus = "success"
	StatusPartial PlatformStatus = "partial"
	StatusFailed  PlatformStatus = "failed"
	StatusSkipped PlatformStatus = "skipped"
)

// PlatformResult is the outcome for one requested platform.
type PlatformResult struct {
	Platform     string
	Status       PlatformStatus
	Err          error
	FilesWritten int
	Hint         string
}

// OverallResult aggregates the run.
type OverallResult struct {
	Config          *manifest.AppConfig
	ManifestFetched bool
	Platforms       []PlatformResult
}

// Succeeded reports whether at least one requested platform fully
// succeeded, which is the condition for exit code zero.
func (r *OverallResult) Succeeded() bool {
	for _, p := range r.Platforms {
		if p.Status == StatusSuccess {
			return true
		}
	}

	return false
}

// buildHints are the post-generation instructions per platform.
var buildHints = map[registry.Platform]string{
	registry.PlatformAndroid: "cd into the android directory, then: gradle wrapper && ./gradlew assembleRelease",
	registry.PlatformIOS:     "open the Xcode project, or run ./build.sh from the ios directory",
	registry.PlatformMacOS:   "cd into the macos directory, then: ./build.sh",
	registry.PlatformWindows: "open the solution in Visual Studio, or run build.cmd",
}

// Generator runs the packaging pipeline.
type Generator struct {
	logger  logging.Logger
	fetcher *manifest.Fetcher
	icons   *icons.Processor
	emitter *emitter.Emitter
}

// New creates a generator with the given fetch timeout.
func New(timeout time.Duration, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogger(nil)
	}

	return &Generator{
		logger:  logger.WithComponent("generator"),
		fetcher: manifest.NewFetcher(timeout, logger),
		icons:   icons.NewProcessor(timeout, logger),
		emitter: emitter.New(logger),
	}
}

// Generate runs the full pipeline. The returned error is non-nil only
// when configuration resolution fails in a way no platform could proceed
// (invalid URL); everything else is reported per platform in the result.
func (g *Generator) Generate(ctx context.Context, opts Options) (*OverallResult, error) {
	m, fetched := g.resolveManifest(ctx, opts)

	var navLinks []manifest.NavLink
	if opts.ManifestPath == "" {
		navLinks = g.fetcher.FetchNavLinks(ctx, opts.URL)
	}

	cfg, err := manifest.NewAppConfig(opts.URL, opts.Name, m, navLinks)
	if err != nil {
		return nil, err
	}

	g.logger.Info(ctx, "configuration resolved",
		"app", cfg.AppName,
		"url", cfg.URL,
		"manifest", fetched,
		"shortcuts", len(cfg.Shortcuts))

	result := &OverallResult{Config: cfg, ManifestFetched: fetched}

	for _, name := range opts.Platforms {
		result.Platforms = append(result.Platforms, g.generatePlatform(ctx, name, cfg, opts))
	}

	return result, nil
}

// resolveManifest loads the manifest from a local file or the network.
// Both paths degrade to a nil manifest; generation proceeds on defaults.
func (g *Generator) resolveManifest(ctx context.Context, opts Options) (*manifest.Manifest, bool) {
	if opts.ManifestPath != "" {
		data, err := os.ReadFile(opts.ManifestPath)
		if err != nil {
			g.logger.Warn(ctx, err, "could not read local manifest, using defaults", "path", opts.ManifestPath)
			return nil, false
		}
		var m manifest.Manifest
		if err := json.Unmarshal(data, &m); err != nil {
			g.logger.Warn(ctx, err, "malformed local manifest, using defaults", "path", opts.ManifestPath)
			return nil, false
		}

		return &m, true
	}

	m, err := g.fetcher.Fetch(ctx, opts.URL)
	if err != nil {
		g.logger.Warn(ctx, err, "manifest unavailable, using defaults", "url", opts.URL)
		return nil, false
	}

	return m, true
}

func (g *Generator) generatePlatform(ctx context.Context, name string, cfg *manifest.AppConfig, opts Options) PlatformResult {
	platform, err := registry.ParsePlatform(name)
	if err != nil {
		g.logger.Warn(ctx, err, "skipping platform", "platform", name)
		return PlatformResult{Platform: name, Status: StatusSkipped, Err: err}
	}

	bundle, err := registry.TemplatesFor(platform)
	if err != nil {
		return PlatformResult{Platform: name, Status: StatusFailed, Err: err}
	}

	project, err := renderer.Render(bundle, cfg)
	if err != nil {
		g.logger.Error(ctx, err, "rendering failed", "platform", name)
		return PlatformResult{Platform: name, Status: StatusFailed, Err: err}
	}

	emitResult := g.emitter.Emit(ctx, project, opts.Output)

	if !opts.SkipIcons {
		// best-effort; Apply never returns icon availability problems
		if err := g.icons.Apply(ctx, cfg, platform, emitResult.Root); err != nil {
			g.logger.Warn(ctx, err, "icon processing failed", "platform", name)
		}
	}

	result := PlatformResult{
		Platform:     name,
		FilesWritten: emitResult.Written(),
		Hint:         buildHints[platform],
	}

	switch {
	case emitResult.OK():
		result.Status = StatusSuccess
		g.logger.Info(ctx, "platform generated", "platform", name, "dir", emitResult.Root, "files", result.FilesWritten)
	case emitResult.Written() > 0:
		result.Status = StatusPartial
		collector := errors.NewErrorCollector()
		for _, f := range emitResult.Failed() {
			collector.Add(f.Err)
		}
		result.Err = collector.Summary()
	default:
		result.Status = StatusFailed
		collector := errors.NewErrorCollector()
		for _, f := range emitResult.Failed() {
			collector.Add(f.Err)
		}
		result.Err = collector.Summary()
	}

	return result
}
