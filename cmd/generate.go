package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ismailco/pwa2native/internal/config"
	"github.com/ismailco/pwa2native/internal/generator"
	"github.com/ismailco/pwa2native/internal/registry"
	"github.com/ismailco/pwa2native/internal/watcher"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:     "generate <url>",
	Aliases: []string{"g", "package"},
	Short:   "Generate native wrapper projects for a PWA",
	Long: `Fetch the web app manifest of a Progressive Web App and generate
native wrapper projects for the requested platforms. Each project is
written under <output>/<platform>/ together with a build script for the
platform's own toolchain.

A platform that cannot be generated does not abort the run; the remaining
platforms are still produced and the failure is reported in the summary.
The command exits non-zero only when no platform succeeded completely.

Examples:
  pwa2native generate https://app.example.com
  pwa2native generate https://app.example.com --name "My App"
  pwa2native generate https://app.example.com --platforms android,macos
  pwa2native generate https://app.example.com --output ./build --skip-icons
  pwa2native generate https://app.example.com --manifest-file ./manifest.json --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var (
	generateManifestFile string
	generateWatch        bool
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("name", "n", "", "Application name (overrides the manifest)")
	generateCmd.Flags().StringP("platforms", "p", "all", "Platforms to build for (android,ios,macos,windows)")
	generateCmd.Flags().StringP("output", "o", "./dist", "Output directory")
	generateCmd.Flags().Duration("timeout", 10*time.Second, "Timeout for network requests")
	generateCmd.Flags().Bool("skip-icons", false, "Skip downloading and scaling manifest icons")
	generateCmd.Flags().StringVar(&generateManifestFile, "manifest-file", "", "Read the manifest from a local file instead of fetching it")
	generateCmd.Flags().BoolVar(&generateWatch, "watch", false, "Watch the manifest file and regenerate on change (requires --manifest-file)")
	bindFlags(generateCmd.Flags(), map[string]string{
		"name":       "name",
		"platforms":  "platforms",
		"output":     "output",
		"timeout":    "timeout",
		"skip_icons": "skip-icons",
	})
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if generateWatch && generateManifestFile == "" {
		return fmt.Errorf("--watch requires --manifest-file")
	}

	logger := newLogger(cfg)
	gen := generator.New(cfg.Timeout, logger)

	opts := generator.Options{
		URL:          args[0],
		Name:         viper.GetString("name"),
		Platforms:    registry.ExpandPlatforms(cfg.Platforms),
		Output:       cfg.Output,
		Timeout:      cfg.Timeout,
		SkipIcons:    cfg.SkipIcons,
		ManifestPath: generateManifestFile,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := generateOnce(ctx, gen, opts); err != nil {
		if !generateWatch {
			return err
		}
		// In watch mode a failed run is reported and watched for a fix.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	if !generateWatch {
		return nil
	}

	fmt.Printf("👀 Watching %s for changes (Ctrl+C to stop)...\n", generateManifestFile)
	w := watcher.New(generateManifestFile, watcher.DefaultDebounce, logger)
	return w.Watch(ctx, func(ctx context.Context) {
		fmt.Println("🔄 Manifest changed, regenerating...")
		if err := generateOnce(ctx, gen, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
}

// generateOnce runs a single generation pass and prints its summary.
// It returns an error when no requested platform fully succeeded.
func generateOnce(ctx context.Context, gen *generator.Generator, opts generator.Options) error {
	fmt.Printf("📦 Packaging %s...\n", opts.URL)

	result, err := gen.Generate(ctx, opts)
	if err != nil {
		return err
	}

	printSummary(result, opts.Output)

	if !result.Succeeded() {
		return fmt.Errorf("no platform was generated successfully")
	}
	return nil
}

func printSummary(result *generator.OverallResult, output string) {
	if !result.ManifestFetched {
		fmt.Println("⚠️  Manifest unavailable, generated from defaults")
	}

	fmt.Printf("\nApp: %s (%s)\n", result.Config.AppName, result.Config.BundleID())

	for _, p := range result.Platforms {
		switch p.Status {
		case generator.StatusSuccess:
			fmt.Printf("  ✅ %-8s %d files written\n", p.Platform, p.FilesWritten)
		case generator.StatusPartial:
			fmt.Printf("  ⚠️  %-8s %d files written, some failed: %v\n", p.Platform, p.FilesWritten, p.Err)
		case generator.StatusFailed:
			fmt.Printf("  ❌ %-8s failed: %v\n", p.Platform, p.Err)
		case generator.StatusSkipped:
			fmt.Printf("  ⏭️  %-8s skipped: %v\n", p.Platform, p.Err)
		}
	}

	fmt.Printf("\nOutput written to %s\n", output)

	for _, p := range result.Platforms {
		if p.Status == generator.StatusSuccess && p.Hint != "" {
			fmt.Printf("\nTo build for %s:\n  %s\n", p.Platform, p.Hint)
		}
	}
}
