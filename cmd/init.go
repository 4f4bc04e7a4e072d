package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/ismailco/pwa2native/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .pwa2native.yml configuration file",
	Long: `Create a .pwa2native.yml configuration file in the current directory,
pre-populated with the default values. Edit it to pin the options you
pass to every run instead of repeating flags.

Examples:
  pwa2native init            # Write .pwa2native.yml
  pwa2native init --force    # Overwrite an existing file`,
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}

// starterConfig mirrors config.Config with yaml tags and comments for the
// generated file.
type starterConfig struct {
	Name      string `yaml:"name"`
	Platforms string `yaml:"platforms"`
	Output    string `yaml:"output"`
	Timeout   string `yaml:"timeout"`
	SkipIcons bool   `yaml:"skip_icons"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func runInit(cmd *cobra.Command, args []string) error {
	const path = ".pwa2native.yml"

	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	defaults := config.DefaultConfig()
	starter := starterConfig{
		Platforms: defaults.Platforms,
		Output:    defaults.Output,
		Timeout:   defaults.Timeout.Round(time.Second).String(),
		SkipIcons: defaults.SkipIcons,
		LogLevel:  defaults.LogLevel,
		LogFormat: defaults.LogFormat,
	}

	data, err := yaml.Marshal(&starter)
	if err != nil {
		return fmt.Errorf("failed to marshal starter config: %w", err)
	}

	header := []byte("# pwa2native configuration\n# Values here are overridden by PWA2NATIVE_* environment variables and flags.\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("✅ Created %s\n", path)
	return nil
}
