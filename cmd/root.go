// Package cmd provides the command-line interface for pwa2native with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	Values are resolved with clear precedence:
//	1. Command-line flags (--output, --platforms, etc.) - highest priority
//	2. PWA2NATIVE_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (PWA2NATIVE_OUTPUT, etc.)
//	4. Configuration files (.pwa2native.yml) - lowest priority
//
// Environment Variables:
//
//	PWA2NATIVE_CONFIG_FILE: Path to custom configuration file
//	PWA2NATIVE_OUTPUT: Override output directory
//	PWA2NATIVE_PLATFORMS: Override target platforms
//	PWA2NATIVE_SKIP_ICONS: Disable icon downloading
//	And the rest of the config keys following the PWA2NATIVE_<OPTION> pattern
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ismailco/pwa2native/internal/config"
	"github.com/ismailco/pwa2native/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pwa2native",
	Short: "Package Progressive Web Apps as native application projects",
	Long: `pwa2native converts a Progressive Web App into native application
projects by fetching its web app manifest and generating platform-specific
wrapper projects ready to build with each platform's own toolchain.

Supported Targets:
  • Android (Trusted Web Activity wrapper)
  • iOS (WKWebView wrapper, Xcode project)
  • macOS (WebKit wrapper with native menus)
  • Windows (WebView2 wrapper, .NET project)

Quick Start:
  pwa2native generate https://app.example.com          Package for all platforms
  pwa2native generate https://app.example.com -p macos Package for one platform
  pwa2native platforms                                 List supported platforms
  pwa2native init                                      Write a starter config file

Command Aliases (for faster typing):
  generate (g, package), platforms (p), version (v)

Documentation: https://github.com/ismailco/PWA2Native`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .pwa2native.yml, can also use PWA2NATIVE_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		"log_level":  "log-level",
		"log_format": "log-format",
	})
}

// bindFlags binds viper config keys to their cobra flags, so flag values
// take precedence over environment variables and the config file.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		if f := flags.Lookup(flag); f != nil {
			_ = viper.BindPFlag(key, f)
		}
	}
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. PWA2NATIVE_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .pwa2native.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("PWA2NATIVE_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pwa2native")
	}

	config.SetDefaults()

	// Enable automatic environment variable binding with PWA2NATIVE_ prefix
	// Examples: PWA2NATIVE_OUTPUT, PWA2NATIVE_SKIP_ICONS
	viper.SetEnvPrefix("PWA2NATIVE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing or unreadable config file is not fatal; defaults apply.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the run logger from the resolved configuration.
func newLogger(cfg *config.Config) logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})
}
