package cmd

import (
	"fmt"

	"github.com/ismailco/pwa2native/internal/registry"
	"github.com/spf13/cobra"
)

var platformsCmd = &cobra.Command{
	Use:     "platforms",
	Aliases: []string{"p"},
	Short:   "List supported target platforms",
	Long: `List the platforms pwa2native can generate wrapper projects for,
optionally with the project files each platform produces.

Examples:
  pwa2native platforms            # List platform names
  pwa2native platforms --files    # Include the generated files per platform`,
	RunE: runPlatforms,
}

var platformsShowFiles bool

func init() {
	rootCmd.AddCommand(platformsCmd)

	platformsCmd.Flags().BoolVar(&platformsShowFiles, "files", false, "List the files generated for each platform")
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	for _, platform := range registry.AllPlatforms() {
		bundle, err := registry.TemplatesFor(platform)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%d files)\n", platform, len(bundle.Files))
		if !platformsShowFiles {
			continue
		}
		for _, file := range bundle.Files {
			marker := " "
			if file.Executable {
				marker = "*"
			}
			fmt.Printf("  %s %s\n", marker, file.RelPath)
		}
	}

	if platformsShowFiles {
		fmt.Println("\n* marks files written with the executable bit set")
	}
	return nil
}
