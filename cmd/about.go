package cmd

import (
	"fmt"

	"github.com/ismailco/pwa2native/internal/version"
	"github.com/spf13/cobra"
)

const logo = `
██████╗ ██╗    ██╗ █████╗ ██████╗ ███╗   ██╗ █████╗ ████████╗██╗██╗   ██╗███████╗
██╔══██╗██║    ██║██╔══██╗╚════██╗████╗  ██║██╔══██╗╚══██╔══╝██║██║   ██║██╔════╝
██████╔╝██║ █╗ ██║███████║ █████╔╝██╔██╗ ██║███████║   ██║   ██║██║   ██║█████╗
██╔═══╝ ██║███╗██║██╔══██║██╔═══╝ ██║╚██╗██║██╔══██║   ██║   ██║╚██╗ ██╔╝██╔══╝
██║     ╚███╔███╔╝██║  ██║███████╗██║ ╚████║██║  ██║   ██║   ██║ ╚████╔╝ ███████╗
╚═╝      ╚═╝╚══╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═══╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═══╝  ╚══════╝
`

var aboutCmd = &cobra.Command{
	Use:     "about",
	Aliases: []string{"a"},
	Short:   "Show detailed information about pwa2native",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(logo + "\n")
		fmt.Printf("%62s\n\n", version.GetShortVersion())
		fmt.Print(`Convert Progressive Web Apps to Native Applications
=============================================================

GitHub:  https://github.com/ismailco/PWA2Native
License: MIT

Features:
- Android support using TWA (Trusted Web Activities)
- iOS and macOS support using WebKit
- Windows support using WebView2
- Automatic manifest fetching and parsing
- Platform-specific build configuration generation
`)
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
