package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/overlaykit/reticle/internal/deps"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Check for optional external tools",
	Long: `Check which optional external tools are installed.

Reticle runs without any of them, but file/color pickers, desktop
notifications, and monitor detection degrade when they are missing.`,
	Run: func(cmd *cobra.Command, args []string) {
		results := deps.CheckAll()

		green := lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
		gray := lipgloss.NewStyle().Foreground(lipgloss.Color("#9A9EA0"))
		bold := lipgloss.NewStyle().Bold(true)

		if len(results) == 0 {
			fmt.Println("No external tools are needed on this platform.")
			return
		}

		fmt.Println()
		fmt.Println(bold.Render("Optional tools:"))
		fmt.Println()

		for _, r := range results {
			var status string
			if r.Available {
				status = green.Render("✓")
			} else {
				status = gray.Render("○")
			}
			fmt.Printf("  %s %s\n", status, bold.Render(r.Dependency.Name))
			fmt.Printf("    %s\n", gray.Render(r.Dependency.Description))
			if r.Available {
				fmt.Printf("    Path: %s\n", r.Path)
			} else {
				fmt.Printf("    %s\n", gray.Render("Missing: "+r.Dependency.Degraded))
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(depsCmd)
}
