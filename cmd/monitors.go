package cmd

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/overlaykit/reticle/internal/monitor"
)

var monitorsJsonOutput bool

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List available monitors",
	Long:  `List all available monitors with their resolution and position information.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		monitors, err := monitor.Detect().Monitors()
		if err != nil {
			return fmt.Errorf("failed to list monitors: %w", err)
		}

		if monitorsJsonOutput {
			data, err := sonic.MarshalIndent(monitors, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		green := lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
		gray := lipgloss.NewStyle().Foreground(lipgloss.Color("#9A9EA0"))
		bold := lipgloss.NewStyle().Bold(true)

		for i, m := range monitors {
			primaryMark := ""
			if m.Primary {
				primaryMark = " " + green.Render("(primary)")
			}
			fmt.Printf("%s %s: %dx%d at (%d,%d)%s\n",
				gray.Render(fmt.Sprintf("[%d]", i)),
				bold.Render(m.Name),
				m.Width, m.Height, m.X, m.Y, primaryMark)
		}

		return nil
	},
}

func init() {
	monitorsCmd.Flags().BoolVar(&monitorsJsonOutput, "json", false, "Output monitors as JSON")
}
