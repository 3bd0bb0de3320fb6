package cli

import (
	"github.com/charliek/sigtab/internal/tui"
	"github.com/spf13/cobra"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the signal table interactively",
	Long: `Open a full-screen view of the signal table.

Keys:
  /       filter by name or symbol
  enter   keep the filter
  esc     clear the filter
  q       quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := buildRegistry()
		return tui.Run(reg.Sorted(), cfg.RenderOptions())
	},
}
