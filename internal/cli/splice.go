package cli

import (
	"github.com/charliek/sigtab/internal/render"
	"github.com/spf13/cobra"
)

// Splice command flags
var (
	spliceTemplate string
	spliceOutput   string
	spliceMarker   string
)

// spliceCmd represents the splice command
var spliceCmd = &cobra.Command{
	Use:   "splice",
	Short: "Insert the signal table into a C template",
	Long: `Replace the marker line of a C template with the guarded signal table.

The marker must appear on exactly one line. The signal count is not
written. Flags override the splice section of the config file.

Examples:
  sigtab splice -t signal_tmpl.c              # Print to stdout
  sigtab splice -t signal_tmpl.c -o signal.c  # Replace signal.c
  sigtab splice -t x.c --marker '/* @signals@ */'`,
	Args: cobra.NoArgs,
	RunE: runSplice,
}

func init() {
	spliceCmd.Flags().StringVarP(&spliceTemplate, "template", "t", "", "C template containing the marker line")
	spliceCmd.Flags().StringVarP(&spliceOutput, "output", "o", "", `Output file, "-" for stdout (default "-")`)
	spliceCmd.Flags().StringVar(&spliceMarker, "marker", "", `Marker line to replace (default "#define GEN_SIGNO_DECL")`)
}

func runSplice(cmd *cobra.Command, args []string) error {
	tmpl := firstNonEmpty(spliceTemplate, cfg.Splice.Template)
	out := firstNonEmpty(spliceOutput, cfg.Splice.Output)
	marker := firstNonEmpty(spliceMarker, cfg.Splice.Marker)

	reg := buildRegistry()
	splicer := render.NewSplicer(render.New(cfg.RenderOptions()), marker, logger)
	return splicer.SpliceFile(tmpl, out, cmd.OutOrStdout(), reg.Sorted())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
