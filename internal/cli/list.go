package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charliek/sigtab/internal/domain"
	"github.com/charliek/sigtab/internal/signals"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// List command flags
var listJSON bool

var listHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [NAME...]",
	Short: "Show the signal table",
	Long: `Show every signal name with the symbol it resolves to and the sources
that define it. Names may be given with or without the SIG prefix to show
only those signals.

Examples:
  sigtab list              # Aligned table
  sigtab list --json       # JSON array
  sigtab list HUP SIGINT   # Selected signals`,
	Args: cobra.ArbitraryArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	reg := buildRegistry()
	entries, err := selectEntries(reg, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if listJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encoding signals: %w", err)
		}
		return nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSYMBOL\tSOURCES")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Short, e.Symbol, strings.Join(e.Origins, ","))
	}
	w.Flush()

	header, rows, _ := strings.Cut(buf.String(), "\n")
	if isTerminal(out) {
		header = listHeaderStyle.Render(header)
	}
	fmt.Fprintln(out, header)
	fmt.Fprint(out, rows)
	fmt.Fprintf(out, "\n%s\n", summary(entries, len(cfg.Sources)))
	return nil
}

// selectEntries returns the named entries in argument order, or the whole
// sorted table when no names are given
func selectEntries(reg *signals.Registry, names []string) ([]domain.Entry, error) {
	if len(names) == 0 {
		return reg.Sorted(), nil
	}
	entries := make([]domain.Entry, 0, len(names))
	for _, name := range names {
		e, ok := reg.Lookup(signals.ShortName(name))
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSignal, name)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// summary describes the table size
func summary(entries []domain.Entry, sources int) string {
	return fmt.Sprintf("%d signals from %d sources", len(entries), sources)
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
