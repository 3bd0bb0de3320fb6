// Package render formats the signal table as preprocessor-guarded C
// registration lines.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charliek/sigtab/internal/constants"
	"github.com/charliek/sigtab/internal/domain"
)

// Options controls the shape of each registration line
type Options struct {
	// RegisterCall is the macro or function invoked per signal
	RegisterCall string
	// Handle is the first argument of the call
	Handle string
	// Indent prefixes the registration line
	Indent string
}

// DefaultOptions returns the options that produce lstate_num2tbl lines
func DefaultOptions() Options {
	return Options{
		RegisterCall: constants.DefaultRegisterCall,
		Handle:       constants.DefaultHandle,
		Indent:       constants.DefaultIndent,
	}
}

// Renderer writes signal tables
type Renderer struct {
	opts Options
}

// New creates a renderer. Empty option fields take their defaults.
func New(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.RegisterCall == "" {
		opts.RegisterCall = def.RegisterCall
	}
	if opts.Handle == "" {
		opts.Handle = def.Handle
	}
	return &Renderer{opts: opts}
}

// Line returns the registration line for e, without a newline
func (r *Renderer) Line(e domain.Entry) string {
	return fmt.Sprintf("%s%s( %s, \"%s\", %s );", r.opts.Indent, r.opts.RegisterCall, r.opts.Handle, e.Short, e.Symbol)
}

// WriteTable writes one #ifdef/line/#endif triple per entry, in the
// order given.
func (r *Renderer) WriteTable(w io.Writer, entries []domain.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		fmt.Fprintf(bw, "#ifdef %s\n", e.Symbol)
		fmt.Fprintln(bw, r.Line(e))
		fmt.Fprintln(bw, "#endif")
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing signal table: %w", err)
	}
	return nil
}

// Generate writes the table for entries followed by a line holding the
// entry count.
func (r *Renderer) Generate(w io.Writer, entries []domain.Entry) error {
	if err := r.WriteTable(w, entries); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%d\n", len(entries)); err != nil {
		return fmt.Errorf("writing signal count: %w", err)
	}
	return nil
}
