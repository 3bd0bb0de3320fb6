package render

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charliek/sigtab/internal/constants"
	"github.com/charliek/sigtab/internal/domain"
)

// Splicer replaces a marker line in a C template with a rendered table
type Splicer struct {
	renderer *Renderer
	marker   string
	logger   *slog.Logger
}

// NewSplicer creates a splicer. An empty marker selects
// constants.DefaultMarker; a nil logger discards output.
func NewSplicer(r *Renderer, marker string, logger *slog.Logger) *Splicer {
	marker = strings.TrimSpace(marker)
	if marker == "" {
		marker = constants.DefaultMarker
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Splicer{renderer: r, marker: marker, logger: logger}
}

// Splice copies tmpl to w with the marker line replaced by the table for
// entries. Exactly one line, compared after trimming surrounding
// whitespace, must equal the marker. Nothing is written on error.
func (s *Splicer) Splice(w io.Writer, tmpl []byte, entries []domain.Entry) error {
	lines := bytes.SplitAfter(tmpl, []byte("\n"))

	at := -1
	for i, line := range lines {
		if string(bytes.TrimSpace(line)) != s.marker {
			continue
		}
		if at >= 0 {
			return fmt.Errorf("%w: %q on lines %d and %d", domain.ErrDuplicateMarker, s.marker, at+1, i+1)
		}
		at = i
	}
	if at < 0 {
		return fmt.Errorf("%w: %q", domain.ErrMarkerNotFound, s.marker)
	}

	var buf bytes.Buffer
	for _, line := range lines[:at] {
		buf.Write(line)
	}
	var table bytes.Buffer
	if err := s.renderer.WriteTable(&table, entries); err != nil {
		return err
	}
	// a marker on an unterminated last line leaves the output unterminated
	if !bytes.HasSuffix(lines[at], []byte("\n")) {
		table.Truncate(len(bytes.TrimSuffix(table.Bytes(), []byte("\n"))))
	}
	buf.Write(table.Bytes())
	for _, line := range lines[at+1:] {
		buf.Write(line)
	}

	s.logger.Debug("spliced signal table", "marker", s.marker, "line", at+1, "entries", len(entries))

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing spliced output: %w", err)
	}
	return nil
}

// SpliceFile reads the template at tmplPath and writes the spliced result
// to outPath, or to stdout when outPath is "-". File output goes through a
// temporary file in the same directory that is renamed into place.
func (s *Splicer) SpliceFile(tmplPath, outPath string, stdout io.Writer, entries []domain.Entry) error {
	if tmplPath == "" {
		return domain.ErrNoTemplate
	}
	tmpl, err := os.ReadFile(tmplPath)
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}

	var buf bytes.Buffer
	if err := s.Splice(&buf, tmpl, entries); err != nil {
		return fmt.Errorf("%s: %w", tmplPath, err)
	}

	if outPath == "" || outPath == constants.StdioPath {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("writing spliced output: %w", err)
		}
		return nil
	}

	if err := writeFileAtomic(outPath, buf.Bytes()); err != nil {
		return err
	}
	s.logger.Debug("wrote spliced file", "template", tmplPath, "output", outPath, "bytes", buf.Len())
	return nil
}

// writeFileAtomic replaces path with data via a temp file and rename.
// An existing file keeps its permission bits; new files get 0644.
func writeFileAtomic(path string, data []byte) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	tmpName := f.Name()
	defer os.Remove(tmpName)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing output file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("syncing output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("setting output permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}
	return nil
}
