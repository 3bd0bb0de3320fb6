package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_MatchesGolden(t *testing.T) {
	skipShort(t)
	binary := buildBinary(t)

	// An empty directory and environment: nothing is read
	stdout, stderr, code := runSigtab(t, binary, t.TempDir())
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stderr)
	assert.Equal(t, readGolden(t, "signals.txt"), stdout)

	second, _, _ := runSigtab(t, binary, t.TempDir())
	assert.Equal(t, stdout, second)
}

func TestGenerate_UnknownFlag(t *testing.T) {
	skipShort(t)
	binary := buildBinary(t)

	stdout, stderr, code := runSigtab(t, binary, t.TempDir(), "--bogus")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "Error: "), stderr)
}

func TestSplice_ProducesSource(t *testing.T) {
	skipShort(t)
	binary := buildBinary(t)

	dir := t.TempDir()
	tmpl := filepath.Join(projectRoot(t), "testdata", "templates", "signal_tmpl.c")
	out := filepath.Join(dir, "signal.c")

	_, stderr, code := runSigtab(t, binary, dir, "splice", "-t", tmpl, "-o", out)
	require.Equal(t, 0, code, stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	golden := readGolden(t, "signals.txt")
	table := golden[:strings.LastIndex(strings.TrimSuffix(golden, "\n"), "\n")+1]
	assert.Contains(t, string(data), "    // set signal constants\n"+table+"\n    return 1;\n}\n")
}
