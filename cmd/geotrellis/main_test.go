package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	geotrellis "github.com/flywave/go-geotrellis"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListEnumerations(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "CellType\t"))
}

func TestListMembers(t *testing.T) {
	out, err := run(t, "list", "IndexingMethod")
	require.NoError(t, err)
	assert.Equal(t, "ZORDER\tzorder\nHILBERT\thilbert\nROWMAJOR\trowmajor\n", out)

	_, err = run(t, "list", "Projection")
	assert.Error(t, err)
}

func TestTagAndName(t *testing.T) {
	out, err := run(t, "tag", "ResampleMethod", "NEAREST_NEIGHBOR")
	require.NoError(t, err)
	assert.Equal(t, "NearestNeighbor\n", out)

	out, err = run(t, "name", "ColorRamp", "CoolWarm")
	require.NoError(t, err)
	assert.Equal(t, "COOLWARM\n", out)

	_, err = run(t, "tag", "ResampleMethod", "doesNotExist")
	assert.True(t, errors.Is(err, geotrellis.ErrUnknownMember))

	_, err = run(t, "name", "ResampleMethod", "nearestneighbor")
	assert.True(t, errors.Is(err, geotrellis.ErrUnknownTag))
}

func TestDoc(t *testing.T) {
	out, err := run(t, "doc", "IndexingMethod", "ROWMAJOR")
	require.NoError(t, err)
	assert.Equal(t, "ROWMAJOR (rowmajor): Row-major order; spatial keys only. Fastest lookup, but without locality guarantees.\n", out)

	_, err = run(t, "doc", "IndexingMethod", "rowmajor")
	assert.True(t, errors.Is(err, geotrellis.ErrUnknownMember))
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
name: ndvi
layer_type: spatial
source: {uri: /data/ndvi.tif}
`), 0644))

	out, err := run(t, "validate", "--dump", good)
	require.NoError(t, err)
	assert.Contains(t, out, "layer_type=spatial")
	assert.Contains(t, out, "ndvi: ok")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
name: st
layer_type: spacetime
source: {uri: /data/st.tif}
index: {method: rowmajor}
`), 0644))
	_, err = run(t, "validate", bad)
	assert.True(t, errors.Is(err, geotrellis.ErrInapplicableCombination))
}

func TestRamp(t *testing.T) {
	out, err := run(t, "ramp", "Hot", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, "#000000\n#ffffff\n", out)

	_, err = run(t, "ramp", "Rainbow")
	assert.True(t, errors.Is(err, geotrellis.ErrUnknownTag))
}

func TestRampConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "geotrellis.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[ramp]\ncolors = 3\n\n[log]\nlevel = \"warn\"\n"), 0644))

	out, err := run(t, "--config", cfg, "ramp", "Viridis")
	require.NoError(t, err)
	assert.Equal(t, "#440154\n#21908c\n#fde725\n", out)
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "list")
	assert.Error(t, err)
}
