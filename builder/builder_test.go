package builder

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	geotrellis "github.com/flywave/go-geotrellis"
)

type recordingEngine struct {
	names  []string
	params []map[string]string
	err    error
}

func (e *recordingEngine) Submit(r *geotrellis.Request, params map[string]string) error {
	if e.err != nil {
		return e.err
	}
	e.names = append(e.names, r.Name)
	e.params = append(e.params, params)
	return nil
}

const spatialYAML = `
name: ndvi
layer_type: spatial
source: {uri: /data/ndvi.tif}
resample: Average
index: {method: rowmajor}
`

const spacetimeTOML = `
name = "rain"
layer_type = "spacetime"
[source]
uri = "/data/rain.tif"
[index]
method = "zorder"
time_unit = "hours"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	e := &recordingEngine{}
	var dump bytes.Buffer

	b := New(e)
	b.AddRequest(writeFile(t, dir, "ndvi.yaml", spatialYAML))
	b.AddRequest(writeFile(t, dir, "rain.toml", spacetimeTOML))
	b.SetDumpParamsDest(&dump)
	require.NoError(t, b.Build())

	assert.Equal(t, []string{"ndvi", "rain"}, e.names)
	assert.Equal(t, "rowmajor", e.params[0]["index.method"])
	assert.Equal(t, "Average", e.params[0]["resample"])
	assert.Equal(t, "true", e.params[0]["resample.aggregate"])
	assert.Equal(t, "hours", e.params[1]["index.time_unit"])
	assert.Contains(t, dump.String(), "index.method=rowmajor")
	assert.Contains(t, dump.String(), "name=rain")
}

func TestBuildValidatesBeforeSubmitting(t *testing.T) {
	dir := t.TempDir()
	e := &recordingEngine{}

	b := New(e)
	b.AddRequest(writeFile(t, dir, "ndvi.yaml", spatialYAML))
	b.AddRequest(writeFile(t, dir, "bad.yaml", `
name: bad
layer_type: spacetime
source: {uri: /data/bad.tif}
index: {method: rowmajor}
`))
	err := b.Build()
	assert.True(t, errors.Is(err, geotrellis.ErrInapplicableCombination), "%v", err)
	assert.Contains(t, err.Error(), "bad.yaml")
	assert.Empty(t, e.names)
}

func TestBuildMissingFiles(t *testing.T) {
	b := New(&recordingEngine{})
	b.AddRequest("/does/not/exist.yaml")
	err := b.Build()

	var missing *FilesMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"/does/not/exist.yaml"}, missing.Files)
}

func TestBuildEngineError(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("engine down")

	b := New(&recordingEngine{err: boom})
	b.AddRequest(writeFile(t, dir, "ndvi.yaml", spatialYAML))
	assert.True(t, errors.Is(b.Build(), boom))
}

func TestBuildWithCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ndvi.yaml", spatialYAML)
	c := NewCache()
	e := &recordingEngine{}

	for i := 0; i < 2; i++ {
		b := New(e)
		b.SetCache(c)
		b.AddRequest(path)
		require.NoError(t, b.Build())
	}
	assert.Equal(t, []string{"ndvi", "ndvi"}, e.names)
	assert.Equal(t, 1, c.Len())
}

func TestBuildFromString(t *testing.T) {
	e := &recordingEngine{}
	require.NoError(t, BuildFromString(e, spatialYAML))
	assert.Equal(t, []string{"ndvi"}, e.names)

	err := BuildFromString(e, "name: x\nlayer_type: spatial\nresample: Bicubic\n")
	assert.True(t, errors.Is(err, geotrellis.ErrUnknownTag))
}

func TestLoadRequestByExtension(t *testing.T) {
	dir := t.TempDir()

	r, err := LoadRequest(writeFile(t, dir, "rain.TOML", spacetimeTOML))
	require.NoError(t, err)
	assert.Equal(t, geotrellis.Hours, r.Index.TimeUnit)

	// yaml parser rejects toml syntax
	_, err = LoadRequest(writeFile(t, dir, "rain.yml", spacetimeTOML))
	assert.Error(t, err)
}
