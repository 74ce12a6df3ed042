package builder

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	geotrellis "github.com/flywave/go-geotrellis"
)

func TestCacheReusesUnchangedFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ndvi.yaml", spatialYAML)
	c := NewCache()

	first, err := c.Request(path)
	require.NoError(t, err)
	second, err := c.Request(path)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestCacheReloadsChangedFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ndvi.yaml", spatialYAML)
	c := NewCache()

	first, err := c.Request(path)
	require.NoError(t, err)
	assert.Equal(t, geotrellis.ResampleAverage, first.Resample)

	changed := spatialYAML + "cell_type: uint16\n"
	require.NoError(t, os.WriteFile(path, []byte(changed), 0644))
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	second, err := c.Request(path)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, geotrellis.Uint16, second.CellType)
	assert.Equal(t, 1, c.Len())
}

func TestCacheRemovedFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ndvi.yaml", spatialYAML)
	c := NewCache()

	_, err := c.Request(path)
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	_, err = c.Request(path)
	assert.Error(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestCacheInvalidFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "name: bad\nlayer_type: spatial\n")
	c := NewCache()

	_, err := c.Request(path)
	assert.Error(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestCacheClearAll(t *testing.T) {
	dir := t.TempDir()
	c := NewCache()
	_, err := c.Request(writeFile(t, dir, "a.yaml", spatialYAML))
	require.NoError(t, err)
	_, err = c.Request(writeFile(t, dir, "b.toml", spacetimeTOML))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	c.ClearAll()
	assert.Equal(t, 0, c.Len())
}

func TestCacheDistinctFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "r269454.yaml", "name: first\nlayer_type: spatial\nsource: {uri: /a.tif}\n")
	second := writeFile(t, dir, "r2439080.yaml", "name: second\nlayer_type: spatial\nsource: {uri: /b.tif}\n")
	c := NewCache()

	r, err := c.Request(first)
	require.NoError(t, err)
	assert.Equal(t, "first", r.Name)
	r, err = c.Request(second)
	require.NoError(t, err)
	assert.Equal(t, "second", r.Name)
	assert.Equal(t, 2, c.Len())
}

func TestCacheReloadsWhenLoadStartedBeforeChange(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ndvi.yaml", spatialYAML)
	c := NewCache()
	c.now = func() time.Time { return time.Unix(0, 0) }

	first, err := c.Request(path)
	require.NoError(t, err)
	second, err := c.Request(path)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}
