package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	geotrellis "github.com/flywave/go-geotrellis"
)

func parse(t *testing.T, doc string) *geotrellis.Request {
	t.Helper()
	r, err := geotrellis.ParseRequest(strings.NewReader(doc))
	require.NoError(t, err)
	require.NoError(t, r.Validate())
	return r
}

func TestParams(t *testing.T) {
	r := parse(t, `
name: elevation
layer_type: spacetime
source: {type: geotiff, uri: "s3://bucket/dem.tif", multiband: true}
layout: {scheme: float}
cell_type: int32
resample: NearestNeighbor
index:
  method: hilbert
  time_unit: days
  resolution: {x: 20, y: 20, temporal: 22}
focal: {operation: Sum, neighborhood: Square, param1: 1}
properties: {num-partitions: 8, bands: [red, nir]}
`)
	p, err := Params(r)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"name":                      "elevation",
		"layer_type":                "spacetime",
		"source.type":               "geotiff",
		"source.uri":                "s3://bucket/dem.tif",
		"source.multiband":          "true",
		"layout.scheme":             "float",
		"layout.tile_size":          "256",
		"cell_type":                 "int32",
		"cell_type.nodata":          "-2147483648",
		"resample":                  "NearestNeighbor",
		"index.method":              "hilbert",
		"index.time_unit":           "days",
		"index.resolution.x":        "20",
		"index.resolution.y":        "20",
		"index.resolution.temporal": "22",
		"focal.operation":           "Sum",
		"focal.neighborhood":        "Square",
		"focal.param1":              "1",
		"property.bands":            "red,nir",
		"property.num-partitions":   "8",
	}, p)
}

func TestParamsSpatialDropsTemporal(t *testing.T) {
	r := parse(t, `
name: ndvi
layer_type: spatial
source: {type: catalog, uri: "file:///cat", layer: ndvi, zoom: 9}
cell_type: float32raw
index:
  method: hilbert
  time_unit: days
  resolution: {x: 30, y: 30, temporal: 30}
`)
	p, err := Params(r)
	require.NoError(t, err)
	assert.Equal(t, "ndvi", p["source.layer"])
	assert.Equal(t, "9", p["source.zoom"])
	assert.Equal(t, "30", p["index.resolution.x"])
	assert.NotContains(t, p, "index.resolution.temporal")
	assert.NotContains(t, p, "index.time_unit")
	assert.NotContains(t, p, "cell_type.nodata")
}

func TestParamsResampleAggregate(t *testing.T) {
	tests := []struct {
		method string
		want   bool
	}{
		{"Average", true},
		{"Median", true},
		{"Min", true},
		{"Bilinear", false},
		{"Lanczos", false},
	}
	for _, tc := range tests {
		t.Run(tc.method, func(t *testing.T) {
			r := parse(t, "name: t\nlayer_type: spatial\nsource: {uri: /a.tif}\nresample: "+tc.method+"\n")
			p, err := Params(r)
			require.NoError(t, err)
			_, ok := p["resample.aggregate"]
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestParamsFloatNoData(t *testing.T) {
	r := parse(t, `
name: t
layer_type: spatial
source: {uri: /a.tif}
cell_type: float64
`)
	p, err := Params(r)
	require.NoError(t, err)
	assert.Equal(t, "nan", p["cell_type.nodata"])
}

func TestColorMapString(t *testing.T) {
	cm := &geotrellis.ColorMap{
		Ramp:     geotrellis.RampHot,
		Strategy: geotrellis.LessThanOrEqualTo,
		Breaks:   []float64{-1.5, 250},
	}
	s, err := ColorMapString(cm)
	require.NoError(t, err)
	assert.Equal(t, "-1.5:000000ff;250:ffffffff", s)

	r := parse(t, `
name: t
layer_type: spatial
source: {uri: /a.tif}
color_map: {ramp: Viridis, breaks: [1, 2, 3, 4, 5]}
`)
	p, err := Params(r)
	require.NoError(t, err)
	assert.Equal(t, "Viridis", p["color_map.ramp"])
	assert.Equal(t, "LessThanOrEqualTo", p["color_map.strategy"])
	assert.Equal(t, "1,2,3,4,5", p["color_map.breaks"])
	assert.Equal(t, "1:440154ff;2:3b528bff;3:21908cff;4:5dc963ff;5:fde725ff", p["color_map.colors"])
}

func TestColorMapStringUnknownRamp(t *testing.T) {
	_, err := ColorMapString(&geotrellis.ColorMap{Ramp: "Rainbow", Breaks: []float64{1}})
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	s := Encode(map[string]string{
		"resample":   "CubicConvolution",
		"layer_type": "spatial",
		"source.uri": "s3://b/k.tif",
	})
	assert.Equal(t, "layer_type=spatial&resample=CubicConvolution&source.uri=s3%3A%2F%2Fb%2Fk.tif", s)
}

func TestWithoutEmpty(t *testing.T) {
	assert.Equal(t, map[string]string{"a": "1"}, WithoutEmpty(map[string]string{"a": "1", "b": ""}))
}
