// Package engine flattens requests into the string parameters the raster
// engine consumes. Every vocabulary value is emitted as its tag.
package engine

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	geotrellis "github.com/flywave/go-geotrellis"
)

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "nan"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func joinFloats(fs []float64, sep string) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = formatFloat(f)
	}
	return strings.Join(parts, sep)
}

// ColorMapString renders a color map as "break:rrggbbaa" pairs joined by
// ";", taking one color of the ramp per break.
func ColorMapString(cm *geotrellis.ColorMap) (string, error) {
	colors, err := cm.Ramp.Colors(len(cm.Breaks))
	if err != nil {
		return "", err
	}
	parts := make([]string, len(cm.Breaks))
	for i, b := range cm.Breaks {
		parts[i] = formatFloat(b) + ":" + strings.TrimPrefix(colors[i], "#") + "ff"
	}
	return strings.Join(parts, ";"), nil
}

func sourceParams(p map[string]string, s geotrellis.Source) {
	if s == nil {
		return
	}
	p["source.type"] = s.GetType()
	p["source.uri"] = s.GetURI()
	switch src := s.(type) {
	case *geotrellis.GeoTiff:
		if src.Multiband {
			p["source.multiband"] = "true"
		}
		if src.TimeTag != "" {
			p["source.time_tag"] = src.TimeTag
		}
		if src.CRS != "" {
			p["source.crs"] = src.CRS
		}
	case *geotrellis.Catalog:
		p["source.layer"] = src.Layer
		p["source.zoom"] = strconv.Itoa(src.Zoom)
	}
}

// Params flattens r into dotted keys. Optional parts of the request that
// are unset produce no keys.
func Params(r *geotrellis.Request) (map[string]string, error) {
	p := map[string]string{
		"name":             r.Name,
		"layer_type":       r.LayerType.String(),
		"layout.tile_size": strconv.Itoa(r.Layout.TileSize),
	}
	sourceParams(p, r.Source)
	if r.Layout.Scheme != "" {
		p["layout.scheme"] = r.Layout.Scheme.String()
	}
	if r.Layout.CRS != "" {
		p["layout.crs"] = r.Layout.CRS
	}
	if r.CellType != "" {
		p["cell_type"] = r.CellType.String()
		if nd, ok := r.CellType.NoData(); ok {
			p["cell_type.nodata"] = formatFloat(nd)
		}
	}
	if r.Resample != "" {
		p["resample"] = r.Resample.String()
		if r.Resample.Aggregate() {
			p["resample.aggregate"] = "true"
		}
	}
	if idx := r.Index; idx != nil {
		p["index.method"] = idx.Method.String()
		if idx.TimeUnit != "" && r.LayerType.Temporal() {
			p["index.time_unit"] = idx.TimeUnit.String()
		}
		if res := idx.Resolution; res != nil && idx.Method == geotrellis.Hilbert {
			p["index.resolution.x"] = strconv.Itoa(res.X)
			p["index.resolution.y"] = strconv.Itoa(res.Y)
			if r.LayerType.Temporal() {
				p["index.resolution.temporal"] = strconv.Itoa(res.Temporal)
			}
		}
	}
	if f := r.Focal; f != nil {
		p["focal.operation"] = f.Operation.String()
		if f.Neighborhood != "" {
			p["focal.neighborhood"] = f.Neighborhood.String()
		}
		for i, v := range f.Params {
			p["focal.param"+strconv.Itoa(i+1)] = formatFloat(v)
		}
	}
	if cm := r.ColorMap; cm != nil {
		p["color_map.ramp"] = cm.Ramp.String()
		p["color_map.strategy"] = cm.Strategy.String()
		p["color_map.breaks"] = joinFloats(cm.Breaks, ",")
		colors, err := ColorMapString(cm)
		if err != nil {
			return nil, err
		}
		p["color_map.colors"] = colors
	}
	for _, k := range r.Properties.Keys() {
		if v, ok := r.Properties.Format(k); ok {
			p["property."+k] = v
		}
	}
	return p, nil
}

// Encode renders parameters as a query string sorted by key.
func Encode(params map[string]string) string {
	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, v)
	}
	return values.Encode()
}

// WithoutEmpty drops keys whose value is empty.
func WithoutEmpty(params map[string]string) map[string]string {
	result := make(map[string]string, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		result[k] = v
	}
	return result
}
