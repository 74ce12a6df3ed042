package geotrellis

import "fmt"

const (
	SourceGeoTiff = "geotiff"
	SourceCatalog = "catalog"
)

// Source is where the engine reads the rasters of a layer from.
type Source interface {
	GetType() string
	GetURI() string
}

// GeoTiff reads one or more GeoTIFFs. TimeTag names the TIFF tag holding
// the acquisition time of spacetime layers.
type GeoTiff struct {
	URI       string
	Multiband bool
	TimeTag   string
	CRS       string
}

func (g *GeoTiff) GetType() string { return SourceGeoTiff }
func (g *GeoTiff) GetURI() string  { return g.URI }

// Catalog reads a layer previously written to a catalog.
type Catalog struct {
	URI   string
	Layer string
	Zoom  int
}

func (c *Catalog) GetType() string { return SourceCatalog }
func (c *Catalog) GetURI() string  { return c.URI }

func newSource(params map[string]interface{}) (Source, error) {
	if len(params) == 0 {
		return nil, nil
	}
	d := make(map[string]string, len(params))
	for k, v := range params {
		if s, ok := v.(string); ok {
			d[k] = s
		} else {
			d[k] = fmt.Sprintf("%v", v)
		}
	}

	switch d["type"] {
	case SourceGeoTiff, "":
		return &GeoTiff{
			URI:       d["uri"],
			Multiband: d["multiband"] == "true",
			TimeTag:   d["time_tag"],
			CRS:       d["crs"],
		}, nil
	case SourceCatalog:
		zoom := 0
		if z, ok := params["zoom"]; ok {
			if _, err := fmt.Sscan(fmt.Sprintf("%v", z), &zoom); err != nil {
				return nil, fmt.Errorf("%w: catalog zoom %v: %v", ErrInvalidRequest, z, err)
			}
		}
		return &Catalog{
			URI:   d["uri"],
			Layer: d["layer"],
			Zoom:  zoom,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown source type %q", ErrInvalidRequest, d["type"])
	}
}

func validateSource(s Source) error {
	if s == nil {
		return fmt.Errorf("%w: source is required", ErrInvalidRequest)
	}
	if s.GetURI() == "" {
		return fmt.Errorf("%w: %s source needs a uri", ErrInvalidRequest, s.GetType())
	}
	if c, ok := s.(*Catalog); ok {
		if c.Layer == "" {
			return fmt.Errorf("%w: catalog source needs a layer", ErrInvalidRequest)
		}
		if c.Zoom < 0 {
			return fmt.Errorf("%w: negative catalog zoom %d", ErrInvalidRequest, c.Zoom)
		}
	}
	return nil
}
