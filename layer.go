package geotrellis

// LayerType tells whether the keys of a layer carry a time component.
type LayerType string

const (
	// Spatial keys have a spatial attribute but no time value, like
	// SpatialKey or ProjectedExtent.
	Spatial LayerType = "spatial"
	// SpaceTime keys have both a spatial and a time attribute, like
	// SpaceTimeKey or TemporalProjectedExtent.
	SpaceTime LayerType = "spacetime"
)

var LayerTypes = newEnumeration("LayerType",
	"The type of the key within the tuples of a layer.",
	Member{"SPATIAL", string(Spatial), "Keys with a spatial attribute and no time value."},
	Member{"SPACETIME", string(SpaceTime), "Keys with a spatial and a time attribute."},
)

func ParseLayerType(tag string) (LayerType, error) {
	return parseTag[LayerType](LayerTypes, tag)
}

func (t LayerType) Name() string                 { return nameOf(LayerTypes, t) }
func (t LayerType) Valid() bool                  { return LayerTypes.HasTag(string(t)) }
func (t LayerType) String() string               { return string(t) }
func (t LayerType) MarshalText() ([]byte, error) { return marshalTag(LayerTypes, t) }
func (t *LayerType) UnmarshalText(text []byte) error {
	return unmarshalTag(LayerTypes, t, text)
}

// Temporal reports whether keys of this type carry time.
func (t LayerType) Temporal() bool {
	return t == SpaceTime
}

// LayoutScheme describes how the tiles of a layer are laid out.
type LayoutScheme string

const (
	// ZoomLayout matches the resolution of the closest level of a TMS pyramid.
	ZoomLayout LayoutScheme = "zoom"
	// FloatLayout matches the resolution of the source rasters.
	FloatLayout LayoutScheme = "float"
)

var LayoutSchemes = newEnumeration("LayoutScheme",
	"How the tiles within a layer should be laid out.",
	Member{"ZOOM", string(ZoomLayout), "Match the resolution of the closest level of a TMS pyramid."},
	Member{"FLOAT", string(FloatLayout), "Match the resolution of the source rasters."},
)

func ParseLayoutScheme(tag string) (LayoutScheme, error) {
	return parseTag[LayoutScheme](LayoutSchemes, tag)
}

func (s LayoutScheme) Name() string                 { return nameOf(LayoutSchemes, s) }
func (s LayoutScheme) Valid() bool                  { return LayoutSchemes.HasTag(string(s)) }
func (s LayoutScheme) String() string               { return string(s) }
func (s LayoutScheme) MarshalText() ([]byte, error) { return marshalTag(LayoutSchemes, s) }
func (s *LayoutScheme) UnmarshalText(text []byte) error {
	return unmarshalTag(LayoutSchemes, s, text)
}
