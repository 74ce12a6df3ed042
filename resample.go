package geotrellis

// ResampleMethod is the pixel resampling algorithm.
type ResampleMethod string

const (
	ResampleNearestNeighbor  ResampleMethod = "NearestNeighbor"
	ResampleBilinear         ResampleMethod = "Bilinear"
	ResampleCubicConvolution ResampleMethod = "CubicConvolution"
	ResampleCubicSpline      ResampleMethod = "CubicSpline"
	ResampleLanczos          ResampleMethod = "Lanczos"
	ResampleAverage          ResampleMethod = "Average"
	ResampleMode             ResampleMethod = "Mode"
	ResampleMedian           ResampleMethod = "Median"
	ResampleMax              ResampleMethod = "Max"
	ResampleMin              ResampleMethod = "Min"
)

var ResampleMethods = newEnumeration("ResampleMethod",
	"Resampling methods.",
	Member{"NEAREST_NEIGHBOR", string(ResampleNearestNeighbor), ""},
	Member{"BILINEAR", string(ResampleBilinear), ""},
	Member{"CUBIC_CONVOLUTION", string(ResampleCubicConvolution), ""},
	Member{"CUBIC_SPLINE", string(ResampleCubicSpline), ""},
	Member{"LANCZOS", string(ResampleLanczos), ""},
	Member{"AVERAGE", string(ResampleAverage), ""},
	Member{"MODE", string(ResampleMode), ""},
	Member{"MEDIAN", string(ResampleMedian), ""},
	Member{"MAX", string(ResampleMax), ""},
	Member{"MIN", string(ResampleMin), ""},
)

func ParseResampleMethod(tag string) (ResampleMethod, error) {
	return parseTag[ResampleMethod](ResampleMethods, tag)
}

func (m ResampleMethod) Name() string                 { return nameOf(ResampleMethods, m) }
func (m ResampleMethod) Valid() bool                  { return ResampleMethods.HasTag(string(m)) }
func (m ResampleMethod) String() string               { return string(m) }
func (m ResampleMethod) MarshalText() ([]byte, error) { return marshalTag(ResampleMethods, m) }
func (m *ResampleMethod) UnmarshalText(text []byte) error {
	return unmarshalTag(ResampleMethods, m, text)
}

// Aggregate reports whether the method summarizes all source cells covered
// by a target cell instead of interpolating between neighbors.
func (m ResampleMethod) Aggregate() bool {
	switch m {
	case ResampleAverage, ResampleMode, ResampleMedian, ResampleMax, ResampleMin:
		return true
	}
	return false
}
