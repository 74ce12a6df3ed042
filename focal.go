package geotrellis

// Operation is a focal (windowed) aggregation.
type Operation string

const (
	OpSum               Operation = "Sum"
	OpMean              Operation = "Mean"
	OpMode              Operation = "Mode"
	OpMedian            Operation = "Median"
	OpMax               Operation = "Max"
	OpMin               Operation = "Min"
	OpAspect            Operation = "Aspect"
	OpSlope             Operation = "Slope"
	OpStandardDeviation Operation = "StandardDeviation"
)

var Operations = newEnumeration("Operation",
	"Focal operations.",
	Member{"SUM", string(OpSum), ""},
	Member{"MEAN", string(OpMean), ""},
	Member{"MODE", string(OpMode), ""},
	Member{"MEDIAN", string(OpMedian), ""},
	Member{"MAX", string(OpMax), ""},
	Member{"MIN", string(OpMin), ""},
	Member{"ASPECT", string(OpAspect), "Direction of steepest descent; ignores the neighborhood."},
	Member{"SLOPE", string(OpSlope), "Steepness of the surface; ignores the neighborhood."},
	Member{"STANDARD_DEVIATION", string(OpStandardDeviation), ""},
)

func ParseOperation(tag string) (Operation, error) {
	return parseTag[Operation](Operations, tag)
}

func (o Operation) Name() string                 { return nameOf(Operations, o) }
func (o Operation) Valid() bool                  { return Operations.HasTag(string(o)) }
func (o Operation) String() string               { return string(o) }
func (o Operation) MarshalText() ([]byte, error) { return marshalTag(Operations, o) }
func (o *Operation) UnmarshalText(text []byte) error {
	return unmarshalTag(Operations, o, text)
}

// NeedsNeighborhood reports whether the operation is computed over a
// neighborhood window. Aspect and slope always use the 3x3 surface.
func (o Operation) NeedsNeighborhood() bool {
	return o != OpAspect && o != OpSlope
}

// Neighborhood is the window shape of a focal operation.
type Neighborhood string

const (
	NeighborhoodAnnulus Neighborhood = "Annulus"
	NeighborhoodNesw    Neighborhood = "Nesw"
	NeighborhoodSquare  Neighborhood = "Square"
	NeighborhoodWedge   Neighborhood = "Wedge"
	NeighborhoodCircle  Neighborhood = "Circle"
)

var Neighborhoods = newEnumeration("Neighborhood",
	"Neighborhood types.",
	Member{"ANNULUS", string(NeighborhoodAnnulus), "Ring between an inner and an outer radius."},
	Member{"NESW", string(NeighborhoodNesw), "Cells north, east, south and west of the focus."},
	Member{"SQUARE", string(NeighborhoodSquare), ""},
	Member{"WEDGE", string(NeighborhoodWedge), "Circle sector between a start and an end angle."},
	Member{"CIRCLE", string(NeighborhoodCircle), ""},
)

func ParseNeighborhood(tag string) (Neighborhood, error) {
	return parseTag[Neighborhood](Neighborhoods, tag)
}

func (n Neighborhood) Name() string                 { return nameOf(Neighborhoods, n) }
func (n Neighborhood) Valid() bool                  { return Neighborhoods.HasTag(string(n)) }
func (n Neighborhood) String() string               { return string(n) }
func (n Neighborhood) MarshalText() ([]byte, error) { return marshalTag(Neighborhoods, n) }
func (n *Neighborhood) UnmarshalText(text []byte) error {
	return unmarshalTag(Neighborhoods, n, text)
}

// Params returns how many numeric parameters describe the shape: the extent
// or radius, plus inner radius for annulus and two angles for wedge.
func (n Neighborhood) Params() int {
	switch n {
	case NeighborhoodAnnulus:
		return 2
	case NeighborhoodWedge:
		return 3
	case NeighborhoodNesw, NeighborhoodSquare, NeighborhoodCircle:
		return 1
	}
	return 0
}
