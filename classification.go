package geotrellis

// ClassificationStrategy is the comparison used to match a value against the
// breakpoints of a color map.
type ClassificationStrategy string

const (
	GreaterThan          ClassificationStrategy = "GreaterThan"
	GreaterThanOrEqualTo ClassificationStrategy = "GreaterThanOrEqualTo"
	LessThan             ClassificationStrategy = "LessThan"
	LessThanOrEqualTo    ClassificationStrategy = "LessThanOrEqualTo"
	Exact                ClassificationStrategy = "Exact"
)

var ClassificationStrategies = newEnumeration("ClassificationStrategy",
	"Classification strategies for color mapping.",
	Member{"GREATERTHAN", string(GreaterThan), ""},
	Member{"GREATER_THAN_OR_EQUAL_TO", string(GreaterThanOrEqualTo), ""},
	Member{"LESS_THAN", string(LessThan), ""},
	Member{"LESS_THAN_OR_EQUAL_TO", string(LessThanOrEqualTo), ""},
	Member{"EXACT", string(Exact), ""},
)

func ParseClassificationStrategy(tag string) (ClassificationStrategy, error) {
	return parseTag[ClassificationStrategy](ClassificationStrategies, tag)
}

func (s ClassificationStrategy) Name() string { return nameOf(ClassificationStrategies, s) }
func (s ClassificationStrategy) Valid() bool  { return ClassificationStrategies.HasTag(string(s)) }
func (s ClassificationStrategy) String() string {
	return string(s)
}
func (s ClassificationStrategy) MarshalText() ([]byte, error) {
	return marshalTag(ClassificationStrategies, s)
}
func (s *ClassificationStrategy) UnmarshalText(text []byte) error {
	return unmarshalTag(ClassificationStrategies, s, text)
}
