package geotrellis

import (
	"time"
)

// IndexingMethod selects how layer keys are indexed when saved.
type IndexingMethod string

const (
	ZOrder   IndexingMethod = "zorder"
	Hilbert  IndexingMethod = "hilbert"
	RowMajor IndexingMethod = "rowmajor"
)

var IndexingMethods = newEnumeration("IndexingMethod",
	"How a layer should be indexed when saved.",
	Member{"ZORDER", string(ZOrder), "Z-order curve; works for spatial and spacetime keys."},
	Member{"HILBERT", string(Hilbert),
		"Hilbert curve; works for spatial and spacetime keys. The x, y and, for spacetime keys, " +
			"temporal resolutions are given in bits and may not sum to more than 62."},
	Member{"ROWMAJOR", string(RowMajor),
		"Row-major order; spatial keys only. Fastest lookup, but without locality guarantees."},
)

func ParseIndexingMethod(tag string) (IndexingMethod, error) {
	return parseTag[IndexingMethod](IndexingMethods, tag)
}

func (m IndexingMethod) Name() string                 { return nameOf(IndexingMethods, m) }
func (m IndexingMethod) Valid() bool                  { return IndexingMethods.HasTag(string(m)) }
func (m IndexingMethod) String() string               { return string(m) }
func (m IndexingMethod) MarshalText() ([]byte, error) { return marshalTag(IndexingMethods, m) }
func (m *IndexingMethod) UnmarshalText(text []byte) error {
	return unmarshalTag(IndexingMethods, m, text)
}

// TimeUnit is the temporal resolution used when indexing spacetime keys.
type TimeUnit string

const (
	Millis  TimeUnit = "millis"
	Seconds TimeUnit = "seconds"
	Minutes TimeUnit = "minutes"
	Hours   TimeUnit = "hours"
	Days    TimeUnit = "days"
	Months  TimeUnit = "months"
	Years   TimeUnit = "years"
)

var TimeUnits = newEnumeration("TimeUnit",
	"Temporal resolution of ZORDER and HILBERT indexes on spacetime keys.",
	Member{"MILLIS", string(Millis), ""},
	Member{"SECONDS", string(Seconds), ""},
	Member{"MINUTES", string(Minutes), ""},
	Member{"HOURS", string(Hours), ""},
	Member{"DAYS", string(Days), ""},
	Member{"MONTHS", string(Months), "Calendar months."},
	Member{"YEARS", string(Years), "Calendar years."},
)

func ParseTimeUnit(tag string) (TimeUnit, error) {
	return parseTag[TimeUnit](TimeUnits, tag)
}

func (u TimeUnit) Name() string                 { return nameOf(TimeUnits, u) }
func (u TimeUnit) Valid() bool                  { return TimeUnits.HasTag(string(u)) }
func (u TimeUnit) String() string               { return string(u) }
func (u TimeUnit) MarshalText() ([]byte, error) { return marshalTag(TimeUnits, u) }
func (u *TimeUnit) UnmarshalText(text []byte) error {
	return unmarshalTag(TimeUnits, u, text)
}

// Duration returns the fixed length of the unit. Months and years vary in
// length and report false.
func (u TimeUnit) Duration() (time.Duration, bool) {
	switch u {
	case Millis:
		return time.Millisecond, true
	case Seconds:
		return time.Second, true
	case Minutes:
		return time.Minute, true
	case Hours:
		return time.Hour, true
	case Days:
		return 24 * time.Hour, true
	default:
		return 0, false
	}
}

// MaxHilbertBits is the largest total resolution a Hilbert index supports.
const MaxHilbertBits = 62

// HilbertResolution holds the per-axis bit resolutions of a Hilbert index.
// Temporal is only counted for spacetime layers.
type HilbertResolution struct {
	X        int `yaml:"x" toml:"x"`
	Y        int `yaml:"y" toml:"y"`
	Temporal int `yaml:"temporal" toml:"temporal"`
}

// Bits returns the total number of bits the index needs for keys of type t.
func (r HilbertResolution) Bits(t LayerType) int {
	bits := r.X + r.Y
	if t.Temporal() {
		bits += r.Temporal
	}
	return bits
}

// ValidateApplicability rejects indexing methods that cannot index keys of
// the given layer type.
func ValidateApplicability(m IndexingMethod, t LayerType) error {
	if !m.Valid() {
		return &UnknownTagError{Enumeration: IndexingMethods.name, Tag: string(m)}
	}
	if !t.Valid() {
		return &UnknownTagError{Enumeration: LayerTypes.name, Tag: string(t)}
	}
	if m == RowMajor && t.Temporal() {
		return inapplicable("%s indexing does not support %s keys", RowMajor, t)
	}
	return nil
}

// ValidateHilbertResolution checks explicit Hilbert resolutions against the
// bit budget of the index.
func ValidateHilbertResolution(t LayerType, r HilbertResolution) error {
	if !t.Valid() {
		return &UnknownTagError{Enumeration: LayerTypes.name, Tag: string(t)}
	}
	if r.X < 0 || r.Y < 0 || r.Temporal < 0 {
		return inapplicable("negative %s resolution %+v", Hilbert, r)
	}
	if r.X > MaxHilbertBits || r.Y > MaxHilbertBits || (t.Temporal() && r.Temporal > MaxHilbertBits) {
		return inapplicable("%s resolution %+v exceeds %d bits on one axis", Hilbert, r, MaxHilbertBits)
	}
	if bits := r.Bits(t); bits > MaxHilbertBits {
		return inapplicable("%s resolution of %d bits exceeds %d", Hilbert, bits, MaxHilbertBits)
	}
	return nil
}

// IndexOptions are the optional settings of a key index.
type IndexOptions struct {
	TimeUnit   TimeUnit
	Resolution *HilbertResolution
}

// ValidateIndex checks an index request as a whole. A time unit on spatial
// keys and resolutions on non-Hilbert indexes are ignored, not rejected.
func ValidateIndex(m IndexingMethod, t LayerType, opts IndexOptions) error {
	if err := ValidateApplicability(m, t); err != nil {
		return err
	}
	if opts.TimeUnit != "" && !opts.TimeUnit.Valid() {
		return &UnknownTagError{Enumeration: TimeUnits.name, Tag: string(opts.TimeUnit)}
	}
	if m == Hilbert && opts.Resolution != nil {
		return ValidateHilbertResolution(t, *opts.Resolution)
	}
	return nil
}
