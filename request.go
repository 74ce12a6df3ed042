package geotrellis

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

var ErrInvalidRequest = errors.New("invalid request")

// Request describes a layer to build, index, resample or render, in terms
// of vocabulary values only.
type Request struct {
	Name       string
	LayerType  LayerType
	Source     Source
	Layout     Layout
	CellType   CellType
	Resample   ResampleMethod
	Index      *Index
	Focal      *Focal
	ColorMap   *ColorMap
	Properties *Properties
}

type Index struct {
	Method     IndexingMethod
	TimeUnit   TimeUnit
	Resolution *HilbertResolution
}

// Focal is a windowed operation. Params holds the shape parameters of the
// neighborhood in the order extent/radius, inner radius or start angle, end
// angle.
type Focal struct {
	Operation    Operation
	Neighborhood Neighborhood
	Params       []float64
}

// ColorMap maps cell values to colors of a ramp at the given breaks.
type ColorMap struct {
	Ramp     ColorRamp
	Strategy ClassificationStrategy
	Breaks   []float64
}

type auxRequest struct {
	Name       string                 `yaml:"name" toml:"name"`
	LayerType  string                 `yaml:"layer_type" toml:"layer_type"`
	Source     map[string]interface{} `yaml:"source" toml:"source"`
	Layout     auxLayout              `yaml:"layout" toml:"layout"`
	CellType   string                 `yaml:"cell_type" toml:"cell_type"`
	Resample   string                 `yaml:"resample" toml:"resample"`
	Index      *auxIndex              `yaml:"index" toml:"index"`
	Focal      *auxFocal              `yaml:"focal" toml:"focal"`
	ColorMap   *auxColorMap           `yaml:"color_map" toml:"color_map"`
	Properties map[string]interface{} `yaml:"properties" toml:"properties"`
}

type auxIndex struct {
	Method     string             `yaml:"method" toml:"method"`
	TimeUnit   string             `yaml:"time_unit" toml:"time_unit"`
	Resolution *HilbertResolution `yaml:"resolution" toml:"resolution"`
}

type auxFocal struct {
	Operation    string   `yaml:"operation" toml:"operation"`
	Neighborhood string   `yaml:"neighborhood" toml:"neighborhood"`
	Param1       *float64 `yaml:"param1" toml:"param1"`
	Param2       *float64 `yaml:"param2" toml:"param2"`
	Param3       *float64 `yaml:"param3" toml:"param3"`
}

type auxColorMap struct {
	Ramp     string    `yaml:"ramp" toml:"ramp"`
	Strategy string    `yaml:"strategy" toml:"strategy"`
	Breaks   []float64 `yaml:"breaks" toml:"breaks"`
}

func newIndex(i *auxIndex) (*Index, error) {
	if i == nil {
		return nil, nil
	}
	method, err := ParseIndexingMethod(i.Method)
	if err != nil {
		return nil, err
	}
	idx := &Index{Method: method, Resolution: i.Resolution}
	if i.TimeUnit != "" {
		if idx.TimeUnit, err = ParseTimeUnit(i.TimeUnit); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

func newFocal(f *auxFocal) (*Focal, error) {
	if f == nil {
		return nil, nil
	}
	op, err := ParseOperation(f.Operation)
	if err != nil {
		return nil, err
	}
	focal := &Focal{Operation: op}
	if f.Neighborhood != "" {
		if focal.Neighborhood, err = ParseNeighborhood(f.Neighborhood); err != nil {
			return nil, err
		}
	}
	for i, p := range []*float64{f.Param1, f.Param2, f.Param3} {
		if p == nil {
			continue
		}
		if len(focal.Params) != i {
			return nil, fmt.Errorf("%w: focal param%d set without param%d", ErrInvalidRequest, i+1, len(focal.Params)+1)
		}
		focal.Params = append(focal.Params, *p)
	}
	return focal, nil
}

func newColorMap(c *auxColorMap) (*ColorMap, error) {
	if c == nil {
		return nil, nil
	}
	ramp, err := ParseColorRamp(c.Ramp)
	if err != nil {
		return nil, err
	}
	cm := &ColorMap{Ramp: ramp, Strategy: LessThanOrEqualTo, Breaks: c.Breaks}
	if c.Strategy != "" {
		if cm.Strategy, err = ParseClassificationStrategy(c.Strategy); err != nil {
			return nil, err
		}
	}
	return cm, nil
}

func newRequest(aux auxRequest) (*Request, error) {
	r := &Request{Name: aux.Name}
	var err error

	if aux.LayerType != "" {
		if r.LayerType, err = ParseLayerType(aux.LayerType); err != nil {
			return nil, err
		}
	}
	if r.Source, err = newSource(aux.Source); err != nil {
		return nil, err
	}
	if r.Layout, err = newLayout(aux.Layout); err != nil {
		return nil, err
	}
	if aux.CellType != "" {
		if r.CellType, err = ParseCellType(aux.CellType); err != nil {
			return nil, err
		}
	}
	if aux.Resample != "" {
		if r.Resample, err = ParseResampleMethod(aux.Resample); err != nil {
			return nil, err
		}
	}
	if r.Index, err = newIndex(aux.Index); err != nil {
		return nil, err
	}
	if r.Focal, err = newFocal(aux.Focal); err != nil {
		return nil, err
	}
	if r.ColorMap, err = newColorMap(aux.ColorMap); err != nil {
		return nil, err
	}
	if len(aux.Properties) > 0 {
		r.Properties = newPropertiesFromMap(aux.Properties)
	}
	return r, nil
}

// ParseRequest decodes a YAML request document. Unknown tags fail the parse.
func ParseRequest(r io.Reader) (*Request, error) {
	aux := auxRequest{}
	input, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	err = yaml.UnmarshalStrict(input, &aux)
	if err != nil {
		return nil, err
	}
	return newRequest(aux)
}

// ParseRequestTOML decodes a TOML request document.
func ParseRequestTOML(r io.Reader) (*Request, error) {
	aux := auxRequest{}
	md, err := toml.DecodeReader(r, &aux)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidRequest, undecoded)
	}
	return newRequest(aux)
}

// Validate checks required fields and the applicability rules between the
// vocabulary values of the request.
func (r *Request) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if !r.LayerType.Valid() {
		if r.LayerType == "" {
			return fmt.Errorf("%w: layer_type is required", ErrInvalidRequest)
		}
		return &UnknownTagError{Enumeration: LayerTypes.name, Tag: string(r.LayerType)}
	}
	if err := validateSource(r.Source); err != nil {
		return err
	}
	if r.Layout.TileSize <= 0 {
		return fmt.Errorf("%w: tile size must be positive, got %d", ErrInvalidRequest, r.Layout.TileSize)
	}
	if r.Index != nil {
		err := ValidateIndex(r.Index.Method, r.LayerType, IndexOptions{
			TimeUnit:   r.Index.TimeUnit,
			Resolution: r.Index.Resolution,
		})
		if err != nil {
			return err
		}
	}
	if r.Focal != nil {
		if err := r.Focal.validate(); err != nil {
			return err
		}
	}
	if r.ColorMap != nil {
		if err := r.ColorMap.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (f *Focal) validate() error {
	if !f.Operation.NeedsNeighborhood() {
		return nil
	}
	if f.Neighborhood == "" {
		return fmt.Errorf("%w: %s needs a neighborhood", ErrInvalidRequest, f.Operation)
	}
	if want := f.Neighborhood.Params(); len(f.Params) != want {
		return fmt.Errorf("%w: %s neighborhood takes %d parameters, got %d",
			ErrInvalidRequest, f.Neighborhood, want, len(f.Params))
	}
	if f.Params[0] <= 0 {
		return fmt.Errorf("%w: %s neighborhood extent must be positive", ErrInvalidRequest, f.Neighborhood)
	}
	return nil
}

func (c *ColorMap) validate() error {
	if len(c.Breaks) == 0 {
		return fmt.Errorf("%w: color map needs breaks", ErrInvalidRequest)
	}
	for i := 1; i < len(c.Breaks); i++ {
		if c.Breaks[i] <= c.Breaks[i-1] {
			return fmt.Errorf("%w: color map breaks must ascend, %v follows %v",
				ErrInvalidRequest, c.Breaks[i], c.Breaks[i-1])
		}
	}
	return nil
}
