package geotrellis

import (
	"bytes"
	"fmt"
	"math"
	"sort"
)

// Properties holds the free-form settings of a request that are passed to
// the engine untouched, like "num-partitions".
type Properties struct {
	values map[string]interface{}
}

func (p *Properties) String() string {
	var buf bytes.Buffer
	buf.WriteString("Properties{")
	for i, k := range p.Keys() {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: %#v", k, p.values[k])
	}
	buf.WriteRune('}')
	return buf.String()
}

func (p *Properties) get(name string) (interface{}, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[name]
	return v, ok
}

func (p *Properties) set(name string, val interface{}) {
	if p.values == nil {
		p.values = make(map[string]interface{})
	}
	p.values[name] = val
}

func (p *Properties) IsEmpty() bool {
	return p == nil || len(p.values) == 0
}

// Keys returns the property names in sorted order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p *Properties) Get(property string) (interface{}, bool) {
	return p.get(property)
}

func (p *Properties) GetBool(property string) (bool, bool) {
	v, ok := p.get(property)
	if !ok {
		return false, false
	}
	switch r := v.(type) {
	case bool:
		return r, true
	case string:
		// mml style switches
		if r == "on" {
			return true, true
		}
		if r == "off" {
			return false, true
		}
	}
	return false, false
}

func (p *Properties) GetString(property string) (string, bool) {
	v, ok := p.get(property)
	if !ok {
		return "", false
	}
	r, ok := v.(string)
	return r, ok
}

// GetInt accepts the integer types produced by both the YAML and the TOML
// decoder.
func (p *Properties) GetInt(property string) (int, bool) {
	v, ok := p.get(property)
	if !ok {
		return 0, false
	}
	switch r := v.(type) {
	case int:
		return r, true
	case int64:
		if r < math.MinInt || r > math.MaxInt {
			return 0, false
		}
		return int(r), true
	case uint64:
		if r > math.MaxInt {
			return 0, false
		}
		return int(r), true
	}
	return 0, false
}

func (p *Properties) GetFloat(property string) (float64, bool) {
	v, ok := p.get(property)
	if !ok {
		return 0, false
	}
	switch r := v.(type) {
	case float64:
		return r, true
	case int:
		return float64(r), true
	case int64:
		return float64(r), true
	}
	return 0, false
}

func (p *Properties) GetStringList(property string) ([]string, bool) {
	v, ok := p.get(property)
	if !ok {
		return nil, false
	}
	if s, ok := v.(string); ok {
		return []string{s}, true
	}
	strs := asStrings(v)
	return strs, strs != nil
}

// Format renders a property value the way the engine expects it.
func (p *Properties) Format(property string) (string, bool) {
	v, ok := p.get(property)
	if !ok {
		return "", false
	}
	if l, ok := p.GetStringList(property); ok {
		var buf bytes.Buffer
		for i, s := range l {
			if i > 0 {
				buf.WriteRune(',')
			}
			buf.WriteString(s)
		}
		return buf.String(), true
	}
	return fmt.Sprintf("%v", v), true
}

// NewProperties creates properties from alternating keys and values.
func NewProperties(kv ...interface{}) *Properties {
	r := &Properties{values: make(map[string]interface{})}
	for i := 0; i < (len(kv) - 1); i += 2 {
		k := kv[i].(string)
		r.values[k] = kv[i+1]
	}
	return r
}

func newPropertiesFromMap(m map[string]interface{}) *Properties {
	r := &Properties{}
	for k, v := range m {
		r.set(k, v)
	}
	return r
}

func asStrings(v interface{}) []string {
	var result []string
	switch slice := v.(type) {
	case []string:
		return slice
	case []interface{}:
		for i := range slice {
			s, ok := slice[i].(string)
			if !ok {
				return nil
			}
			result = append(result, s)
		}
	}
	return result
}
