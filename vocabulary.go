package geotrellis

import (
	"fmt"
	"sort"
)

// Member is one symbolic name of an enumeration and the tag it is
// serialized as.
type Member struct {
	Name string
	Tag  string
	Doc  string
}

// Enumeration is a closed, ordered table of members. Tables are built once
// at package initialization and never change afterwards.
type Enumeration struct {
	name    string
	doc     string
	members []Member
	byName  map[string]int
	byTag   map[string]int
}

func newEnumeration(name, doc string, members ...Member) *Enumeration {
	e := &Enumeration{
		name:    name,
		doc:     doc,
		members: members,
		byName:  make(map[string]int, len(members)),
		byTag:   make(map[string]int, len(members)),
	}
	for i, m := range members {
		if _, ok := e.byName[m.Name]; ok {
			panic(fmt.Sprintf("geotrellis: duplicate name %s in %s", m.Name, name))
		}
		if _, ok := e.byTag[m.Tag]; ok {
			panic(fmt.Sprintf("geotrellis: duplicate tag %q in %s", m.Tag, name))
		}
		e.byName[m.Name] = i
		e.byTag[m.Tag] = i
	}
	registry[name] = e
	return e
}

func (e *Enumeration) String() string {
	return e.name
}

// EnumName returns the name of the enumeration itself, e.g. "ResampleMethod".
func (e *Enumeration) EnumName() string {
	return e.name
}

func (e *Enumeration) Doc() string {
	return e.doc
}

func (e *Enumeration) Len() int {
	return len(e.members)
}

// Names returns the symbolic names in declaration order.
func (e *Enumeration) Names() []string {
	names := make([]string, len(e.members))
	for i, m := range e.members {
		names[i] = m.Name
	}
	return names
}

// Tags returns the tags in declaration order.
func (e *Enumeration) Tags() []string {
	tags := make([]string, len(e.members))
	for i, m := range e.members {
		tags[i] = m.Tag
	}
	return tags
}

func (e *Enumeration) Members() []Member {
	result := make([]Member, len(e.members))
	copy(result, e.members)
	return result
}

// Tag resolves a symbolic name to its tag.
func (e *Enumeration) Tag(name string) (string, error) {
	i, ok := e.byName[name]
	if !ok {
		return "", &UnknownMemberError{Enumeration: e.name, Name: name}
	}
	return e.members[i].Tag, nil
}

// Name resolves a tag to its symbolic name. Matching is exact.
func (e *Enumeration) Name(tag string) (string, error) {
	i, ok := e.byTag[tag]
	if !ok {
		return "", &UnknownTagError{Enumeration: e.name, Tag: tag}
	}
	return e.members[i].Name, nil
}

func (e *Enumeration) HasTag(tag string) bool {
	_, ok := e.byTag[tag]
	return ok
}

// Member returns the member declared with the given symbolic name.
func (e *Enumeration) Member(name string) (Member, error) {
	i, ok := e.byName[name]
	if !ok {
		return Member{}, &UnknownMemberError{Enumeration: e.name, Name: name}
	}
	return e.members[i], nil
}

var registry = map[string]*Enumeration{}

// Enumerations returns every registered enumeration sorted by name.
func Enumerations() []*Enumeration {
	result := make([]*Enumeration, 0, len(registry))
	for _, e := range registry {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].name < result[j].name })
	return result
}

func LookupEnumeration(name string) (*Enumeration, bool) {
	e, ok := registry[name]
	return e, ok
}

// parseTag checks tag against e and converts it to the typed value.
func parseTag[T ~string](e *Enumeration, tag string) (T, error) {
	if !e.HasTag(tag) {
		return "", &UnknownTagError{Enumeration: e.name, Tag: tag}
	}
	return T(tag), nil
}

// nameOf returns the symbolic name of a typed value or "" if it is not a
// declared tag.
func nameOf[T ~string](e *Enumeration, v T) string {
	name, err := e.Name(string(v))
	if err != nil {
		return ""
	}
	return name
}

func marshalTag[T ~string](e *Enumeration, v T) ([]byte, error) {
	if !e.HasTag(string(v)) {
		return nil, &UnknownTagError{Enumeration: e.name, Tag: string(v)}
	}
	return []byte(v), nil
}

func unmarshalTag[T ~string](e *Enumeration, dst *T, text []byte) error {
	v, err := parseTag[T](e, string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
