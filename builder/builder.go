package builder

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	geotrellis "github.com/flywave/go-geotrellis"
	"github.com/flywave/go-geotrellis/engine"
)

// Engine is the raster engine that executes requests. It only ever sees
// validated requests and their tag parameters.
type Engine interface {
	Submit(*geotrellis.Request, map[string]string) error
}

// Builder loads request documents, validates them and submits them to an
// Engine.
type Builder struct {
	engine     Engine
	files      []string
	cache      *Cache
	dumpParams io.Writer
}

// New returns a Builder
func New(e Engine) *Builder {
	return &Builder{engine: e}
}

// AddRequest adds another request file to this builder. Files ending in
// .toml are decoded as TOML, everything else as YAML.
func (b *Builder) AddRequest(file string) {
	b.files = append(b.files, file)
}

// SetCache makes the builder reuse parsed requests from c.
func (b *Builder) SetCache(c *Cache) {
	b.cache = c
}

// SetDumpParamsDest enables debugging output of the encoded parameters.
func (b *Builder) SetDumpParamsDest(w io.Writer) {
	b.dumpParams = w
}

// Build parses and validates all request files before submitting any of
// them, in the order they were added.
func (b *Builder) Build() error {
	var missing []string
	for _, f := range b.files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return &FilesMissingError{missing}
	}

	requests := make([]*geotrellis.Request, 0, len(b.files))
	for _, f := range b.files {
		r, err := b.load(f)
		if err != nil {
			return err
		}
		requests = append(requests, r)
	}

	for i, r := range requests {
		if err := b.submit(r); err != nil {
			return fmt.Errorf("%s: %w", b.files[i], err)
		}
	}
	return nil
}

func (b *Builder) load(file string) (*geotrellis.Request, error) {
	if b.cache != nil {
		return b.cache.Request(file)
	}
	return LoadRequest(file)
}

func (b *Builder) submit(r *geotrellis.Request) error {
	params, err := engine.Params(r)
	if err != nil {
		return err
	}
	if b.dumpParams != nil {
		fmt.Fprintln(b.dumpParams, engine.Encode(params))
	}
	log.WithFields(log.Fields{
		"request":    r.Name,
		"layer_type": r.LayerType,
	}).Debug("submit request")
	return b.engine.Submit(r, params)
}

// LoadRequest parses and validates a request file.
func LoadRequest(file string) (*geotrellis.Request, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r *geotrellis.Request
	if strings.EqualFold(filepath.Ext(file), ".toml") {
		r, err = geotrellis.ParseRequestTOML(f)
	} else {
		r, err = geotrellis.ParseRequest(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return r, nil
}

// BuildFromString parses a single YAML request and submits it to e.
func BuildFromString(e Engine, doc string) error {
	r, err := geotrellis.ParseRequest(strings.NewReader(doc))
	if err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}
	return New(e).submit(r)
}

type FilesMissingError struct {
	Files []string
}

func (e *FilesMissingError) Error() string {
	return fmt.Sprintf("missing files: %v", e.Files)
}
