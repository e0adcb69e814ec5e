package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/ancestry/core"
)

var (
	// ErrUnknownFormat is returned for a file extension or format name that
	// is neither YAML nor TOML.
	ErrUnknownFormat = errors.New("graphfile: unknown format")

	// ErrInvalidDocument wraps decode, validation and build failures.
	ErrInvalidDocument = errors.New("graphfile: invalid document")
)

// Format names a document encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Edge is one directed edge.
type Edge struct {
	From string `yaml:"from" toml:"from" validate:"required"`
	To   string `yaml:"to" toml:"to" validate:"required"`
}

// Query is a named pair of vertices to resolve.
type Query struct {
	A string `yaml:"a" toml:"a" validate:"required"`
	B string `yaml:"b" toml:"b" validate:"required"`
}

// Document is the decoded form of a graph file.
type Document struct {
	Name     string   `yaml:"name,omitempty" toml:"name,omitempty"`
	Root     string   `yaml:"root,omitempty" toml:"root,omitempty"`
	Vertices []string `yaml:"vertices,omitempty" toml:"vertices,omitempty" validate:"dive,required"`
	Edges    []Edge   `yaml:"edges" toml:"edges" validate:"dive"`
	Queries  []Query  `yaml:"queries,omitempty" toml:"queries,omitempty" validate:"dive"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: read %s: %w", path, err)
	}

	doc, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Decode reads one document of the given format from r and validates it.
func Decode(r io.Reader, format Format) (*Document, error) {
	v := validator.New()
	doc := &Document{}

	switch format {
	case YAML:
		dec := yaml.NewDecoder(r, yaml.Validator(v))
		if err := dec.Decode(doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	// toml has no validator hook, and yaml only checks structs it met
	if err := v.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return doc, nil
}

// Build creates a graph holding every listed vertex and edge. The root, when
// set, must be one of them.
func (d *Document) Build(opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	for _, id := range d.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%w: vertex %q: %v", ErrInvalidDocument, id, err)
		}
	}
	for i, e := range d.Edges {
		if _, err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("%w: edge #%d %s→%s: %v", ErrInvalidDocument, i+1, e.From, e.To, err)
		}
	}
	if d.Root != "" && !g.HasVertex(d.Root) {
		return nil, fmt.Errorf("%w: root %q is not a vertex", ErrInvalidDocument, d.Root)
	}

	return g, nil
}

// FromGraph captures g as a document. Edges keep their creation order and
// only vertices without any edge are listed under Vertices.
func FromGraph(g *core.Graph, name, root string) *Document {
	doc := &Document{Name: name, Root: root}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e.From, To: e.To})
	}
	for _, id := range g.Vertices() {
		in, out, err := g.Degree(id)
		if err == nil && in == 0 && out == 0 {
			doc.Vertices = append(doc.Vertices, id)
		}
	}

	return doc
}

// Encode writes d to w in the given format.
func (d *Document) Encode(w io.Writer, format Format) error {
	switch format {
	case YAML:
		return yaml.NewEncoder(w).Encode(d)
	case TOML:
		return toml.NewEncoder(w).Encode(d)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
