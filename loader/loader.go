// SPDX-License-Identifier: MIT

package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hopgraph/builder"
	"github.com/katalvlaran/hopgraph/wgraph"
)

// DefaultLogLevel applies when the description sets none.
const DefaultLogLevel = "info"

var validate = validator.New()

// Load reads and validates the description at path.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Parse decodes and validates a YAML description. Unknown keys are rejected.
func Parse(data []byte) (*Description, error) {
	var d Description
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to parse: %v", ErrInvalidDescription, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Validate checks struct tags, then resolves names. It also fills in the
// default log level and the name index used by Index and Build.
func (d *Description) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDescription, err)
	}

	switch {
	case len(d.Vertices) == 0 && d.VertexCount == 0:
		return fmt.Errorf("%w: one of vertices or vertex_count is required", ErrInvalidDescription)
	case d.VertexCount > wgraph.MaxVertices || len(d.Vertices) > wgraph.MaxVertices:
		return fmt.Errorf("%w: at most %d vertices are supported", ErrInvalidDescription, wgraph.MaxVertices)
	case len(d.Vertices) > 0 && d.VertexCount != 0 && d.VertexCount != len(d.Vertices):
		return fmt.Errorf("%w: vertex_count=%d but %d vertices are named",
			ErrInvalidDescription, d.VertexCount, len(d.Vertices))
	}

	d.names = d.Vertices
	if len(d.names) == 0 {
		d.names = make([]string, d.VertexCount)
		for i := range d.names {
			d.names[i] = strconv.Itoa(i)
		}
	}
	d.index = make(map[string]wgraph.Vertex, len(d.names))
	for i, name := range d.names {
		if _, dup := d.index[name]; dup {
			return fmt.Errorf("%w: %w: %q", ErrInvalidDescription, ErrDuplicateVertex, name)
		}
		d.index[name] = wgraph.Vertex(i)
	}

	for i, e := range d.Edges {
		if err := d.resolve("edge", i, e.From, e.To); err != nil {
			return err
		}
	}
	for i, q := range d.Queries {
		if err := d.resolve("query", i, q.From, q.To); err != nil {
			return err
		}
	}

	if d.Logging.Level == "" {
		d.Logging.Level = DefaultLogLevel
	}

	return nil
}

func (d *Description) resolve(kind string, i int, names ...string) error {
	for _, name := range names {
		if _, ok := d.index[name]; !ok {
			return fmt.Errorf("%w: %s %d: %w: %q", ErrInvalidDescription, kind, i, ErrUnknownVertex, name)
		}
	}

	return nil
}

// Names returns the vertex labels, index-aligned with graph vertices.
func (d *Description) Names() []string {
	return d.names
}

// Index returns the vertex for a name.
func (d *Description) Index(name string) (wgraph.Vertex, bool) {
	v, ok := d.index[name]
	return v, ok
}

// Build allocates the graph, inserts the explicit edges in file order, then
// applies the generators.
func (d *Description) Build() (*wgraph.Graph, error) {
	if d.index == nil {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}

	g, err := wgraph.New(len(d.names))
	if err != nil {
		return nil, err
	}
	for _, e := range d.Edges {
		if err := g.InsertEdge(d.index[e.From], d.index[e.To], e.Weight); err != nil {
			return nil, fmt.Errorf("edge %s-%s: %w", e.From, e.To, err)
		}
	}

	cons := make([]builder.Constructor, 0, len(d.Generate))
	for _, gen := range d.Generate {
		cons = append(cons, gen.constructor())
	}
	if err := builder.Apply(g, d.builderOptions(), cons...); err != nil {
		return nil, err
	}

	return g, nil
}

func (d *Description) builderOptions() []builder.BuilderOption {
	var opts []builder.BuilderOption
	if d.Seed != nil {
		opts = append(opts, builder.WithSeed(*d.Seed))
	}
	if d.Weights != nil {
		opts = append(opts, builder.WithWeightFn(builder.UniformWeightFn(d.Weights.Min, d.Weights.Max)))
	}

	return opts
}

// constructor maps a validated spec onto its builder constructor.
func (s GeneratorSpec) constructor() builder.Constructor {
	switch s.Kind {
	case "path":
		return builder.Path(s.N)
	case "cycle":
		return builder.Cycle(s.N)
	case "star":
		return builder.Star(s.N)
	case "complete":
		return builder.Complete(s.N)
	case "grid":
		return builder.Grid(s.Rows, s.Cols)
	case "random":
		return builder.RandomSparse(s.N, s.P)
	}

	// unreachable after validation
	return nil
}
