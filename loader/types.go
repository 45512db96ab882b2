// SPDX-License-Identifier: MIT

package loader

import (
	"errors"

	"github.com/katalvlaran/hopgraph/wgraph"
)

// Sentinel errors.
var (
	// ErrInvalidDescription wraps every validation failure.
	ErrInvalidDescription = errors.New("loader: invalid description")

	// ErrUnknownVertex indicates an edge or query naming an undeclared vertex.
	ErrUnknownVertex = errors.New("loader: unknown vertex")

	// ErrDuplicateVertex indicates a vertex name declared twice.
	ErrDuplicateVertex = errors.New("loader: duplicate vertex name")
)

// Description is the decoded form of a YAML graph file.
type Description struct {
	Vertices    []string        `yaml:"vertices" validate:"omitempty,dive,required"`
	VertexCount int             `yaml:"vertex_count" validate:"gte=0"`
	Edges       []EdgeSpec      `yaml:"edges" validate:"dive"`
	Generate    []GeneratorSpec `yaml:"generate" validate:"dive"`
	Seed        *int64          `yaml:"seed"`
	Weights     *WeightRange    `yaml:"weights"`
	Queries     []QuerySpec     `yaml:"queries" validate:"dive"`
	Logging     LoggingConfig   `yaml:"logging"`

	names []string
	index map[string]wgraph.Vertex
}

// EdgeSpec is one weighted edge between two named vertices.
type EdgeSpec struct {
	From   string `yaml:"from" validate:"required"`
	To     string `yaml:"to" validate:"required"`
	Weight int    `yaml:"weight" validate:"gt=0"`
}

// GeneratorSpec selects a builder constructor and its size parameters.
type GeneratorSpec struct {
	Kind string  `yaml:"kind" validate:"required,oneof=path cycle star complete grid random"`
	N    int     `yaml:"n" validate:"gte=0"`
	Rows int     `yaml:"rows" validate:"gte=0"`
	Cols int     `yaml:"cols" validate:"gte=0"`
	P    float64 `yaml:"p" validate:"gte=0,lte=1"`
}

// WeightRange draws generated edge weights uniformly from [Min, Max].
type WeightRange struct {
	Min int `yaml:"min" validate:"gt=0"`
	Max int `yaml:"max" validate:"gtefield=Min"`
}

// QuerySpec is one path query between two named vertices.
type QuerySpec struct {
	From      string `yaml:"from" validate:"required"`
	To        string `yaml:"to" validate:"required"`
	MaxWeight int    `yaml:"max_weight"`
}

// LoggingConfig holds the CLI log level.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}
