// SPDX-License-Identifier: MIT

// Package catalog loads named example matrices from YAML: the set embedded
// in the binary, or a user file with the same layout.
//
//	examples:
//	  - name: ex1
//	    title: "3×3, single eigenvalue 2"
//	    expect: "true"          # optional: true | false | nonrational
//	    matrix:
//	      - [0, 1, 0]
//	      - [-4, 4, 0]
//	      - [-2, 1/2, 2]
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/jordan/matrix"
)

//go:embed examples.yaml
var embedded []byte

var (
	// ErrUnknownExample is returned by Lookup for a name not in the catalog.
	ErrUnknownExample = errors.New("catalog: unknown example")

	// ErrInvalidExample wraps structural validation failures.
	ErrInvalidExample = errors.New("catalog: invalid example")

	// ErrDuplicateName signals two examples sharing a name.
	ErrDuplicateName = errors.New("catalog: duplicate example name")
)

// Expected outcomes of the final check.
const (
	ExpectTrue        = "true"
	ExpectFalse       = "false"
	ExpectNonRational = "nonrational"
)

// Entry is one matrix entry: an integer or a rational p/q.
type Entry string

// UnmarshalYAML accepts scalar nodes that parse as rationals.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: entry must be a scalar: %w", node.Line, matrix.ErrBadEntry)
	}
	if _, err := matrix.ParseRat(node.Value); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*e = Entry(node.Value)

	return nil
}

// Example is one named matrix.
type Example struct {
	Name   string    `yaml:"name" validate:"required,max=64"`
	Title  string    `yaml:"title"`
	Expect string    `yaml:"expect" validate:"omitempty,oneof=true false nonrational"`
	Matrix [][]Entry `yaml:"matrix" validate:"required,min=1,square"`
}

// Dense converts the entries into an exact matrix.
func (e Example) Dense() (*matrix.Dense, error) {
	rows := make([][]string, len(e.Matrix))
	for i, r := range e.Matrix {
		rows[i] = make([]string, len(r))
		for j, v := range r {
			rows[i][j] = string(v)
		}
	}

	return matrix.FromStrings(rows)
}

// Catalog is an ordered set of examples.
type Catalog struct {
	Examples []Example `yaml:"examples" validate:"required,min=1,dive"`
}

// examplesValidate checks decoded catalogs; "square" is registered in init.
var examplesValidate *validator.Validate

func init() {
	examplesValidate = validator.New()
	_ = examplesValidate.RegisterValidation("square", validateSquare)
}

// validateSquare accepts an n×n slice of slices with n ≥ 1.
func validateSquare(fl validator.FieldLevel) bool {
	rows := fl.Field()
	n := rows.Len()
	if n == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		if rows.Index(i).Len() != n {
			return false
		}
	}

	return true
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) { return Parse(embedded) }

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates a catalog. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := examplesValidate.Struct(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExample, err)
	}
	seen := make(map[string]bool, len(c.Examples))
	for _, e := range c.Examples {
		if seen[e.Name] {
			return nil, fmt.Errorf("%q: %w", e.Name, ErrDuplicateName)
		}
		seen[e.Name] = true
	}

	return &c, nil
}

// Names lists example names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.Examples))
	for i, e := range c.Examples {
		out[i] = e.Name
	}

	return out
}

// Lookup returns the example called name.
func (c *Catalog) Lookup(name string) (Example, error) {
	for _, e := range c.Examples {
		if e.Name == name {
			return e, nil
		}
	}

	return Example{}, fmt.Errorf("%q: %w", name, ErrUnknownExample)
}
