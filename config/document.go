package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Column kinds.
const (
	KindParameter = "parameter"
	KindCategory  = "category"
	KindRollup    = "rollup"
)

// Parameter value types.
const (
	TypeFloat  = "float"
	TypeInt    = "int"
	TypeBool   = "bool"
	TypeString = "string"
)

var (
	// ErrInvalidDocument indicates a document that failed validation.
	ErrInvalidDocument = errors.New("config: invalid document")

	// ErrDecode indicates malformed YAML or unknown fields.
	ErrDecode = errors.New("config: decode failed")
)

// Document is one report definition.
type Document struct {
	Categories []CategorySpec `yaml:"categories" validate:"required,min=1,dive"`
	Hierarchy  LevelSpec      `yaml:"hierarchy"`
	Columns    []ColumnSpec   `yaml:"columns" validate:"dive"`
	Product    ProductSpec    `yaml:"product"`
}

// CategorySpec declares a category. Super lists super-category short names.
type CategorySpec struct {
	ShortName string   `yaml:"short_name" validate:"required"`
	Name      string   `yaml:"name"`
	Super     []string `yaml:"super" validate:"dive,required"`
}

// LevelSpec declares one filter level and its children.
type LevelSpec struct {
	Category string      `yaml:"category" validate:"required"`
	Field    string      `yaml:"field"`
	Footer   *FooterSpec `yaml:"footer"`
	DenySkip bool        `yaml:"deny_skip"`

	// MaxRecursion lets nested elements of the category match again; 0 means 1.
	MaxRecursion int         `yaml:"max_recursion" validate:"omitempty,gte=1"`
	Children     []LevelSpec `yaml:"children" validate:"dive"`
}

// FooterSpec configures a level footer.
type FooterSpec struct {
	Label   string `yaml:"label" validate:"required"`
	Visible bool   `yaml:"visible"`
}

// ColumnSpec declares one report column.
//
// parameter: Parameter names the parameter type, Type the value type
// (float when empty). category: Category names the category. rollup: Of
// names the fallback column, Op the fold.
type ColumnSpec struct {
	ID        string `yaml:"id" validate:"required"`
	Kind      string `yaml:"kind" validate:"required,oneof=parameter category rollup"`
	Parameter string `yaml:"parameter" validate:"required_if=Kind parameter"`
	Type      string `yaml:"type" validate:"omitempty,oneof=float int bool string"`
	Category  string `yaml:"category" validate:"required_if=Kind category"`
	Of        string `yaml:"of"`
	Op        string `yaml:"op" validate:"omitempty,oneof=sum max min count"`
}

// ProductSpec declares the product tree.
type ProductSpec struct {
	Root        string           `yaml:"root" validate:"required"`
	Definitions []DefinitionSpec `yaml:"definitions" validate:"required,min=1,dive"`
	Values      []NestedSpec     `yaml:"values" validate:"dive"`
}

// DefinitionSpec declares an element definition.
type DefinitionSpec struct {
	ID         string      `yaml:"id"`
	ShortName  string      `yaml:"short_name" validate:"required"`
	Name       string      `yaml:"name"`
	Categories []string    `yaml:"categories" validate:"dive,required"`
	Parameters []ValueSpec `yaml:"parameters" validate:"dive"`
	Usages     []UsageSpec `yaml:"usages" validate:"dive"`
}

// UsageSpec declares an element usage of Definition.
type UsageSpec struct {
	ID         string      `yaml:"id"`
	ShortName  string      `yaml:"short_name" validate:"required"`
	Name       string      `yaml:"name"`
	Definition string      `yaml:"definition" validate:"required"`
	Categories []string    `yaml:"categories" validate:"dive,required"`
	Overrides  []ValueSpec `yaml:"overrides" validate:"dive"`
}

// ValueSpec is a parameter or override value set.
type ValueSpec struct {
	Type   string   `yaml:"type" validate:"required"`
	Owner  string   `yaml:"owner"`
	Values []string `yaml:"values"`
}

// NestedSpec pins a pre-resolved value on the element with the qualified
// short name Element, e.g. "sat.bat1".
type NestedSpec struct {
	Element string   `yaml:"element" validate:"required"`
	Type    string   `yaml:"type" validate:"required"`
	Owner   string   `yaml:"owner"`
	Values  []string `yaml:"values"`
}

// Load decodes a Document from r and validates it. Unknown fields are errors.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// LoadFile is Load on the named file.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return doc, nil
}
