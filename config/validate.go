// Package config: document validation.
//
// Struct tags are checked with validator/v10 and reported under their YAML
// names; cross references and rollup loops are checked afterwards. Every
// problem is collected before Validate returns.

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report YAML names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Validate checks d. All problems are collected and returned together,
// wrapped in ErrInvalidDocument.
func (d *Document) Validate() error {
	var problems []string

	// 1. Struct tags
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		for _, fe := range verrs {
			problems = append(problems, formatFieldError(fe))
		}
	}

	// 2. Cross references
	problems = append(problems, d.crossCheck()...)

	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(problems, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Document.")

	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

func (d *Document) crossCheck() []string {
	var problems []string
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	// 1. Categories: unique, supers known
	cats := make(map[string]bool, len(d.Categories))
	for _, c := range d.Categories {
		if c.ShortName == "" {
			continue
		}
		if cats[c.ShortName] {
			report("category %q declared twice", c.ShortName)
		}
		cats[c.ShortName] = true
	}
	for _, c := range d.Categories {
		for _, s := range c.Super {
			if s != "" && !cats[s] {
				report("category %q: unknown super-category %q", c.ShortName, s)
			}
		}
	}

	// 2. Hierarchy: categories known, no duplicate siblings
	var checkLevel func(path string, l LevelSpec)
	checkLevel = func(path string, l LevelSpec) {
		if l.Category != "" && !cats[l.Category] {
			report("hierarchy %s: unknown category %q", path, l.Category)
		}
		seen := make(map[string]bool, len(l.Children))
		for _, ch := range l.Children {
			if seen[ch.Category] {
				report("hierarchy %s: category %q appears twice among children", path, ch.Category)
			}
			seen[ch.Category] = true
			checkLevel(path+"/"+ch.Category, ch)
		}
	}
	checkLevel(d.Hierarchy.Category, d.Hierarchy)

	// 3. Columns: unique ids, known categories and fallback columns
	cols := make(map[string]ColumnSpec, len(d.Columns))
	for _, c := range d.Columns {
		if c.ID == "" {
			continue
		}
		if _, dup := cols[c.ID]; dup {
			report("column %q declared twice", c.ID)
		}
		cols[c.ID] = c
	}
	for _, c := range d.Columns {
		switch c.Kind {
		case KindCategory:
			if c.Category != "" && !cats[c.Category] {
				report("column %q: unknown category %q", c.ID, c.Category)
			}
		case KindRollup:
			if c.Op == "" {
				report("column %q: op is required", c.ID)
			}
			if c.Op == "count" {
				continue
			}
			if c.Of == "" {
				report("column %q: of is required", c.ID)
			} else if _, ok := cols[c.Of]; !ok {
				report("column %q: unknown fallback column %q", c.ID, c.Of)
			}
		}
	}
	if loop := rollupLoop(d.Columns, cols); loop != "" {
		report("rollup columns fall back on each other: %s", loop)
	}

	// 4. Product: unique definitions, known references
	defs := make(map[string]bool, len(d.Product.Definitions))
	for _, def := range d.Product.Definitions {
		if def.ShortName == "" {
			continue
		}
		if defs[def.ShortName] {
			report("definition %q declared twice", def.ShortName)
		}
		defs[def.ShortName] = true
	}
	if d.Product.Root != "" && !defs[d.Product.Root] {
		report("product root %q is not a definition", d.Product.Root)
	}
	for _, def := range d.Product.Definitions {
		for _, c := range def.Categories {
			if c != "" && !cats[c] {
				report("definition %q: unknown category %q", def.ShortName, c)
			}
		}
		usages := make(map[string]bool, len(def.Usages))
		for _, u := range def.Usages {
			if usages[u.ShortName] {
				report("definition %q: usage %q declared twice", def.ShortName, u.ShortName)
			}
			usages[u.ShortName] = true
			if u.Definition != "" && !defs[u.Definition] {
				report("usage %s.%s: unknown definition %q", def.ShortName, u.ShortName, u.Definition)
			}
			for _, c := range u.Categories {
				if c != "" && !cats[c] {
					report("usage %s.%s: unknown category %q", def.ShortName, u.ShortName, c)
				}
			}
		}
	}

	return problems
}

// rollupLoop follows rollup fallbacks with White/Gray/Black marking and
// returns the first loop found as "a -> b -> a", or "".
func rollupLoop(columns []ColumnSpec, byID map[string]ColumnSpec) string {
	const (
		white = iota
		gray
		black
	)
	state := make(map[string]int, len(columns))

	var path []string
	var visit func(id string) string
	visit = func(id string) string {
		c, ok := byID[id]
		if !ok || c.Kind != KindRollup || c.Op == "count" || c.Of == "" {
			return ""
		}
		switch state[id] {
		case black:
			return ""
		case gray:
			return strings.Join(append(path, id), " -> ")
		}
		state[id] = gray
		path = append(path, id)
		if loop := visit(c.Of); loop != "" {
			return loop
		}
		path = path[:len(path)-1]
		state[id] = black

		return ""
	}

	for _, c := range columns {
		if loop := visit(c.ID); loop != "" {
			return loop
		}
	}

	return ""
}
