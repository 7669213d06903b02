// Package lvreport turns product trees into category-grouped report tables.
//
// What is lvreport?
//
//	A small, synchronous library that takes a flat list of nested engineering
//	elements and a filter tree of categories, and produces a pruned tree of
//	report rows with lazily computed, cross-referencing columns:
//		• Categories with transitive super-category membership
//		• Filter trees: one category per level, linear or branching
//		• Level skipping with invisible "ghost" rows holding the layout
//		• Columns: parameters, category flags, derived values, rollups
//		• Table projection with deterministic row keys
//
// Packages:
//
//	category/       Category, super-category closure, Library lookup
//	hierarchy/      the category filter tree (Level, Builder)
//	nested/         Definition, Usage, Element, Flatten, Index, value paths
//	datasource/     Generator, Node, Column bindings, Project
//	metrics/        Prometheus datasource.Recorder
//	config/         YAML report definitions: Load, Validate, Compile
//	cmd/reportgen   command line front end
//
// Quick example (see examples/satellite):
//
//	Project: sat                      total_mass = 25.8
//	├── Subsystem: pwr                total_mass = 13.8
//	│   ├── Equipment: bat1           mass = 3.5
//	│   ├── Equipment: bat2           mass = 4.1
//	│   └── Equipment: pcdu           mass = 6.2
//	└── [str]  no category, holds the level
//	    └── Equipment: panel          mass = 12
//
// Generation and evaluation are single-threaded; a Report must not be shared
// across goroutines while its columns are being read.
package lvreport
