// Package datasource builds hierarchical report trees from a flat list of
// nested elements and a category filter tree, and projects them into tables.
//
// What:
//
//   - Generator: walks the product tree once and keeps only the elements that
//     match a level of the filter tree, plus the invisible "ghost" nodes
//     needed to hold a level-skipped match in place. Everything else is
//     pruned.
//   - Node: one report row. Holds the element, the level it matched, its
//     parent (not owned) and children (owned), and a lazily evaluated cache
//     of column values.
//   - Column, Shape: a Shape is the ordered set of column factories. Every
//     node gets a fresh Column per declared id. Columns are initialized when
//     the node is created and computed at most once, on first read.
//   - Built-in columns: ParameterColumn (and the Float/Int/Bool/String
//     shortcuts), CategoryColumn, DerivedColumn, RollupColumn.
//   - Project: flattens a Report into a Table in pre-order.
//
// Matching:
//
//	Element categories come from the usage, or from the definition when the
//	usage carries none. A level matches on direct category membership.
//	When no candidate level matches, an element may still fill the level
//	below a skippable candidate: the first unmatched element between it and
//	its parent then stands in, invisibly, for the skipped level.
//
// Evaluation:
//
//	Cells move White -> Gray -> Black. Reading a Gray cell means a column
//	depends on itself and fails with ErrCircularColumnDependency. Values and
//	errors are cached alike, so a failing column is computed once.
//
// Complexity:
//
//   - Generate: O(E * C) for E elements and C candidate levels per step.
//   - Project:  O(R * (G + K)) for R rows, G groups and K columns, plus the
//     cost of the columns themselves.
//
// Errors:
//
//   - ErrNilHierarchy, ErrNilShape    missing build inputs.
//   - ErrMissingRootElement           the root is not in the element list.
//   - ErrUnknownColumn                id was never declared on the Shape.
//   - ErrNoSuchParameter              parameter type absent on the element.
//   - ErrNoValue                      the value set holds the "-" marker.
//   - ErrParse (*ParseError)          raw value did not parse.
//   - ErrCircularColumnDependency     a column read itself, directly or not.
//   - ErrColumnType                   cached value is not of the asked type.
//   - *CellError                      per-cell attribution in a Table.
//
// Concurrency:
//
//	Generation and evaluation are synchronous. Node caches are unguarded;
//	a Report must not be evaluated from several goroutines.
package datasource
