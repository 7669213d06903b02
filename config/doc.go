// Package config loads report definitions from YAML.
//
// A Document bundles everything one report needs: the category library, the
// category filter tree, the column shape and a product tree. Load decodes
// and validates; Compile turns a valid Document into the library,
// hierarchy, datasource and nested values the generator consumes.
//
// Example document:
//
//	categories:
//	  - short_name: Project
//	  - short_name: Equipment
//	  - short_name: Battery
//	    super: [Equipment]
//	hierarchy:
//	  category: Project
//	  children:
//	    - category: Equipment
//	      field: equipment
//	columns:
//	  - id: mass
//	    kind: parameter
//	    parameter: m
//	    type: float
//	  - id: total_mass
//	    kind: rollup
//	    of: mass
//	    op: sum
//	product:
//	  root: sat
//	  definitions:
//	    - short_name: sat
//	      categories: [Project]
//	      usages:
//	        - short_name: bat1
//	          definition: cell
//	    - short_name: cell
//	      categories: [Equipment]
//	      parameters:
//	        - type: m
//	          values: ["2.5"]
//
// Validation happens in two passes. Struct tags (go-playground/validator)
// check shapes and enumerations; a second pass checks cross references:
// category, definition and column names, unique ids and rollup chains that
// would read themselves. All problems are reported at once, wrapped in
// ErrInvalidDocument.
package config
