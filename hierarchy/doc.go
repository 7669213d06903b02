// SPDX-License-Identifier: MIT

// Package hierarchy builds the category filter tree that drives report
// generation.
//
// What:
//
//   - Level: one node of the filter tree. It names the Category an element must
//     carry to produce a report row at that depth (GroupLevel, 0 = root),
//     the table field for that depth, and optional footer metadata.
//   - CreateTopLevelCategoryHierarchy / AddChildCategory: top-down construction.
//   - Builder: fluent construction of a linear chain from a category.Library by
//     short name.
//
// Shape:
//
//	The sampled design is a single chain root → child → grandchild. Child()
//	returns that chain. A Level may also hold several children (Children());
//	the report generator then tries each sibling in insertion order. Adding the
//	same category twice under one parent is rejected.
//
//	  Project (0)
//	    └── Module (1)
//	          └── Equipment (2)
//
// Errors:
//
//   - ErrNilCategory     nil category passed to a constructor.
//   - ErrDuplicateLevel  category already present among the parent's children.
//   - ErrEmptyHierarchy  Builder.Build without any AddLevel.
//   - category.ErrCategoryNotFound  Builder.AddLevel with an unknown short name.
package hierarchy
