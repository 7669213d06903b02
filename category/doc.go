// Package category models engineering classification categories and the
// library they are looked up in.
//
// What:
//
//   - Category: a short name, a display name and a set of super-categories.
//     Membership is transitive: a category "is a" every category reachable
//     through its super-category chain.
//   - Library: an insertion-ordered registry of categories keyed by short name,
//     the stand-in for a reference data library chain.
//
// Identity:
//
//	Two categories are equal when they are the same pointer or share a short
//	name. A Library refuses duplicate short names, so inside one library the
//	short name is the identity.
//
// Complexity:
//
//   - IsA / Closure: O(C) where C = categories reachable through super chains.
//   - Library.Add / Get: O(1) amortized.
//
// Errors:
//
//   - ErrEmptyShortName     category has no short name.
//   - ErrDuplicateCategory  short name already registered in the library.
//   - ErrCategoryNotFound   short name unknown to the library.
package category
