// Package mappings provides the immutable name table between the declared
// namespace (names the calling code is written against) and the runtime
// namespace (names in effect when the program executes).
//
// A Table is built once from ClassMapping entries, or from the ordered
// record stream handed over by a mapping source, and is never mutated
// afterwards. It is safe for concurrent use without coordination.
//
// Lookups never fail: a class, field or method that the table does not know
// is returned unchanged, since tables are expected to be incomplete for names
// that are identical in both namespaces.
//
// Method keys are the declared method name followed by the parameter
// descriptor in the runtime namespace, e.g. "tick" + "Lobf/a;I". The runtime
// namespace is used because overloads are only distinguishable after their
// parameter types have been renamed.
package mappings
