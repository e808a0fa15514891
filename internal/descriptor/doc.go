// Package descriptor converts type names into canonical descriptors.
//
// A type is named by its class-or-array name, the format used by
// lookup-by-name APIs:
//
//	int            primitive
//	pkg.Foo        object type, dot separated
//	[I             array of int
//	[[Lpkg.Foo;    two dimensional array of pkg.Foo
//
// Descriptors are the slash separated encoding of those names:
//
//	long→J int→I char→C short→S byte→B double→D float→F boolean→Z void→V
//	pkg.Foo → Lpkg/Foo;
//	[Lpkg.Foo; → [Lpkg/Foo;
//
// Parameter descriptors are the concatenation of the parameter encodings.
// They are used as the overload-disambiguating suffix of method keys, so the
// encoding is injective over dot separated names.
package descriptor
