// Package mapsource reads mapping files and turns them into the record
// stream consumed by the mappings table.
//
// # Schema Overview
//
//	version: "1"
//	namespaces: [named, obf]
//	classes:
//	  - names: [pkg.Foo, pkg.A]
//	    fields:
//	      - names: [bar, b]
//	    methods:
//	      - names: [tick, a]
//	        descriptor: (Lpkg/Foo;I)V
//	  - names: pkg.Same          # scalar: identical in every namespace
//
// A file may carry any number of namespaces, one name per namespace for
// every entry. Method descriptors are written in the first namespace and
// translated when records are produced for another pair. Exactly two
// namespaces take part in one table: the declared ("from") and the runtime
// ("to") namespace.
package mapsource
