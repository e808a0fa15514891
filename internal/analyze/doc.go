// Package analyze loads Go packages from source and exposes their named
// struct types as introspect classes.
//
// It uses golang.org/x/tools/go/packages with AST and go/types, so classes
// can be checked against descriptions without building or running the code
// that defines them. Members found this way describe the target only; their
// handles return introspect.ErrNotInvocable.
//
// Source comments adjust what is exposed:
//
//	//remap:class test.Level
//	type Level struct{ ... }
//
// names the class "test.Level" instead of "<import path>.Level", and
//
//	//remap:static Level
//	var DefaultLevel = 50
//
// declares a package level variable or func as a static member of Level.
// Funcs named New<Type> returning the type are its constructors.
package analyze
