package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"reflection-remapper/internal/common"
	"reflection-remapper/internal/descriptor"
	"reflection-remapper/introspect"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

const (
	directivePrefix = "//remap:"
	classDirective  = "class"
	staticDirective = "static"
	ctorPrefix      = "New"
)

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	// Dir is the directory packages are loaded from. Empty means the
	// current directory.
	Dir string

	graph *TypeGraph
	names map[*types.TypeName]string // class names set by //remap:class
	infos map[*types.TypeName]*ClassInfo
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
		names: make(map[*types.TypeName]string),
		infos: make(map[*types.TypeName]*ClassInfo),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./testdata/game").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// Class names must be known before any member type is named.
	for _, pkg := range pkgs {
		if err := a.collectNames(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	for _, pkg := range pkgs {
		if err := a.processStatics(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// collectNames records the //remap:class names of the package's types.
func (a *Analyzer) collectNames(pkg *packages.Package) error {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)

				name, ok := directive(classDirective, specDoc(gen, ts.Doc)...)
				if !ok {
					continue
				}

				if name == "" {
					return fmt.Errorf("%s: empty class name", pkg.Fset.Position(ts.Pos()))
				}

				obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}

				a.names[obj] = name
			}
		}
	}

	return nil
}

// processPackage extracts the named struct types of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 {
			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		info := a.analyzeClass(typeName, named, st)

		if prev, dup := a.graph.Classes[info.Name]; dup {
			return fmt.Errorf("%w: %s names both %s and %s", introspect.ErrDuplicateClass, info.Name, prev.ID, info.ID)
		}

		a.graph.Classes[info.Name] = info
		a.infos[typeName] = info
		pkgInfo.Classes = append(pkgInfo.Classes, info.Name)
	}

	for _, name := range scope.Names() {
		fn, ok := scope.Lookup(name).(*types.Func)
		if !ok || !strings.HasPrefix(name, ctorPrefix) {
			continue
		}

		if info, ok := a.constructed(fn); ok {
			info.Constructors = append(info.Constructors, a.analyzeFunc(fn, true))
		}
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	return nil
}

// analyzeClass builds the class of a named struct type.
func (a *Analyzer) analyzeClass(obj *types.TypeName, named *types.Named, st *types.Struct) *ClassInfo {
	info := &ClassInfo{
		ID:   TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()},
		Name: a.className(obj),
	}

	for i := range st.NumFields() {
		field := st.Field(i)

		info.Fields = append(info.Fields, FieldInfo{
			Name:     field.Name(),
			Type:     a.typeName(field.Type()),
			Exported: field.Exported(),
			Embedded: field.Embedded(),
			Index:    i,
		})

		if field.Embedded() {
			if _, ok := derefStruct(field.Type()); ok {
				info.Embedded = append(info.Embedded, a.typeName(field.Type()))
			}
		}
	}

	mset := types.NewMethodSet(types.NewPointer(named))
	for sel := range mset.Methods() {
		fn, ok := sel.Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		m := a.analyzeFunc(fn, false)
		m.Promoted = len(sel.Index()) > 1
		info.Methods = append(info.Methods, m)
	}

	return info
}

// processStatics attaches //remap:static variables and funcs to their
// classes.
func (a *Analyzer) processStatics(pkg *packages.Package) error {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Recv != nil {
					continue
				}

				target, ok := directive(staticDirective, d.Doc)
				if !ok {
					continue
				}

				info, err := a.staticOwner(pkg, target, d.Pos())
				if err != nil {
					return err
				}

				fn := pkg.TypesInfo.Defs[d.Name].(*types.Func)
				info.Methods = append(info.Methods, a.analyzeFunc(fn, true))

			case *ast.GenDecl:
				if d.Tok != token.VAR {
					continue
				}

				for _, spec := range d.Specs {
					vs := spec.(*ast.ValueSpec)

					target, ok := directive(staticDirective, specDoc(d, vs.Doc)...)
					if !ok {
						continue
					}

					info, err := a.staticOwner(pkg, target, vs.Pos())
					if err != nil {
						return err
					}

					for _, ident := range vs.Names {
						v, ok := pkg.TypesInfo.Defs[ident].(*types.Var)
						if !ok {
							continue
						}

						info.Fields = append(info.Fields, FieldInfo{
							Name:     v.Name(),
							Type:     a.typeName(v.Type()),
							Exported: v.Exported(),
							Static:   true,
							Index:    -1,
						})
					}
				}
			}
		}
	}

	return nil
}

func (a *Analyzer) staticOwner(pkg *packages.Package, target string, pos token.Pos) (*ClassInfo, error) {
	obj, ok := pkg.Types.Scope().Lookup(target).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s: static member of unknown type %q", pkg.Fset.Position(pos), target)
	}

	info, ok := a.infos[obj]
	if !ok {
		return nil, fmt.Errorf("%s: static member of %s, which is not a struct", pkg.Fset.Position(pos), target)
	}

	return info, nil
}

// constructed returns the class a New<Type> func constructs. The func must
// return the type or a pointer to it, optionally followed by an error.
func (a *Analyzer) constructed(fn *types.Func) (*ClassInfo, bool) {
	sig := fn.Type().(*types.Signature)

	results := sig.Results()
	switch {
	case results.Len() == 1:
	case results.Len() == 2 && isError(results.At(1).Type()):
	default:
		return nil, false
	}

	t := results.At(0).Type()
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	named, ok := t.(*types.Named)
	if !ok || fn.Name() != ctorPrefix+named.Obj().Name() {
		return nil, false
	}

	info, ok := a.infos[named.Obj()]

	return info, ok
}

func (a *Analyzer) analyzeFunc(fn *types.Func, static bool) MethodInfo {
	sig := fn.Type().(*types.Signature)

	m := MethodInfo{Name: fn.Name(), Static: static}

	for v := range sig.Params().Variables() {
		m.Params = append(m.Params, a.typeName(v.Type()))
	}

	for v := range sig.Results().Variables() {
		m.Results = append(m.Results, a.typeName(v.Type()))
	}

	return m
}

func (a *Analyzer) className(obj *types.TypeName) string {
	if name, ok := a.names[obj]; ok {
		return name
	}

	return TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}.String()
}

// typeName names t the way introspect names the equivalent reflect type.
func (a *Analyzer) typeName(t types.Type) string {
	t = types.Unalias(t)

	for {
		p, ok := t.(*types.Pointer)
		if !ok {
			break
		}

		t = types.Unalias(p.Elem())
	}

	switch tt := t.(type) {
	case *types.Basic:
		// byte and rune report their canonical kinds.
		return introspect.PredeclaredName(types.Typ[tt.Kind()].Name())
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() == nil {
			return introspect.PredeclaredName(obj.Name())
		}

		return a.className(obj)
	case *types.Slice:
		return descriptor.ArrayOf(a.typeName(tt.Elem()))
	case *types.Array:
		return descriptor.ArrayOf(a.typeName(tt.Elem()))
	case *types.Interface:
		if tt.Empty() {
			return introspect.PredeclaredName("any")
		}
	}

	return types.TypeString(t, func(p *types.Package) string { return common.PkgAlias(p.Path()) })
}

func derefStruct(t types.Type) (*types.Named, bool) {
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		t = p.Elem()
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, false
	}

	_, ok = named.Underlying().(*types.Struct)

	return named, ok
}

func isError(t types.Type) bool {
	return types.Identical(t, types.Universe.Lookup("error").Type())
}

// specDoc returns the doc comments of a spec. An ungrouped declaration keeps
// its doc on the declaration itself.
func specDoc(gen *ast.GenDecl, doc *ast.CommentGroup) []*ast.CommentGroup {
	if gen.Lparen.IsValid() {
		return []*ast.CommentGroup{doc}
	}

	return []*ast.CommentGroup{doc, gen.Doc}
}

// directive returns the argument of the first //remap:<key> line in groups.
func directive(key string, groups ...*ast.CommentGroup) (string, bool) {
	prefix := directivePrefix + key

	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			rest, ok := strings.CutPrefix(c.Text, prefix)
			if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
				continue
			}

			return strings.TrimSpace(rest), true
		}
	}

	return "", false
}
