// Package check binds descriptions against target classes and reports every
// failure as a diagnostic instead of stopping at the first one.
package check

import (
	"errors"
	"log/slog"
	"sort"
	"strings"

	"reflection-remapper/internal/descriptor"
	"reflection-remapper/internal/diagnostic"
	"reflection-remapper/introspect"
	"reflection-remapper/proxy"
	"reflection-remapper/remap"
)

// Config configures a check.
type Config struct {
	// Logger receives debug logs. Nil discards them.
	Logger *slog.Logger
	// VerifyHierarchy is passed on to the binder.
	VerifyHierarchy bool
	// Suggestions is the number of similar member names attached to missing
	// member diagnostics.
	Suggestions int
	// ReportUnmapped adds an info for every declared class name the
	// mappings pass through unchanged.
	ReportUnmapped bool
}

// DefaultConfig returns the default check configuration.
func DefaultConfig() Config {
	return Config{
		VerifyHierarchy: true,
		Suggestions:     3,
		ReportUnmapped:  true,
	}
}

// Run binds every description through remapper against the classes of
// loader. A description that fails to bind yields one error diagnostic.
func Run(descs []*proxy.Description, remapper remap.Remapper, loader introspect.Loader, config Config) *diagnostic.Diagnostics {
	log := config.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	rec := &recordingRemapper{Remapper: remapper, unmapped: make(map[string]bool)}

	factory := proxy.NewFactory(rec, loader, proxy.Config{
		Logger:          config.Logger,
		VerifyHierarchy: config.VerifyHierarchy,
		Suggestions:     config.Suggestions,
	})

	diags := &diagnostic.Diagnostics{}

	for _, d := range descs {
		obj, err := factory.Bind(d)
		if err != nil {
			log.Debug("description failed to bind", "description", d.Name, "error", err)
			diags.Add(diagnose(d.Name, err))

			continue
		}

		log.Debug("description bound", "description", d.Name, "target", obj.Target().Name(),
			"declarations", len(obj.Declarations()))
	}

	if config.ReportUnmapped {
		for _, name := range rec.Unmapped() {
			diags.AddInfo(diagnostic.CodeUnmappedClass, name+" has no mapping and is used as is", "", "")
		}
	}

	return diags
}

// diagnose turns a bind error into a diagnostic.
func diagnose(description string, err error) diagnostic.Diagnostic {
	diag := diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticError,
		Code:        diagnostic.CodeBindFailed,
		Message:     err.Error(),
		Description: description,
	}

	var bindErr *proxy.BindError
	if errors.As(err, &bindErr) {
		diag.Decl = bindErr.Decl
		diag.Message = bindErr.Err.Error()
	}

	var (
		missingField  *proxy.MissingFieldError
		missingMethod *proxy.MissingMethodError
		missingCtor   *proxy.MissingConstructorError
		configErr     *proxy.ConfigurationError
	)

	switch {
	case errors.As(err, &missingField):
		diag.Code = diagnostic.CodeMissingField
		diag.Suggestions = missingField.Suggestions
		plain := *missingField
		plain.Suggestions = nil
		diag.Message = plain.Error()
	case errors.As(err, &missingMethod):
		diag.Code = diagnostic.CodeMissingMethod
		diag.Suggestions = missingMethod.Suggestions
		plain := *missingMethod
		plain.Suggestions = nil
		diag.Message = plain.Error()
	case errors.As(err, &missingCtor):
		diag.Code = diagnostic.CodeMissingConstructor
	case errors.As(err, &configErr):
		diag.Code = diagnostic.CodeConfiguration
		diag.Message = configErr.Error()
	}

	return diag
}

// recordingRemapper records declared class names that its delegate passes
// through unchanged. It is not safe for concurrent use.
type recordingRemapper struct {
	remap.Remapper

	unmapped map[string]bool
}

func (r *recordingRemapper) RemapClass(name string) string {
	out := r.Remapper.RemapClass(name)
	r.record(name, out)

	return out
}

func (r *recordingRemapper) RemapClassOrArray(name string) string {
	out := r.Remapper.RemapClassOrArray(name)

	elem := name
	if arr, ok := descriptor.SplitArray(name); ok {
		if arr.Primitive {
			return out
		}

		elem = arr.Elem
	}

	if out == name {
		r.record(elem, elem)
	}

	return out
}

func (r *recordingRemapper) record(in, out string) {
	if in != out || in == "" || descriptor.IsPrimitive(in) ||
		strings.HasPrefix(in, introspect.BuiltinPkg+".") {
		return
	}

	r.unmapped[in] = true
}

// Unmapped returns the recorded names, sorted.
func (r *recordingRemapper) Unmapped() []string {
	names := make([]string, 0, len(r.unmapped))
	for name := range r.unmapped {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
