package remap

// WithClassNamePreprocessor returns a Remapper that applies fn to declared
// class names before handing them to delegate. Field and method remapping
// pass through to delegate unchanged.
func WithClassNamePreprocessor(delegate Remapper, fn func(string) string) Remapper {
	return &preprocessingRemapper{delegate: delegate, fn: fn}
}

type preprocessingRemapper struct {
	delegate Remapper
	fn       func(string) string
}

func (r *preprocessingRemapper) RemapClass(name string) string {
	return r.delegate.RemapClass(r.fn(name))
}

func (r *preprocessingRemapper) RemapField(owner, field string) string {
	return r.delegate.RemapField(owner, field)
}

func (r *preprocessingRemapper) RemapMethod(owner, method string, params ...string) string {
	return r.delegate.RemapMethod(owner, method, params...)
}

func (r *preprocessingRemapper) RemapClassOrArray(name string) string {
	return remapClassOrArray(name, r.RemapClass)
}
