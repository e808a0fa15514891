package remap

type noopRemapper struct{}

var noop Remapper = noopRemapper{}

// Noop returns a Remapper that passes every name through unchanged.
func Noop() Remapper {
	return noop
}

func (noopRemapper) RemapClass(name string) string { return name }

func (noopRemapper) RemapField(_, field string) string { return field }

func (noopRemapper) RemapMethod(_, method string, _ ...string) string { return method }

func (noopRemapper) RemapClassOrArray(name string) string { return name }
