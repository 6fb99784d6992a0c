package enumreflect

// Field pairs a reflected field name with its type-erased value. For the
// read-only accessors Value holds a copy of the field; for the mutable
// accessors it holds a pointer into the variant the accessor was called on.
type Field struct {
	Name  string
	Value any
}

// Accessor bundles the four generated accessors for an enum type E in one
// value bound to the enum's name. enumgen emits a package-level
//
//	var <Enum>Reflect = enumreflect.Accessor[<Enum>]{...}
//
// for every type processed with the +enum:reflect directive.
type Accessor[E any] struct {
	// Fields returns the active variant's field values in declaration order.
	Fields func(E) []any

	// NamedFields returns (name, value) pairs for named-field variants, in
	// declaration order. Positional and unit variants yield no entries.
	NamedFields func(E) []Field

	// FieldsMut returns pointers to the active variant's fields, in
	// declaration order. Writes through the pointers are visible on the
	// variant itself.
	FieldsMut func(E) []any

	// NamedFieldsMut is NamedFields with pointers instead of values.
	NamedFieldsMut func(E) []Field
}

// Names returns the reflected field names of v's active variant in
// declaration order. Unit and positional variants have no names.
func (a Accessor[E]) Names(v E) []string {
	fields := a.NamedFields(v)
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// Get looks up a field of v's active variant by reflected name and returns
// its value. The second result reports whether the name exists.
func (a Accessor[E]) Get(v E, name string) (any, bool) {
	for _, f := range a.NamedFields(v) {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// GetMut is Get over the mutable accessor: the returned value is a pointer
// to the field's storage, suitable for Set.
func (a Accessor[E]) GetMut(v E, name string) (any, bool) {
	for _, f := range a.NamedFieldsMut(v) {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}
