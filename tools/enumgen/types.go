package main

import "fmt"

// FieldShape classifies a variant's reflected fields. The set is closed:
// after validation every variant is exactly one of the three.
type FieldShape int

const (
	// ShapeUnit marks a variant with no reflected fields.
	ShapeUnit FieldShape = iota
	// ShapePositional marks a variant whose reflected fields all lack a
	// stable name (embedded or tagged enum:"positional").
	ShapePositional
	// ShapeNamed marks a variant whose reflected fields all carry names.
	ShapeNamed
)

func (s FieldShape) String() string {
	switch s {
	case ShapeUnit:
		return "unit"
	case ShapePositional:
		return "positional"
	case ShapeNamed:
		return "named"
	default:
		return fmt.Sprintf("FieldShape(%d)", int(s))
	}
}

// AccessorKind identifies one of the four generated accessors.
type AccessorKind int

const (
	KindFields AccessorKind = iota
	KindNamedFields
	KindFieldsMut
	KindNamedFieldsMut
)

// primaryKinds is the full accessor set emitted for +enum:reflect;
// mutKinds is the subset emitted for the deprecated +enum:mut.
var (
	primaryKinds = []AccessorKind{KindFields, KindNamedFields, KindFieldsMut, KindNamedFieldsMut}
	mutKinds     = []AccessorKind{KindFieldsMut, KindNamedFieldsMut}
)

// Suffix returns the generated function name suffix for the kind.
func (k AccessorKind) Suffix() string {
	switch k {
	case KindFields:
		return "Fields"
	case KindNamedFields:
		return "NamedFields"
	case KindFieldsMut:
		return "FieldsMut"
	case KindNamedFieldsMut:
		return "NamedFieldsMut"
	default:
		return fmt.Sprintf("AccessorKind(%d)", int(k))
	}
}

// Named reports whether the kind carries field names in its result.
func (k AccessorKind) Named() bool {
	return k == KindNamedFields || k == KindNamedFieldsMut
}

// Mutable reports whether the kind returns pointers into the receiver.
func (k AccessorKind) Mutable() bool {
	return k == KindFieldsMut || k == KindNamedFieldsMut
}

// FieldInfo describes one reflected field of a variant.
type FieldInfo struct {
	Name       string // Go field name, the selector used in generated arms
	Reflected  string // name reported by the named accessors; "" when positional
	Type       string // source type text, kept for diagnostics
	Positional bool
}

// VariantInfo describes one variant struct of an enum. Field order matches
// the struct's declaration order.
type VariantInfo struct {
	Name          string
	Shape         FieldShape
	Fields        []FieldInfo
	ValueReceiver bool // marker method declared with a value receiver
}

// EnumInfo describes a sealed-interface enum accepted by the analyzer.
// Variant order matches source declaration order across the package's files.
type EnumInfo struct {
	Name     string
	Marker   string // the sealing method's name
	Variants []VariantInfo
	MutOnly  bool // declared with the deprecated +enum:mut directive
	File     string
	Line     int
}

// ValidationError represents a validation error
type ValidationError struct {
	Location string
	Message  string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}
