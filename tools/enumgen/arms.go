package main

import (
	"fmt"
	"strings"
)

// armBody synthesizes the case body for one variant under one accessor
// kind. It never fails: every shape/kind combination has a defined result.
//
//	shape      | Fields / FieldsMut          | NamedFields / NamedFieldsMut
//	-----------+-----------------------------+-----------------------------
//	unit       | nil                         | nil
//	positional | values / pointers, in order | nil (no stable names)
//	named      | values / pointers, in order | (name, value/pointer) pairs
func armBody(v VariantInfo, kind AccessorKind) string {
	if len(v.Fields) == 0 {
		return "return nil"
	}

	if kind.Named() {
		if v.Shape != ShapeNamed {
			// Positional fields have no stable names; the named accessors
			// omit them rather than inventing placeholders.
			return "return nil"
		}
		var b strings.Builder
		b.WriteString("return []enumreflect.Field{\n")
		for _, f := range v.Fields {
			fmt.Fprintf(&b, "{Name: %q, Value: %s},\n", f.Reflected, fieldRef(f, kind))
		}
		b.WriteString("}")
		return b.String()
	}

	refs := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		refs[i] = fieldRef(f, kind)
	}
	return "return []any{" + strings.Join(refs, ", ") + "}"
}

// fieldRef renders the selector for one field: a plain read for the
// read-only kinds, an address-of for the mutable kinds.
func fieldRef(f FieldInfo, kind AccessorKind) string {
	if kind.Mutable() {
		return "&v." + f.Name
	}
	return "v." + f.Name
}
