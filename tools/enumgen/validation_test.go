package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedField(name string) FieldInfo {
	return FieldInfo{Name: name, Reflected: name}
}

func TestValidateNoVariants(t *testing.T) {
	errs := validateEnums([]EnumInfo{{
		Name:   "Event",
		Marker: "isEvent",
		File:   "event.go",
		Line:   5,
	}})

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "no variants")
	assert.Contains(t, errs[0].Message, "isEvent()")
	assert.Equal(t, "event.go:5", errs[0].Location)
}

func TestValidateValueReceiver(t *testing.T) {
	errs := validateEnums([]EnumInfo{{
		Name:   "Event",
		Marker: "isEvent",
		File:   "event.go",
		Line:   5,
		Variants: []VariantInfo{
			{Name: "Ping", Shape: ShapeUnit, ValueReceiver: true},
		},
	}})

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "value receiver")
	assert.Contains(t, errs[0].Message, "Ping")
}

func TestValidateMixedShapes(t *testing.T) {
	errs := validateEnums([]EnumInfo{{
		Name: "Event",
		File: "event.go",
		Line: 5,
		Variants: []VariantInfo{
			{
				Name:  "Frame",
				Shape: ShapeNamed,
				Fields: []FieldInfo{
					{Name: "Seq", Positional: true},
					namedField("Body"),
				},
			},
		},
	}})

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "mixes positional and named fields")
}

func TestValidateDuplicateRename(t *testing.T) {
	errs := validateEnums([]EnumInfo{{
		Name: "Event",
		File: "event.go",
		Line: 5,
		Variants: []VariantInfo{
			{
				Name:  "Login",
				Shape: ShapeNamed,
				Fields: []FieldInfo{
					{Name: "User", Reflected: "name"},
					{Name: "Alias", Reflected: "name"},
				},
			},
		},
	}})

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, `reflects both User and Alias as "name"`)
}

func TestValidateCleanEnum(t *testing.T) {
	errs := validateEnums([]EnumInfo{{
		Name: "Event",
		File: "event.go",
		Line: 5,
		Variants: []VariantInfo{
			{Name: "Ping", Shape: ShapeUnit},
			{Name: "Login", Shape: ShapeNamed, Fields: []FieldInfo{namedField("User")}},
			{Name: "Resize", Shape: ShapePositional, Fields: []FieldInfo{
				{Name: "W", Positional: true},
				{Name: "H", Positional: true},
			}},
		},
	}})

	assert.Empty(t, errs)
}

func TestValidateAggregatesAllErrors(t *testing.T) {
	errs := validateEnums([]EnumInfo{{
		Name:   "Event",
		Marker: "isEvent",
		File:   "event.go",
		Line:   5,
		Variants: []VariantInfo{
			{Name: "Ping", Shape: ShapeUnit, ValueReceiver: true},
			{
				Name:  "Frame",
				Shape: ShapeNamed,
				Fields: []FieldInfo{
					{Name: "Seq", Positional: true},
					namedField("Body"),
				},
			},
		},
	}})

	assert.Len(t, errs, 2, "validation reports every error, not just the first")
}
