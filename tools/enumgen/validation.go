package main

import (
	"fmt"
	"path/filepath"
)

// validateEnums checks the analyzer's output for declarations the
// synthesizer cannot honor. All errors are aggregated; nothing fails fast.
func validateEnums(enums []EnumInfo) []ValidationError {
	var errs []ValidationError

	for _, enum := range enums {
		location := fmt.Sprintf("%s:%d", filepath.Base(enum.File), enum.Line)

		if len(enum.Variants) == 0 {
			errs = append(errs, ValidationError{
				Location: location,
				Message:  fmt.Sprintf("enum %s has no variants: no struct type declares %s()", enum.Name, enum.Marker),
			})
		}

		for _, variant := range enum.Variants {
			if variant.ValueReceiver {
				errs = append(errs, ValidationError{
					Location: location,
					Message: fmt.Sprintf("variant %s of %s declares %s with a value receiver; mutable accessors need pointer receivers",
						variant.Name, enum.Name, enum.Marker),
				})
			}
			if mixesShapes(variant) {
				errs = append(errs, ValidationError{
					Location: location,
					Message:  fmt.Sprintf("variant %s of %s mixes positional and named fields", variant.Name, enum.Name),
				})
			}
			errs = append(errs, duplicateNames(enum, variant)...)
		}
	}

	return errs
}

// mixesShapes reports whether a variant carries both positional and named
// fields. The shape set is closed; a mix has no defined accessor output.
func mixesShapes(variant VariantInfo) bool {
	positional := 0
	for _, f := range variant.Fields {
		if f.Positional {
			positional++
		}
	}
	return positional > 0 && positional < len(variant.Fields)
}

// duplicateNames rejects reflected-name collisions within one variant,
// including collisions introduced by enum:"<name>" renames.
func duplicateNames(enum EnumInfo, variant VariantInfo) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]string)

	for _, f := range variant.Fields {
		if f.Reflected == "" {
			continue
		}
		if prev, dup := seen[f.Reflected]; dup {
			errs = append(errs, ValidationError{
				Location: fmt.Sprintf("%s:%d", filepath.Base(enum.File), enum.Line),
				Message: fmt.Sprintf("variant %s of %s reflects both %s and %s as %q",
					variant.Name, enum.Name, prev, f.Name, f.Reflected),
			})
			continue
		}
		seen[f.Reflected] = f.Name
	}

	return errs
}
