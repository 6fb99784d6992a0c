// Command enumgen generates field-reflection accessors for sealed-interface
// enums.
//
// An enum is an interface with exactly one unexported niladic marker method,
// annotated with a +enum:reflect directive in its doc comment. Every struct
// in the package that declares the marker method (pointer receiver) is a
// variant. For an enum E, enumgen emits:
//
//	func EFields(v E) []any                     // field values, declaration order
//	func ENamedFields(v E) []enumreflect.Field  // (name, value) pairs
//	func EFieldsMut(v E) []any                  // pointers into the variant
//	func ENamedFieldsMut(v E) []enumreflect.Field
//	var EReflect = enumreflect.Accessor[E]{...}
//
// plus compile-time assertions that each variant satisfies E.
//
// Struct tags steer field handling: enum:"-" excludes a field, a field
// tagged enum:"positional" (or embedded) keeps its value slot but is
// dropped from the named accessors, and enum:"<name>" renames it. The
// deprecated +enum:mut directive emits only the two mutable accessors.
//
// Usage:
//
//	enumgen [flags] <file.go | directory>
//
// Given a directory, enumgen processes every file carrying a go:generate
// enumgen line or a +enum: directive. Output lands next to the input as
// <file>_enum.go (or <file>_enum_test.go for test files).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var (
	silent bool
	debug  bool
)

func init() {
	log.SetFlags(0)
}

// logf logs a message unless silent mode is enabled
func logf(format string, args ...any) {
	if !silent {
		log.Printf(format, args...)
	}
}

// debugf logs a message only when debug mode is enabled
func debugf(format string, args ...any) {
	if debug {
		log.Printf("debug: "+format, args...)
	}
}

func main() {
	flag.BoolVar(&silent, "silent", false, "suppress informational output")
	flag.BoolVar(&silent, "s", false, "suppress informational output (shorthand)")
	flag.BoolVar(&debug, "debug", false, "enable debug output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file.go | directory>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Generates enum field-reflection accessors for Go source files.\n")
		fmt.Fprintf(os.Stderr, "Annotate a sealed interface with +enum:reflect in its doc comment.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if os.Getenv("ENUMGEN_DEBUG") != "" {
		debug = true
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	target, err := filepath.Abs(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error resolving path %s: %v", flag.Arg(0), err)
	}

	var files []string
	if isDirectory(target) {
		files, err = discoverGoFiles(target)
		if err != nil {
			log.Fatalf("Error scanning directory %s: %v", target, err)
		}
		if len(files) == 0 {
			logf("No enum directives found in %s", target)
			return
		}
		debugf("Discovered %d file(s) in %s", len(files), target)
	} else {
		files = []string{target}
	}

	for _, file := range files {
		processFile(file)
	}
}

// processFile runs generation for one input file and writes the output
// sibling. Validation errors are all reported before exiting.
func processFile(inputFile string) {
	ctx, err := loadPackage(filepath.Dir(inputFile))
	if err != nil {
		log.Fatalf("Error parsing package for %s: %v", inputFile, err)
	}

	output, validationErrs, err := generateFile(ctx, inputFile)
	if err != nil {
		log.Fatalf("Error generating code for %s: %v", inputFile, err)
	}
	if len(validationErrs) > 0 {
		for _, verr := range validationErrs {
			logf("%s", verr.Error())
		}
		log.Fatalf("Found %d validation error(s) in %s", len(validationErrs), inputFile)
	}
	if output == nil {
		debugf("Nothing to generate for %s", inputFile)
		return
	}

	outFile := outputPath(inputFile)
	if err := os.WriteFile(outFile, output, 0644); err != nil {
		log.Fatalf("Error writing %s: %v", outFile, err)
	}
	logf("Generated %s", outFile)
}

// generateFile produces the formatted output file for inputFile, or nil
// output when the file declares no enums (or all of them already have
// hand-written accessors).
func generateFile(p *packageContext, inputFile string) ([]byte, []ValidationError, error) {
	enums, errs := analyzeFile(p, inputFile)
	errs = append(errs, validateEnums(enums)...)
	if len(errs) > 0 {
		return nil, errs, nil
	}
	if len(enums) == 0 {
		return nil, nil, nil
	}

	gen, err := NewCodeGenerator()
	if err != nil {
		return nil, nil, fmt.Errorf("initializing templates: %w", err)
	}

	var blocks []string
	for _, enum := range enums {
		if enum.MutOnly {
			logf("%s: %s%s is deprecated, use %s%s for the full accessor set",
				enum.Name, directivePrefix, directiveMut, directivePrefix, directiveReflect)
		}

		wanted := len(primaryKinds)
		if enum.MutOnly {
			wanted = len(mutKinds)
		}
		existing := p.existingAccessors(enum)
		if len(existing) == wanted {
			logf("Skipping %s: accessors already defined (%s)", enum.Name, strings.Join(existing, ", "))
			continue
		}
		if len(existing) > 0 {
			errs = append(errs, ValidationError{
				Location: fmt.Sprintf("%s:%d", filepath.Base(enum.File), enum.Line),
				Message: fmt.Sprintf("enum %s has a partial hand-written accessor set (%s): define all or none",
					enum.Name, strings.Join(existing, ", ")),
			})
			continue
		}

		block, err := gen.GenerateEnum(enum)
		if err != nil {
			return nil, nil, fmt.Errorf("generating %s: %w", enum.Name, err)
		}
		blocks = append(blocks, block)
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}
	if len(blocks) == 0 {
		return nil, nil, nil
	}

	header, err := gen.GenerateFileHeader(filepath.Base(inputFile), p.packageName(inputFile), extractBuildTags(inputFile))
	if err != nil {
		return nil, nil, fmt.Errorf("generating file header: %w", err)
	}

	src := header + "\n" + strings.Join(blocks, "\n")
	formatted, err := formatSource(outputPath(inputFile), []byte(src))
	if err != nil {
		return nil, nil, err
	}
	return formatted, nil, nil
}

// outputPath derives the generated sibling's path. Test files generate
// test siblings so the accessors stay inside the test build.
func outputPath(inputFile string) string {
	if strings.HasSuffix(inputFile, "_test.go") {
		return strings.TrimSuffix(inputFile, "_test.go") + "_enum_test.go"
	}
	return strings.TrimSuffix(inputFile, ".go") + "_enum.go"
}
