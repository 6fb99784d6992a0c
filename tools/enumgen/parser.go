package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
)

const (
	directivePrefix  = "+enum:"
	directiveReflect = "reflect"
	directiveMut     = "mut"
)

// parsedFile couples a parsed source file with the path it was read from.
type parsedFile struct {
	name string
	file *ast.File
}

// packageContext holds every parsed file contributing declarations to one
// package directory. Variant structs and marker methods may live in any of
// them; generation targets a single file at a time.
type packageContext struct {
	fset  *token.FileSet
	files []parsedFile
}

// isGeneratedOutput reports whether a file name is prior enumgen output.
// Such files are excluded from analysis so re-running the generator sees
// only the hand-written declarations.
func isGeneratedOutput(name string) bool {
	return strings.HasSuffix(name, "_enum.go") || strings.HasSuffix(name, "_enum_test.go")
}

// loadPackage parses every Go source file in dir except prior generator
// output. Files are visited in directory order, which fixes cross-file
// variant ordering.
func loadPackage(dir string) (*packageContext, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	ctx := &packageContext{fset: token.NewFileSet()}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") || isGeneratedOutput(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		file, err := parser.ParseFile(ctx.fset, path, nil, parser.ParseComments)
		if err != nil {
			return nil, err
		}
		ctx.files = append(ctx.files, parsedFile{name: path, file: file})
	}
	return ctx, nil
}

// packageName returns the package clause of the named file.
func (p *packageContext) packageName(filename string) string {
	for _, pf := range p.files {
		if pf.name == filename {
			return pf.file.Name.Name
		}
	}
	return ""
}

// typeDecl couples a type spec with the file and declaration it came from.
type typeDecl struct {
	file string
	decl *ast.GenDecl
	spec *ast.TypeSpec
}

// typeDecls returns every type declaration in the context, in file order
// then source order.
func (p *packageContext) typeDecls() []typeDecl {
	var decls []typeDecl
	for _, pf := range p.files {
		for _, decl := range pf.file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				if typeSpec, ok := spec.(*ast.TypeSpec); ok {
					decls = append(decls, typeDecl{file: pf.name, decl: genDecl, spec: typeSpec})
				}
			}
		}
	}
	return decls
}

// methodIndex maps method name -> receiver type name -> true when the
// receiver is a pointer.
func (p *packageContext) methodIndex() map[string]map[string]bool {
	idx := make(map[string]map[string]bool)
	for _, pf := range p.files {
		for _, decl := range pf.file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) == 0 {
				continue
			}
			recvType := fn.Recv.List[0].Type
			recvName := extractReceiverType(recvType)
			if recvName == "" {
				continue
			}
			_, isPointer := recvType.(*ast.StarExpr)
			receivers := idx[fn.Name.Name]
			if receivers == nil {
				receivers = make(map[string]bool)
				idx[fn.Name.Name] = receivers
			}
			receivers[recvName] = isPointer
		}
	}
	return idx
}

// existingAccessors returns the names of hand-written package-level
// functions that collide with the enum's generated accessor set.
func (p *packageContext) existingAccessors(enum EnumInfo) []string {
	kinds := primaryKinds
	if enum.MutOnly {
		kinds = mutKinds
	}
	want := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		want[enum.Name+k.Suffix()] = true
	}

	var found []string
	for _, pf := range p.files {
		for _, decl := range pf.file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil {
				continue
			}
			if want[fn.Name.Name] {
				found = append(found, fn.Name.Name)
			}
		}
	}
	return found
}

// parseEnumDirective extracts a +enum: directive name from one comment line.
func parseEnumDirective(comment string) (string, bool) {
	text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "//"))
	if !strings.HasPrefix(text, directivePrefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(text, directivePrefix)), true
}

// enumDirective scans a declaration's doc comments for a +enum: directive.
// The directive may sit on the type spec or on the enclosing declaration.
func enumDirective(docs ...*ast.CommentGroup) (string, bool) {
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for _, comment := range doc.List {
			if directive, ok := parseEnumDirective(comment.Text); ok {
				return directive, true
			}
		}
	}
	return "", false
}

// parseEnumTag extracts the enum:"..." value from a struct tag.
func parseEnumTag(tag string) string {
	if tag == "" {
		return ""
	}

	parts := strings.Split(tag, `enum:"`)
	if len(parts) < 2 {
		return ""
	}
	return strings.Split(parts[1], `"`)[0]
}

// analyzeFile extracts the enums declared in target, with variants resolved
// across the whole package context. Structural diagnostics (directive on a
// non-enum declaration, unsealed interface) are returned alongside; the
// offending declaration produces no EnumInfo.
func analyzeFile(p *packageContext, target string) ([]EnumInfo, []ValidationError) {
	decls := p.typeDecls()
	methods := p.methodIndex()

	var enums []EnumInfo
	var errs []ValidationError

	for _, d := range decls {
		if d.file != target {
			continue
		}
		directive, ok := enumDirective(d.decl.Doc, d.spec.Doc)
		if !ok {
			continue
		}

		name := d.spec.Name.Name
		pos := p.fset.Position(d.spec.Name.Pos())
		location := fmt.Sprintf("%s:%d", filepath.Base(pos.Filename), pos.Line)

		if directive != directiveReflect && directive != directiveMut {
			errs = append(errs, ValidationError{
				Location: location,
				Message:  fmt.Sprintf("%s: unknown directive %s%s", name, directivePrefix, directive),
			})
			continue
		}

		iface, ok := d.spec.Type.(*ast.InterfaceType)
		if !ok {
			errs = append(errs, ValidationError{
				Location: location,
				Message:  fmt.Sprintf("%s: %s%s only works on enums", name, directivePrefix, directive),
			})
			continue
		}

		marker, err := sealingMethod(iface)
		if err != nil {
			errs = append(errs, ValidationError{
				Location: location,
				Message:  fmt.Sprintf("%s: %v", name, err),
			})
			continue
		}

		enum := EnumInfo{
			Name:    name,
			Marker:  marker,
			MutOnly: directive == directiveMut,
			File:    target,
			Line:    pos.Line,
		}

		receivers := methods[marker]
		for _, vd := range decls {
			structType, ok := vd.spec.Type.(*ast.StructType)
			if !ok {
				continue
			}
			isPointer, sealed := receivers[vd.spec.Name.Name]
			if !sealed {
				continue
			}
			variant := VariantInfo{
				Name:          vd.spec.Name.Name,
				ValueReceiver: !isPointer,
			}
			variant.Fields = collectFields(structType)
			variant.Shape = classifyShape(variant.Fields)
			enum.Variants = append(enum.Variants, variant)
		}

		debugf("Found enum %s (marker %s, %d variants, mutOnly=%v)", enum.Name, enum.Marker, len(enum.Variants), enum.MutOnly)
		enums = append(enums, enum)
	}

	return enums, errs
}

// sealingMethod returns the interface's marker method: the single
// unexported niladic method that seals the enum.
func sealingMethod(iface *ast.InterfaceType) (string, error) {
	var markers []string
	for _, method := range iface.Methods.List {
		if len(method.Names) != 1 {
			continue // embedded interface
		}
		name := method.Names[0].Name
		if ast.IsExported(name) {
			continue
		}
		funcType, ok := method.Type.(*ast.FuncType)
		if !ok {
			continue
		}
		if funcType.Params.NumFields() == 0 && funcType.Results.NumFields() == 0 {
			markers = append(markers, name)
		}
	}
	if len(markers) != 1 {
		return "", fmt.Errorf("sealed enums declare exactly one unexported niladic marker method, found %d", len(markers))
	}
	return markers[0], nil
}

// collectFields extracts a variant struct's reflected fields in declaration
// order. Embedded fields are positional under their implicit name; tags
// handle exclusion (enum:"-"), positional marking and renames.
func collectFields(structType *ast.StructType) []FieldInfo {
	var fields []FieldInfo
	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			name := embeddedFieldName(field.Type)
			if name == "" {
				continue
			}
			fields = append(fields, FieldInfo{
				Name:       name,
				Type:       formatType(field.Type),
				Positional: true,
			})
			continue
		}

		tag := ""
		if field.Tag != nil {
			tag = parseEnumTag(strings.Trim(field.Tag.Value, "`"))
		}
		if tag == "-" {
			continue
		}

		for _, fieldName := range field.Names {
			if fieldName.Name == "_" {
				continue
			}
			info := FieldInfo{
				Name: fieldName.Name,
				Type: formatType(field.Type),
			}
			switch tag {
			case "positional":
				info.Positional = true
			case "":
				info.Reflected = fieldName.Name
			default:
				info.Reflected = tag
			}
			fields = append(fields, info)
		}
	}
	return fields
}

// classifyShape reduces a field list to the closed three-way shape. A mix
// of positional and named fields classifies as named and is rejected by
// validation.
func classifyShape(fields []FieldInfo) FieldShape {
	if len(fields) == 0 {
		return ShapeUnit
	}
	positional := 0
	for _, f := range fields {
		if f.Positional {
			positional++
		}
	}
	if positional == len(fields) {
		return ShapePositional
	}
	return ShapeNamed
}

// embeddedFieldName returns the implicit field name of an embedded field.
func embeddedFieldName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.StarExpr:
		return embeddedFieldName(t.X)
	default:
		return ""
	}
}

// extractReceiverType extracts the type name from a receiver type expression
func extractReceiverType(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return extractReceiverType(t.X)
	case *ast.Ident:
		return t.Name
	default:
		return ""
	}
}

// formatType converts an ast.Expr to a string representation
func formatType(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return formatType(t.X) + "." + t.Sel.Name
	case *ast.StarExpr:
		return "*" + formatType(t.X)
	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + formatType(t.Elt)
		}
		return "[" + formatType(t.Len) + "]" + formatType(t.Elt)
	case *ast.MapType:
		return "map[" + formatType(t.Key) + "]" + formatType(t.Value)
	case *ast.InterfaceType:
		return "any"
	case *ast.BasicLit:
		return t.Value
	default:
		return fmt.Sprintf("%T", t)
	}
}

// extractBuildTags extracts build tags from a Go source file
func extractBuildTags(filename string) []string {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil
	}

	var buildTags []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "//go:build ") {
			buildTags = append(buildTags, line)
			continue
		}
		if strings.HasPrefix(line, "// +build ") {
			buildTags = append(buildTags, line)
			continue
		}

		// If we hit a non-comment/non-blank line, stop looking
		if !strings.HasPrefix(line, "//") {
			break
		}
	}

	return buildTags
}

// discoverGoFiles finds the .go files in a directory that carry either a
// go:generate enumgen directive or a +enum: directive.
func discoverGoFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") || isGeneratedOutput(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			continue // Skip files we can't read
		}

		for _, line := range strings.Split(string(content), "\n") {
			trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "//"))
			if strings.HasPrefix(trimmed, "go:generate") && strings.Contains(trimmed, "enumgen") {
				files = append(files, path)
				break
			}
			if strings.HasPrefix(trimmed, directivePrefix) {
				files = append(files, path)
				break
			}
		}
	}

	return files, nil
}

// isDirectory checks if the given path is a directory
func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
