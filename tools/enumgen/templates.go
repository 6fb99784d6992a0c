package main

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// runtimeImport is the package the generated accessors link against.
const runtimeImport = "github.com/tempusfrangit/go-enumreflect"

//go:embed templates/*.tmpl
var templateFS embed.FS

// Template data structures
type FileData struct {
	SourceFile    string
	PackageName   string
	BuildTags     []string
	RuntimeImport string
}

type AccessorData struct {
	FuncName   string
	EnumName   string
	ReturnType string
	Doc        string
	Deprecated bool
	// Bind is false when every arm is "return nil"; binding the switch
	// variable there would leave it unused in all clauses.
	Bind bool
	Arms []ArmData
}

type ArmData struct {
	VariantName string
	Body        string
}

type BindingData struct {
	EnumName string
}

type AssertionData struct {
	EnumName string
	Variants []string
}

// Template manager
type TemplateManager struct {
	templates map[string]*template.Template
}

// NewTemplateManager loads every template from the embedded filesystem.
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".tmpl")
		content, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return nil, err
		}

		tmpl, err := template.New(name).Parse(string(content))
		if err != nil {
			return nil, err
		}
		tm.templates[name] = tmpl
	}

	return tm, nil
}

// ExecuteTemplate executes a template with the given data
func (tm *TemplateManager) ExecuteTemplate(name string, data any) (string, error) {
	tmpl, exists := tm.templates[name]
	if !exists {
		return "", fmt.Errorf("template %s not found", name)
	}

	var buf strings.Builder
	err := tmpl.Execute(&buf, data)
	return buf.String(), err
}

// CodeGenerator assembles generated source files from analyzed enums.
type CodeGenerator struct {
	tm *TemplateManager
}

// NewCodeGenerator creates a new code generator
func NewCodeGenerator() (*CodeGenerator, error) {
	tm, err := NewTemplateManager()
	if err != nil {
		return nil, err
	}
	return &CodeGenerator{tm: tm}, nil
}

// GenerateFileHeader generates the DO NOT EDIT header, package clause and
// runtime import. No timestamp: output must be byte-identical across runs
// of the same input.
func (g *CodeGenerator) GenerateFileHeader(sourceFile, packageName string, buildTags []string) (string, error) {
	data := FileData{
		SourceFile:    sourceFile,
		PackageName:   packageName,
		BuildTags:     buildTags,
		RuntimeImport: runtimeImport,
	}
	return g.tm.ExecuteTemplate("file_header", data)
}

// GenerateAccessor generates one accessor function: a type switch with one
// case per variant, cases in variant declaration order.
func (g *CodeGenerator) GenerateAccessor(enum EnumInfo, kind AccessorKind) (string, error) {
	data := AccessorData{
		FuncName:   enum.Name + kind.Suffix(),
		EnumName:   enum.Name,
		ReturnType: returnType(kind),
		Doc:        accessorDoc(enum, kind),
		Deprecated: enum.MutOnly,
	}
	for _, variant := range enum.Variants {
		body := armBody(variant, kind)
		if body != "return nil" {
			data.Bind = true
		}
		data.Arms = append(data.Arms, ArmData{
			VariantName: variant.Name,
			Body:        body,
		})
	}
	return g.tm.ExecuteTemplate("accessor_func", data)
}

// GenerateBinding generates the Accessor value bound to the enum's name.
func (g *CodeGenerator) GenerateBinding(enum EnumInfo) (string, error) {
	return g.tm.ExecuteTemplate("accessor_binding", BindingData{EnumName: enum.Name})
}

// GenerateAssertions generates the compile-time membership assertions.
func (g *CodeGenerator) GenerateAssertions(enum EnumInfo) (string, error) {
	data := AssertionData{EnumName: enum.Name}
	for _, variant := range enum.Variants {
		data.Variants = append(data.Variants, variant.Name)
	}
	return g.tm.ExecuteTemplate("assertions", data)
}

// GenerateEnum assembles the complete output block for one enum: the
// accessor set for its entry point, the binding (primary only) and the
// assertions.
func (g *CodeGenerator) GenerateEnum(enum EnumInfo) (string, error) {
	kinds := primaryKinds
	if enum.MutOnly {
		kinds = mutKinds
	}

	var out strings.Builder
	for _, kind := range kinds {
		accessor, err := g.GenerateAccessor(enum, kind)
		if err != nil {
			return "", err
		}
		out.WriteString(accessor)
		out.WriteString("\n")
	}

	if !enum.MutOnly {
		binding, err := g.GenerateBinding(enum)
		if err != nil {
			return "", err
		}
		out.WriteString(binding)
		out.WriteString("\n")
	}

	assertions, err := g.GenerateAssertions(enum)
	if err != nil {
		return "", err
	}
	out.WriteString(assertions)

	return out.String(), nil
}

// returnType maps an accessor kind to its result type in generated code.
func returnType(kind AccessorKind) string {
	if kind.Named() {
		return "[]enumreflect.Field"
	}
	return "[]any"
}

// accessorDoc renders the one-line doc comment for a generated accessor.
func accessorDoc(enum EnumInfo, kind AccessorKind) string {
	name := enum.Name + kind.Suffix()
	switch kind {
	case KindFields:
		return fmt.Sprintf("%s returns the active variant's field values in declaration order.", name)
	case KindNamedFields:
		return fmt.Sprintf("%s returns (name, value) pairs for named-field variants.", name)
	case KindFieldsMut:
		return fmt.Sprintf("%s returns pointers to the active variant's fields in declaration order.", name)
	case KindNamedFieldsMut:
		if enum.MutOnly {
			return fmt.Sprintf("%s returns (name, pointer) pairs for named-field variants.", name)
		}
		return fmt.Sprintf("%s is %sNamedFields with pointers instead of values.", name, enum.Name)
	default:
		return name
	}
}

// formatSource runs the assembled file through goimports so the output is
// gofmt-clean and carries only the imports it uses.
func formatSource(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return out, nil
}
