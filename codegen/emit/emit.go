// Package emit provides a language-agnostic structured source-text builder:
// a tree of Nodes (struct, enum, union, function, switch, ...) rendered to
// an indented text buffer. It is deliberately decoupled from Go syntax
// specifics so the same tree shape could, in principle, target another
// target language; only the Render* helpers below know Go's concrete
// syntax.
package emit

import (
	"fmt"
	"sort"
	"strings"
)

// Doc is the root of a single generated source file: a package clause, an
// ordered import set, and a flat list of top-level declarations.
type Doc struct {
	Package string
	imports map[string]string // path -> alias ("" for none)
	decls   []Node
}

// NewDoc returns an empty Doc for the named package.
func NewDoc(pkg string) *Doc {
	return &Doc{Package: pkg, imports: map[string]string{}}
}

// Import registers a package path to be imported under its default name;
// duplicate calls are idempotent and the final import block is rendered in
// sorted order, matching gofmt's grouping within a single block.
func (d *Doc) Import(path string) { d.ImportAs("", path) }

// ImportAs registers a package path to be imported under an explicit local
// alias (e.g. "smithyhttp" for ".../transport/http"), the convention the
// generated client code follows for every runtime package whose directory
// name wouldn't otherwise read unambiguously at the call site.
func (d *Doc) ImportAs(alias, path string) { d.imports[path] = alias }

// Add appends a top-level declaration.
func (d *Doc) Add(n Node) { d.decls = append(d.decls, n) }

// Render produces the complete file text.
func (d *Doc) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "package %s\n\n", d.Package)
	if len(d.imports) > 0 {
		paths := make([]string, 0, len(d.imports))
		for p := range d.imports {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		b.WriteString("import (\n")
		for _, p := range paths {
			if alias := d.imports[p]; alias != "" {
				fmt.Fprintf(&b, "\t%s %q\n", alias, p)
			} else {
				fmt.Fprintf(&b, "\t%q\n", p)
			}
		}
		b.WriteString(")\n\n")
	}
	for i, decl := range d.decls {
		if i > 0 {
			b.WriteString("\n")
		}
		decl.render(&b, 0)
	}
	return b.String()
}

// Node is any top-level or nested emittable construct.
type Node interface {
	render(b *strings.Builder, depth int)
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("\t")
	}
}

// Comment is a doc comment attached to the following declaration, rendered
// as one `//` line per entry.
type Comment []string

func (c Comment) render(b *strings.Builder, depth int) {
	for _, line := range c {
		indent(b, depth)
		if line == "" {
			b.WriteString("//\n")
		} else {
			fmt.Fprintf(b, "// %s\n", line)
		}
	}
}

// Field is one struct field or enum/union member.
type Field struct {
	Name string
	Type string
	Tag  string
	Doc  []string
}

// Struct renders a Go struct type declaration.
type Struct struct {
	Name   string
	Doc    []string
	Fields []Field
}

func (s Struct) render(b *strings.Builder, depth int) {
	Comment(s.Doc).render(b, depth)
	indent(b, depth)
	fmt.Fprintf(b, "type %s struct {\n", s.Name)
	for _, f := range s.Fields {
		Comment(f.Doc).render(b, depth+1)
		indent(b, depth+1)
		if f.Tag != "" {
			fmt.Fprintf(b, "%s %s `%s`\n", f.Name, f.Type, f.Tag)
		} else {
			fmt.Fprintf(b, "%s %s\n", f.Name, f.Type)
		}
	}
	indent(b, depth)
	b.WriteString("}\n")
}

// Enum renders a Go string-constant block plus its backing type, the idiom
// generated code uses for a Smithy string enum (unknown values fall back to
// carrying the raw string rather than failing to parse).
type Enum struct {
	Name    string
	Doc     []string
	Members []Field // Name = Go constant name, Type = quoted wire string
}

func (e Enum) render(b *strings.Builder, depth int) {
	Comment(e.Doc).render(b, depth)
	indent(b, depth)
	fmt.Fprintf(b, "type %s string\n\n", e.Name)
	indent(b, depth)
	b.WriteString("const (\n")
	for _, m := range e.Members {
		indent(b, depth+1)
		fmt.Fprintf(b, "%s %s = %s\n", m.Name, e.Name, m.Type)
	}
	indent(b, depth)
	b.WriteString(")\n")
}

// Union renders a Go sum type as an unexported marker interface plus one
// struct per variant, the idiom generated code uses for a Smithy union.
type Union struct {
	Name     string
	Doc      []string
	Variants []Field // Name = variant Go type name, Type = member Go type
}

func (u Union) render(b *strings.Builder, depth int) {
	Comment(u.Doc).render(b, depth)
	indent(b, depth)
	fmt.Fprintf(b, "type %s interface {\n", u.Name)
	indent(b, depth+1)
	fmt.Fprintf(b, "is%s()\n", u.Name)
	indent(b, depth)
	b.WriteString("}\n\n")
	for _, v := range u.Variants {
		indent(b, depth)
		fmt.Fprintf(b, "type %s struct {\n", v.Name)
		indent(b, depth+1)
		fmt.Fprintf(b, "Value %s\n", v.Type)
		indent(b, depth)
		b.WriteString("}\n\n")
		indent(b, depth)
		fmt.Fprintf(b, "func (*%s) is%s() {}\n\n", v.Name, u.Name)
	}
}

// Param is a function parameter or return value.
type Param struct {
	Name string
	Type string
}

// Function renders a Go function declaration with a body emitted as raw,
// pre-rendered statement lines (the generated serializer/deserializer
// bodies are built by the protocol-specific emit helpers, not this
// generic package).
type Function struct {
	Name     string
	Doc      []string
	Receiver string // e.g. "(s *Client)"; empty for a free function
	Params   []Param
	Results  []Param
	Body     []string
}

func (f Function) render(b *strings.Builder, depth int) {
	Comment(f.Doc).render(b, depth)
	indent(b, depth)
	b.WriteString("func ")
	if f.Receiver != "" {
		fmt.Fprintf(b, "%s ", f.Receiver)
	}
	fmt.Fprintf(b, "%s(", f.Name)
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s %s", p.Name, p.Type)
	}
	b.WriteString(")")
	if len(f.Results) == 1 && f.Results[0].Name == "" {
		fmt.Fprintf(b, " %s", f.Results[0].Type)
	} else if len(f.Results) > 0 {
		b.WriteString(" (")
		for i, r := range f.Results {
			if i > 0 {
				b.WriteString(", ")
			}
			if r.Name != "" {
				fmt.Fprintf(b, "%s %s", r.Name, r.Type)
			} else {
				b.WriteString(r.Type)
			}
		}
		b.WriteString(")")
	}
	b.WriteString(" {\n")
	for _, line := range f.Body {
		indent(b, depth+1)
		b.WriteString(line)
		b.WriteString("\n")
	}
	indent(b, depth)
	b.WriteString("}\n")
}

// SwitchCase is one arm of a rendered Switch.
type SwitchCase struct {
	Expr string // e.g. `"header"` or `*SomeType`
	Body []string
}

// Switch renders a Go switch statement as a standalone block of body
// lines, used for generated union-variant or enum dispatch.
type Switch struct {
	Subject    string
	TypeSwitch bool
	Cases      []SwitchCase
	Default    []string
}

func (s Switch) render(b *strings.Builder, depth int) {
	indent(b, depth)
	fmt.Fprintf(b, "switch %s {\n", s.Subject)
	for _, c := range s.Cases {
		indent(b, depth)
		fmt.Fprintf(b, "case %s:\n", c.Expr)
		for _, line := range c.Body {
			indent(b, depth+1)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	if len(s.Default) > 0 {
		indent(b, depth)
		b.WriteString("default:\n")
		for _, line := range s.Default {
			indent(b, depth+1)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	indent(b, depth)
	b.WriteString("}\n")
}

// Raw emits a pre-formatted block of source text verbatim, used for
// declarations this package has no dedicated builder for.
type Raw string

func (r Raw) render(b *strings.Builder, depth int) {
	for _, line := range strings.Split(string(r), "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		indent(b, depth)
		b.WriteString(line)
		b.WriteString("\n")
	}
}
