package pipeline

import (
	"sort"

	"github.com/smithygen/smithy-codegen/codegen/emit"
	"github.com/smithygen/smithy-codegen/ident"
)

// renderResource builds resource_<snake>.go: an identifier struct plus the
// Client method names that implement the resource's lifecycle operations,
// per spec.md §6's "one per top-level resource".
func renderResource(v *svcView, resID ident.ID) string {
	doc := emit.NewDoc(v.goPackage())

	s := v.model.Shape[resID]
	if s == nil {
		return doc.Render()
	}
	name := ident.PascalCase(v.name(resID))

	idNames := make([]string, 0, len(s.Identifiers))
	for idName := range s.Identifiers {
		idNames = append(idNames, idName)
	}
	sort.Strings(idNames)

	fields := make([]emit.Field, 0, len(idNames))
	for _, idName := range idNames {
		fields = append(fields, emit.Field{Name: ident.PascalCase(idName), Type: "string"})
	}
	doc.Add(emit.Struct{
		Name:   name + "Identifier",
		Doc:    []string{name + "Identifier holds the identifier members of the " + name + " resource."},
		Fields: fields,
	})

	lifecycle := []struct {
		label string
		op    *ident.ID
	}{
		{"Create", s.Create},
		{"Put", s.Put},
		{"Read", s.Read},
		{"Update", s.Update},
		{"Delete", s.Delete},
		{"List", s.List},
	}
	var lines []string
	for _, lc := range lifecycle {
		if lc.op == nil {
			continue
		}
		lines = append(lines, "// "+lc.label+" lifecycle operation: Client."+v.name(*lc.op))
	}
	for _, opID := range s.CollectionOps {
		lines = append(lines, "// collection operation: Client."+v.name(opID))
	}
	if len(lines) > 0 {
		doc.Add(emit.Raw(joinLines(lines)))
	}

	return doc.Render()
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
