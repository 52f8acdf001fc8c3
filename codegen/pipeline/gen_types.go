package pipeline

import (
	"fmt"
	"strings"

	"github.com/smithygen/smithy-codegen/codegen/emit"
	"github.com/smithygen/smithy-codegen/codegen/schema"
	"github.com/smithygen/smithy-codegen/ident"
	"github.com/smithygen/smithy-codegen/model"
)

// typeImports tracks which extra standard-library/runtime packages a data
// shape's Go field types pulled in, so renderClient only imports what it
// actually emitted a reference to.
type typeImports struct {
	time     bool
	bigMath  bool
	document bool
}

// emitDataTypes renders a Go type declaration for every data shape
// reachable from the service (component E's DataShapes, plus each
// operation's input/output), driven by F (codegen/schema.Builder) rather
// than by reading model.Shape directly — the fix for the symbol graph
// previously being built and then ignored in favor of going straight back
// to the raw model.
func emitDataTypes(v *svcView, doc *emit.Doc, sb *schema.Builder) typeImports {
	var imp typeImports
	seen := map[ident.ID]bool{}

	emit1 := func(id ident.ID) {
		if seen[id] {
			return
		}
		seen[id] = true
		emitDataType(v, doc, sb, id, &imp)
	}

	for _, id := range v.provider.DataShapes {
		emit1(id)
	}
	for _, opID := range v.provider.Operations {
		op := v.operation(opID)
		if op == nil {
			continue
		}
		if op.Input != nil && *op.Input != ident.IDUnit {
			emit1(*op.Input)
		}
		if op.Output != nil && *op.Output != ident.IDUnit {
			emit1(*op.Output)
		}
	}
	return imp
}

func emitDataType(v *svcView, doc *emit.Doc, sb *schema.Builder, id ident.ID, imp *typeImports) {
	d, err := sb.Build(id, false)
	if err != nil {
		return
	}
	name := ident.PascalCase(v.name(id))

	switch d.Kind {
	case schema.SerialStructure, schema.SerialTaggedUnion:
		fields := make([]emit.Field, 0, len(d.Members))
		for _, m := range d.Members {
			fields = append(fields, emit.Field{
				Name: ident.PascalCase(m.Name),
				Type: goMemberType(v, m, imp),
			})
		}
		if d.Kind == schema.SerialTaggedUnion {
			variants := make([]emit.Field, 0, len(fields))
			for _, f := range fields {
				variants = append(variants, emit.Field{Name: name + f.Name, Type: f.Type})
			}
			doc.Add(emit.Union{Name: name, Doc: v.doc(id), Variants: variants})
			return
		}
		doc.Add(emit.Struct{Name: name, Doc: v.doc(id), Fields: fields})
	case schema.SerialStrEnum, schema.SerialIntEnum:
		doc.Add(emit.Enum{Name: name, Doc: v.doc(id), Members: enumMembers(v, id, name)})
	}
}

func enumMembers(v *svcView, id ident.ID, typeName string) []emit.Field {
	s := v.model.Shape[id]
	if s == nil {
		return nil
	}
	enumValueTraitID := v.model.Interner.Intern("smithy.api#enumValue")
	out := make([]emit.Field, 0, len(s.Members))
	for _, m := range s.Members {
		literal := fmt.Sprintf("%q", m.Name)
		if payload, ok := v.model.Trait(m.ID, enumValueTraitID); ok {
			if ev, ok := payload.(*model.EnumValueTrait); ok {
				if ev.IsInt {
					literal = fmt.Sprintf("%d", ev.Int)
				} else if ev.String != "" {
					literal = fmt.Sprintf("%q", ev.String)
				}
			}
		}
		out = append(out, emit.Field{Name: typeName + ident.PascalCase(m.Name), Type: literal})
	}
	return out
}

// goTypeForShape maps a shape target to its generated Go representation,
// recursing through list/map element shapes.
func goTypeForShape(v *svcView, id ident.ID, imp *typeImports) string {
	switch id {
	case ident.IDString:
		return "string"
	case ident.IDBoolean:
		return "bool"
	case ident.IDByte:
		return "int8"
	case ident.IDShort:
		return "int16"
	case ident.IDInteger:
		return "int32"
	case ident.IDLong:
		return "int64"
	case ident.IDFloat:
		return "float32"
	case ident.IDDouble:
		return "float64"
	case ident.IDBlob:
		return "[]byte"
	case ident.IDTimestamp:
		imp.time = true
		return "time.Time"
	case ident.IDDocument:
		imp.document = true
		return "smithy.Document2"
	case ident.IDBigInteger:
		imp.bigMath = true
		return "big.Int"
	case ident.IDBigDecimal:
		imp.bigMath = true
		return "big.Float"
	case ident.IDUnit:
		return "struct{}"
	}

	s := v.model.Shape[id]
	if s == nil {
		return "*" + ident.PascalCase(v.name(id))
	}
	switch s.Type {
	case model.ShapeList:
		if s.Member != nil {
			return "[]" + goTypeForShape(v, s.Member.Target, imp)
		}
		return "[]interface{}"
	case model.ShapeMap:
		val := "interface{}"
		if s.Value != nil {
			val = goTypeForShape(v, s.Value.Target, imp)
		}
		return "map[string]" + val
	case model.ShapeEnum, model.ShapeIntEnum:
		return ident.PascalCase(v.name(id))
	default:
		return "*" + ident.PascalCase(v.name(id))
	}
}

func goMemberType(v *svcView, m schema.MemberSchema, imp *typeImports) string {
	t := goTypeForShape(v, m.Target, imp)
	if m.Required || strings.HasPrefix(t, "*") || strings.HasPrefix(t, "[]") || strings.HasPrefix(t, "map[") {
		return t
	}
	return "*" + t
}
