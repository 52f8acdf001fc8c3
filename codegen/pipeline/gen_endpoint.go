package pipeline

import (
	"fmt"
	"sort"

	"github.com/smithygen/smithy-codegen/codegen/emit"
	"github.com/smithygen/smithy-codegen/codegen/endpoint"
	"github.com/smithygen/smithy-codegen/ident"
)

// renderEndpoint builds endpoint.go from a compiled RuleSet (component K):
// an EndpointParameters struct mirroring the rule-set's declared
// parameters, and a ResolveEndpoint entry point whose body lists each
// compiled top-level rule as a comment and returns a "no rule matched"
// error. The rules are not evaluated and no endpoint test functions are
// emitted. Only present when the service carries an @endpointRuleSet trait,
// per spec.md §6.
func renderEndpoint(v *svcView, rs *endpoint.RuleSet) string {
	doc := emit.NewDoc(v.goPackage())
	doc.Import("fmt")

	names := make([]string, 0, len(rs.Parameters))
	for name := range rs.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]emit.Field, 0, len(names))
	for _, name := range names {
		p := rs.Parameters[name]
		goType := "string"
		if p.Type == "Boolean" {
			goType = "bool"
		}
		if !p.Required {
			goType = "*" + goType
		}
		var doc []string
		if p.Documentation != "" {
			doc = []string{p.Documentation}
		}
		fields = append(fields, emit.Field{Name: ident.PascalCase(name), Type: goType, Doc: doc})
	}

	doc.Add(emit.Struct{
		Name:   "EndpointParameters",
		Doc:    []string{fmt.Sprintf("EndpointParameters holds the bound inputs to the %s rule set (version %s).", v.name(v.model.ServiceID), rs.Version)},
		Fields: fields,
	})

	body := []string{
		fmt.Sprintf("// %d top-level rule(s) compiled from the service's endpointRuleSet trait.", len(rs.Rules)),
	}
	for i, r := range rs.Rules {
		body = append(body, fmt.Sprintf("// rule %d: kind=%d conditions=%d", i, r.Kind, len(r.Conditions)))
	}
	body = append(body, `return "", fmt.Errorf("endpoint: no rule matched")`)

	doc.Add(emit.Function{
		Name: "ResolveEndpoint",
		Doc:  []string{"ResolveEndpoint lists the compiled rule set; it does not evaluate the rules and always returns an error."},
		Params: []emit.Param{
			{Name: "params", Type: "EndpointParameters"},
		},
		Results: []emit.Param{
			{Type: "string"},
			{Type: "error"},
		},
		Body: body,
	})

	return doc.Render()
}
