package pipeline

import (
	"strings"

	"github.com/smithygen/smithy-codegen/codegen/emit"
	"github.com/smithygen/smithy-codegen/codegen/endpoint"
	"github.com/smithygen/smithy-codegen/ident"
	"github.com/smithygen/smithy-codegen/model"
	"github.com/smithygen/smithy-codegen/symbols"
)

// svcView bundles everything the per-file renderers (gen_client.go,
// gen_errors.go, gen_endpoint.go, gen_resource.go, gen_readme.go) need to
// read out of a single projected service, so CodegenService can pass one
// value around instead of four.
type svcView struct {
	model    *model.Model
	provider *symbols.Provider
	slug     string

	resources []ident.ID
}

// classify fills in the view fields that aren't already carried by
// symbols.Provider: the top-level resources named directly on the service
// shape (spec.md §6: "one per top-level resource", not the transitive
// resource tree the reachability walk already flattened into DataShapes).
func (v *svcView) classify() {
	s := v.model.Shape[v.model.ServiceID]
	if s == nil {
		return
	}
	v.resources = append(v.resources, s.Resources...)
}

// name returns id's local shape name, stripping the `namespace#` prefix
// every absolute Smithy shape ID carries.
func (v *svcView) name(id ident.ID) string {
	full, ok := v.model.Interner.Name(id)
	if !ok {
		return "unknown"
	}
	if i := strings.LastIndexByte(full, '#'); i >= 0 {
		return full[i+1:]
	}
	return full
}

// goPackage is the generated package name: the slug in lowercase snake_case,
// with word separators such as dashes turned into underscores, since a
// directory slug may contain dashes a Go package clause cannot.
func (v *svcView) goPackage() string {
	return strings.ToLower(ident.SnakeCase(v.slug))
}

func (v *svcView) operation(id ident.ID) *model.Shape { return v.model.Shape[id] }

// endpointRuleSet compiles the service's @endpointRuleSet trait, if any,
// via codegen/endpoint.Compile (component K).
func (v *svcView) endpointRuleSet() (*endpoint.RuleSet, bool, error) {
	payload, ok := v.model.Trait(v.model.ServiceID, v.model.Interner.Intern("smithy.api#endpointRuleSet"))
	if !ok {
		return nil, false, nil
	}
	trait, ok := payload.(*model.EndpointRuleSetTrait)
	if !ok {
		return nil, false, nil
	}
	rs, err := endpoint.Compile(trait.Raw)
	if err != nil {
		return nil, false, err
	}
	return rs, true, nil
}

// apiKeyAuth returns the service's @httpApiKeyAuth trait, if present.
func (v *svcView) apiKeyAuth() (*model.HTTPAPIKeyAuthTrait, bool) {
	payload, ok := v.model.Trait(v.model.ServiceID, v.model.Interner.Intern("smithy.api#httpApiKeyAuth"))
	if !ok {
		return nil, false
	}
	t, ok := payload.(*model.HTTPAPIKeyAuthTrait)
	return t, ok
}

// doc returns the Go doc-comment lines for id's @documentation trait, HTML
// converted to Markdown by codegen/emit's doc-comment helper, or nil if the
// shape carries none.
func (v *svcView) doc(id ident.ID) []string {
	payload, ok := v.model.Trait(id, v.model.Interner.Intern("smithy.api#documentation"))
	if !ok {
		return nil
	}
	dt, ok := payload.(*model.DocumentationTrait)
	if !ok || dt.Value == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(emit.HTMLToMarkdown(dt.Value), "\n"), "\n")
}
