package pipeline

import (
	"fmt"

	"github.com/smithygen/smithy-codegen/codegen/emit"
	"github.com/smithygen/smithy-codegen/codegen/errresolve"
	"github.com/smithygen/smithy-codegen/ident"
	"github.com/smithygen/smithy-codegen/model"
)

// renderErrors builds errors.go: one struct per error shape reachable from
// the service, each with Error/ErrorFault/ErrorRetryable/ErrorThrottling
// methods. Fault/retryable/throttling classification prefers the shape's
// own @error/@retryable traits and falls back to errresolve's HTTP-status
// heuristics (component J) when a service declares an error with an
// @httpError status but no explicit @retryable trait, the same fallback
// path the runtime protocol codecs use for an unmodeled error response.
func renderErrors(v *svcView) string {
	doc := emit.NewDoc(v.goPackage())

	errTraitID := v.model.Interner.Intern("smithy.api#error")
	httpErrTraitID := v.model.Interner.Intern("smithy.api#httpError")
	retryableTraitID := v.model.Interner.Intern("smithy.api#retryable")

	for _, errID := range v.provider.Errors {
		name := ident.PascalCase(v.name(errID))

		status := 400
		hasHTTPError := false
		if payload, ok := v.model.Trait(errID, httpErrTraitID); ok {
			if he, ok := payload.(*model.HTTPErrorTrait); ok {
				status = he.Code
				hasHTTPError = true
			}
		}

		fault := errresolve.Fault(status)
		if payload, ok := v.model.Trait(errID, errTraitID); ok {
			if et, ok := payload.(*model.ErrorTrait); ok && et.Fault != "" {
				fault = et.Fault
				if fault == "server" && !hasHTTPError {
					status = 500
				}
			}
		}

		retryable := errresolve.Retryable(status)
		throttling := errresolve.Throttling(status)
		if payload, ok := v.model.Trait(errID, retryableTraitID); ok {
			if rt, ok := payload.(*model.RetryableTrait); ok {
				retryable = true
				throttling = throttling || rt.Throttling
			}
		}

		doc.Add(emit.Struct{
			Name:   name,
			Doc:    v.doc(errID),
			Fields: []emit.Field{{Name: "Message", Type: "string"}},
		})
		doc.Add(emit.Function{
			Name:     "Error",
			Receiver: fmt.Sprintf("(e *%s)", name),
			Results:  []emit.Param{{Type: "string"}},
			Body:     []string{fmt.Sprintf("return %q + e.Message", name+": ")},
		})
		doc.Add(emit.Function{
			Name:     "ErrorFault",
			Receiver: fmt.Sprintf("(e *%s)", name),
			Results:  []emit.Param{{Type: "string"}},
			Body:     []string{fmt.Sprintf("return %q", fault)},
		})
		doc.Add(emit.Function{
			Name:     "ErrorRetryable",
			Receiver: fmt.Sprintf("(e *%s)", name),
			Results:  []emit.Param{{Type: "bool"}},
			Body:     []string{fmt.Sprintf("return %v", retryable)},
		})
		doc.Add(emit.Function{
			Name:     "ErrorThrottling",
			Receiver: fmt.Sprintf("(e *%s)", name),
			Results:  []emit.Param{{Type: "bool"}},
			Body:     []string{fmt.Sprintf("return %v", throttling)},
		})
	}

	return doc.Render()
}
