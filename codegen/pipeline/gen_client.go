package pipeline

import (
	"fmt"

	"github.com/smithygen/smithy-codegen/codegen/emit"
	"github.com/smithygen/smithy-codegen/codegen/schema"
	"github.com/smithygen/smithy-codegen/ident"
	"github.com/smithygen/smithy-codegen/model"
)

// renderClient builds client.go: a Client type wrapping a
// smithy.ClientProtocol and one exported method per operation reachable
// from the service, in the symbol-graph emission order (component E's FIFO
// queue), matching spec.md §6's "public client type with per-operation
// methods".
func renderClient(v *svcView) string {
	doc := emit.NewDoc(v.goPackage())
	doc.Import("context")
	doc.Import("fmt")
	doc.ImportAs("smithy", "github.com/smithygen/smithy-codegen")
	doc.Import("github.com/smithygen/smithy-codegen/logging")
	doc.Import("github.com/smithygen/smithy-codegen/middleware")
	doc.ImportAs("smithyhttp", "github.com/smithygen/smithy-codegen/transport/http")
	doc.Import("github.com/smithygen/smithy-codegen/transport/clientrt")

	apiKeyAuth, hasAPIKeyAuth := v.apiKeyAuth()
	if hasAPIKeyAuth {
		doc.Import("github.com/smithygen/smithy-codegen/auth/apikey")
	}

	clientFields := []emit.Field{
		{Name: "protocol", Type: "smithy.ClientProtocol[*smithyhttp.Request, *smithyhttp.Response]"},
		{Name: "appID", Type: "string"},
		{Name: "logger", Type: "logging.Logger"},
		{Name: "types", Type: "smithy.TypeRegistry"},
		{Name: "transport", Type: "func(context.Context, *smithyhttp.Request) (*smithyhttp.Response, error)"},
	}
	newClientParams := []emit.Param{
		{Name: "protocol", Type: "smithy.ClientProtocol[*smithyhttp.Request, *smithyhttp.Response]"},
		{Name: "appID", Type: "string"},
		{Name: "transport", Type: "func(context.Context, *smithyhttp.Request) (*smithyhttp.Response, error)"},
	}
	newClientBody := []string{
		"return &Client{",
		"\tprotocol:  protocol,",
		"\tappID:     appID,",
		"\tlogger:    logging.Noop{},",
		"\ttypes:     smithy.TypeRegistry{Entries: map[string]*smithy.TypeRegistryEntry{}},",
		"\ttransport: transport,",
	}
	if hasAPIKeyAuth {
		clientFields = append(clientFields, emit.Field{Name: "apiKeyProvider", Type: "apikey.ApiKeyProvider"})
		newClientParams = append(newClientParams, emit.Param{Name: "apiKeyProvider", Type: "apikey.ApiKeyProvider"})
		newClientBody = append(newClientBody, "\tapiKeyProvider: apiKeyProvider,")
	}
	newClientBody = append(newClientBody, "}")

	doc.Add(emit.Struct{
		Name:   "Client",
		Doc:    []string{"Client is the generated service client for " + v.name(v.model.ServiceID) + "."},
		Fields: clientFields,
	})

	doc.Add(emit.Function{
		Name:    "NewClient",
		Doc:     []string{"NewClient returns a Client that dispatches through protocol and round-trips requests through transport."},
		Params:  newClientParams,
		Results: []emit.Param{{Type: "*Client"}},
		Body:    newClientBody,
	})

	sb := schema.NewBuilder(v.model)
	imp := emitDataTypes(v, doc, sb)
	if imp.time {
		doc.Import("time")
	}
	if imp.bigMath {
		doc.Import("math/big")
	}

	for _, opID := range v.provider.Operations {
		op := v.operation(opID)
		if op == nil {
			continue
		}
		opName := v.name(opID)
		inType := shapeParamType(v, op.Input)
		outType := shapeParamType(v, op.Output)

		doc.Add(emit.Function{
			Name:     opName,
			Doc:      v.doc(opID),
			Receiver: "(c *Client)",
			Params: []emit.Param{
				{Name: "ctx", Type: "context.Context"},
				{Name: "in", Type: inType},
			},
			Results: []emit.Param{
				{Type: outType},
				{Type: "error"},
			},
			Body: []string{
				"out := new(" + trimStar(outType) + ")",
				fmt.Sprintf("ctx = middleware.WithServiceName(ctx, %q)", v.name(v.model.ServiceID)),
				fmt.Sprintf("ctx = middleware.WithOperationName(ctx, %q)", opName),
				fmt.Sprintf("if err := c.invoke(ctx, %q, in, out); err != nil {", opName),
				"\treturn nil, err",
				"}",
				"return out, nil",
			},
		})
	}

	doc.Add(emit.Function{
		Name:     "invoke",
		Doc:      []string{"invoke drives the default middleware stack around a single protocol round trip."},
		Receiver: "(c *Client)",
		Params: []emit.Param{
			{Name: "ctx", Type: "context.Context"},
			{Name: "operation", Type: "string"},
			{Name: "in", Type: "smithy.Serializable"},
			{Name: "out", Type: "smithy.Deserializable"},
		},
		Results: []emit.Param{{Type: "error"}},
		Body: append(append([]string{
			"stack := clientrt.NewDefaultStack(operation, c.logger)",
		}, invokeAPIKeyLines(hasAPIKeyAuth, apiKeyAuth)...), []string{
			"return clientrt.Invoke(ctx, stack,",
			"\tc.roundTrip,",
			"\tfunc(ctx context.Context, req *smithyhttp.Request) error {",
			"\t\treturn c.protocol.SerializeRequest(ctx, in, req)",
			"\t},",
			"\tfunc(ctx context.Context, resp *smithyhttp.Response) error {",
			"\t\treturn c.protocol.DeserializeResponse(ctx, &c.types, resp, out)",
			"\t},",
			")",
		}...),
	})

	doc.Add(emit.Function{
		Name:     "roundTrip",
		Doc:      []string{"roundTrip is the transport hook a caller's client configuration replaces (e.g. to point at a real net/http.Client); the zero-value Client rejects calls rather than silently doing nothing."},
		Receiver: "(c *Client)",
		Params: []emit.Param{
			{Name: "ctx", Type: "context.Context"},
			{Name: "req", Type: "*smithyhttp.Request"},
		},
		Results: []emit.Param{{Type: "*smithyhttp.Response"}, {Type: "error"}},
		Body: []string{
			"if c.transport == nil {",
			"\treturn nil, fmt.Errorf(\"%s: no transport configured on Client\", middleware.GetOperationName(ctx))",
			"}",
			"return c.transport(ctx, req)",
		},
	})

	return doc.Render()
}

// shapeParamType maps an operation input/output member ID to a generated
// Go parameter type: Unit collapses to an empty request/response struct,
// everything else to a pointer to its PascalCase shape name.
func shapeParamType(v *svcView, id *ident.ID) string {
	if id == nil || *id == ident.IDUnit {
		return "*struct{}"
	}
	return "*" + ident.PascalCase(v.name(*id))
}

// invokeAPIKeyLines returns the statements that register
// clientrt.APIKeyBuildMiddleware on the per-call stack, or nil when the
// service carries no @httpApiKeyAuth trait.
func invokeAPIKeyLines(has bool, trait *model.HTTPAPIKeyAuthTrait) []string {
	if !has {
		return nil
	}
	return []string{
		fmt.Sprintf(
			"stack.Build.Add(clientrt.APIKeyBuildMiddleware{Provider: c.apiKeyProvider, In: %q, Name: %q, Scheme: %q}, middleware.After)",
			trait.In, trait.Name, trait.Scheme,
		),
	}
}

func trimStar(t string) string {
	if len(t) > 0 && t[0] == '*' {
		return t[1:]
	}
	return t
}
