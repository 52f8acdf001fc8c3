package clientrt

import (
	"context"

	"github.com/smithygen/smithy-codegen/auth/apikey"
	"github.com/smithygen/smithy-codegen/middleware"
	smithyhttp "github.com/smithygen/smithy-codegen/transport/http"
)

// APIKeyBuildMiddleware implements the @httpApiKeyAuth trait: it retrieves
// a key from Provider and attaches it to the request as either a header or
// query parameter, per the service's modeled In/Name/Scheme. A nil Provider
// makes this middleware a no-op, so a generated Client can always register
// it without checking whether the caller configured a key.
type APIKeyBuildMiddleware struct {
	Provider apikey.ApiKeyProvider
	In       string // "header" or "query", per smithy.api#httpApiKeyAuth
	Name     string
	Scheme   string
}

func (APIKeyBuildMiddleware) Name() string { return "clientrt.APIKeyAuth" }

// HandleBuild attaches the API key during the Build step, after Serialize
// has populated the request but before Finalize's transport concerns.
func (m APIKeyBuildMiddleware) HandleBuild(
	ctx context.Context, in middleware.BuildInput, next middleware.BuildHandler,
) (middleware.BuildOutput, error) {
	req, ok := in.Request.(*smithyhttp.Request)
	if !ok || m.Provider == nil {
		return next.HandleBuild(ctx, in)
	}

	key, err := m.Provider.RetrieveApiKey(ctx)
	if err != nil {
		return middleware.BuildOutput{}, err
	}

	value := key
	if m.Scheme != "" {
		value = m.Scheme + " " + key
	}

	switch m.In {
	case "query":
		q := req.URL.Query()
		q.Set(m.Name, value)
		req.URL.RawQuery = q.Encode()
	default:
		req.Header.Set(m.Name, value)
	}
	return next.HandleBuild(ctx, in)
}
