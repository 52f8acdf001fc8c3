package clientrt

import (
	"context"
	"net/url"
	"testing"

	"github.com/smithygen/smithy-codegen/auth/apikey"
	"github.com/smithygen/smithy-codegen/middleware"
	smithyhttp "github.com/smithygen/smithy-codegen/transport/http"
)

type stubBuildHandler struct {
	called bool
}

func (h *stubBuildHandler) HandleBuild(ctx context.Context, in middleware.BuildInput) (middleware.BuildOutput, error) {
	h.called = true
	return middleware.BuildOutput{Result: in.Request}, nil
}

func TestNewDefaultStackWithAPIKeyHeader(t *testing.T) {
	stack := NewDefaultStack("GetWidget", nil)
	stack.Build.Add(APIKeyBuildMiddleware{
		Provider: apikey.StaticApiKeyProvider{ApiKey: "shh"},
		In:       "header",
		Name:     "X-Api-Key",
	}, middleware.After)

	var sawHeader string
	err := Invoke(context.Background(), stack,
		func(ctx context.Context, req *smithyhttp.Request) (*smithyhttp.Response, error) {
			sawHeader = req.Header.Get("X-Api-Key")
			return &smithyhttp.Response{}, nil
		},
		func(ctx context.Context, req *smithyhttp.Request) error {
			req.URL = &url.URL{Scheme: "https", Host: "example.com"}
			return nil
		},
		func(ctx context.Context, resp *smithyhttp.Response) error { return nil },
	)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if sawHeader != "shh" {
		t.Fatalf("expected X-Api-Key header %q, got %q", "shh", sawHeader)
	}
}

func TestAPIKeyBuildMiddlewareNilProviderIsNoop(t *testing.T) {
	m := APIKeyBuildMiddleware{In: "header", Name: "X-Api-Key"}
	req := smithyhttp.NewStackRequest().(*smithyhttp.Request)
	req.URL = &url.URL{Scheme: "https", Host: "example.com"}

	next := &stubBuildHandler{}
	_, err := m.HandleBuild(context.Background(), middleware.BuildInput{Request: req}, next)
	if err != nil {
		t.Fatalf("HandleBuild: %v", err)
	}
	if !next.called {
		t.Fatalf("expected the next handler to run for a nil provider")
	}
	if req.Header.Get("X-Api-Key") != "" {
		t.Fatalf("expected no header to be set for a nil provider")
	}
}
