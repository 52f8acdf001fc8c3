package apikey

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	smithyhttp "github.com/smithygen/smithy-codegen/transport/http"
)

func TestApiKeyMiddleware(t *testing.T) {
	cases := map[string]struct {
		message       Message
		apiKey        string
		def           HttpApiKeyAuthDefinition
		expectMessage Message
		expectErr     string
	}{
		"not smithy-go HTTP Request": {
			message:   struct{}{},
			def:       HttpApiKeyAuthDefinition{In: "header", Name: "Authorization", Scheme: "Apikey"},
			expectErr: "expect smithy-go HTTP Request",
		},
		"invalid location": {
			message: func() Message {
				r := smithyhttp.NewStackRequest().(*smithyhttp.Request)
				r.URL, _ = url.Parse("https://example.com")
				return r
			}(),
			def:       HttpApiKeyAuthDefinition{In: "cookie", Name: "key"},
			expectErr: "invalid HTTP auth definition",
		},
		"header": {
			message: func() Message {
				r := smithyhttp.NewStackRequest().(*smithyhttp.Request)
				r.URL, _ = url.Parse("https://example.com")
				return r
			}(),
			apiKey: "abc123",
			def:    HttpApiKeyAuthDefinition{In: "header", Name: "Authorization", Scheme: "Apikey"},
			expectMessage: func() Message {
				r := smithyhttp.NewStackRequest().(*smithyhttp.Request)
				r.URL, _ = url.Parse("https://example.com")
				r.Header.Set("Authorization", "Apikey abc123")
				return r
			}(),
		},
		"query": {
			message: func() Message {
				r := smithyhttp.NewStackRequest().(*smithyhttp.Request)
				r.URL, _ = url.Parse("https://example.com")
				return r
			}(),
			apiKey: "abc123",
			def:    HttpApiKeyAuthDefinition{In: "query", Name: "apiKey"},
			expectMessage: func() Message {
				r := smithyhttp.NewStackRequest().(*smithyhttp.Request)
				r.URL, _ = url.Parse("https://example.com?apiKey=abc123")
				return r
			}(),
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			signer := SignMessage{}
			message, err := signer.SignWithApiKey(context.Background(), c.apiKey, &c.def, c.message)
			if c.expectErr != "" {
				if err == nil {
					t.Fatalf("expect error, got none")
				}
				if e, a := c.expectErr, err.Error(); !strings.Contains(a, e) {
					t.Fatalf("expect %v in error %v", e, a)
				}
				return
			} else if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}

			options := []cmp.Option{
				cmpopts.IgnoreUnexported(smithyhttp.Request{}),
				cmpopts.IgnoreUnexported(http.Request{}),
			}

			if diff := cmp.Diff(c.expectMessage, message, options...); diff != "" {
				t.Errorf("expect match\n%s", diff)
			}
		})
	}
}
