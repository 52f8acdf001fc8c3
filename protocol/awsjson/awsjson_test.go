package awsjson

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/smithygen/smithy-codegen"
	"github.com/smithygen/smithy-codegen/middleware"
	smithyhttp "github.com/smithygen/smithy-codegen/transport/http"
)

func TestVersionContentType(t *testing.T) {
	if e, a := "application/x-amz-json-1.0", Version1_0.contentType(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
	if e, a := "application/x-amz-json-1.1", Version1_1.contentType(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}

func TestProtocolID(t *testing.T) {
	if e, a := "aws.protocols#awsJson1_0", New(Version1_0).ID(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
	if e, a := "aws.protocols#awsJson1_1", New(Version1_1).ID(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}

type fakeInput struct{}

func (fakeInput) Serialize(ss smithy.ShapeSerializer) {}

func TestSerializeRequestSetsTargetHeader(t *testing.T) {
	p := New(Version1_1)

	ctx := middleware.WithServiceName(context.Background(), "WeatherService")
	ctx = middleware.WithOperationName(ctx, "GetForecast")

	req := smithyhttp.NewStackRequest().(*smithyhttp.Request)
	req.URL = &url.URL{Scheme: "https", Host: "weather.amazonaws.com"}

	if err := p.SerializeRequest(ctx, fakeInput{}, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e, a := http.MethodPost, req.Method; e != a {
		t.Errorf("expect method %q, got %q", e, a)
	}
	if e, a := "WeatherService.GetForecast", req.Header.Get("X-Amz-Target"); e != a {
		t.Errorf("expect target %q, got %q", e, a)
	}
	if e, a := "application/x-amz-json-1.1", req.Header.Get("Content-Type"); e != a {
		t.Errorf("expect content-type %q, got %q", e, a)
	}
}

func TestResolveProtocolErrorType(t *testing.T) {
	cases := map[string]struct {
		HeaderType string
		BodyInfo   protocolErrorInfo
		Expect     string
		ExpectOk   bool
	}{
		"header wins": {
			HeaderType: "FooError",
			BodyInfo:   protocolErrorInfo{Type: "BarError"},
			Expect:     "FooError",
			ExpectOk:   true,
		},
		"falls back to __type": {
			BodyInfo: protocolErrorInfo{Type: "BarError"},
			Expect:   "BarError",
			ExpectOk: true,
		},
		"falls back to nonstandard code field": {
			BodyInfo: protocolErrorInfo{Code: "BazError"},
			Expect:   "BazError",
			ExpectOk: true,
		},
		"nothing present": {
			Expect:   "",
			ExpectOk: false,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			actual, ok := resolveProtocolErrorType(c.HeaderType, c.BodyInfo)
			if e, a := c.ExpectOk, ok; e != a {
				t.Fatalf("expect ok %v, got %v", e, a)
			}
			if e, a := c.Expect, actual; e != a {
				t.Errorf("expect %q, got %q", e, a)
			}
		})
	}
}

func TestGetProtocolErrorInfo(t *testing.T) {
	body := `{"__type":"com.example#ResourceNotFoundException","message":"not found"}`
	dec := json.NewDecoder(bytes.NewReader([]byte(body)))

	info, err := getProtocolErrorInfo(dec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e, a := "com.example#ResourceNotFoundException", info.Type; e != a {
		t.Errorf("expect type %q, got %q", e, a)
	}
	if e, a := "not found", info.Message; e != a {
		t.Errorf("expect message %q, got %q", e, a)
	}
}
