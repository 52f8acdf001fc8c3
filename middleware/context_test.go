package middleware

import (
	"context"
	"testing"
)

func TestServiceAndOperationName(t *testing.T) {
	ctx := context.Background()

	if e, a := "", GetServiceName(ctx); e != a {
		t.Errorf("expect empty service name, got %q", a)
	}
	if e, a := "", GetOperationName(ctx); e != a {
		t.Errorf("expect empty operation name, got %q", a)
	}

	ctx = WithServiceName(ctx, "WeatherService")
	ctx = WithOperationName(ctx, "GetForecast")

	if e, a := "WeatherService", GetServiceName(ctx); e != a {
		t.Errorf("expect service name %q, got %q", e, a)
	}
	if e, a := "GetForecast", GetOperationName(ctx); e != a {
		t.Errorf("expect operation name %q, got %q", e, a)
	}
}
