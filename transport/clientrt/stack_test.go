package clientrt

import (
	"context"
	"testing"

	"github.com/smithygen/smithy-codegen/logging"
	smithyhttp "github.com/smithygen/smithy-codegen/transport/http"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Logf(class logging.Classification, format string, v ...interface{}) {
	r.lines = append(r.lines, string(class))
}

func TestNewDefaultStackLogsAndStampsRequestTime(t *testing.T) {
	logger := &recordingLogger{}
	stack := NewDefaultStack("GetWidget", logger)

	var serialized, deserialized bool
	var stampedHeader string

	err := Invoke(context.Background(), stack,
		func(ctx context.Context, req *smithyhttp.Request) (*smithyhttp.Response, error) {
			stampedHeader = req.Header.Get(RequestTimestampField)
			return &smithyhttp.Response{}, nil
		},
		func(ctx context.Context, req *smithyhttp.Request) error {
			serialized = true
			return nil
		},
		func(ctx context.Context, resp *smithyhttp.Response) error {
			deserialized = true
			return nil
		},
	)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if !serialized || !deserialized {
		t.Fatalf("expected both serialize and deserialize to run, got serialize=%v deserialize=%v", serialized, deserialized)
	}
	if stampedHeader == "" {
		t.Fatalf("expected the Build step to stamp %s before the round trip", RequestTimestampField)
	}
	if len(logger.lines) != 1 || logger.lines[0] != string(logging.Debug) {
		t.Fatalf("expected one Debug log line from the Initialize step, got %v", logger.lines)
	}
}

func TestNewDefaultStackDefaultsToNoopLogger(t *testing.T) {
	stack := NewDefaultStack("GetWidget", nil)
	err := Invoke(context.Background(), stack,
		func(ctx context.Context, req *smithyhttp.Request) (*smithyhttp.Response, error) {
			return &smithyhttp.Response{}, nil
		},
		func(ctx context.Context, req *smithyhttp.Request) error { return nil },
		func(ctx context.Context, resp *smithyhttp.Response) error { return nil },
	)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
}
