// Package clientrt assembles the default per-operation middleware.Stack that
// a generated Client drives on every call, and runs it around a
// smithy.ClientProtocol round trip.
//
// Generated clients don't hand-assemble a Stack themselves; codegen/pipeline
// emits a call into NewDefaultStack/Invoke instead, the same way a
// hand-written smithy-go SDK client delegates default middleware wiring to a
// shared runtime package rather than repeating it per operation.
package clientrt

import (
	"context"
	"time"

	"github.com/smithygen/smithy-codegen/logging"
	"github.com/smithygen/smithy-codegen/middleware"
	smithytime "github.com/smithygen/smithy-codegen/time"
	"github.com/smithygen/smithy-codegen/transport"
	smithyhttp "github.com/smithygen/smithy-codegen/transport/http"
)

func defaultNow() time.Time { return time.Now() }

// RequestTimestampField is the header name a generated client stamps on
// every outgoing request's Build step, independent of whatever headers the
// wire protocol's Serialize step writes from modeled member bindings.
const RequestTimestampField = "X-Smithy-Request-Time"

// loggingInitializeMiddleware logs the start of an operation at Debug
// through whatever logging.Logger the calling Client was configured with.
type loggingInitializeMiddleware struct {
	logger    logging.Logger
	operation string
}

func (loggingInitializeMiddleware) Name() string { return "clientrt.LogOperation" }

func (m loggingInitializeMiddleware) HandleInitialize(
	ctx context.Context, in middleware.InitializeInput, next middleware.InitializeHandler,
) (middleware.InitializeOutput, error) {
	m.logger.Logf(logging.Debug, "invoking operation %s", m.operation)
	return next.HandleInitialize(ctx, in)
}

// requestTimestampBuildMiddleware stamps RequestTimestampField onto the
// transport request during the Build step. It builds the value in a fresh
// local transport.Fields and then sets the header, replacing any value the
// request already carries under that name.
type requestTimestampBuildMiddleware struct {
	now func() (httpDate string)
}

func (requestTimestampBuildMiddleware) Name() string { return "clientrt.StampRequestTime" }

func (m requestTimestampBuildMiddleware) HandleBuild(
	ctx context.Context, in middleware.BuildInput, next middleware.BuildHandler,
) (middleware.BuildOutput, error) {
	if req, ok := in.Request.(*smithyhttp.Request); ok {
		var fields transport.Fields
		fields.Set(transport.NewField(RequestTimestampField, m.now()))
		req.Header.Set(RequestTimestampField, fields.Get(RequestTimestampField).Values()[0])
	}
	return next.HandleBuild(ctx, in)
}

// NewDefaultStack returns the middleware.Stack a generated Client attaches
// to operation, ready for protocol-specific middleware (added by the
// caller's client configuration) to be inserted around it via Insert.
func NewDefaultStack(operation string, logger logging.Logger) *middleware.Stack {
	if logger == nil {
		logger = logging.Noop{}
	}
	st := middleware.NewStack()
	st.Initialize.Add(loggingInitializeMiddleware{logger: logger, operation: operation}, middleware.After)
	st.Build.Add(requestTimestampBuildMiddleware{now: func() string {
		return smithytime.FormatHTTPDate(nowFunc())
	}}, middleware.After)
	return st
}

// nowFunc is a package variable (rather than a direct time.Now() call) so
// tests can pin the stamped request time.
var nowFunc = defaultNow

type handlerFunc func(ctx context.Context, input interface{}) (interface{}, error)

func (f handlerFunc) Handle(ctx context.Context, input interface{}) (interface{}, error) {
	return f(ctx, input)
}

// Invoke drives stack around a single protocol round trip: Serialize writes
// in onto req during the terminal handler, and the caller's protocol
// deserializes resp into out. The actual transport round trip (dispatching
// req and producing resp) is left to the generated client's configuration,
// matching the division of labor in smithy.ClientProtocol's doc comment.
func Invoke(
	ctx context.Context,
	stack *middleware.Stack,
	roundTrip func(ctx context.Context, req *smithyhttp.Request) (*smithyhttp.Response, error),
	serialize func(ctx context.Context, req *smithyhttp.Request) error,
	deserialize func(ctx context.Context, resp *smithyhttp.Response) error,
) error {
	req := smithyhttp.NewStackRequest().(*smithyhttp.Request)

	terminal := handlerFunc(func(ctx context.Context, _ interface{}) (interface{}, error) {
		if err := serialize(ctx, req); err != nil {
			return nil, err
		}
		resp, err := roundTrip(ctx, req)
		if err != nil {
			return nil, err
		}
		if err := deserialize(ctx, resp); err != nil {
			return nil, err
		}
		return nil, nil
	})

	_, err := stack.HandleMiddleware(ctx, req, terminal)
	return err
}
