package middleware

import "context"

type (
	serviceNameKey   struct{}
	operationNameKey struct{}
)

// WithServiceName adds a service name to the context, such that
// GetServiceName can retrieve it later.
func WithServiceName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, serviceNameKey{}, name)
}

// GetServiceName retrieves the service name from the context. Returns an
// empty string if one isn't set.
func GetServiceName(ctx context.Context) string {
	name, _ := ctx.Value(serviceNameKey{}).(string)
	return name
}

// WithOperationName adds an operation name to the context, such that
// GetOperationName can retrieve it later.
func WithOperationName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, operationNameKey{}, name)
}

// GetOperationName retrieves the operation name from the context. Returns an
// empty string if one isn't set.
func GetOperationName(ctx context.Context) string {
	name, _ := ctx.Value(operationNameKey{}).(string)
	return name
}
