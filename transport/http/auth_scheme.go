package http

import (
	"context"

	smithy "github.com/smithygen/smithy-codegen"
	"github.com/smithygen/smithy-codegen/auth"
)

// AuthScheme defines an authentication method a generated client can use to
// sign an operation's request, one per auth trait a service declares
// (smithy.api#httpBasicAuth, #httpBearerAuth, #httpDigestAuth,
// #httpApiKeyAuth) plus the always-available anonymous/no-auth scheme.
type AuthScheme interface {
	SchemeID() string
	IdentityResolver(auth.IdentityResolverOptions) auth.IdentityResolver
	Signer() Signer
}

// Signer signs an HTTP request with a resolved identity.
type Signer interface {
	SignRequest(ctx context.Context, req *Request, identity auth.Identity, props smithy.Properties) error
}
