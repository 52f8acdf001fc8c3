package http

import (
	"context"

	smithy "github.com/smithygen/smithy-codegen"
	"github.com/smithygen/smithy-codegen/auth"
)

// Scheme IDs for the auth traits recognized by the symbol graph
// (smithy.api#httpBasicAuth, #httpBearerAuth, #httpDigestAuth,
// #httpApiKeyAuth) plus the always-available no-auth scheme.
const (
	// SchemeIDBasic identifies the HTTP Basic auth scheme.
	SchemeIDBasic = "smithy.api#httpBasicAuth"

	// SchemeIDDigest identifies the HTTP Digest auth scheme.
	SchemeIDDigest = "smithy.api#httpDigestAuth"

	// SchemeIDBearer identifies the HTTP Bearer auth scheme.
	SchemeIDBearer = "smithy.api#httpBearerAuth"

	// SchemeIDAPIKey identifies the HTTP API key auth scheme.
	SchemeIDAPIKey = "smithy.api#httpApiKeyAuth"

	// SchemeIDAnonymous identifies the anonymous or "no-auth" scheme.
	SchemeIDAnonymous = "smithy.api#noAuth"
)

// NewBasicScheme returns an HTTP Basic auth scheme that uses the given Signer.
func NewBasicScheme(signer Signer) AuthScheme {
	return &authScheme{schemeID: SchemeIDBasic, signer: signer}
}

// NewDigestScheme returns an HTTP Digest auth scheme that uses the given Signer.
func NewDigestScheme(signer Signer) AuthScheme {
	return &authScheme{schemeID: SchemeIDDigest, signer: signer}
}

// NewBearerScheme returns an HTTP Bearer auth scheme that uses the given Signer.
func NewBearerScheme(signer Signer) AuthScheme {
	return &authScheme{schemeID: SchemeIDBearer, signer: signer}
}

// NewAPIKeyScheme returns an API key auth scheme that uses the given Signer.
func NewAPIKeyScheme(signer Signer) AuthScheme {
	return &authScheme{schemeID: SchemeIDAPIKey, signer: signer}
}

// NewAnonymousScheme returns an anonymous auth scheme.
func NewAnonymousScheme() AuthScheme {
	return &authScheme{schemeID: SchemeIDAnonymous, signer: &nopSigner{}}
}

// authScheme is parameterized to generically implement the exported
// AuthScheme interface.
type authScheme struct {
	schemeID string
	signer   Signer
}

var _ AuthScheme = (*authScheme)(nil)

func (s *authScheme) SchemeID() string {
	return s.schemeID
}

func (s *authScheme) IdentityResolver(o auth.IdentityResolverOptions) auth.IdentityResolver {
	return o.GetIdentityResolver(s.schemeID)
}

func (s *authScheme) Signer() Signer {
	return s.signer
}

type nopSigner struct{}

var _ Signer = (*nopSigner)(nil)

func (*nopSigner) SignRequest(context.Context, *Request, auth.Identity, smithy.Properties) error {
	return nil
}
