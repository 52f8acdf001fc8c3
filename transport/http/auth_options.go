package http

import (
	smithy "github.com/smithygen/smithy-codegen"
	"github.com/smithygen/smithy-codegen/auth"
)

// NewBasicOption creates an HTTP Basic auth Option from an input configuration.
//
// The Basic auth scheme currently has no signer-level configuration beyond
// the resolved identity (username/password), so the inputs to this API will
// be ignored.
func NewBasicOption(propFns ...func(*BasicProperties)) *auth.Option {
	return &auth.Option{SchemeID: SchemeIDBasic}
}

// BasicProperties represents a configuration of the HTTP Basic auth scheme.
type BasicProperties struct{}

// NewDigestOption creates an HTTP Digest auth Option from an input configuration.
func NewDigestOption(propFns ...func(*DigestProperties)) *auth.Option {
	return &auth.Option{SchemeID: SchemeIDDigest}
}

// DigestProperties represents a configuration of the HTTP Digest auth scheme.
type DigestProperties struct{}

// NewAPIKeyOption creates an API key auth Option from an input configuration.
func NewAPIKeyOption(propFns ...func(*APIKeyProperties)) *auth.Option {
	var props APIKeyProperties
	for _, f := range propFns {
		f(&props)
	}

	return &auth.Option{
		SchemeID:         SchemeIDAPIKey,
		SignerProperties: props.toSignerProperties(),
	}
}

// APIKeyProperties represent the inputs to the API key auth scheme, mirroring
// the smithy.api#httpApiKeyAuth trait's `in` and `name` fields.
type APIKeyProperties struct {
	In   string // "header" or "query"
	Name string
}

func (p *APIKeyProperties) toSignerProperties() smithy.Properties {
	var props smithy.Properties
	SetAPIKeyIn(&props, p.In)
	SetAPIKeyName(&props, p.Name)
	return props
}

// NewBearerOption creates a Bearer auth Option.
//
// The Bearer auth scheme currently has no configuration, so the inputs to this
// API will be ignored.
func NewBearerOption(propFns ...func(*BearerProperties)) *auth.Option {
	return &auth.Option{SchemeID: SchemeIDBearer}
}

// BearerProperties represents a configuration of the Bearer auth scheme.
type BearerProperties struct{}

// NewAnonymousOption creates an Anonymous auth Option.
//
// The Anonymous auth scheme currently has no configuration, so the inputs to
// this API will be ignored.
func NewAnonymousOption(propFns ...func(*AnonymousProperties)) *auth.Option {
	return &auth.Option{SchemeID: SchemeIDAnonymous}
}

// AnonymousProperties represents a configuration of the Anonymous auth scheme.
type AnonymousProperties struct{}
