package http

import smithy "github.com/smithygen/smithy-codegen"

var (
	apiKeyInKey   struct{}
	apiKeyNameKey struct{}
)

// GetAPIKeyIn gets the httpApiKeyAuth trait's `in` location from Properties.
func GetAPIKeyIn(p *smithy.Properties) (string, bool) {
	v, ok := p.Get(apiKeyInKey).(string)
	return v, ok
}

// SetAPIKeyIn sets the httpApiKeyAuth trait's `in` location on Properties.
func SetAPIKeyIn(p *smithy.Properties, in string) {
	p.Set(apiKeyInKey, in)
}

// GetAPIKeyName gets the httpApiKeyAuth trait's header/query name from Properties.
func GetAPIKeyName(p *smithy.Properties) (string, bool) {
	v, ok := p.Get(apiKeyNameKey).(string)
	return v, ok
}

// SetAPIKeyName sets the httpApiKeyAuth trait's header/query name on Properties.
func SetAPIKeyName(p *smithy.Properties, name string) {
	p.Set(apiKeyNameKey, name)
}
