package pipeline

import (
	"regexp"

	"github.com/smithygen/smithy-codegen/codegen/perr"
)

const maxAppIDLength = 50

var appIDPattern = regexp.MustCompile(`^[A-Za-z0-9_+-]*$`)

// Validate checks Options for the errors spec.md §7 classifies under
// Config, returning the first one found.
func (o Options) Validate() error {
	if o.Region == "" {
		return &perr.ConfigError{Kind: perr.ConfigMissingRegion, Field: "Region", Msg: "region must be set"}
	}
	if o.HTTPClient == "" {
		return &perr.ConfigError{Kind: perr.ConfigMissingHttpClient, Field: "HTTPClient", Msg: "http client must be set"}
	}
	if o.IdentityManager == "" {
		return &perr.ConfigError{Kind: perr.ConfigMissingIdentityManager, Field: "IdentityManager", Msg: "identity manager must be set"}
	}
	if len(o.AppID) > maxAppIDLength {
		return &perr.ConfigError{Kind: perr.ConfigAppIdTooLong, Field: "AppID", Msg: "app id exceeds 50 characters"}
	}
	if !appIDPattern.MatchString(o.AppID) {
		return &perr.ConfigError{Kind: perr.ConfigAppIdInvalid, Field: "AppID", Msg: "app id contains invalid characters"}
	}
	return nil
}
