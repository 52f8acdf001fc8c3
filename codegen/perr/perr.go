// Package perr defines the pipeline's typed error kinds: small struct types
// implementing error, grouped by the stage that raises them (parse, model,
// codec, config), the same ad hoc struct-per-error-kind shape the runtime
// package uses for DeserializationError/GenericAPIError.
package perr

import "fmt"

// ParseKind enumerates model-parse failure kinds.
type ParseKind string

const (
	InvalidVersion       ParseKind = "InvalidVersion"
	UnexpectedToken      ParseKind = "UnexpectedToken"
	InvalidShapeProperty ParseKind = "InvalidShapeProperty"
	InvalidMemberTarget  ParseKind = "InvalidMemberTarget"
	InvalidShapeTarget   ParseKind = "InvalidShapeTarget"
	UnknownType          ParseKind = "UnknownType"
	UnknownTrait         ParseKind = "UnknownTrait"
)

// ParseError reports a failure parsing the Smithy JSON AST.
type ParseError struct {
	Kind ParseKind
	Path string
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse: %s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("parse: %s at %s: %s", e.Kind, e.Path, e.Msg)
}

// ModelKind enumerates shape-graph resolution failure kinds.
type ModelKind string

const (
	ShapeNotFound          ModelKind = "ShapeNotFound"
	NameNotFound           ModelKind = "NameNotFound"
	MissingServiceShape    ModelKind = "MissingServiceShape"
	MissingResourceShape   ModelKind = "MissingResourceShape"
	MissingEndpointRuleSet ModelKind = "MissingEndpointRuleSet"
	MissingSlug            ModelKind = "MissingSlug"
)

// ModelError reports a failure resolving references in the shape graph.
type ModelError struct {
	Kind    ModelKind
	ShapeID string
	Msg     string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model: %s (%s): %s", e.Kind, e.ShapeID, e.Msg)
}

// CodecKind enumerates (de)serialization failure kinds. Write-side failures
// are implementation errors (big_integer/big_decimal written where the
// protocol has no representation for them) and must always surface, never
// be silently dropped.
type CodecKind string

const (
	UnexpectedNode                   CodecKind = "UnexpectedNode"
	UnexpectedResponseHeader         CodecKind = "UnexpectedResponseHeader"
	UnexpectedResponseMember         CodecKind = "UnexpectedResponseMember"
	UnexpectedResponseUnionField     CodecKind = "UnexpectedResponseUnionField"
	UnexpectedResponseStructField    CodecKind = "UnexpectedResponseStructField"
	UnexpectedResponseStatus         CodecKind = "UnexpectedResponseStatus"
	UnresolvedResponseError          CodecKind = "UnresolvedResponseError"
	MissingResponse                  CodecKind = "MissingResponse"
	CodecUnexpectedToken             CodecKind = "UnexpectedToken"
	UnimplementedCodecOperationPanic CodecKind = "UnimplementedCodecOperation"
)

// CodecError reports a (de)serialization failure.
type CodecError struct {
	Kind CodecKind
	Msg  string
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("codec: %s: %s", e.Kind, e.Msg)
}

// ConfigKind enumerates pipeline Options validation failure kinds.
type ConfigKind string

const (
	ConfigMissingRegion          ConfigKind = "ConfigMissingRegion"
	ConfigMissingHttpClient      ConfigKind = "ConfigMissingHttpClient"
	ConfigMissingIdentityManager ConfigKind = "ConfigMissingIdentityManager"
	ConfigAppIdTooLong           ConfigKind = "ConfigAppIdTooLong"
	ConfigAppIdInvalid           ConfigKind = "ConfigAppIdInvalid"
)

// ConfigError reports invalid or incomplete pipeline Options.
type ConfigError struct {
	Kind  ConfigKind
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s (%s): %s", e.Kind, e.Field, e.Msg)
}

// PolicyAbort is returned when a policy_* knob set to "abort" is tripped,
// distinguishing a deliberate stop from any other task failure.
type PolicyAbort struct {
	Policy string
	Reason string
}

func (e *PolicyAbort) Error() string {
	return fmt.Sprintf("policy %q aborted the run: %s", e.Policy, e.Reason)
}
