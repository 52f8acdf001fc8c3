package transport

import "github.com/smithygen/smithy-codegen"

// Endpoint is a Smithy endpoint.
type Endpoint struct {
	URI string

	Fields *Fields

	Properties smithy.Properties
}
