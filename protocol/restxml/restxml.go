// Package restxml implements the aws.protocols#restXml1 protocol: the
// operation's method and URI template come from its http trait (as with
// restJson1), scalar members bound with httpHeader/httpQuery/httpLabel
// travel on the request line or headers, and everything else is serialized
// as a single XML document in the body.
//
// As with restjson, generated client code is expected to pre-populate
// Request.Method and Request.URL.Path with {label}/{label+} placeholders
// still in place before calling SerializeRequest.
package restxml

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/smithygen/smithy-codegen"
	"github.com/smithygen/smithy-codegen/protocol/httpbinding"
	"github.com/smithygen/smithy-codegen/protocol/xmlshape"
	smithyhttp "github.com/smithygen/smithy-codegen/transport/http"
	smithyxml "github.com/smithygen/smithy-codegen/xml"
)

// Protocol implements aws.protocols#restXml1.
type Protocol struct {
	codec *xmlshape.Codec
}

// New returns an instance of the restXml1 protocol.
func New() *Protocol {
	return &Protocol{codec: &xmlshape.Codec{}}
}

var _ smithy.ClientProtocol[*smithyhttp.Request, *smithyhttp.Response] = (*Protocol)(nil)

// ID identifies the protocol.
func (p *Protocol) ID() string {
	return "aws.protocols#restXml1"
}

// SerializeRequest serializes a request for restXml1.
func (p *Protocol) SerializeRequest(
	ctx context.Context,
	in smithy.Serializable,
	req *smithyhttp.Request,
) error {
	ss := newShapeSerializer(req)
	in.Serialize(ss)

	req.URL.Path = httpbinding.ExpandLabels(req.URL.Path, ss.Labels())

	body := ss.Bytes()
	if len(body) == 0 {
		return nil
	}

	req.Header.Set("Content-Type", "application/xml")
	sreq, err := req.SetStream(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("set stream: %w", err)
	}

	*req = *sreq
	return nil
}

// DeserializeResponse deserializes a response for restXml1.
func (p *Protocol) DeserializeResponse(
	ctx context.Context,
	types *smithy.TypeRegistry,
	resp *smithyhttp.Response,
	out smithy.Deserializable,
) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return p.deserializeError(types, resp)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &smithy.DeserializationError{Err: err}
	}
	if len(payload) == 0 {
		return nil
	}

	sd := p.codec.Deserializer(payload)
	if err := out.Deserialize(sd); err != nil {
		return &smithy.DeserializationError{Err: err}
	}

	return nil
}

// deserializeError reads the restXml1 `<ErrorResponse><Error>...` (or bare
// `<Error>...`, for services with noErrorWrapping) envelope to resolve the
// modeled error type, then replays the body through the normal codec so the
// modeled error type can fill in its own fields.
func (p *Protocol) deserializeError(types *smithy.TypeRegistry, response *smithyhttp.Response) error {
	var errorBuffer bytes.Buffer
	if _, err := io.Copy(&errorBuffer, response.Body); err != nil {
		return &smithy.DeserializationError{Err: fmt.Errorf("failed to copy error response body, %w", err)}
	}

	errorCode, err := smithyxml.GetResponseErrorCode(bytes.NewReader(errorBuffer.Bytes()), false)
	if err != nil || errorCode == "" {
		errorCode, err = smithyxml.GetResponseErrorCode(bytes.NewReader(errorBuffer.Bytes()), true)
	}
	if err != nil || errorCode == "" {
		errorCode = "UnknownError"
	}

	perr, ok := types.DeserializableError(errorCode)
	if !ok {
		return &smithy.GenericAPIError{
			Code:    errorCode,
			Message: errorCode,
		}
	}

	deser := p.codec.Deserializer(errorBuffer.Bytes())
	if err := perr.Deserialize(deser); err != nil {
		return &smithy.DeserializationError{Err: err}
	}

	return perr
}
