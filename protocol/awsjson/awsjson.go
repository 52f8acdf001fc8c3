// Package awsjson implements the aws.protocols#awsJson1_0 and
// aws.protocols#awsJson1_1 protocols: a single POST to the service root, the
// operation identified by an X-Amz-Target header, and the whole input/output
// shape serialized as one JSON document with no HTTP bindings.
package awsjson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/smithygen/smithy-codegen"
	smithyio "github.com/smithygen/smithy-codegen/io"
	"github.com/smithygen/smithy-codegen/middleware"
	"github.com/smithygen/smithy-codegen/protocol/jsonshape"
	smithyhttp "github.com/smithygen/smithy-codegen/transport/http"
)

// Version selects the awsJson1.0 or awsJson1.1 wire variant. The two differ
// only in Content-Type; everything else (request shape, error resolution)
// is identical.
type Version int

const (
	Version1_0 Version = iota
	Version1_1
)

func (v Version) contentType() string {
	if v == Version1_1 {
		return "application/x-amz-json-1.1"
	}
	return "application/x-amz-json-1.0"
}

func (v Version) id() string {
	if v == Version1_1 {
		return "aws.protocols#awsJson1_1"
	}
	return "aws.protocols#awsJson1_0"
}

// New returns an instance of the awsJson protocol for the given version.
func New(version Version) *Protocol {
	return &Protocol{
		version: version,
		codec:   &jsonshape.Codec{},
	}
}

// Protocol implements aws.protocols#awsJson1_0 / aws.protocols#awsJson1_1.
type Protocol struct {
	UseQueryCompatible bool

	version Version
	codec   *jsonshape.Codec
}

var _ smithy.ClientProtocol[*smithyhttp.Request, *smithyhttp.Response] = (*Protocol)(nil)

// ID identifies the protocol.
func (p *Protocol) ID() string {
	return p.version.id()
}

// SerializeRequest serializes a request for AWS Json 1.0/1.1.
func (p *Protocol) SerializeRequest(
	ctx context.Context,
	in smithy.Serializable,
	req *smithyhttp.Request,
) error {
	req.Method = http.MethodPost
	req.Header.Set("X-Amz-Target", fmt.Sprintf("%s.%s", middleware.GetServiceName(ctx), middleware.GetOperationName(ctx)))
	req.Header.Set("Content-Type", p.version.contentType())
	if p.UseQueryCompatible {
		req.Header.Set("X-Amzn-Query-Compatible", "true")
	}

	ss := p.codec.Serializer()
	in.Serialize(ss)

	sreq, err := req.SetStream(bytes.NewReader(ss.Bytes()))
	if err != nil {
		return fmt.Errorf("set stream: %w", err)
	}

	*req = *sreq
	return nil
}

// DeserializeResponse deserializes a response for AWS Json 1.0.
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

	sd := p.codec.Deserializer(payload)
	if err := out.Deserialize(sd); err != nil {
		return &smithy.DeserializationError{Err: err}
	}

	return nil
}

// TODO get the intermediate reader out of this thing and just operate on the
// bytes, it's way easier
func (p *Protocol) deserializeError(types *smithy.TypeRegistry, response *smithyhttp.Response) error {
	var errorBuffer bytes.Buffer
	if _, err := io.Copy(&errorBuffer, response.Body); err != nil {
		return &smithy.DeserializationError{Err: fmt.Errorf("failed to copy error response body, %w", err)}
	}
	errorBody := bytes.NewReader(errorBuffer.Bytes())

	errorCode := "UnknownError"
	errorMessage := errorCode

	var headerCode string
	if p.UseQueryCompatible {
		headerCode = response.Header.Get("X-Amzn-ErrorType")
	}

	var buff [1024]byte
	ringBuffer := smithyio.NewRingBuffer(buff[:])

	body := io.TeeReader(errorBody, ringBuffer)
	decoder := json.NewDecoder(body)
	decoder.UseNumber()
	bodyInfo, err := getProtocolErrorInfo(decoder)
	if err != nil {
		var snapshot bytes.Buffer
		io.Copy(&snapshot, ringBuffer)
		err = &smithy.DeserializationError{
			Err:      fmt.Errorf("failed to decode response body, %w", err),
			Snapshot: snapshot.Bytes(),
		}
		return err
	}

	errorBody.Seek(0, io.SeekStart)
	if typ, ok := resolveProtocolErrorType(headerCode, bodyInfo); ok {
		errorCode = typ
	}
	if len(bodyInfo.Message) != 0 {
		errorMessage = bodyInfo.Message
	}

	perr, ok := types.DeserializableError(errorCode)
	if !ok {
		return &smithy.GenericAPIError{
			Code:    errorCode,
			Message: errorMessage,
		}

	}

	errorBody.Seek(0, io.SeekStart)
	errorBytes, _ := io.ReadAll(errorBody)
	deser := p.codec.Deserializer(errorBytes)
	if err := perr.Deserialize(deser); err != nil {
		return &smithy.DeserializationError{Err: err}
	}

	return perr
}

type protocolErrorInfo struct {
	Type    string `json:"__type"`
	Message string

	// nonstandard, but some AWS services do present the type here
	Code any
}

func getProtocolErrorInfo(decoder *json.Decoder) (protocolErrorInfo, error) {
	var errInfo protocolErrorInfo
	if err := decoder.Decode(&errInfo); err != nil {
		if err == io.EOF {
			return errInfo, nil
		}
		return errInfo, err
	}

	return errInfo, nil
}

func resolveProtocolErrorType(headerType string, bodyInfo protocolErrorInfo) (string, bool) {
	if len(headerType) != 0 {
		return headerType, true
	} else if len(bodyInfo.Type) != 0 {
		return bodyInfo.Type, true
	} else if code, ok := bodyInfo.Code.(string); ok && len(code) != 0 {
		return code, true
	}
	return "", false
}
