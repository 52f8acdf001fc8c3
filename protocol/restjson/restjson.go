// Package restjson implements the aws.protocols#restJson1 protocol: the
// operation's method and URI template come from its http trait, scalar
// members bound with httpHeader/httpQuery/httpLabel/httpPrefixHeaders travel
// on the request line or headers, and everything else is serialized as a
// single JSON document in the body.
//
// Because the Protocol implementation only sees the shape being
// (de)serialized and not its enclosing operation schema, generated client
// code is expected to pre-populate Request.Method and Request.URL.Path (with
// {label} and {label+} placeholders still in place) before calling
// SerializeRequest; this package fills in everything else.
package restjson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/smithygen/smithy-codegen"
	smithyio "github.com/smithygen/smithy-codegen/io"
	"github.com/smithygen/smithy-codegen/protocol/httpbinding"
	"github.com/smithygen/smithy-codegen/protocol/jsonshape"
	smithyhttp "github.com/smithygen/smithy-codegen/transport/http"
)

// Protocol implements aws.protocols#restJson1.
type Protocol struct {
	codec *jsonshape.Codec
}

// New returns an instance of the restJson1 protocol.
func New() *Protocol {
	return &Protocol{codec: &jsonshape.Codec{}}
}

var _ smithy.ClientProtocol[*smithyhttp.Request, *smithyhttp.Response] = (*Protocol)(nil)

// ID identifies the protocol.
func (p *Protocol) ID() string {
	return "aws.protocols#restJson1"
}

// SerializeRequest serializes a request for restJson1: header/query/label
// bound members go onto the request line, the remainder is JSON-encoded as
// the body.
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

	req.Header.Set("Content-Type", "application/json")
	sreq, err := req.SetStream(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("set stream: %w", err)
	}

	*req = *sreq
	return nil
}

// DeserializeResponse deserializes a response for restJson1.
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

func (p *Protocol) deserializeError(types *smithy.TypeRegistry, response *smithyhttp.Response) error {
	var errorBuffer bytes.Buffer
	if _, err := io.Copy(&errorBuffer, response.Body); err != nil {
		return &smithy.DeserializationError{Err: fmt.Errorf("failed to copy error response body, %w", err)}
	}
	errorBody := bytes.NewReader(errorBuffer.Bytes())

	errorCode := "UnknownError"
	errorMessage := errorCode

	headerCode := response.Header.Get("X-Amzn-Errortype")

	var buff [1024]byte
	ringBuffer := smithyio.NewRingBuffer(buff[:])

	body := io.TeeReader(errorBody, ringBuffer)
	decoder := json.NewDecoder(body)
	decoder.UseNumber()
	bodyInfo, err := getProtocolErrorInfo(decoder)
	if err != nil {
		var snapshot bytes.Buffer
		io.Copy(&snapshot, ringBuffer)
		return &smithy.DeserializationError{
			Err:      fmt.Errorf("failed to decode response body, %w", err),
			Snapshot: snapshot.Bytes(),
		}
	}

	errorBody.Seek(0, io.SeekStart)
	if typ, ok := resolveProtocolErrorType(headerCode, bodyInfo); ok {
		errorCode = sanitizeErrorCode(typ)
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
	Type    string `json:"code"`
	Type2   string `json:"__type"`
	Message string
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
	} else if len(bodyInfo.Type2) != 0 {
		return bodyInfo.Type2, true
	}
	return "", false
}

// sanitizeErrorCode strips a shape-id namespace prefix and any trailing
// ":<status>" suffix some restJson1 implementations attach to the error
// code, e.g. "aws.protocols#ErrorType:http://..." or "ErrorType:400".
func sanitizeErrorCode(code string) string {
	if i := bytes.IndexByte([]byte(code), ':'); i >= 0 {
		code = code[:i]
	}
	if i := bytes.IndexByte([]byte(code), '#'); i >= 0 {
		code = code[i+1:]
	}
	return code
}
