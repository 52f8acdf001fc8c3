// Package httpbinding drives the teacher's lower-level httpbinding.Encoder
// (URI label substitution, query/header writers) from a schema.Descriptor,
// implementing the generic write/parse contract every REST protocol needs:
// component G of the code generator.
package httpbinding

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/smithygen/smithy-codegen/codegen/schema"
	"github.com/smithygen/smithy-codegen/httpbinding"
)

// FieldValue is the minimal value accessor the binding writer needs from a
// generated input struct for one member: its presence and its scalar/string
// representation. Generated code fills one in per bound member.
type FieldValue struct {
	Present bool
	String  string
	Strings []string
	Bytes   []byte
}

// BindingError reports an HTTP binding write/parse failure.
type BindingError struct {
	Kind string
	Msg  string
}

func (e *BindingError) Error() string { return fmt.Sprintf("httpbinding: %s: %s", e.Kind, e.Msg) }

// WriteBindings substitutes URI labels and writes query/header values for
// every member in desc.Members whose Binding is path, query, header, or
// header_prefix. values is keyed by member name. Members bound to payload
// or body are left untouched; callers route those to a payload codec.
func WriteBindings(enc *httpbinding.Encoder, desc *schema.Descriptor, values map[string]FieldValue) error {
	for _, ms := range desc.Members {
		v, ok := values[ms.Name]
		if !ok || !v.Present {
			continue
		}
		switch ms.Binding {
		case schema.BindingPath:
			if err := enc.SetURI(ms.Name).String(v.String); err != nil {
				return &BindingError{Kind: "InvalidURILabel", Msg: err.Error()}
			}
		case schema.BindingHeader:
			if len(v.Strings) > 0 {
				for _, s := range v.Strings {
					enc.AddHeader(ms.HeaderName).String(s)
				}
			} else if len(v.Bytes) > 0 {
				enc.SetHeader(ms.HeaderName).String(base64.StdEncoding.EncodeToString(v.Bytes))
			} else {
				enc.SetHeader(ms.HeaderName).String(v.String)
			}
		case schema.BindingQuery:
			if len(v.Strings) > 0 {
				for _, s := range v.Strings {
					enc.AddQuery(ms.QueryName).String(s)
				}
			} else {
				enc.SetQuery(ms.QueryName).String(v.String)
			}
		case schema.BindingHeaderPrefix:
			headers := enc.Headers(ms.PrefixName)
			for _, s := range v.Strings {
				// encoded as "key=value" pairs by the caller for the
				// prefix-map case
				parts := strings.SplitN(s, "=", 2)
				if len(parts) == 2 {
					headers.AddHeader(parts[0]).String(parts[1])
				}
			}
		case schema.BindingQueryParams:
			for _, s := range v.Strings {
				parts := strings.SplitN(s, "=", 2)
				if len(parts) == 2 {
					if !enc.HasQuery(parts[0]) {
						enc.SetQuery(parts[0]).String(parts[1])
					}
				}
			}
		}
	}
	return nil
}

// ParseBindings is the read-side mirror of WriteBindings: it extracts
// status-code and header-bound fields from an HTTP response into a
// string-keyed map the generated deserializer consumes.
func ParseBindings(resp *http.Response, desc *schema.Descriptor) (map[string]string, int, error) {
	out := make(map[string]string)
	status := resp.StatusCode
	for _, ms := range desc.Members {
		switch ms.Binding {
		case schema.BindingStatusCode:
			out[ms.Name] = strconv.Itoa(status)
		case schema.BindingHeader:
			if v := resp.Header.Get(ms.HeaderName); v != "" {
				out[ms.Name] = v
			}
		case schema.BindingHeaderPrefix:
			for k, vs := range resp.Header {
				if strings.HasPrefix(strings.ToLower(k), strings.ToLower(ms.PrefixName)) {
					tail := k[len(ms.PrefixName):]
					if len(vs) > 0 {
						out[ms.Name+"."+tail] = vs[0]
					}
				}
			}
		}
	}
	return out, status, nil
}
