package httpbinding

import (
	"bytes"
	"fmt"
	"net/url"
)

// URIValue substitutes a single `{key}` or greedy `{key+}` label in a URI
// path template with an encoded value.
type URIValue struct {
	path, rawPath, buffer *[]byte
	key                   string
}

func newURIValue(path, rawPath, buffer *[]byte, key string) URIValue {
	return URIValue{path: path, rawPath: rawPath, buffer: buffer, key: key}
}

// String substitutes the URI label named u.key with v, URI-escaping each
// path segment unless the label is greedy (`{key+}`), in which case `/` is
// preserved unescaped.
func (u URIValue) String(v string) error {
	greedyLabel := []byte("{" + u.key + "+}")
	plainLabel := []byte("{" + u.key + "}")

	if bytes.Contains(*u.path, greedyLabel) {
		return u.substitute(greedyLabel, v, true)
	}
	if bytes.Contains(*u.path, plainLabel) {
		return u.substitute(plainLabel, v, false)
	}
	return fmt.Errorf("httpbinding: no URI label %q found in path template", u.key)
}

func (u URIValue) substitute(label []byte, v string, greedy bool) error {
	escaped := escapeSegments(v, greedy)
	rawEscaped := url.PathEscape(v)
	if greedy {
		rawEscaped = escapeSegments(v, true)
	}

	*u.path = bytes.Replace(*u.path, label, []byte(escaped), 1)
	*u.rawPath = bytes.Replace(*u.rawPath, label, []byte(rawEscaped), 1)
	return nil
}

// escapeSegments percent-escapes a URI label's value. When greedy is true,
// `/` separators are preserved so the label may expand across multiple path
// segments.
func escapeSegments(v string, greedy bool) string {
	if !greedy {
		return url.PathEscape(v)
	}
	parts := bytes.Split([]byte(v), []byte("/"))
	for i, p := range parts {
		parts[i] = []byte(url.PathEscape(string(p)))
	}
	return string(bytes.Join(parts, []byte("/")))
}
