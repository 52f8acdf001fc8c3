package http

import (
	"fmt"
	"strings"

	smithyuri "github.com/smithygen/smithy-codegen/internal/uri"
)

// ValidateEndpointHost validates that the host string passed in is a valid RFC
// 3986 host. This is a no-op if the host string is empty, and can be used to
// validate a built request's URL.Host before a client hands it to an HTTP
// transport.
func ValidateEndpointHost(host string) error {
	if host == "" {
		return nil
	}

	var hostname string
	var port string

	if strings.Contains(host, ":") {
		var err error
		hostname, port, err = splitHostPort(host)
		if err != nil {
			return err
		}

		if !smithyuri.ValidPortNumber(port) {
			return fmt.Errorf("port number should be in range [0-65535], got %v", port)
		}
	} else {
		hostname = host
	}

	if len(hostname) > 255 {
		return fmt.Errorf("endpoint host can't be more than 255 characters, got %v", len(hostname))
	}

	labels := strings.Split(hostname, ".")
	for i, label := range labels {
		if i == len(labels)-1 && i > 0 && label == "" {
			// fully qualified domain names include a trailing dot
			continue
		}
		if !smithyuri.ValidHostLabel(label) {
			return fmt.Errorf("endpoint host label, %v, is not a valid RFC 3986 host label", label)
		}
	}

	return nil
}

func splitHostPort(host string) (hostname, port string, err error) {
	i := strings.LastIndex(host, ":")
	if i < 0 {
		return host, "", nil
	}
	hostname, port = host[:i], host[i+1:]
	if hostname == "" || port == "" {
		return "", "", fmt.Errorf("invalid host %q, empty host or port", host)
	}
	return hostname, port, nil
}
