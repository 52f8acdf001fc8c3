package pipeline

import (
	"strings"
	"testing"

	"github.com/smithygen/smithy-codegen/codegen/perr"
)

func validOptions() Options {
	o := DefaultOptions()
	o.Region = "us-east-1"
	o.HTTPClient = "default"
	o.IdentityManager = "default"
	o.AppID = "foo"
	return o
}

func TestValidateOK(t *testing.T) {
	if err := validOptions().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateAppIDInvalid(t *testing.T) {
	o := validOptions()
	o.AppID = "fo@"

	err := o.Validate()
	cerr, ok := err.(*perr.ConfigError)
	if !ok {
		t.Fatalf("expect *perr.ConfigError, got %T", err)
	}
	if e, a := perr.ConfigAppIdInvalid, cerr.Kind; e != a {
		t.Errorf("expect kind %v, got %v", e, a)
	}
}

func TestValidateAppIDTooLong(t *testing.T) {
	o := validOptions()
	o.AppID = strings.Repeat("f", 51)

	err := o.Validate()
	cerr, ok := err.(*perr.ConfigError)
	if !ok {
		t.Fatalf("expect *perr.ConfigError, got %T", err)
	}
	if e, a := perr.ConfigAppIdTooLong, cerr.Kind; e != a {
		t.Errorf("expect kind %v, got %v", e, a)
	}
}

func TestValidateMissingRegion(t *testing.T) {
	o := validOptions()
	o.Region = ""

	err := o.Validate()
	cerr, ok := err.(*perr.ConfigError)
	if !ok {
		t.Fatalf("expect *perr.ConfigError, got %T", err)
	}
	if e, a := perr.ConfigMissingRegion, cerr.Kind; e != a {
		t.Errorf("expect kind %v, got %v", e, a)
	}
}
