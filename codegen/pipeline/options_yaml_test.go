package pipeline

import "testing"

func TestLoadOptionsYAML(t *testing.T) {
	doc := []byte(`
region: us-east-1
http_client: default
identity_manager: default
app_id: my-app
policy_service:
  process: skip
  parse: abort
  codegen: skip
policy_parse:
  property: skip
  trait: abort
policy_codegen:
  unknown_shape: skip
  invalid_root: abort
  shape_codegen_fail: abort
`)

	o, err := LoadOptionsYAML(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e, a := "us-east-1", o.Region; e != a {
		t.Errorf("expect region %q, got %q", e, a)
	}
	if e, a := PolicyAbort, o.PolicyService.Parse; e != a {
		t.Errorf("expect policy_service.parse %q, got %q", e, a)
	}
	if e, a := PolicySkip, o.PolicyService.Process; e != a {
		t.Errorf("expect policy_service.process %q, got %q", e, a)
	}
	if e, a := PolicyAbort, o.PolicyParse.Trait; e != a {
		t.Errorf("expect policy_parse.trait %q, got %q", e, a)
	}
	if e, a := PolicyAbort, o.PolicyCodegen.InvalidRoot; e != a {
		t.Errorf("expect policy_codegen.invalid_root %q, got %q", e, a)
	}

	if err := o.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestLoadOptionsYAMLDefaultsUnspecifiedKnobs(t *testing.T) {
	doc := []byte(`
region: us-east-1
http_client: default
identity_manager: default
`)

	o, err := LoadOptionsYAML(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e, a := PolicySkip, o.PolicyService.Process; e != a {
		t.Errorf("expect default policy_service.process %q, got %q", e, a)
	}
	if e, a := PolicySkip, o.PolicyCodegen.ShapeCodegenFail; e != a {
		t.Errorf("expect default policy_codegen.shape_codegen_fail %q, got %q", e, a)
	}
}
