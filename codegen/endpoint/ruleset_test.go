package endpoint

import "testing"

func TestCompileSimpleRuleSet(t *testing.T) {
	raw := map[string]interface{}{
		"version": "1.0",
		"parameters": map[string]interface{}{
			"Region": map[string]interface{}{"type": "String", "required": true},
		},
		"rules": []interface{}{
			map[string]interface{}{
				"conditions": []interface{}{
					map[string]interface{}{"fn": "isSet", "argv": []interface{}{map[string]interface{}{"ref": "Region"}}},
				},
				"type":     "endpoint",
				"endpoint": map[string]interface{}{"url": "https://{Region}.example.com"},
			},
			map[string]interface{}{
				"type":  "error",
				"error": "Region must be set",
			},
		},
	}

	rs, err := Compile(raw)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if rs.Version != "1.0" {
		t.Errorf("version = %q", rs.Version)
	}
	if len(rs.Parameters) != 1 || !rs.Parameters["Region"].Required {
		t.Errorf("unexpected parameters: %+v", rs.Parameters)
	}
	if len(rs.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rs.Rules))
	}
	if rs.Rules[0].Kind != RuleKindEndpoint || rs.Rules[0].EndpointURL != "https://{Region}.example.com" {
		t.Errorf("unexpected first rule: %+v", rs.Rules[0])
	}
	if rs.Rules[1].Kind != RuleKindError || rs.Rules[1].ErrorMessage != "Region must be set" {
		t.Errorf("unexpected second rule: %+v", rs.Rules[1])
	}
}

func TestEvalGetAttr(t *testing.T) {
	data := map[string]interface{}{
		"parsedUrl": map[string]interface{}{"path": "/foo/bar"},
	}
	got, err := EvalGetAttr("parsedUrl.path", data)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if got != "/foo/bar" {
		t.Errorf("got %v", got)
	}
}
