package model

import (
	"strings"
	"testing"
)

const sampleModel = `{
  "smithy": "2.0",
  "metadata": {"suppressions": []},
  "shapes": {
    "example.weather#Weather": {
      "type": "service",
      "version": "2006-03-01",
      "operations": [{"target": "example.weather#GetCurrentTime"}],
      "traits": {"smithy.api#httpBearerAuth": {}}
    },
    "example.weather#GetCurrentTime": {
      "type": "operation",
      "input": {"target": "smithy.api#Unit"},
      "output": {"target": "example.weather#GetCurrentTimeOutput"},
      "traits": {"smithy.api#http": {"method": "GET", "uri": "/time", "code": 200}}
    },
    "example.weather#GetCurrentTimeOutput": {
      "type": "structure",
      "members": {
        "time": {
          "target": "smithy.api#Timestamp",
          "traits": {"smithy.api#required": {}}
        }
      }
    }
  }
}`

func TestParseSampleModel(t *testing.T) {
	m := NewModel()
	reg := NewRegistry(m.Interner)
	p := NewParser(m, reg, Options{PropertyPolicy: PolicyAbort, TraitPolicy: PolicyAbort})

	if err := p.Parse(strings.NewReader(sampleModel)); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	svcID := m.Interner.Intern("example.weather#Weather")
	if m.ServiceID != svcID {
		t.Fatalf("expected service id to be set")
	}
	svc := m.Shape[svcID]
	if svc == nil || svc.Type != ShapeService {
		t.Fatalf("expected service shape")
	}
	if len(svc.Operations) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(svc.Operations))
	}

	bearerID := m.Interner.Intern("smithy.api#httpBearerAuth")
	if !m.HasTrait(svcID, bearerID) {
		t.Fatalf("expected httpBearerAuth trait on service")
	}

	opID := m.Interner.Intern("example.weather#GetCurrentTime")
	op := m.Shape[opID]
	if op == nil || op.Type != ShapeOperation {
		t.Fatalf("expected operation shape")
	}
	httpTraitID := m.Interner.Intern("smithy.api#http")
	payload, ok := m.Trait(opID, httpTraitID)
	if !ok {
		t.Fatalf("expected http trait")
	}
	ht := payload.(*HTTPTrait)
	if ht.Method != "GET" || ht.URI != "/time" || ht.Code != 200 {
		t.Fatalf("unexpected http trait: %+v", ht)
	}

	outID := m.Interner.Intern("example.weather#GetCurrentTimeOutput")
	out := m.Shape[outID]
	if out == nil || len(out.Members) != 1 || out.Members[0].Name != "time" {
		t.Fatalf("unexpected output shape: %+v", out)
	}

	memberID := m.Interner.Intern("example.weather#GetCurrentTimeOutput$time")
	reqID := m.Interner.Intern("smithy.api#required")
	if !m.HasTrait(memberID, reqID) {
		t.Fatalf("expected required trait on member")
	}
}

func TestParseUnknownPropertySkipPolicy(t *testing.T) {
	const doc = `{
	  "smithy": "2.0",
	  "shapes": {
	    "a#Foo": {"type": "string", "unknownProp": 1}
	  }
	}`
	m := NewModel()
	reg := NewRegistry(m.Interner)
	p := NewParser(m, reg, Options{PropertyPolicy: PolicySkip, TraitPolicy: PolicySkip})
	if err := p.Parse(strings.NewReader(doc)); err != nil {
		t.Fatalf("expected no error under skip policy, got %v", err)
	}
	if len(p.Issues()) == 0 {
		t.Fatalf("expected an issue recorded")
	}
}

func TestParseUnknownPropertyAbortPolicy(t *testing.T) {
	const doc = `{
	  "smithy": "2.0",
	  "shapes": {
	    "a#Foo": {"type": "string", "unknownProp": 1}
	  }
	}`
	m := NewModel()
	reg := NewRegistry(m.Interner)
	p := NewParser(m, reg, Options{PropertyPolicy: PolicyAbort, TraitPolicy: PolicyAbort})
	if err := p.Parse(strings.NewReader(doc)); err == nil {
		t.Fatalf("expected error under abort policy")
	}
}

func TestParseInvalidVersion(t *testing.T) {
	const doc = `{"smithy": "1.0", "shapes": {}}`
	m := NewModel()
	reg := NewRegistry(m.Interner)
	p := NewParser(m, reg, Options{})
	err := p.Parse(strings.NewReader(doc))
	if err == nil {
		t.Fatalf("expected InvalidVersion error")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != "InvalidVersion" {
		t.Fatalf("got %v", err)
	}
}
