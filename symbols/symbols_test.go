package symbols

import (
	"strings"
	"testing"

	"github.com/smithygen/smithy-codegen/model"
)

const doc = `{
  "smithy": "2.0",
  "shapes": {
    "ex#Svc": {
      "type": "service",
      "version": "1",
      "operations": [{"target": "ex#Op"}],
      "traits": {"smithy.api#httpBearerAuth": {}, "smithy.api#httpApiKeyAuth": {"name":"x-api-key","in":"header"}}
    },
    "ex#Op": {
      "type": "operation",
      "input": {"target": "ex#OpInput"},
      "output": {"target": "ex#OpOutput"},
      "errors": [{"target": "ex#NotFound"}]
    },
    "ex#OpInput": {"type": "structure", "members": {"name": {"target": "smithy.api#String"}}},
    "ex#OpOutput": {"type": "structure", "members": {"items": {"target": "ex#ItemList"}}},
    "ex#ItemList": {"type": "list", "member": {"target": "smithy.api#String"}},
    "ex#NotFound": {"type": "structure", "traits": {"smithy.api#error": "client"}, "members": {}}
  }
}`

func TestProjectReachability(t *testing.T) {
	m := model.NewModel()
	reg := model.NewRegistry(m.Interner)
	p := model.NewParser(m, reg, model.Options{})
	if err := p.Parse(strings.NewReader(doc)); err != nil {
		t.Fatalf("parse: %v", err)
	}

	sp, err := Project(m, m.ServiceID)
	if err != nil {
		t.Fatalf("project: %v", err)
	}

	if len(sp.Operations) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(sp.Operations))
	}
	if len(sp.Errors) != 1 {
		t.Fatalf("expected 1 error shape, got %d", len(sp.Errors))
	}

	wantData := map[string]bool{"ex#OpInput": true, "ex#OpOutput": true}
	if len(sp.DataShapes) != len(wantData) {
		t.Fatalf("expected %d data shapes, got %d", len(wantData), len(sp.DataShapes))
	}
	for _, id := range sp.DataShapes {
		name, _ := m.Interner.Name(id)
		if !wantData[name] {
			t.Errorf("unexpected data shape %q", name)
		}
	}

	if len(sp.AuthSchemes) != 2 || sp.AuthSchemes[0] != "httpApiKeyAuth" || sp.AuthSchemes[1] != "httpBearerAuth" {
		t.Errorf("unexpected auth schemes: %v", sp.AuthSchemes)
	}
}
