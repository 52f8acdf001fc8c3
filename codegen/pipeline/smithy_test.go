package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/smithygen/smithy-codegen/logging"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) Logf(class logging.Classification, format string, v ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, string(class)+" "+fmt.Sprintf(format, v...))
}

const fixtureModel = `{
  "smithy": "2.0",
  "metadata": {},
  "shapes": {
    "example.weather#Weather": {
      "type": "service",
      "version": "2020-01-01",
      "operations": [{"target": "example.weather#GetCurrentTime"}],
      "resources": [{"target": "example.weather#City"}],
      "traits": {
        "smithy.api#documentation": "Weather service.",
        "smithy.api#endpointRuleSet": {
          "version": "1.0",
          "parameters": {
            "Region": {"type": "String", "required": true, "documentation": "The AWS region."}
          },
          "rules": [
            {"type": "endpoint", "conditions": [], "endpoint": {"url": "https://example.com"}}
          ]
        }
      }
    },
    "example.weather#City": {
      "type": "resource",
      "identifiers": {"cityId": {"target": "smithy.api#String"}},
      "read": {"target": "example.weather#GetCity"}
    },
    "example.weather#GetCity": {
      "type": "operation",
      "input": {"target": "smithy.api#Unit"},
      "output": {"target": "example.weather#GetCityOutput"},
      "errors": [{"target": "example.weather#NoSuchResource"}]
    },
    "example.weather#GetCityOutput": {
      "type": "structure",
      "members": {
        "name": {"target": "smithy.api#String"}
      }
    },
    "example.weather#NoSuchResource": {
      "type": "structure",
      "members": {
        "message": {"target": "smithy.api#String"}
      },
      "traits": {
        "smithy.api#error": "client",
        "smithy.api#httpError": 404
      }
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

func writeFixture(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(fixtureModel), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}

func TestServiceParseAndSymbolProvider(t *testing.T) {
	ps, err := ServiceParse(DefaultOptions(), "weather.json", strings.NewReader(fixtureModel))
	if err != nil {
		t.Fatalf("ServiceParse: %v", err)
	}
	if e, a := "weather", ps.Slug; e != a {
		t.Fatalf("expected slug %q, got %q", e, a)
	}

	sp, err := SymbolProvider(ps)
	if err != nil {
		t.Fatalf("SymbolProvider: %v", err)
	}
	if len(sp.Operations) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(sp.Operations))
	}
	if len(sp.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(sp.Errors))
	}
}

func TestServiceParseRejectsDocumentWithoutService(t *testing.T) {
	_, err := ServiceParse(DefaultOptions(), "empty.json", strings.NewReader(`{"smithy":"2.0","shapes":{}}`))
	if err == nil {
		t.Fatalf("expected an error for a document with no service shape")
	}
}

func TestCodegenServiceWritesSpecLayout(t *testing.T) {
	ps, err := ServiceParse(DefaultOptions(), "weather.json", strings.NewReader(fixtureModel))
	if err != nil {
		t.Fatalf("ServiceParse: %v", err)
	}
	sp, err := SymbolProvider(ps)
	if err != nil {
		t.Fatalf("SymbolProvider: %v", err)
	}

	out := t.TempDir()
	issues := NewIssuesBag()
	err = WithScopedDir(out, ps.Slug, func(dir *ScopedDir) error {
		return CodegenService(dir, ps, sp, issues)
	})
	if err != nil {
		t.Fatalf("CodegenService: %v", err)
	}

	want := []string{"client.go", "errors.go", "endpoint.go", "resource_city.go", "README.md"}
	for _, name := range want {
		p := filepath.Join(out, "weather", name)
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("expected %s to be written: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("expected %s to be non-empty", name)
		}
	}

	client, _ := os.ReadFile(filepath.Join(out, "weather", "client.go"))
	if !strings.Contains(string(client), "func (c *Client) GetCurrentTime(") {
		t.Errorf("client.go missing GetCurrentTime method:\n%s", client)
	}
	if !strings.Contains(string(client), "package weather") {
		t.Errorf("client.go missing package clause:\n%s", client)
	}
	if !strings.Contains(string(client), "type GetCurrentTimeOutput struct") {
		t.Errorf("client.go missing GetCurrentTimeOutput type (schema.Builder driven by the symbol graph):\n%s", client)
	}
	if !strings.Contains(string(client), "time.Time") {
		t.Errorf("client.go should render the required `time` member as time.Time:\n%s", client)
	}

	errs, _ := os.ReadFile(filepath.Join(out, "weather", "errors.go"))
	if !strings.Contains(string(errs), "type NoSuchResource struct") {
		t.Errorf("errors.go missing NoSuchResource:\n%s", errs)
	}
	if !strings.Contains(string(errs), `return "client"`) {
		t.Errorf("errors.go should classify NoSuchResource as client fault:\n%s", errs)
	}

	readme, _ := os.ReadFile(filepath.Join(out, "weather", "README.md"))
	if !strings.Contains(string(readme), "# Weather") {
		t.Errorf("README.md missing service heading:\n%s", readme)
	}
}

func TestSmithyWalksInputDirectory(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFixture(t, in, "weather.json")

	opts := RunOptions{InputDir: in, OutputDir: out, Policy: DefaultOptions()}
	pc := NewContext()
	if err := Smithy(context.Background(), pc, opts); err != nil {
		t.Fatalf("Smithy: %v", err)
	}

	if _, err := os.Stat(filepath.Join(out, "weather", "client.go")); err != nil {
		t.Fatalf("expected weather/client.go to exist: %v", err)
	}
}

func TestSmithyRegisteredAsPipelineTask(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFixture(t, in, "weather.json")

	p := New()
	if err := RegisterDefaultTasks(p); err != nil {
		t.Fatalf("RegisterDefaultTasks: %v", err)
	}

	pc := NewContext()
	SetRunOptions(pc, RunOptions{InputDir: in, OutputDir: out, Policy: DefaultOptions()})

	if err := p.Run(context.Background(), pc); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !pc.Done("Smithy") {
		t.Fatalf("expected Smithy task to be marked done")
	}
	if _, err := os.Stat(filepath.Join(out, "weather", "README.md")); err != nil {
		t.Fatalf("expected weather/README.md to exist: %v", err)
	}
}

func TestSmithyServiceFilterSkipsFile(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFixture(t, in, "weather.json")

	pc := NewContext()
	SetServiceFilter(pc, func(name string) bool { return false })

	opts := RunOptions{InputDir: in, OutputDir: out, Policy: DefaultOptions()}
	if err := Smithy(context.Background(), pc, opts); err != nil {
		t.Fatalf("Smithy: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "weather")); !os.IsNotExist(err) {
		t.Fatalf("expected weather/ not to be generated when filtered out")
	}
}

func TestSmithyAbortsOnParsePolicyAbort(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	if err := os.WriteFile(filepath.Join(in, "broken.json"), []byte(`{"smithy":"2.0","shapes":{}}`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	opts := DefaultOptions()
	opts.PolicyService.Parse = PolicyAbort
	pc := NewContext()
	err := Smithy(context.Background(), pc, RunOptions{InputDir: in, OutputDir: out, Policy: opts})
	if err == nil {
		t.Fatalf("expected an error when policy_service.parse is abort and a file has no service shape")
	}
}

func TestSmithyLogsThroughInstalledLogger(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFixture(t, in, "weather.json")

	pc := NewContext()
	logger := &recordingLogger{}
	SetLogger(pc, logger)

	opts := RunOptions{InputDir: in, OutputDir: out, Policy: DefaultOptions()}
	if err := Smithy(context.Background(), pc, opts); err != nil {
		t.Fatalf("Smithy: %v", err)
	}

	found := false
	for _, line := range logger.lines {
		if strings.Contains(line, "weather.json generated successfully") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected installed logger to record a success line, got %v", logger.lines)
	}
}

func TestSmithySkipsOnDefaultPolicy(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	if err := os.WriteFile(filepath.Join(in, "broken.json"), []byte(`{"smithy":"2.0","shapes":{}}`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	pc := NewContext()
	err := Smithy(context.Background(), pc, RunOptions{InputDir: in, OutputDir: out, Policy: DefaultOptions()})
	if err != nil {
		t.Fatalf("expected skip policy to swallow the per-file error, got %v", err)
	}
	if !pc.Issues.HasErrors() {
		t.Fatalf("expected the skipped failure to be recorded as an Issue")
	}
}
