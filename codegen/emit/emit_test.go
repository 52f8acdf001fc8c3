package emit

import (
	"strings"
	"testing"
)

func TestDocRenderStruct(t *testing.T) {
	d := NewDoc("weather")
	d.Import("time")
	d.Add(Struct{
		Name: "GetForecastInput",
		Doc:  []string{"GetForecastInput is the input for GetForecast."},
		Fields: []Field{
			{Name: "City", Type: "string"},
			{Name: "At", Type: "*time.Time"},
		},
	})

	out := d.Render()
	if !strings.Contains(out, "package weather") {
		t.Errorf("missing package clause:\n%s", out)
	}
	if !strings.Contains(out, `"time"`) {
		t.Errorf("missing import:\n%s", out)
	}
	if !strings.Contains(out, "type GetForecastInput struct {") {
		t.Errorf("missing struct decl:\n%s", out)
	}
	if !strings.Contains(out, "City string") {
		t.Errorf("missing field:\n%s", out)
	}
}

func TestEnumRender(t *testing.T) {
	e := Enum{
		Name: "Status",
		Members: []Field{
			{Name: "StatusActive", Type: `"ACTIVE"`},
			{Name: "StatusInactive", Type: `"INACTIVE"`},
		},
	}
	var b strings.Builder
	e.render(&b, 0)
	out := b.String()
	if !strings.Contains(out, "StatusActive Status = \"ACTIVE\"") {
		t.Errorf("unexpected enum render:\n%s", out)
	}
}

func TestHTMLToMarkdown(t *testing.T) {
	in := "<p>Returns the <b>current</b> forecast.</p><ul><li>City required</li></ul>"
	out := HTMLToMarkdown(in)
	if !strings.Contains(out, "**current**") {
		t.Errorf("expected bold conversion, got %q", out)
	}
	if !strings.Contains(out, "- City required") {
		t.Errorf("expected list conversion, got %q", out)
	}
}
