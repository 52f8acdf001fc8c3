package ident

import "testing"

func TestPascalCase(t *testing.T) {
	cases := map[string]string{
		"my_shape_name":  "MyShapeName",
		"myShapeName":    "MyShapeName",
		"HTTPStatusCode": "HTTPStatusCode",
		"shape-name":     "ShapeName",
		"ARN":            "ARN",
		"s3BucketName":   "S3BucketName",
		"already_PASCAL": "AlreadyPASCAL",
	}
	for in, want := range cases {
		if got := PascalCase(in); got != want {
			t.Errorf("PascalCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCamelCase(t *testing.T) {
	cases := map[string]string{
		"MyShapeName": "myShapeName",
		"my_shape":    "myShape",
	}
	for in, want := range cases {
		if got := CamelCase(in); got != want {
			t.Errorf("CamelCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSnakeCase(t *testing.T) {
	if got := SnakeCase("MyShapeName"); got != "my_shape_name" {
		t.Errorf("SnakeCase = %q", got)
	}
}

func TestScreamCase(t *testing.T) {
	if got := ScreamCase("myShapeName"); got != "MY_SHAPE_NAME" {
		t.Errorf("ScreamCase = %q", got)
	}
}

func TestExportedFieldKeyword(t *testing.T) {
	if got := ExportedField("type"); got != "Type_" {
		t.Errorf("ExportedField(type) = %q, want Type_", got)
	}
}
