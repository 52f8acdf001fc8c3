package xmlshape

import (
	"testing"

	"github.com/smithygen/smithy-codegen"
)

func (p *person) Deserialize(d smithy.ShapeDeserializer) error {
	return smithy.ReadStruct(d, personSchema, func(ms *smithy.Schema) error {
		switch ms.ID.Member {
		case "name":
			return d.ReadString(ms, &p.Name)
		case "age":
			return d.ReadInt32(ms, &p.Age)
		}
		return nil
	})
}

func TestReadStructTopLevel(t *testing.T) {
	d := NewShapeDeserializer([]byte(`<Person><name>Ada</name><age>36</age></Person>`))

	var p person
	if err := p.Deserialize(d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e, a := "Ada", p.Name; e != a {
		t.Errorf("expect name %q, got %q", e, a)
	}
	if e, a := int32(36), p.Age; e != a {
		t.Errorf("expect age %d, got %d", e, a)
	}
}

func TestReadStructSkipsUnknownMembers(t *testing.T) {
	d := NewShapeDeserializer([]byte(`<Person><extra><nested>x</nested></extra><name>Ada</name><age>36</age></Person>`))

	var p person
	if err := p.Deserialize(d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e, a := "Ada", p.Name; e != a {
		t.Errorf("expect name %q, got %q", e, a)
	}
	if e, a := int32(36), p.Age; e != a {
		t.Errorf("expect age %d, got %d", e, a)
	}
}

func TestReadList(t *testing.T) {
	listSchema := smithy.NewMember("tags", &smithy.Schema{
		Type:    smithy.ShapeTypeList,
		Members: map[string]*smithy.Schema{"member": smithy.NewMember("member", stringSchema)},
	})

	d := NewShapeDeserializer([]byte(`<tags><member>a</member><member>b</member></tags>`))

	var got []string
	err := smithy.ReadList(d, listSchema, func() error {
		var s string
		if err := d.ReadString(listSchema.Members["member"], &s); err != nil {
			return err
		}
		got = append(got, s)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e, a := 2, len(got); e != a {
		t.Fatalf("expect %d items, got %d", e, a)
	}
	if e, a := "a", got[0]; e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
	if e, a := "b", got[1]; e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}

func TestReadMap(t *testing.T) {
	mapSchema := smithy.NewMember("attrs", &smithy.Schema{
		Type: smithy.ShapeTypeMap,
		Members: map[string]*smithy.Schema{
			"key":   smithy.NewMember("key", stringSchema),
			"value": smithy.NewMember("value", stringSchema),
		},
	})

	d := NewShapeDeserializer([]byte(`<attrs><entry><key>color</key><value>blue</value></entry></attrs>`))

	got := map[string]string{}
	err := smithy.ReadMap(d, mapSchema, func(key string) error {
		var v string
		if err := d.ReadString(mapSchema.Members["value"], &v); err != nil {
			return err
		}
		got[key] = v
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e, a := "blue", got["color"]; e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}
