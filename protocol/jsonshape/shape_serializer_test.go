package jsonshape

import (
	"testing"

	"github.com/smithygen/smithy-codegen"
	smithytesting "github.com/smithygen/smithy-codegen/testing"
)

var stringSchema = &smithy.Schema{Type: smithy.ShapeTypeString}

type person struct {
	Name string
	Age  int32
}

var personSchema = &smithy.Schema{
	ID:   smithy.ShapeID{Namespace: "example", Name: "Person"},
	Type: smithy.ShapeTypeStructure,
	Members: map[string]*smithy.Schema{
		"name": smithy.NewMember("name", stringSchema),
		"age":  smithy.NewMember("age", &smithy.Schema{Type: smithy.ShapeTypeInteger}),
	},
}

func (p *person) Serialize(ss smithy.ShapeSerializer) {
	ss.WriteString(personSchema.Members["name"], p.Name)
	ss.WriteInt32(personSchema.Members["age"], p.Age)
}

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

func TestWriteStruct(t *testing.T) {
	ss := NewShapeSerializer()
	ss.WriteStruct(personSchema, &person{Name: "Ada", Age: 36})

	smithytesting.AssertJSONEqual(t, []byte(`{"name":"Ada","age":36}`), ss.Bytes())
}

func TestWriteStructOmitsZeroValues(t *testing.T) {
	ss := NewShapeSerializer()
	ss.WriteStruct(personSchema, &person{Name: "Ada"})

	smithytesting.AssertJSONEqual(t, []byte(`{"name":"Ada"}`), ss.Bytes())
}

func TestWriteList(t *testing.T) {
	listSchema := smithy.NewMember("tags", &smithy.Schema{Type: smithy.ShapeTypeList})
	memberSchema := smithy.NewMember("member", stringSchema)

	ss := NewShapeSerializer()
	ss.WriteList(listSchema)
	ss.WriteString(memberSchema, "a")
	ss.WriteString(memberSchema, "b")
	ss.CloseList()

	expect := `["a","b"]`
	if e, a := expect, string(ss.Bytes()); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}

func TestWriteMap(t *testing.T) {
	mapSchema := smithy.NewMember("attrs", &smithy.Schema{Type: smithy.ShapeTypeMap})
	valueSchema := smithy.NewMember("value", stringSchema)

	ss := NewShapeSerializer()
	ss.WriteMap(mapSchema)
	ss.WriteKey(mapSchema, "color")
	ss.WriteString(valueSchema, "blue")
	ss.CloseMap()

	smithytesting.AssertJSONEqual(t, []byte(`{"color":"blue"}`), ss.Bytes())
}

func TestReadStruct(t *testing.T) {
	d := NewShapeDeserializer([]byte(`{"name":"Ada","age":36}`))

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
	d := NewShapeDeserializer([]byte(`{"extra":{"nested":"x"},"name":"Ada","age":36}`))

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

	d := NewShapeDeserializer([]byte(`["a","b"]`))

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

	d := NewShapeDeserializer([]byte(`{"color":"blue"}`))

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
