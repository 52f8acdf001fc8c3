package xmlshape

import (
	"testing"

	"github.com/smithygen/smithy-codegen"
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

func TestWriteStructTopLevel(t *testing.T) {
	ss := NewShapeSerializer()
	ss.WriteStruct(personSchema, &person{Name: "Ada", Age: 36})

	expect := `<Person><name>Ada</name><age>36</age></Person>`
	if e, a := expect, string(ss.Bytes()); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}

func TestWriteList(t *testing.T) {
	listSchema := smithy.NewMember("tags", &smithy.Schema{Type: smithy.ShapeTypeList})
	memberSchema := smithy.NewMember("member", stringSchema)

	ss := NewShapeSerializer()
	ss.WriteList(listSchema)
	ss.WriteString(memberSchema, "a")
	ss.WriteString(memberSchema, "b")
	ss.CloseList()

	expect := `<tags><member>a</member><member>b</member></tags>`
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

	expect := `<attrs><entry><key>color</key><value>blue</value></entry></attrs>`
	if e, a := expect, string(ss.Bytes()); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}
