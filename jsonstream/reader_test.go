package jsonstream

import "testing"

func TestReaderObjectWalk(t *testing.T) {
	r := NewReaderBytes([]byte(`{"a": 1, "b": "two", "c": [1,2,3], "d": {"e": true}}`))

	var gotKeys []string
	err := r.NextScope(KindObjectBegin, func(r *Reader) error {
		key, err := r.NextString()
		if err != nil {
			return err
		}
		gotKeys = append(gotKeys, key)
		return r.SkipValueOrScope()
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "b", "c", "d"}
	if len(gotKeys) != len(want) {
		t.Fatalf("got %v want %v", gotKeys, want)
	}
	for i := range want {
		if gotKeys[i] != want[i] {
			t.Errorf("key %d: got %q want %q", i, gotKeys[i], want[i])
		}
	}
}

func TestReaderScalarAccessors(t *testing.T) {
	r := NewReaderBytes([]byte(`{"n": 42, "f": 1.5, "s": "hi", "b": true}`))
	if err := r.NextObjectBegin(); err != nil {
		t.Fatal(err)
	}
	if err := r.NextStringEql("n"); err != nil {
		t.Fatal(err)
	}
	n, err := r.NextInteger()
	if err != nil || n != 42 {
		t.Fatalf("n = %v, %v", n, err)
	}
	if err := r.NextStringEql("f"); err != nil {
		t.Fatal(err)
	}
	f, err := r.NextNumber()
	if err != nil || f != 1.5 {
		t.Fatalf("f = %v, %v", f, err)
	}
	if err := r.NextStringEql("s"); err != nil {
		t.Fatal(err)
	}
	s, err := r.NextString()
	if err != nil || s != "hi" {
		t.Fatalf("s = %v, %v", s, err)
	}
	if err := r.NextStringEql("b"); err != nil {
		t.Fatal(err)
	}
	b, err := r.NextBoolean()
	if err != nil || !b {
		t.Fatalf("b = %v, %v", b, err)
	}
	if err := r.NextObjectEnd(); err != nil {
		t.Fatal(err)
	}
}

func TestReaderEofInScope(t *testing.T) {
	r := NewReaderBytes([]byte(`{"a": 1`))
	err := r.NextScope(KindObjectBegin, func(r *Reader) error {
		if _, err := r.NextString(); err != nil {
			return err
		}
		return r.SkipValueOrScope()
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestReaderDepthLimit(t *testing.T) {
	buf := make([]byte, 0, MaxDepth*2+4)
	for i := 0; i < MaxDepth+2; i++ {
		buf = append(buf, '[')
	}
	for i := 0; i < MaxDepth+2; i++ {
		buf = append(buf, ']')
	}
	r := NewReaderBytes(buf)
	err := r.SkipValueOrScope()
	if err == nil {
		t.Fatalf("expected depth limit error")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != "DepthLimit" {
		t.Fatalf("got %v", err)
	}
}
