package restjson

import "testing"

func TestSanitizeErrorCode(t *testing.T) {
	cases := map[string]struct {
		Input  string
		Expect string
	}{
		"bare code":         {Input: "ResourceNotFoundException", Expect: "ResourceNotFoundException"},
		"namespaced":        {Input: "com.example#ResourceNotFoundException", Expect: "ResourceNotFoundException"},
		"with suffix":       {Input: "ResourceNotFoundException:http://internal/", Expect: "ResourceNotFoundException"},
		"namespaced+suffix": {Input: "com.example#ResourceNotFoundException:400", Expect: "ResourceNotFoundException"},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if e, a := c.Expect, sanitizeErrorCode(c.Input); e != a {
				t.Errorf("expect %q, got %q", e, a)
			}
		})
	}
}

func TestResolveProtocolErrorType(t *testing.T) {
	cases := map[string]struct {
		HeaderType string
		BodyInfo   protocolErrorInfo
		Expect     string
		ExpectOk   bool
	}{
		"header wins": {
			HeaderType: "FooError",
			BodyInfo:   protocolErrorInfo{Type2: "BarError"},
			Expect:     "FooError",
			ExpectOk:   true,
		},
		"falls back to code field": {
			BodyInfo: protocolErrorInfo{Type: "FooError"},
			Expect:   "FooError",
			ExpectOk: true,
		},
		"falls back to __type": {
			BodyInfo: protocolErrorInfo{Type2: "BarError"},
			Expect:   "BarError",
			ExpectOk: true,
		},
		"nothing present": {
			Expect:   "",
			ExpectOk: false,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			actual, ok := resolveProtocolErrorType(c.HeaderType, c.BodyInfo)
			if e, a := c.ExpectOk, ok; e != a {
				t.Fatalf("expect ok %v, got %v", e, a)
			}
			if e, a := c.Expect, actual; e != a {
				t.Errorf("expect %q, got %q", e, a)
			}
		})
	}
}
