package errresolve

import "testing"

func TestSanitizeErrorCode(t *testing.T) {
	cases := map[string]string{
		"com.amazonaws.dynamodb#ResourceNotFoundException": "ResourceNotFoundException",
		"ResourceNotFoundException:http://internal/error":  "ResourceNotFoundException",
		"PlainCode": "PlainCode",
	}
	for in, want := range cases {
		if got := SanitizeErrorCode(in); got != want {
			t.Errorf("SanitizeErrorCode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveCode(t *testing.T) {
	code, ok := ResolveCode("HeaderCode", "ns#BodyCode")
	if !ok || code != "HeaderCode" {
		t.Fatalf("expected header code to win, got %q", code)
	}
	code, ok = ResolveCode("", "ns#BodyCode")
	if !ok || code != "BodyCode" {
		t.Fatalf("expected sanitized body code, got %q", code)
	}
	if _, ok := ResolveCode("", ""); ok {
		t.Fatalf("expected no code resolved")
	}
}

func TestFaultAndRetryable(t *testing.T) {
	if Fault(404) != "client" {
		t.Errorf("expected client fault for 404")
	}
	if Fault(503) != "server" {
		t.Errorf("expected server fault for 503")
	}
	if !Retryable(503) || !Retryable(429) {
		t.Errorf("expected 503 and 429 retryable")
	}
	if Retryable(501) {
		t.Errorf("501 must not be retryable")
	}
	if !Throttling(429) {
		t.Errorf("expected 429 to be throttling")
	}
}
