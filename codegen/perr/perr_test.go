package perr

import "testing"

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "parse",
			err:  &ParseError{Kind: UnknownTrait, Path: "#/shapes/foo", Msg: "unregistered trait id"},
			want: `parse: UnknownTrait at #/shapes/foo: unregistered trait id`,
		},
		{
			name: "model",
			err:  &ModelError{Kind: ShapeNotFound, ShapeID: "com.example#Widget", Msg: "no such shape"},
			want: `model: ShapeNotFound (com.example#Widget): no such shape`,
		},
		{
			name: "codec",
			err:  &CodecError{Kind: UnexpectedResponseStatus, Msg: "got 599"},
			want: `codec: UnexpectedResponseStatus: got 599`,
		},
		{
			name: "config",
			err:  &ConfigError{Kind: ConfigAppIdTooLong, Field: "AppID", Msg: "exceeds 50 characters"},
			want: `config: ConfigAppIdTooLong (AppID): exceeds 50 characters`,
		},
		{
			name: "policy",
			err:  &PolicyAbort{Policy: "policy_parse.trait", Reason: "unknown trait and policy is abort"},
			want: `policy "policy_parse.trait" aborted the run: unknown trait and policy is abort`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if e, a := c.want, c.err.Error(); e != a {
				t.Errorf("expect %q, got %q", e, a)
			}
		})
	}
}
