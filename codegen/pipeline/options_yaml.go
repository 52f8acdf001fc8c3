package pipeline

import "gopkg.in/yaml.v3"

// LoadOptionsYAML parses a policy fixture of the form:
//
//	region: us-east-1
//	http_client: default
//	identity_manager: default
//	app_id: my-app
//	policy_service:
//	  process: skip
//	  parse: abort
//	  codegen: skip
//	policy_parse:
//	  property: skip
//	  trait: abort
//	policy_codegen:
//	  unknown_shape: skip
//	  invalid_root: abort
//	  shape_codegen_fail: abort
//
// into Options, starting from DefaultOptions so any knob the fixture omits
// keeps its permissive default.
func LoadOptionsYAML(data []byte) (Options, error) {
	o := DefaultOptions()
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, err
	}
	return o, nil
}
