// Package endpoint compiles a service's Smithy endpoint rule-set document
// (the `@endpointRuleSet` trait payload) into an ordered tree of Rules the
// code emitter turns into a generated resolver function. Attribute
// conditions (`fn: "getAttr"`, boolean tests of path-qualified values) are
// evaluated with JMESPath expressions against the resolver's parameter bag.
package endpoint

import (
	"fmt"

	"github.com/jmespath/go-jmespath"
)

// RuleKind discriminates a compiled Rule's action.
type RuleKind int

const (
	RuleKindEndpoint RuleKind = iota
	RuleKindError
	RuleKindTree
)

// Condition is a single boolean test a Rule must pass before it applies.
// Fn follows the Smithy endpoint rule-set function names (`isSet`,
// `stringEquals`, `booleanEquals`, `not`, `getAttr`, …); Argv holds each
// argument exactly as decoded from the rule-set JSON: a literal, or an
// object such as `{"ref": "Region"}` referencing a bound parameter.
type Condition struct {
	Fn     string
	Argv   []interface{}
	Assign string
}

// Rule is one compiled entry in a rule-set's ordered list: a set of
// conditions, and (depending on Kind) an endpoint template, a literal error
// message template, or a nested list of child Rules.
type Rule struct {
	Kind       RuleKind
	Conditions []Condition

	// RuleKindEndpoint
	EndpointURL     string
	EndpointHeaders map[string][]string
	EndpointProps   map[string]interface{}

	// RuleKindError
	ErrorMessage string

	// RuleKindTree
	Children []Rule
}

// RuleSet is the compiled form of an `@endpointRuleSet` trait payload.
type RuleSet struct {
	Version    string
	Parameters map[string]Parameter
	Rules      []Rule
}

// Parameter describes one named input to endpoint resolution.
type Parameter struct {
	Name          string
	Type          string // "String" | "Boolean"
	Required      bool
	Documentation string
	Default       interface{}
	BuiltIn       string
}

// Compile builds a RuleSet from the decoded JSON tree of an
// `@endpointRuleSet` trait (model.EndpointRuleSetTrait.Raw).
func Compile(raw interface{}) (*RuleSet, error) {
	root, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("endpoint: rule-set root must be an object")
	}

	rs := &RuleSet{Parameters: map[string]Parameter{}}
	if v, ok := root["version"].(string); ok {
		rs.Version = v
	}
	if params, ok := root["parameters"].(map[string]interface{}); ok {
		for name, pv := range params {
			pm, ok := pv.(map[string]interface{})
			if !ok {
				continue
			}
			p := Parameter{Name: name}
			if t, ok := pm["type"].(string); ok {
				p.Type = t
			}
			if req, ok := pm["required"].(bool); ok {
				p.Required = req
			}
			if doc, ok := pm["documentation"].(string); ok {
				p.Documentation = doc
			}
			if d, ok := pm["default"]; ok {
				p.Default = d
			}
			if b, ok := pm["builtIn"].(string); ok {
				p.BuiltIn = b
			}
			rs.Parameters[name] = p
		}
	}
	rules, ok := root["rules"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("endpoint: rule-set missing rules array")
	}
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	rs.Rules = compiled
	return rs, nil
}

func compileRules(raw []interface{}) ([]Rule, error) {
	var out []Rule
	for _, rv := range raw {
		rm, ok := rv.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("endpoint: rule entry must be an object")
		}
		r, err := compileRule(rm)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func compileRule(rm map[string]interface{}) (Rule, error) {
	var r Rule
	if conds, ok := rm["conditions"].([]interface{}); ok {
		for _, cv := range conds {
			cm, ok := cv.(map[string]interface{})
			if !ok {
				continue
			}
			cond := Condition{}
			if fn, ok := cm["fn"].(string); ok {
				cond.Fn = fn
			}
			if argv, ok := cm["argv"].([]interface{}); ok {
				cond.Argv = argv
			}
			if assign, ok := cm["assign"].(string); ok {
				cond.Assign = assign
			}
			r.Conditions = append(r.Conditions, cond)
		}
	}

	typ, _ := rm["type"].(string)
	switch typ {
	case "endpoint":
		r.Kind = RuleKindEndpoint
		ep, _ := rm["endpoint"].(map[string]interface{})
		if url, ok := ep["url"].(string); ok {
			r.EndpointURL = url
		}
		if hdrs, ok := ep["headers"].(map[string]interface{}); ok {
			r.EndpointHeaders = map[string][]string{}
			for k, v := range hdrs {
				if arr, ok := v.([]interface{}); ok {
					for _, s := range arr {
						if str, ok := s.(string); ok {
							r.EndpointHeaders[k] = append(r.EndpointHeaders[k], str)
						}
					}
				}
			}
		}
		if props, ok := ep["properties"].(map[string]interface{}); ok {
			r.EndpointProps = props
		}
	case "error":
		r.Kind = RuleKindError
		if msg, ok := rm["error"].(string); ok {
			r.ErrorMessage = msg
		}
	case "tree":
		r.Kind = RuleKindTree
		children, ok := rm["rules"].([]interface{})
		if !ok {
			return r, fmt.Errorf("endpoint: tree rule missing nested rules")
		}
		compiled, err := compileRules(children)
		if err != nil {
			return r, err
		}
		r.Children = compiled
	default:
		return r, fmt.Errorf("endpoint: unknown rule type %q", typ)
	}
	return r, nil
}

// EvalGetAttr evaluates a Smithy endpoint rule-set `getAttr` path expression
// (e.g. "parsedUrl.path" or "partitionResult.name") against a bound value
// using JMESPath, the same expression language the rule-set's `fn: getAttr`
// argv strings use.
func EvalGetAttr(path string, data interface{}) (interface{}, error) {
	expr, err := jmespath.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("endpoint: invalid getAttr path %q: %w", path, err)
	}
	return expr.Search(data)
}
