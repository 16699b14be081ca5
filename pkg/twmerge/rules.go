package twmerge

import "strings"

// ClassGroupID names a set of mutually exclusive utilities, e.g. "padding-top" or "overflow-x".
type ClassGroupID = string

// Rule is one alternative in a class group definition. It is one of Literal, Check or Nested.
type Rule interface {
	// match reports whether value is fully consumed by the rule.
	match(value string) bool
}

// Literal matches a value exactly. The empty literal matches a bare prefix ("rounded").
type Literal string

func (l Literal) match(value string) bool { return string(l) == value }

// Check delegates to a value-shape validator. Validators never see an empty value.
type Check struct {
	Name string
	Fn   func(string) bool
}

func (c Check) match(value string) bool {
	return value != "" && c.Fn(value)
}

// Nested matches values of the form "<Prefix>" or "<Prefix>-<rest>" and hands the rest
// to its own rules, so {grid-cols: [...]} covers grid-cols-3 and grid-cols-[...].
type Nested struct {
	Prefix string
	Rules  []Rule
}

func (n Nested) match(value string) bool {
	if value == n.Prefix {
		return matchAny(n.Rules, "")
	}
	if len(value) > len(n.Prefix)+1 && strings.HasPrefix(value, n.Prefix) && value[len(n.Prefix)] == '-' {
		return matchAny(n.Rules, value[len(n.Prefix)+1:])
	}
	return false
}

func matchAny(rules []Rule, value string) bool {
	for _, r := range rules {
		if r.match(value) {
			return true
		}
	}
	return false
}

// ClassGroup is one entry of the class-group table.
type ClassGroup struct {
	ID    ClassGroupID
	Rules []Rule
}

// Lit turns values into literal rules.
func Lit(values ...string) []Rule {
	rules := make([]Rule, len(values))
	for i, v := range values {
		rules[i] = Literal(v)
	}
	return rules
}

// Validate wraps a validator function as a rule.
func Validate(name string, fn func(string) bool) Rule {
	return Check{Name: name, Fn: fn}
}

// Prefix builds a nested rule. Arguments may be Rules, []Rule or plain strings.
func Prefix(prefix string, rules ...any) Rule {
	return Nested{Prefix: prefix, Rules: flatten(rules)}
}

// Rules flattens a mix of Rule, []Rule and string values into a rule list.
func Rules(items ...any) []Rule {
	return flatten(items)
}

func flatten(items []any) []Rule {
	var out []Rule
	for _, item := range items {
		switch v := item.(type) {
		case Rule:
			out = append(out, v)
		case []Rule:
			out = append(out, v...)
		case string:
			out = append(out, Literal(v))
		case []string:
			out = append(out, Lit(v...)...)
		default:
			panic("twmerge: unsupported rule element")
		}
	}
	return out
}

// leadingKeys returns the first dash-separated segment of every value a rule list can start
// with, or ok=false when a top-level validator may accept anything.
func leadingKeys(rules []Rule) (keys []string, ok bool) {
	for _, r := range rules {
		switch v := r.(type) {
		case Literal:
			keys = append(keys, firstSegment(string(v)))
		case Nested:
			keys = append(keys, firstSegment(v.Prefix))
		default:
			return nil, false
		}
	}
	return keys, true
}

func firstSegment(s string) string {
	if i := strings.IndexByte(s, '-'); i >= 0 {
		return s[:i]
	}
	return s
}
