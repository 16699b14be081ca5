package twmerge

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/FACorreiaa/go-twmerge/pkg/twmerge/validators"
)

// validatorRefMarker introduces a validator reference in YAML rule lists, e.g. "$length".
const validatorRefMarker = "$"

// Extension holds user changes applied on top of a base Config.
type Extension struct {
	Prefix    *string
	Separator *string
	CacheSize *int
	// Override replaces the rules or conflicts of the groups it names.
	Override Table
	// Extend appends to the rules or conflicts of the groups it names.
	Extend Table
}

// Table is the part of a Config an Extension can change.
type Table struct {
	ClassGroups                    []ClassGroup
	ConflictingClassGroups         map[ClassGroupID][]ClassGroupID
	ConflictingClassGroupModifiers map[ClassGroupID][]ClassGroupID
}

// LoadExtension reads a YAML extension document:
//
//	prefix: tw-
//	cacheSize: 1000
//	extend:
//	  classGroups:
//	    shadow: [{shadow: [glow]}]
//	    btn: [{btn: [primary, $arbitrary-value]}]
//	  conflictingClassGroups:
//	    btn: [display]
//
// Rules are literals, "$name" validator references or {prefix: [rules]} mappings.
func LoadExtension(r io.Reader) (*Extension, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Extension{}, nil
		}
		return nil, errors.Wrap(err, "decode twmerge extension")
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	return parseExtension(root)
}

// ParseExtension is LoadExtension for in-memory documents.
func ParseExtension(data string) (*Extension, error) {
	return LoadExtension(strings.NewReader(data))
}

func parseExtension(root *yaml.Node) (*Extension, error) {
	ext := &Extension{}
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return ext, nil
	}
	err := eachPair(root, "", func(key string, value *yaml.Node, path string) error {
		switch key {
		case "prefix":
			s, err := scalarString(value, path)
			if err != nil {
				return err
			}
			ext.Prefix = &s
		case "separator":
			s, err := scalarString(value, path)
			if err != nil {
				return err
			}
			ext.Separator = &s
		case "cacheSize":
			var n int
			if value.Kind != yaml.ScalarNode || value.Tag != "!!int" {
				return invalid(value, path, "expected an integer, got %s", describe(value))
			}
			if err := value.Decode(&n); err != nil {
				return errors.Wrapf(ErrInvalidConfig, "%s: %v", path, err)
			}
			ext.CacheSize = &n
		case "override":
			t, err := parseTable(value, path)
			if err != nil {
				return err
			}
			ext.Override = t
		case "extend":
			t, err := parseTable(value, path)
			if err != nil {
				return err
			}
			ext.Extend = t
		default:
			return invalid(value, path, "unknown field")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ext, nil
}

func parseTable(n *yaml.Node, path string) (Table, error) {
	var t Table
	err := eachPair(n, path, func(key string, value *yaml.Node, path string) error {
		var err error
		switch key {
		case "classGroups":
			t.ClassGroups, err = parseClassGroups(value, path)
		case "conflictingClassGroups":
			t.ConflictingClassGroups, err = parseConflicts(value, path)
		case "conflictingClassGroupModifiers":
			t.ConflictingClassGroupModifiers, err = parseConflicts(value, path)
		default:
			err = invalid(value, path, "unknown field")
		}
		return err
	})
	return t, err
}

func parseClassGroups(n *yaml.Node, path string) ([]ClassGroup, error) {
	var groups []ClassGroup
	err := eachPair(n, path, func(id string, value *yaml.Node, path string) error {
		rules, err := parseRules(value, path)
		if err != nil {
			return err
		}
		groups = append(groups, ClassGroup{ID: id, Rules: rules})
		return nil
	})
	return groups, err
}

func parseRules(n *yaml.Node, path string) ([]Rule, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, invalid(n, path, "expected a list of rules, got %s", describe(n))
	}
	rules := make([]Rule, 0, len(n.Content))
	for i, item := range n.Content {
		itemPath := path + "[" + strconv.Itoa(i) + "]"
		switch item.Kind {
		case yaml.ScalarNode:
			r, err := parseScalarRule(item, itemPath)
			if err != nil {
				return nil, err
			}
			rules = append(rules, r)
		case yaml.MappingNode:
			err := eachPair(item, itemPath, func(prefix string, value *yaml.Node, p string) error {
				if prefix == "" {
					return invalid(value, p, "empty prefix")
				}
				nested, err := parseRules(value, p)
				if err != nil {
					return err
				}
				rules = append(rules, Nested{Prefix: prefix, Rules: nested})
				return nil
			})
			if err != nil {
				return nil, err
			}
		default:
			return nil, invalid(item, itemPath, "expected a string or a mapping, got %s", describe(item))
		}
	}
	return rules, nil
}

func parseScalarRule(n *yaml.Node, path string) (Rule, error) {
	switch n.Tag {
	case "!!str", "!!int", "!!float":
	default:
		return nil, invalid(n, path, "expected a string, got %s", describe(n))
	}
	if n.Tag == "!!str" && strings.HasPrefix(n.Value, validatorRefMarker) {
		name := strings.TrimPrefix(n.Value, validatorRefMarker)
		fn, ok := validators.Lookup(name)
		if !ok {
			return nil, invalid(n, path, "unknown validator %q", name)
		}
		return Validate(name, fn), nil
	}
	return Literal(n.Value), nil
}

func parseConflicts(n *yaml.Node, path string) (map[ClassGroupID][]ClassGroupID, error) {
	out := make(map[ClassGroupID][]ClassGroupID)
	err := eachPair(n, path, func(id string, value *yaml.Node, path string) error {
		if value.Kind != yaml.SequenceNode {
			return invalid(value, path, "expected a list of class group ids, got %s", describe(value))
		}
		ids := make([]ClassGroupID, 0, len(value.Content))
		for i, item := range value.Content {
			s, err := scalarString(item, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return err
			}
			ids = append(ids, s)
		}
		out[id] = ids
		return nil
	})
	return out, err
}

// eachPair walks a mapping node in document order, rejecting non-string keys.
func eachPair(n *yaml.Node, path string, fn func(key string, value *yaml.Node, path string) error) error {
	if n.Kind != yaml.MappingNode {
		return invalid(n, orRoot(path), "expected a mapping, got %s", describe(n))
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode || k.Tag != "!!str" {
			return invalid(k, orRoot(path), "keys must be strings, got %s", describe(k))
		}
		childPath := k.Value
		if path != "" {
			childPath = path + "." + k.Value
		}
		if err := fn(k.Value, v, childPath); err != nil {
			return err
		}
	}
	return nil
}

func scalarString(n *yaml.Node, path string) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Tag != "!!str" {
		return "", invalid(n, path, "expected a string, got %s", describe(n))
	}
	return n.Value, nil
}

func invalid(n *yaml.Node, path, format string, args ...any) error {
	return errors.Wrapf(ErrInvalidConfig, "%s (line %d): %s", path, n.Line, fmt.Sprintf(format, args...))
}

func describe(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a list"
	case yaml.AliasNode:
		return "an alias"
	case yaml.ScalarNode:
		return fmt.Sprintf("%s %q", strings.TrimPrefix(n.Tag, "!!"), n.Value)
	}
	return "an empty document"
}

func orRoot(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}

// Extend returns a copy of c with ext applied. Overrides are applied before extensions.
func (c Config) Extend(ext *Extension) Config {
	out := Config{
		Separator:                      c.Separator,
		Prefix:                         c.Prefix,
		CacheSize:                      c.CacheSize,
		ClassGroups:                    append([]ClassGroup(nil), c.ClassGroups...),
		ConflictingClassGroups:         copyConflicts(c.ConflictingClassGroups),
		ConflictingClassGroupModifiers: copyConflicts(c.ConflictingClassGroupModifiers),
	}
	if ext == nil {
		return out
	}
	if ext.Prefix != nil {
		out.Prefix = *ext.Prefix
	}
	if ext.Separator != nil {
		out.Separator = *ext.Separator
	}
	if ext.CacheSize != nil {
		out.CacheSize = *ext.CacheSize
	}

	for _, g := range ext.Override.ClassGroups {
		out.ClassGroups = upsertGroup(out.ClassGroups, g, false)
	}
	for id, ids := range ext.Override.ConflictingClassGroups {
		out.ConflictingClassGroups[id] = append([]ClassGroupID(nil), ids...)
	}
	for id, ids := range ext.Override.ConflictingClassGroupModifiers {
		out.ConflictingClassGroupModifiers[id] = append([]ClassGroupID(nil), ids...)
	}

	for _, g := range ext.Extend.ClassGroups {
		out.ClassGroups = upsertGroup(out.ClassGroups, g, true)
	}
	for id, ids := range ext.Extend.ConflictingClassGroups {
		out.ConflictingClassGroups[id] = append(out.ConflictingClassGroups[id], ids...)
	}
	for id, ids := range ext.Extend.ConflictingClassGroupModifiers {
		out.ConflictingClassGroupModifiers[id] = append(out.ConflictingClassGroupModifiers[id], ids...)
	}
	return out
}

// upsertGroup replaces or extends the group with g.ID in place, or appends g when it is new.
func upsertGroup(groups []ClassGroup, g ClassGroup, extend bool) []ClassGroup {
	for i := range groups {
		if groups[i].ID != g.ID {
			continue
		}
		if extend {
			rules := make([]Rule, 0, len(groups[i].Rules)+len(g.Rules))
			rules = append(rules, groups[i].Rules...)
			groups[i].Rules = append(rules, g.Rules...)
		} else {
			groups[i].Rules = append([]Rule(nil), g.Rules...)
		}
		return groups
	}
	return append(groups, ClassGroup{ID: g.ID, Rules: append([]Rule(nil), g.Rules...)})
}

func copyConflicts(m map[ClassGroupID][]ClassGroupID) map[ClassGroupID][]ClassGroupID {
	out := make(map[ClassGroupID][]ClassGroupID, len(m))
	for id, ids := range m {
		out[id] = append([]ClassGroupID(nil), ids...)
	}
	return out
}
