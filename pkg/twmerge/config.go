package twmerge

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrInvalidConfig is returned, wrapped, for every configuration that cannot be built.
var ErrInvalidConfig = errors.New("invalid twmerge config")

// Config describes which class names belong to which class group and which groups conflict.
type Config struct {
	// Separator between modifiers and the base class, ":" by default.
	Separator string
	// Prefix every utility must carry, e.g. "tw-". Empty disables prefix handling.
	Prefix string
	// CacheSize bounds one cache generation. Zero or less disables caching.
	CacheSize int
	// ClassGroups is the ordered class-group table. The first group that matches wins.
	ClassGroups []ClassGroup
	// ConflictingClassGroups maps a group to the groups it overrides.
	ConflictingClassGroups map[ClassGroupID][]ClassGroupID
	// ConflictingClassGroupModifiers maps a group to the groups it overrides when the
	// utility carries a postfix modifier, e.g. text-lg/7 overrides leading-*.
	ConflictingClassGroupModifiers map[ClassGroupID][]ClassGroupID
}

// ruleSet is the compiled, immutable form of a Config used on the merge path.
type ruleSet struct {
	separator string
	prefix    string

	groups []ClassGroup
	// byKey lists, in declaration order, the groups worth trying for a candidate's first segment.
	byKey map[string][]int
	// wildcard groups have top-level validators and are tried for every candidate.
	wildcard []int

	conflicts         map[ClassGroupID][]ClassGroupID
	modifierConflicts map[ClassGroupID][]ClassGroupID
}

func compile(cfg Config, logger *zap.Logger) (*ruleSet, error) {
	if cfg.Separator == "" {
		return nil, errors.Wrap(ErrInvalidConfig, "separator: must not be empty")
	}
	if strings.IndexFunc(cfg.Separator, unicode.IsSpace) >= 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "separator: %q must not contain whitespace", cfg.Separator)
	}
	if strings.IndexFunc(cfg.Prefix, unicode.IsSpace) >= 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "prefix: %q must not contain whitespace", cfg.Prefix)
	}

	rs := &ruleSet{
		separator:         cfg.Separator,
		prefix:            cfg.Prefix,
		groups:            cfg.ClassGroups,
		byKey:             make(map[string][]int),
		conflicts:         make(map[ClassGroupID][]ClassGroupID),
		modifierConflicts: make(map[ClassGroupID][]ClassGroupID),
	}

	known := make(map[ClassGroupID]struct{}, len(cfg.ClassGroups))
	for i, g := range cfg.ClassGroups {
		if g.ID == "" {
			return nil, errors.Wrapf(ErrInvalidConfig, "classGroups[%d]: empty id", i)
		}
		if _, dup := known[g.ID]; dup {
			return nil, errors.Wrapf(ErrInvalidConfig, "classGroups[%d]: duplicate id %q", i, g.ID)
		}
		known[g.ID] = struct{}{}
		if err := validateRules(g.Rules, "classGroups["+g.ID+"]"); err != nil {
			return nil, err
		}

		keys, ok := leadingKeys(g.Rules)
		if !ok {
			rs.wildcard = append(rs.wildcard, i)
			continue
		}
		seen := make(map[string]struct{}, len(keys))
		for _, k := range keys {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			rs.byKey[k] = append(rs.byKey[k], i)
		}
	}
	// Candidates for a key must still be visited in declaration order, wildcards included.
	for k, idx := range rs.byKey {
		rs.byKey[k] = mergeSorted(idx, rs.wildcard)
	}

	if err := validateConflicts(cfg.ConflictingClassGroups, "conflictingClassGroups"); err != nil {
		return nil, err
	}
	if err := validateConflicts(cfg.ConflictingClassGroupModifiers, "conflictingClassGroupModifiers"); err != nil {
		return nil, err
	}
	warnUnknown(logger, known, cfg.ConflictingClassGroups, "conflictingClassGroups")
	warnUnknown(logger, known, cfg.ConflictingClassGroupModifiers, "conflictingClassGroupModifiers")

	rs.conflicts = symmetrize(cfg.ConflictingClassGroups)
	for id, targets := range cfg.ConflictingClassGroupModifiers {
		rs.modifierConflicts[id] = dedupe(targets)
	}
	return rs, nil
}

func validateRules(rules []Rule, path string) error {
	if len(rules) == 0 {
		return errors.Wrapf(ErrInvalidConfig, "%s: no rules", path)
	}
	for i, r := range rules {
		switch v := r.(type) {
		case nil:
			return errors.Wrapf(ErrInvalidConfig, "%s.rules[%d]: nil rule", path, i)
		case Check:
			if v.Fn == nil {
				return errors.Wrapf(ErrInvalidConfig, "%s.rules[%d]: validator %q has no function", path, i, v.Name)
			}
		case Nested:
			if v.Prefix == "" {
				return errors.Wrapf(ErrInvalidConfig, "%s.rules[%d]: empty prefix", path, i)
			}
			if err := validateRules(v.Rules, path+"."+v.Prefix); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateConflicts(m map[ClassGroupID][]ClassGroupID, field string) error {
	for id, targets := range m {
		if id == "" {
			return errors.Wrapf(ErrInvalidConfig, "%s: empty group id", field)
		}
		for i, t := range targets {
			if t == "" {
				return errors.Wrapf(ErrInvalidConfig, "%s[%s][%d]: empty group id", field, id, i)
			}
		}
	}
	return nil
}

func warnUnknown(logger *zap.Logger, known map[ClassGroupID]struct{}, m map[ClassGroupID][]ClassGroupID, field string) {
	for id, targets := range m {
		for _, t := range append([]ClassGroupID{id}, targets...) {
			if _, ok := known[t]; !ok && !strings.HasPrefix(t, arbitraryPropertyPrefix) {
				logger.Warn("Conflict references unknown class group",
					zap.String("field", field),
					zap.String("group", id),
					zap.String("unknown", t),
				)
			}
		}
	}
}

// symmetrize unions every declared edge with its reverse so that lookups are O(1) per group.
func symmetrize(graph map[ClassGroupID][]ClassGroupID) map[ClassGroupID][]ClassGroupID {
	sets := make(map[ClassGroupID]map[ClassGroupID]struct{})
	add := func(from, to ClassGroupID) {
		if from == to {
			return
		}
		s, ok := sets[from]
		if !ok {
			s = make(map[ClassGroupID]struct{})
			sets[from] = s
		}
		s[to] = struct{}{}
	}
	for id, targets := range graph {
		for _, t := range targets {
			add(id, t)
			add(t, id)
		}
	}
	out := make(map[ClassGroupID][]ClassGroupID, len(sets))
	for id, s := range sets {
		list := make([]ClassGroupID, 0, len(s))
		for t := range s {
			list = append(list, t)
		}
		out[id] = list
	}
	return out
}

func dedupe(ids []ClassGroupID) []ClassGroupID {
	seen := make(map[ClassGroupID]struct{}, len(ids))
	out := make([]ClassGroupID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
