package twmerge

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	valid := func() Config {
		return Config{
			Separator:   ":",
			ClassGroups: []ClassGroup{{ID: "p", Rules: Rules(Prefix("p", isNumber))}},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty separator", func(c *Config) { c.Separator = "" }},
		{"whitespace separator", func(c *Config) { c.Separator = ": " }},
		{"whitespace prefix", func(c *Config) { c.Prefix = "tw -" }},
		{"empty group id", func(c *Config) { c.ClassGroups = append(c.ClassGroups, ClassGroup{Rules: Lit("x")}) }},
		{"duplicate group id", func(c *Config) { c.ClassGroups = append(c.ClassGroups, ClassGroup{ID: "p", Rules: Lit("x")}) }},
		{"group without rules", func(c *Config) { c.ClassGroups = append(c.ClassGroups, ClassGroup{ID: "x"}) }},
		{"nil rule", func(c *Config) { c.ClassGroups = append(c.ClassGroups, ClassGroup{ID: "x", Rules: []Rule{nil}}) }},
		{"validator without function", func(c *Config) {
			c.ClassGroups = append(c.ClassGroups, ClassGroup{ID: "x", Rules: []Rule{Check{Name: "broken"}}})
		}},
		{"nested rule without prefix", func(c *Config) {
			c.ClassGroups = append(c.ClassGroups, ClassGroup{ID: "x", Rules: []Rule{Nested{Rules: Lit("a")}}})
		}},
		{"nested rule without rules", func(c *Config) {
			c.ClassGroups = append(c.ClassGroups, ClassGroup{ID: "x", Rules: []Rule{Nested{Prefix: "x"}}})
		}},
		{"empty conflict source", func(c *Config) {
			c.ConflictingClassGroups = map[ClassGroupID][]ClassGroupID{"": {"p"}}
		}},
		{"empty conflict target", func(c *Config) {
			c.ConflictingClassGroupModifiers = map[ClassGroupID][]ClassGroupID{"p": {""}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			_, err := New(cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), err.Error())
		})
	}

	_, err := New(valid())
	assert.NoError(t, err)
}

func TestNewWarnsOnUnknownConflicts(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	cfg := Config{
		Separator:   ":",
		ClassGroups: []ClassGroup{{ID: "p", Rules: Rules(Prefix("p", isNumber))}},
		ConflictingClassGroups: map[ClassGroupID][]ClassGroupID{
			"p":                   {"missing"},
			"arbitrary..position": {"p"},
		},
	}
	_, err := New(cfg, WithLogger(zap.New(core)))
	require.NoError(t, err)

	warnings := logs.FilterMessage("Conflict references unknown class group").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "missing", warnings[0].ContextMap()["unknown"])
}

func TestClassifyDeclarationOrder(t *testing.T) {
	isWord := Validate("word", func(s string) bool { return s == "word" })

	t.Run("first matching group wins", func(t *testing.T) {
		m, err := New(Config{
			Separator: ":",
			ClassGroups: []ClassGroup{
				{ID: "numeric", Rules: Rules(Prefix("p", isNumber))},
				{ID: "anything", Rules: Rules(Prefix("p", isAny))},
			},
		})
		require.NoError(t, err)

		id, _ := m.ClassGroup("p-2")
		assert.Equal(t, "numeric", id)
		id, _ = m.ClassGroup("p-x")
		assert.Equal(t, "anything", id)
	})

	t.Run("top level validators keep their position", func(t *testing.T) {
		m, err := New(Config{
			Separator: ":",
			ClassGroups: []ClassGroup{
				{ID: "before", Rules: Lit("word-a")},
				{ID: "wildcard", Rules: Rules(isWord, Prefix("word", isAny))},
				{ID: "after", Rules: Lit("word-b", "other")},
			},
		})
		require.NoError(t, err)

		for class, want := range map[string]ClassGroupID{
			"word-a": "before",
			"word":   "wildcard",
			"word-b": "wildcard",
			"other":  "after",
		} {
			id, ok := m.ClassGroup(class)
			assert.True(t, ok, class)
			assert.Equal(t, want, id, class)
		}
	})

	t.Run("validators never see an empty value", func(t *testing.T) {
		called := false
		spy := Validate("spy", func(string) bool {
			called = true
			return true
		})
		m, err := New(Config{
			Separator:   ":",
			ClassGroups: []ClassGroup{{ID: "shadow", Rules: Rules(Prefix("shadow", spy))}},
		})
		require.NoError(t, err)

		_, ok := m.ClassGroup("shadow")
		assert.False(t, ok)
		assert.False(t, called)
	})
}

func TestConflictDirections(t *testing.T) {
	cfg := Config{
		Separator: ":",
		ClassGroups: []ClassGroup{
			{ID: "size", Rules: Rules(Prefix("text", isTshirtSize))},
			{ID: "line", Rules: Rules(Prefix("leading", isNumber))},
			{ID: "a", Rules: Lit("a")},
			{ID: "b", Rules: Lit("b")},
			{ID: "c", Rules: Lit("c")},
		},
		ConflictingClassGroups: map[ClassGroupID][]ClassGroupID{
			"a": {"b"},
			"b": {"c"},
		},
		ConflictingClassGroupModifiers: map[ClassGroupID][]ClassGroupID{
			"size": {"line"},
		},
	}
	m, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "b", m.Merge("a b"))
	assert.Equal(t, "a", m.Merge("b a"))
	assert.Equal(t, "a c", m.Merge("a c"), "conflicts are not transitive")

	assert.Equal(t, "text-lg/7", m.Merge("leading-5 text-lg/7"))
	assert.Equal(t, "text-lg leading-5", m.Merge("text-lg leading-5"))
	assert.Equal(t, "text-lg/7 leading-5", m.Merge("text-lg/7 leading-5"), "modifier conflicts are one way")
}
