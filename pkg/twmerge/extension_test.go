package twmerge

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const buttonExtension = `
prefix: tw-
separator: "__"
cacheSize: 64
extend:
  classGroups:
    btn:
      - btn: [primary, secondary, $arbitrary-value]
    shadow:
      - shadow: [glow]
  conflictingClassGroups:
    btn: [display]
`

func TestLoadExtension(t *testing.T) {
	ext, err := LoadExtension(strings.NewReader(buttonExtension))
	require.NoError(t, err)

	require.NotNil(t, ext.Prefix)
	assert.Equal(t, "tw-", *ext.Prefix)
	require.NotNil(t, ext.Separator)
	assert.Equal(t, "__", *ext.Separator)
	require.NotNil(t, ext.CacheSize)
	assert.Equal(t, 64, *ext.CacheSize)

	require.Len(t, ext.Extend.ClassGroups, 2)
	assert.Equal(t, "btn", ext.Extend.ClassGroups[0].ID)
	assert.Equal(t, "shadow", ext.Extend.ClassGroups[1].ID)

	btn, ok := ext.Extend.ClassGroups[0].Rules[0].(Nested)
	require.True(t, ok)
	assert.Equal(t, "btn", btn.Prefix)
	require.Len(t, btn.Rules, 3)
	assert.Equal(t, Literal("primary"), btn.Rules[0])
	check, ok := btn.Rules[2].(Check)
	require.True(t, ok)
	assert.Equal(t, "arbitrary-value", check.Name)

	assert.Equal(t, map[ClassGroupID][]ClassGroupID{"btn": {"display"}}, ext.Extend.ConflictingClassGroups)
	assert.Empty(t, ext.Override.ClassGroups)
}

func TestLoadExtensionEmpty(t *testing.T) {
	for _, doc := range []string{"", "\n", "~"} {
		ext, err := ParseExtension(doc)
		require.NoError(t, err, "%q", doc)
		assert.Equal(t, &Extension{}, ext)
	}
}

func TestLoadExtensionErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"not a mapping", "- a\n- b\n", "expected a mapping"},
		{"unknown field", "colour: red\n", "unknown field"},
		{"non string key", "extend:\n  classGroups:\n    1: [a]\n", "keys must be strings"},
		{"rules not a list", "extend:\n  classGroups:\n    btn: btn\n", "expected a list of rules"},
		{"nested list", "extend:\n  classGroups:\n    btn: [[a]]\n", "expected a string or a mapping"},
		{"null rule", "extend:\n  classGroups:\n    btn: [~]\n", "expected a string"},
		{"unknown validator", "extend:\n  classGroups:\n    btn: [{btn: [$colour]}]\n", `unknown validator "colour"`},
		{"empty nested prefix", "extend:\n  classGroups:\n    btn: [{\"\": [a]}]\n", "empty prefix"},
		{"cache size not an integer", "cacheSize: big\n", "expected an integer"},
		{"conflicts not a list", "override:\n  conflictingClassGroups:\n    btn: display\n", "expected a list of class group ids"},
		{"conflict target not a string", "override:\n  conflictingClassGroups:\n    btn: [{a: b}]\n", "expected a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExtension(tt.doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), err.Error())
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	_, err := ParseExtension("extend: [")
	assert.Error(t, err)
}

func TestConfigExtend(t *testing.T) {
	ext, err := ParseExtension(`
extend:
  classGroups:
    btn: [{btn: [primary, secondary]}]
    shadow: [{shadow: [glow]}]
  conflictingClassGroups:
    btn: [display]
`)
	require.NoError(t, err)

	m, err := New(DefaultConfig().Extend(ext))
	require.NoError(t, err)

	assert.Equal(t, "btn-secondary", m.Merge("btn-primary btn-secondary"))
	assert.Equal(t, "btn-primary", m.Merge("block btn-primary"))
	assert.Equal(t, "block", m.Merge("btn-primary block"))
	assert.Equal(t, "shadow-glow", m.Merge("shadow-lg shadow-glow"))

	id, ok := m.ClassGroup("shadow-glow")
	assert.True(t, ok)
	assert.Equal(t, "shadow", id)
}

func TestConfigExtendOverride(t *testing.T) {
	ext, err := ParseExtension(`
override:
  classGroups:
    shadow: [{shadow: [glow]}]
  conflictingClassGroupModifiers:
    font-size: []
extend:
  classGroups:
    shadow: [{shadow: [soft]}]
`)
	require.NoError(t, err)

	m, err := New(DefaultConfig().Extend(ext))
	require.NoError(t, err)

	for _, class := range []string{"shadow-glow", "shadow-soft"} {
		id, _ := m.ClassGroup(class)
		assert.Equal(t, "shadow", id, class)
	}
	id, _ := m.ClassGroup("shadow-lg")
	assert.Equal(t, "shadow-color", id, "overridden rules no longer match")

	assert.Equal(t, "leading-9 text-lg/7", m.Merge("leading-9 text-lg/7"))
}

func TestConfigExtendDoesNotModifyBase(t *testing.T) {
	base := DefaultConfig()
	var before int
	for _, g := range base.ClassGroups {
		if g.ID == "shadow" {
			before = len(g.Rules)
		}
	}

	prefix := "tw-"
	out := base.Extend(&Extension{
		Prefix: &prefix,
		Extend: Table{
			ClassGroups:            []ClassGroup{{ID: "shadow", Rules: nameWith("shadow", Lit("glow"))}},
			ConflictingClassGroups: map[ClassGroupID][]ClassGroupID{"p": {"m"}},
		},
	})

	assert.Equal(t, "tw-", out.Prefix)
	assert.Empty(t, base.Prefix)
	assert.NotContains(t, base.ConflictingClassGroups["p"], "m")
	assert.Contains(t, out.ConflictingClassGroups["p"], "m")
	for _, g := range base.ClassGroups {
		if g.ID == "shadow" {
			assert.Equal(t, before, len(g.Rules))
		}
	}
	assert.Equal(t, len(base.ClassGroups), len(out.ClassGroups))

	same := base.Extend(nil)
	assert.Equal(t, len(base.ClassGroups), len(same.ClassGroups))
}
