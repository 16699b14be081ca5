package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string) bool
		match []string
		miss  []string
	}{
		{
			name:  "number",
			fn:    IsNumber,
			match: []string{"1", "0.5", "1.5", "100", "-2"},
			miss:  []string{"", "abc", "1px", "NaN", "Inf"},
		},
		{
			name:  "integer",
			fn:    IsInteger,
			match: []string{"1", "10", "2.0"},
			miss:  []string{"1.5", "x", ""},
		},
		{
			name:  "percent",
			fn:    IsPercent,
			match: []string{"50%", "0.5%", "100%"},
			miss:  []string{"50", "%", "a%"},
		},
		{
			name:  "length",
			fn:    IsLength,
			match: []string{"1", "2.5", "1/2", "px", "full", "screen"},
			miss:  []string{"auto", "red-500", "1/", ""},
		},
		{
			name:  "tshirt size",
			fn:    IsTshirtSize,
			match: []string{"xs", "sm", "md", "lg", "xl", "2xl", "1.5xl"},
			miss:  []string{"xxl", "2", "lg-2", "t-lg"},
		},
		{
			name:  "arbitrary value",
			fn:    IsArbitraryValue,
			match: []string{"[1px]", "[length:var(--x)]", "[#fff]"},
			miss:  []string{"1px", "[]", "[1px"},
		},
		{
			name:  "arbitrary length",
			fn:    IsArbitraryLength,
			match: []string{"[3px]", "[0]", "[3.7%]", "[calc(100%-2rem)]", "[length:var(--w)]", "[10vh]"},
			miss:  []string{"[#fff]", "[rgb(10px,0,0)]", "[number:1]", "3px", "[var(--w)]"},
		},
		{
			name:  "arbitrary number",
			fn:    IsArbitraryNumber,
			match: []string{"[1.5]", "[number:var(--n)]"},
			miss:  []string{"[1px]", "1"},
		},
		{
			name:  "arbitrary size",
			fn:    IsArbitrarySize,
			match: []string{"[size:200px]", "[length:1px]", "[percentage:50%]"},
			miss:  []string{"[200px]"},
		},
		{
			name:  "arbitrary position",
			fn:    IsArbitraryPosition,
			match: []string{"[position:center]"},
			miss:  []string{"[center]"},
		},
		{
			name:  "arbitrary image",
			fn:    IsArbitraryImage,
			match: []string{"[url(/a.png)]", "[linear-gradient(red,blue)]", "[image:var(--img)]"},
			miss:  []string{"[red]", "url(/a.png)"},
		},
		{
			name:  "arbitrary shadow",
			fn:    IsArbitraryShadow,
			match: []string{"[0_35px_60px_-15px_rgba(0,0,0,0.3)]", "[inset_0_1px_0]"},
			miss:  []string{"[red]", "[length:0_1px]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.match {
				assert.True(t, tt.fn(v), "expected %q to match", v)
			}
			for _, v := range tt.miss {
				assert.False(t, tt.fn(v), "expected %q not to match", v)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	fn, ok := Lookup("length")
	assert.True(t, ok)
	assert.True(t, fn("4"))

	_, ok = Lookup("does-not-exist")
	assert.False(t, ok)

	assert.Len(t, Names(), len(registry))
}
