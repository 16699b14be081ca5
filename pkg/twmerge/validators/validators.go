// Package validators holds the value-shape predicates referenced by class group rules.
// Every validator is a pure function over the part of a class name that follows its prefix,
// e.g. "2.5" for "p-2.5" or "[12px]" for "text-[12px]".
package validators

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	arbitraryValueRegex = regexp.MustCompile(`(?i)^\[(?:([a-z-]+):)?(.+)\]$`)
	fractionRegex       = regexp.MustCompile(`^\d+/\d+$`)
	tshirtUnitRegex     = regexp.MustCompile(`^(\d+(\.\d+)?)?(xs|sm|md|lg|xl)$`)
	lengthUnitRegex     = regexp.MustCompile(`\d+(%|px|r?em|[sdl]?v([hwib]|min|max)|pt|pc|in|cm|mm|cap|ch|ex|r?lh|cq(w|h|i|b|min|max))|\b(calc|min|max|clamp)\(.+\)|^0$`)
	colorFunctionRegex  = regexp.MustCompile(`^(rgba?|hsla?|hwb|(ok)?(lab|lch))\(.+\)$`)
	shadowRegex         = regexp.MustCompile(`^(inset_)?-?((\d+)?\.?(\d+)[a-z]+|0)_-?((\d+)?\.?(\d+)[a-z]+|0)`)
	imageRegex          = regexp.MustCompile(`^(url|image|image-set|cross-fade|element|(repeating-)?(linear|radial|conic)-gradient)\(.+\)$`)
)

var (
	stringLengths = map[string]struct{}{"px": {}, "full": {}, "screen": {}}
	sizeLabels    = map[string]struct{}{"length": {}, "size": {}, "percentage": {}}
	imageLabels   = map[string]struct{}{"image": {}, "url": {}}
)

// IsAny accepts every value.
func IsAny(string) bool { return true }

// IsNumber reports whether value parses as a finite decimal number.
func IsNumber(value string) bool {
	if value == "" {
		return false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// IsInteger reports whether value is a number without a fractional part.
func IsInteger(value string) bool {
	if !IsNumber(value) {
		return false
	}
	f, _ := strconv.ParseFloat(value, 64)
	return f == math.Trunc(f)
}

// IsPercent matches numbers followed by a percent sign, e.g. "50%".
func IsPercent(value string) bool {
	return strings.HasSuffix(value, "%") && IsNumber(strings.TrimSuffix(value, "%"))
}

// IsLength matches theme-scale lengths: numbers, fractions and px/full/screen.
func IsLength(value string) bool {
	if IsNumber(value) || fractionRegex.MatchString(value) {
		return true
	}
	_, ok := stringLengths[value]
	return ok
}

// IsTshirtSize matches xs, sm, md, lg, xl with an optional numeric multiplier (2xl, 1.5xl).
func IsTshirtSize(value string) bool {
	return tshirtUnitRegex.MatchString(value)
}

// IsArbitraryValue matches any bracketed value such as "[3px]" or "[length:var(--x)]".
func IsArbitraryValue(value string) bool {
	return arbitraryValueRegex.MatchString(value)
}

// IsArbitraryLength matches bracketed lengths, either labelled "length:" or carrying a unit.
func IsArbitraryLength(value string) bool {
	return arbitraryWithLabel(value, func(label string) bool { return label == "length" }, isLengthOnly)
}

// IsArbitraryNumber matches bracketed numbers, e.g. "[1.5]" or "[number:var(--n)]".
func IsArbitraryNumber(value string) bool {
	return arbitraryWithLabel(value, func(label string) bool { return label == "number" }, IsNumber)
}

// IsArbitrarySize only matches explicitly labelled sizes.
func IsArbitrarySize(value string) bool {
	return arbitraryWithLabel(value, inSet(sizeLabels), isNever)
}

// IsArbitraryPosition only matches explicitly labelled positions.
func IsArbitraryPosition(value string) bool {
	return arbitraryWithLabel(value, func(label string) bool { return label == "position" }, isNever)
}

// IsArbitraryImage matches bracketed url(...) and gradient functions.
func IsArbitraryImage(value string) bool {
	return arbitraryWithLabel(value, inSet(imageLabels), imageRegex.MatchString)
}

// IsArbitraryShadow matches bracketed box-shadow values, e.g. "[0_35px_60px_-15px_rgba(0,0,0,0.3)]".
func IsArbitraryShadow(value string) bool {
	return arbitraryWithLabel(value, func(string) bool { return false }, shadowRegex.MatchString)
}

func arbitraryWithLabel(value string, labelOK func(string) bool, test func(string) bool) bool {
	m := arbitraryValueRegex.FindStringSubmatch(value)
	if m == nil {
		return false
	}
	if m[1] != "" {
		return labelOK(m[1])
	}
	return test(m[2])
}

func inSet(set map[string]struct{}) func(string) bool {
	return func(label string) bool {
		_, ok := set[label]
		return ok
	}
}

func isLengthOnly(value string) bool {
	return lengthUnitRegex.MatchString(value) && !colorFunctionRegex.MatchString(value)
}

func isNever(string) bool { return false }

var registry = map[string]func(string) bool{
	"any":                IsAny,
	"number":             IsNumber,
	"integer":            IsInteger,
	"percent":            IsPercent,
	"length":             IsLength,
	"tshirt-size":        IsTshirtSize,
	"arbitrary-value":    IsArbitraryValue,
	"arbitrary-length":   IsArbitraryLength,
	"arbitrary-number":   IsArbitraryNumber,
	"arbitrary-size":     IsArbitrarySize,
	"arbitrary-position": IsArbitraryPosition,
	"arbitrary-image":    IsArbitraryImage,
	"arbitrary-shadow":   IsArbitraryShadow,
}

// Lookup returns the validator registered under name.
func Lookup(name string) (func(string) bool, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Names lists the registered validator names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
