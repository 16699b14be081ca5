package twmerge

import (
	v "github.com/FACorreiaa/go-twmerge/pkg/twmerge/validators"
)

var (
	isAny               = Validate("any", v.IsAny)
	isNumber            = Validate("number", v.IsNumber)
	isInteger           = Validate("integer", v.IsInteger)
	isPercent           = Validate("percent", v.IsPercent)
	isLength            = Validate("length", v.IsLength)
	isTshirtSize        = Validate("tshirt-size", v.IsTshirtSize)
	isArbitraryValue    = Validate("arbitrary-value", v.IsArbitraryValue)
	isArbitraryLength   = Validate("arbitrary-length", v.IsArbitraryLength)
	isArbitraryNumber   = Validate("arbitrary-number", v.IsArbitraryNumber)
	isArbitrarySize     = Validate("arbitrary-size", v.IsArbitrarySize)
	isArbitraryPosition = Validate("arbitrary-position", v.IsArbitraryPosition)
	isArbitraryImage    = Validate("arbitrary-image", v.IsArbitraryImage)
	isArbitraryShadow   = Validate("arbitrary-shadow", v.IsArbitraryShadow)
)

// theme scales
func colors() []Rule { return Rules(isAny) }
func spacing() []Rule { return Rules(isArbitraryValue, isLength, isArbitraryLength) }
func spacingAuto() []Rule { return Rules("auto", spacing()) }
func borderWidth() []Rule { return Rules("", isLength, isArbitraryLength) }
func radius() []Rule { return Rules("none", "", "full", isTshirtSize, isArbitraryValue) }
func opacity() []Rule { return Rules(isNumber, isArbitraryValue) }
func numberAndArb() []Rule { return Rules(isNumber, isArbitraryValue) }
func zeroAndEmpty() []Rule { return Rules("", "0", isArbitraryValue) }
func blurScale() []Rule { return Rules("none", "", isTshirtSize, isArbitraryValue) }
func positions() []string {
	return []string{"bottom", "center", "left", "left-bottom", "left-top", "right", "right-bottom", "right-top", "top"}
}
func lineStyles() []string { return []string{"solid", "dashed", "dotted", "double", "none"} }
func blendModes() []string {
	return []string{"normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge", "color-burn",
		"hard-light", "soft-light", "difference", "exclusion", "hue", "saturation", "color", "luminosity"}
}
func align() []string { return []string{"start", "end", "center", "between", "around", "evenly", "stretch"} }
func breaks() []string {
	return []string{"auto", "avoid", "all", "avoid-page", "page", "left", "right", "column"}
}
func overflows() []string { return []string{"auto", "hidden", "clip", "visible", "scroll"} }
func overscrolls() []string { return []string{"auto", "contain", "none"} }
func gridSpan() []Rule { return Rules("auto", Prefix("span", "full", isInteger, isArbitraryValue), isArbitraryValue) }
func gridLine() []Rule { return Rules(isNumber, isArbitraryValue) }
func gridAuto() []Rule { return Rules("auto", "min", "max", "fr", isArbitraryValue) }
func gradientStops() []Rule { return Rules(isPercent, isArbitraryLength) }
func scale() []Rule { return numberAndArb() }
func rotate() []Rule { return Rules(isInteger, isArbitraryValue) }
func skew() []Rule { return Rules(isNumber, isArbitraryValue) }
func filterPercent() []Rule { return Rules("", "0", isArbitraryValue) }
func brightness() []Rule { return numberAndArb() }
func nameWith(p string, r []Rule) []Rule {
	return Rules(Prefix(p, r))
}

// DefaultConfig returns the class-group table for Tailwind CSS v3 utilities.
func DefaultConfig() Config {
	return Config{
		Separator:                      ":",
		CacheSize:                      500,
		ClassGroups:                    defaultClassGroups(),
		ConflictingClassGroups:         defaultConflicts(),
		ConflictingClassGroupModifiers: map[ClassGroupID][]ClassGroupID{"font-size": {"leading"}},
	}
}

func defaultClassGroups() []ClassGroup {
	groups := []ClassGroup{
		// Layout
		{ID: "aspect", Rules: nameWith("aspect", Rules("auto", "square", "video", isArbitraryValue))},
		{ID: "container", Rules: Lit("container")},
		{ID: "columns", Rules: nameWith("columns", Rules(isTshirtSize, isNumber, isArbitraryValue))},
		{ID: "break-after", Rules: nameWith("break-after", Lit(breaks()...))},
		{ID: "break-before", Rules: nameWith("break-before", Lit(breaks()...))},
		{ID: "break-inside", Rules: nameWith("break-inside", Lit("auto", "avoid", "avoid-page", "avoid-column"))},
		{ID: "box-decoration", Rules: nameWith("box-decoration", Lit("slice", "clone"))},
		{ID: "box", Rules: nameWith("box", Lit("border", "content"))},
		{ID: "display", Rules: Lit("block", "inline-block", "inline", "flex", "inline-flex", "table", "inline-table",
			"table-caption", "table-cell", "table-column", "table-column-group", "table-footer-group",
			"table-header-group", "table-row-group", "table-row", "flow-root", "grid", "inline-grid", "contents",
			"list-item", "hidden")},
		{ID: "float", Rules: nameWith("float", Lit("right", "left", "none", "start", "end"))},
		{ID: "clear", Rules: nameWith("clear", Lit("left", "right", "both", "none", "start", "end"))},
		{ID: "isolation", Rules: Lit("isolate", "isolation-auto")},
		{ID: "object-fit", Rules: nameWith("object", Lit("contain", "cover", "fill", "none", "scale-down"))},
		{ID: "object-position", Rules: nameWith("object", Rules(positions(), isArbitraryValue))},
		{ID: "overflow", Rules: nameWith("overflow", Lit(overflows()...))},
		{ID: "overflow-x", Rules: nameWith("overflow-x", Lit(overflows()...))},
		{ID: "overflow-y", Rules: nameWith("overflow-y", Lit(overflows()...))},
		{ID: "overscroll", Rules: nameWith("overscroll", Lit(overscrolls()...))},
		{ID: "overscroll-x", Rules: nameWith("overscroll-x", Lit(overscrolls()...))},
		{ID: "overscroll-y", Rules: nameWith("overscroll-y", Lit(overscrolls()...))},
		{ID: "position", Rules: Lit("static", "fixed", "absolute", "relative", "sticky")},
		{ID: "inset", Rules: nameWith("inset", spacingAuto())},
		{ID: "inset-x", Rules: nameWith("inset-x", spacingAuto())},
		{ID: "inset-y", Rules: nameWith("inset-y", spacingAuto())},
		{ID: "start", Rules: nameWith("start", spacingAuto())},
		{ID: "end", Rules: nameWith("end", spacingAuto())},
		{ID: "top", Rules: nameWith("top", spacingAuto())},
		{ID: "right", Rules: nameWith("right", spacingAuto())},
		{ID: "bottom", Rules: nameWith("bottom", spacingAuto())},
		{ID: "left", Rules: nameWith("left", spacingAuto())},
		{ID: "visibility", Rules: Lit("visible", "invisible", "collapse")},
		{ID: "z", Rules: nameWith("z", Rules("auto", isInteger, isArbitraryValue))},

		// Flexbox and Grid
		{ID: "basis", Rules: nameWith("basis", spacingAuto())},
		{ID: "flex-direction", Rules: nameWith("flex", Lit("row", "row-reverse", "col", "col-reverse"))},
		{ID: "flex-wrap", Rules: nameWith("flex", Lit("wrap", "wrap-reverse", "nowrap"))},
		{ID: "flex", Rules: nameWith("flex", Rules("1", "auto", "initial", "none", isArbitraryValue))},
		{ID: "grow", Rules: nameWith("grow", zeroAndEmpty())},
		{ID: "shrink", Rules: nameWith("shrink", zeroAndEmpty())},
		{ID: "order", Rules: nameWith("order", Rules("first", "last", "none", isInteger, isArbitraryValue))},
		{ID: "grid-cols", Rules: nameWith("grid-cols", Rules("none", "subgrid", isInteger, isArbitraryValue))},
		{ID: "col-start-end", Rules: nameWith("col", gridSpan())},
		{ID: "col-start", Rules: nameWith("col-start", Rules("auto", gridLine()))},
		{ID: "col-end", Rules: nameWith("col-end", Rules("auto", gridLine()))},
		{ID: "grid-rows", Rules: nameWith("grid-rows", Rules("none", "subgrid", isInteger, isArbitraryValue))},
		{ID: "row-start-end", Rules: nameWith("row", gridSpan())},
		{ID: "row-start", Rules: nameWith("row-start", Rules("auto", gridLine()))},
		{ID: "row-end", Rules: nameWith("row-end", Rules("auto", gridLine()))},
		{ID: "grid-flow", Rules: nameWith("grid-flow", Lit("row", "col", "dense", "row-dense", "col-dense"))},
		{ID: "auto-cols", Rules: nameWith("auto-cols", gridAuto())},
		{ID: "auto-rows", Rules: nameWith("auto-rows", gridAuto())},
		{ID: "gap", Rules: nameWith("gap", spacing())},
		{ID: "gap-x", Rules: nameWith("gap-x", spacing())},
		{ID: "gap-y", Rules: nameWith("gap-y", spacing())},
		{ID: "justify-content", Rules: nameWith("justify", Rules("normal", align()))},
		{ID: "justify-items", Rules: nameWith("justify-items", Lit("start", "end", "center", "stretch"))},
		{ID: "justify-self", Rules: nameWith("justify-self", Lit("auto", "start", "end", "center", "stretch"))},
		{ID: "align-content", Rules: nameWith("content", Rules("normal", align(), "baseline"))},
		{ID: "align-items", Rules: nameWith("items", Lit("start", "end", "center", "baseline", "stretch"))},
		{ID: "align-self", Rules: nameWith("self", Lit("auto", "start", "end", "center", "stretch", "baseline"))},
		{ID: "place-content", Rules: nameWith("place-content", Rules(align(), "baseline"))},
		{ID: "place-items", Rules: nameWith("place-items", Lit("start", "end", "center", "baseline", "stretch"))},
		{ID: "place-self", Rules: nameWith("place-self", Lit("auto", "start", "end", "center", "stretch"))},

		// Spacing
		{ID: "p", Rules: nameWith("p", spacing())},
		{ID: "px", Rules: nameWith("px", spacing())},
		{ID: "py", Rules: nameWith("py", spacing())},
		{ID: "ps", Rules: nameWith("ps", spacing())},
		{ID: "pe", Rules: nameWith("pe", spacing())},
		{ID: "pt", Rules: nameWith("pt", spacing())},
		{ID: "pr", Rules: nameWith("pr", spacing())},
		{ID: "pb", Rules: nameWith("pb", spacing())},
		{ID: "pl", Rules: nameWith("pl", spacing())},
		{ID: "m", Rules: nameWith("m", spacingAuto())},
		{ID: "mx", Rules: nameWith("mx", spacingAuto())},
		{ID: "my", Rules: nameWith("my", spacingAuto())},
		{ID: "ms", Rules: nameWith("ms", spacingAuto())},
		{ID: "me", Rules: nameWith("me", spacingAuto())},
		{ID: "mt", Rules: nameWith("mt", spacingAuto())},
		{ID: "mr", Rules: nameWith("mr", spacingAuto())},
		{ID: "mb", Rules: nameWith("mb", spacingAuto())},
		{ID: "ml", Rules: nameWith("ml", spacingAuto())},
		{ID: "space-x", Rules: nameWith("space-x", spacing())},
		{ID: "space-x-reverse", Rules: Lit("space-x-reverse")},
		{ID: "space-y", Rules: nameWith("space-y", spacing())},
		{ID: "space-y-reverse", Rules: Lit("space-y-reverse")},

		// Sizing
		{ID: "w", Rules: nameWith("w", Rules("auto", "min", "max", "fit", "svw", "lvw", "dvw", spacing()))},
		{ID: "min-w", Rules: nameWith("min-w", Rules("min", "max", "fit", spacing()))},
		{ID: "max-w", Rules: nameWith("max-w", Rules("none", "full", "min", "max", "fit", "prose",
			Prefix("screen", isTshirtSize), isTshirtSize, spacing()))},
		{ID: "h", Rules: nameWith("h", Rules("auto", "min", "max", "fit", "svh", "lvh", "dvh", spacing()))},
		{ID: "min-h", Rules: nameWith("min-h", Rules("min", "max", "fit", "svh", "lvh", "dvh", spacing()))},
		{ID: "max-h", Rules: nameWith("max-h", Rules("min", "max", "fit", "svh", "lvh", "dvh", spacing()))},
		{ID: "size", Rules: nameWith("size", Rules("auto", "min", "max", "fit", spacing()))},

		// Typography
		{ID: "font-size", Rules: nameWith("text", Rules("base", isTshirtSize, isArbitraryLength))},
		{ID: "font-smoothing", Rules: Lit("antialiased", "subpixel-antialiased")},
		{ID: "font-style", Rules: Lit("italic", "not-italic")},
		{ID: "font-weight", Rules: nameWith("font", Rules("thin", "extralight", "light", "normal", "medium",
			"semibold", "bold", "extrabold", "black", isArbitraryNumber))},
		{ID: "font-family", Rules: nameWith("font", colors())},
		{ID: "fvn-normal", Rules: Lit("normal-nums")},
		{ID: "fvn-ordinal", Rules: Lit("ordinal")},
		{ID: "fvn-slashed-zero", Rules: Lit("slashed-zero")},
		{ID: "fvn-figure", Rules: Lit("lining-nums", "oldstyle-nums")},
		{ID: "fvn-spacing", Rules: Lit("proportional-nums", "tabular-nums")},
		{ID: "fvn-fraction", Rules: Lit("diagonal-fractions", "stacked-fractions")},
		{ID: "tracking", Rules: nameWith("tracking", Rules("tighter", "tight", "normal", "wide", "wider", "widest", isArbitraryValue))},
		{ID: "line-clamp", Rules: nameWith("line-clamp", Rules("none", isNumber, isArbitraryNumber))},
		{ID: "leading", Rules: nameWith("leading", Rules("none", "tight", "snug", "normal", "relaxed", "loose", isLength, isArbitraryValue))},
		{ID: "list-image", Rules: nameWith("list-image", Rules("none", isArbitraryValue))},
		{ID: "list-style-type", Rules: nameWith("list", Rules("none", "disc", "decimal", isArbitraryValue))},
		{ID: "list-style-position", Rules: nameWith("list", Lit("inside", "outside"))},
		{ID: "placeholder-opacity", Rules: nameWith("placeholder-opacity", opacity())},
		{ID: "placeholder-color", Rules: nameWith("placeholder", colors())},
		{ID: "text-alignment", Rules: nameWith("text", Lit("left", "center", "right", "justify", "start", "end"))},
		{ID: "text-opacity", Rules: nameWith("text-opacity", opacity())},
		{ID: "text-overflow", Rules: Lit("truncate", "text-ellipsis", "text-clip")},
		{ID: "text-wrap", Rules: nameWith("text", Lit("wrap", "nowrap", "balance", "pretty"))},
		{ID: "text-color", Rules: nameWith("text", colors())},
		{ID: "text-decoration", Rules: Lit("underline", "overline", "line-through", "no-underline")},
		{ID: "text-decoration-style", Rules: nameWith("decoration", Lit(append(lineStyles(), "wavy")...))},
		{ID: "text-decoration-thickness", Rules: nameWith("decoration", Rules("auto", "from-font", isLength, isArbitraryLength))},
		{ID: "underline-offset", Rules: nameWith("underline-offset", Rules("auto", isLength, isArbitraryValue))},
		{ID: "text-decoration-color", Rules: nameWith("decoration", colors())},
		{ID: "text-transform", Rules: Lit("uppercase", "lowercase", "capitalize", "normal-case")},
		{ID: "indent", Rules: nameWith("indent", spacing())},
		{ID: "vertical-align", Rules: nameWith("align", Rules("baseline", "top", "middle", "bottom", "text-top",
			"text-bottom", "sub", "super", isArbitraryValue))},
		{ID: "whitespace", Rules: nameWith("whitespace", Lit("normal", "nowrap", "pre", "pre-line", "pre-wrap", "break-spaces"))},
		{ID: "break", Rules: nameWith("break", Lit("normal", "words", "all", "keep"))},
		{ID: "hyphens", Rules: nameWith("hyphens", Lit("none", "manual", "auto"))},
		{ID: "content", Rules: nameWith("content", Rules("none", isArbitraryValue))},

		// Backgrounds
		{ID: "bg-attachment", Rules: nameWith("bg", Lit("fixed", "local", "scroll"))},
		{ID: "bg-clip", Rules: nameWith("bg-clip", Lit("border", "padding", "content", "text"))},
		{ID: "bg-opacity", Rules: nameWith("bg-opacity", opacity())},
		{ID: "bg-origin", Rules: nameWith("bg-origin", Lit("border", "padding", "content"))},
		{ID: "bg-position", Rules: nameWith("bg", Rules(positions(), isArbitraryPosition))},
		{ID: "bg-repeat", Rules: nameWith("bg", Rules("no-repeat", Prefix("repeat", "", "x", "y", "round", "space")))},
		{ID: "bg-size", Rules: nameWith("bg", Rules("auto", "cover", "contain", isArbitrarySize))},
		{ID: "bg-image", Rules: nameWith("bg", Rules("none",
			Prefix("gradient-to", "t", "tr", "r", "br", "b", "bl", "l", "tl"), isArbitraryImage))},
		{ID: "bg-blend", Rules: nameWith("bg-blend", Lit(blendModes()...))},
		{ID: "bg-color", Rules: nameWith("bg", colors())},
		{ID: "gradient-from-pos", Rules: nameWith("from", gradientStops())},
		{ID: "gradient-via-pos", Rules: nameWith("via", gradientStops())},
		{ID: "gradient-to-pos", Rules: nameWith("to", gradientStops())},
		{ID: "gradient-from", Rules: nameWith("from", colors())},
		{ID: "gradient-via", Rules: nameWith("via", colors())},
		{ID: "gradient-to", Rules: nameWith("to", colors())},

		// Tables, declared before borders so border-collapse and border-spacing win over border colors
		{ID: "border-collapse", Rules: nameWith("border", Lit("collapse", "separate"))},
		{ID: "border-spacing", Rules: nameWith("border-spacing", spacing())},
		{ID: "border-spacing-x", Rules: nameWith("border-spacing-x", spacing())},
		{ID: "border-spacing-y", Rules: nameWith("border-spacing-y", spacing())},
		{ID: "table-layout", Rules: nameWith("table", Lit("auto", "fixed"))},
		{ID: "caption", Rules: nameWith("caption", Lit("top", "bottom"))},
	}

	groups = append(groups, borderGroups()...)
	groups = append(groups, effectGroups()...)
	return groups
}

func borderGroups() []ClassGroup {
	groups := []ClassGroup{
		{ID: "rounded", Rules: nameWith("rounded", radius())},
	}
	for _, side := range []string{"s", "e", "t", "r", "b", "l", "ss", "se", "ee", "es", "tl", "tr", "br", "bl"} {
		groups = append(groups, ClassGroup{ID: "rounded-" + side, Rules: nameWith("rounded-"+side, radius())})
	}

	groups = append(groups, ClassGroup{ID: "border-w", Rules: nameWith("border", borderWidth())})
	for _, side := range []string{"x", "y", "s", "e", "t", "r", "b", "l"} {
		groups = append(groups, ClassGroup{ID: "border-w-" + side, Rules: nameWith("border-"+side, borderWidth())})
	}

	groups = append(groups,
		ClassGroup{ID: "border-opacity", Rules: nameWith("border-opacity", opacity())},
		ClassGroup{ID: "border-style", Rules: nameWith("border", Lit(append(lineStyles(), "hidden")...))},
		ClassGroup{ID: "divide-x", Rules: nameWith("divide-x", borderWidth())},
		ClassGroup{ID: "divide-x-reverse", Rules: Lit("divide-x-reverse")},
		ClassGroup{ID: "divide-y", Rules: nameWith("divide-y", borderWidth())},
		ClassGroup{ID: "divide-y-reverse", Rules: Lit("divide-y-reverse")},
		ClassGroup{ID: "divide-opacity", Rules: nameWith("divide-opacity", opacity())},
		ClassGroup{ID: "divide-style", Rules: nameWith("divide", Lit(lineStyles()...))},
	)
	for _, side := range []string{"x", "y", "s", "e", "t", "r", "b", "l"} {
		groups = append(groups, ClassGroup{ID: "border-color-" + side, Rules: nameWith("border-"+side, colors())})
	}
	groups = append(groups,
		ClassGroup{ID: "border-color", Rules: nameWith("border", colors())},
		ClassGroup{ID: "divide-color", Rules: nameWith("divide", colors())},
		ClassGroup{ID: "outline-style", Rules: nameWith("outline", Lit(append([]string{""}, lineStyles()...)...))},
		ClassGroup{ID: "outline-offset", Rules: nameWith("outline-offset", Rules(isLength, isArbitraryValue))},
		ClassGroup{ID: "outline-w", Rules: nameWith("outline", Rules(isLength, isArbitraryLength))},
		ClassGroup{ID: "outline-color", Rules: nameWith("outline", colors())},
		ClassGroup{ID: "ring-w", Rules: nameWith("ring", borderWidth())},
		ClassGroup{ID: "ring-w-inset", Rules: Lit("ring-inset")},
		ClassGroup{ID: "ring-opacity", Rules: nameWith("ring-opacity", opacity())},
		ClassGroup{ID: "ring-offset-w", Rules: nameWith("ring-offset", Rules(isLength, isArbitraryLength))},
		ClassGroup{ID: "ring-offset-color", Rules: nameWith("ring-offset", colors())},
		ClassGroup{ID: "ring-color", Rules: nameWith("ring", colors())},
	)
	return groups
}

func effectGroups() []ClassGroup {
	return []ClassGroup{
		// Effects
		{ID: "shadow", Rules: nameWith("shadow", Rules("", "inner", "none", isTshirtSize, isArbitraryShadow))},
		{ID: "shadow-color", Rules: nameWith("shadow", colors())},
		{ID: "opacity", Rules: nameWith("opacity", opacity())},
		{ID: "mix-blend", Rules: nameWith("mix-blend", Lit(append(blendModes(), "plus-lighter", "plus-darker")...))},

		// Filters
		{ID: "filter", Rules: Rules(Prefix("filter", "", "none"))},
		{ID: "blur", Rules: nameWith("blur", blurScale())},
		{ID: "brightness", Rules: nameWith("brightness", brightness())},
		{ID: "contrast", Rules: nameWith("contrast", brightness())},
		{ID: "drop-shadow", Rules: nameWith("drop-shadow", Rules("", "none", isTshirtSize, isArbitraryValue))},
		{ID: "grayscale", Rules: nameWith("grayscale", filterPercent())},
		{ID: "hue-rotate", Rules: nameWith("hue-rotate", rotate())},
		{ID: "invert", Rules: nameWith("invert", filterPercent())},
		{ID: "saturate", Rules: nameWith("saturate", brightness())},
		{ID: "sepia", Rules: nameWith("sepia", filterPercent())},
		{ID: "backdrop-filter", Rules: Rules(Prefix("backdrop-filter", "", "none"))},
		{ID: "backdrop-blur", Rules: nameWith("backdrop-blur", blurScale())},
		{ID: "backdrop-brightness", Rules: nameWith("backdrop-brightness", brightness())},
		{ID: "backdrop-contrast", Rules: nameWith("backdrop-contrast", brightness())},
		{ID: "backdrop-grayscale", Rules: nameWith("backdrop-grayscale", filterPercent())},
		{ID: "backdrop-hue-rotate", Rules: nameWith("backdrop-hue-rotate", rotate())},
		{ID: "backdrop-invert", Rules: nameWith("backdrop-invert", filterPercent())},
		{ID: "backdrop-opacity", Rules: nameWith("backdrop-opacity", opacity())},
		{ID: "backdrop-saturate", Rules: nameWith("backdrop-saturate", brightness())},
		{ID: "backdrop-sepia", Rules: nameWith("backdrop-sepia", filterPercent())},

		// Transitions and Animation
		{ID: "transition", Rules: nameWith("transition", Rules("none", "all", "", "colors", "opacity", "shadow", "transform", isArbitraryValue))},
		{ID: "duration", Rules: nameWith("duration", numberAndArb())},
		{ID: "ease", Rules: nameWith("ease", Rules("linear", "in", "out", "in-out", isArbitraryValue))},
		{ID: "delay", Rules: nameWith("delay", numberAndArb())},
		{ID: "animate", Rules: nameWith("animate", Rules("none", "spin", "ping", "pulse", "bounce", isArbitraryValue))},

		// Transforms
		{ID: "transform", Rules: Rules(Prefix("transform", "", "gpu", "none"))},
		{ID: "scale", Rules: nameWith("scale", scale())},
		{ID: "scale-x", Rules: nameWith("scale-x", scale())},
		{ID: "scale-y", Rules: nameWith("scale-y", scale())},
		{ID: "rotate", Rules: nameWith("rotate", rotate())},
		{ID: "translate-x", Rules: nameWith("translate-x", spacing())},
		{ID: "translate-y", Rules: nameWith("translate-y", spacing())},
		{ID: "skew-x", Rules: nameWith("skew-x", skew())},
		{ID: "skew-y", Rules: nameWith("skew-y", skew())},
		{ID: "transform-origin", Rules: nameWith("origin", Rules("center", "top", "top-right", "right",
			"bottom-right", "bottom", "bottom-left", "left", "top-left", isArbitraryValue))},

		// Interactivity
		{ID: "accent", Rules: nameWith("accent", Rules("auto", colors()))},
		{ID: "appearance", Rules: nameWith("appearance", Lit("none", "auto"))},
		{ID: "cursor", Rules: nameWith("cursor", Rules("auto", "default", "pointer", "wait", "text", "move", "help",
			"not-allowed", "none", "context-menu", "progress", "cell", "crosshair", "vertical-text", "alias", "copy",
			"no-drop", "grab", "grabbing", "all-scroll", "col-resize", "row-resize", "n-resize", "e-resize",
			"s-resize", "w-resize", "ne-resize", "nw-resize", "se-resize", "sw-resize", "ew-resize", "ns-resize",
			"nesw-resize", "nwse-resize", "zoom-in", "zoom-out", isArbitraryValue))},
		{ID: "caret-color", Rules: nameWith("caret", colors())},
		{ID: "pointer-events", Rules: nameWith("pointer-events", Lit("none", "auto"))},
		{ID: "resize", Rules: nameWith("resize", Lit("none", "y", "x", ""))},
		{ID: "scroll-behavior", Rules: nameWith("scroll", Lit("auto", "smooth"))},
		{ID: "scroll-m", Rules: nameWith("scroll-m", spacing())},
		{ID: "scroll-mx", Rules: nameWith("scroll-mx", spacing())},
		{ID: "scroll-my", Rules: nameWith("scroll-my", spacing())},
		{ID: "scroll-ms", Rules: nameWith("scroll-ms", spacing())},
		{ID: "scroll-me", Rules: nameWith("scroll-me", spacing())},
		{ID: "scroll-mt", Rules: nameWith("scroll-mt", spacing())},
		{ID: "scroll-mr", Rules: nameWith("scroll-mr", spacing())},
		{ID: "scroll-mb", Rules: nameWith("scroll-mb", spacing())},
		{ID: "scroll-ml", Rules: nameWith("scroll-ml", spacing())},
		{ID: "scroll-p", Rules: nameWith("scroll-p", spacing())},
		{ID: "scroll-px", Rules: nameWith("scroll-px", spacing())},
		{ID: "scroll-py", Rules: nameWith("scroll-py", spacing())},
		{ID: "scroll-ps", Rules: nameWith("scroll-ps", spacing())},
		{ID: "scroll-pe", Rules: nameWith("scroll-pe", spacing())},
		{ID: "scroll-pt", Rules: nameWith("scroll-pt", spacing())},
		{ID: "scroll-pr", Rules: nameWith("scroll-pr", spacing())},
		{ID: "scroll-pb", Rules: nameWith("scroll-pb", spacing())},
		{ID: "scroll-pl", Rules: nameWith("scroll-pl", spacing())},
		{ID: "snap-align", Rules: nameWith("snap", Lit("start", "end", "center", "align-none"))},
		{ID: "snap-stop", Rules: nameWith("snap", Lit("normal", "always"))},
		{ID: "snap-type", Rules: nameWith("snap", Lit("none", "x", "y", "both"))},
		{ID: "snap-strictness", Rules: nameWith("snap", Lit("mandatory", "proximity"))},
		{ID: "touch", Rules: nameWith("touch", Lit("auto", "none", "manipulation"))},
		{ID: "touch-x", Rules: nameWith("touch-pan", Lit("x", "left", "right"))},
		{ID: "touch-y", Rules: nameWith("touch-pan", Lit("y", "up", "down"))},
		{ID: "touch-pz", Rules: Lit("touch-pinch-zoom")},
		{ID: "select", Rules: nameWith("select", Lit("none", "text", "all", "auto"))},
		{ID: "will-change", Rules: nameWith("will-change", Rules("auto", "scroll", "contents", "transform", isArbitraryValue))},

		// SVG
		{ID: "fill", Rules: nameWith("fill", Rules("none", colors()))},
		{ID: "stroke-w", Rules: nameWith("stroke", Rules(isLength, isArbitraryLength, isArbitraryNumber))},
		{ID: "stroke", Rules: nameWith("stroke", Rules("none", colors()))},

		// Accessibility
		{ID: "sr", Rules: Lit("sr-only", "not-sr-only")},
		{ID: "forced-color-adjust", Rules: nameWith("forced-color-adjust", Lit("auto", "none"))},
	}
}

func defaultConflicts() map[ClassGroupID][]ClassGroupID {
	return map[ClassGroupID][]ClassGroupID{
		"overflow":         {"overflow-x", "overflow-y"},
		"overscroll":       {"overscroll-x", "overscroll-y"},
		"inset":            {"inset-x", "inset-y", "start", "end", "top", "right", "bottom", "left"},
		"inset-x":          {"right", "left"},
		"inset-y":          {"top", "bottom"},
		"flex":             {"basis", "grow", "shrink"},
		"gap":              {"gap-x", "gap-y"},
		"p":                {"px", "py", "ps", "pe", "pt", "pr", "pb", "pl"},
		"px":               {"pr", "pl"},
		"py":               {"pt", "pb"},
		"m":                {"mx", "my", "ms", "me", "mt", "mr", "mb", "ml"},
		"mx":               {"mr", "ml"},
		"my":               {"mt", "mb"},
		"size":             {"w", "h"},
		"fvn-normal":       {"fvn-ordinal", "fvn-slashed-zero", "fvn-figure", "fvn-spacing", "fvn-fraction"},
		"fvn-ordinal":      {"fvn-normal"},
		"fvn-slashed-zero": {"fvn-normal"},
		"fvn-figure":       {"fvn-normal"},
		"fvn-spacing":      {"fvn-normal"},
		"fvn-fraction":     {"fvn-normal"},
		"line-clamp":       {"display", "overflow"},
		"rounded": {"rounded-s", "rounded-e", "rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded-ss",
			"rounded-se", "rounded-ee", "rounded-es", "rounded-tl", "rounded-tr", "rounded-br", "rounded-bl"},
		"rounded-s":        {"rounded-ss", "rounded-es"},
		"rounded-e":        {"rounded-se", "rounded-ee"},
		"rounded-t":        {"rounded-tl", "rounded-tr"},
		"rounded-r":        {"rounded-tr", "rounded-br"},
		"rounded-b":        {"rounded-br", "rounded-bl"},
		"rounded-l":        {"rounded-tl", "rounded-bl"},
		"border-spacing":   {"border-spacing-x", "border-spacing-y"},
		"border-w":         {"border-w-s", "border-w-e", "border-w-t", "border-w-r", "border-w-b", "border-w-l"},
		"border-w-x":       {"border-w-r", "border-w-l"},
		"border-w-y":       {"border-w-t", "border-w-b"},
		"border-color":     {"border-color-t", "border-color-r", "border-color-b", "border-color-l"},
		"border-color-x":   {"border-color-r", "border-color-l"},
		"border-color-y":   {"border-color-t", "border-color-b"},
		"scroll-m":         {"scroll-mx", "scroll-my", "scroll-ms", "scroll-me", "scroll-mt", "scroll-mr", "scroll-mb", "scroll-ml"},
		"scroll-mx":        {"scroll-mr", "scroll-ml"},
		"scroll-my":        {"scroll-mt", "scroll-mb"},
		"scroll-p":         {"scroll-px", "scroll-py", "scroll-ps", "scroll-pe", "scroll-pt", "scroll-pr", "scroll-pb", "scroll-pl"},
		"scroll-px":        {"scroll-pr", "scroll-pl"},
		"scroll-py":        {"scroll-pt", "scroll-pb"},
		"touch":            {"touch-x", "touch-y", "touch-pz"},
		"touch-x":          {"touch"},
		"touch-y":          {"touch"},
		"touch-pz":         {"touch"},
	}
}
