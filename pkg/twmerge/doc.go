// Package twmerge removes conflicting utility classes from space-separated class strings.
//
// A later class overrides every earlier class of the same class group, or of a conflicting
// group, written under the same modifiers:
//
//	twmerge.Merge("px-2 py-1 bg-red hover:bg-dark-red", "p-3 bg-[#B91C1C]")
//	// "hover:bg-dark-red p-3 bg-[#B91C1C]"
//
// Classes are split into modifiers and a base class, the base class is matched against an
// ordered class-group table, and the survivors are joined in their original order. Results
// are memoized per input string in a two-generation cache.
package twmerge
