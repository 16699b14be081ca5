package twmerge

import "strings"

const arbitraryPropertyPrefix = "arbitrary.."

// classifiedEntry is a token together with the class group it belongs to.
// An empty groupID marks a class that is not a known utility.
type classifiedEntry struct {
	token ClassToken
	// signature is the modifier set plus important flag the entry applies under.
	signature string
	groupID   ClassGroupID
	// postfixGroupID is set when the postfix modifier took part in classification and
	// enables the narrower modifier conflicts of groupID.
	postfixGroupID ClassGroupID
}

func (rs *ruleSet) classifyToken(tok ClassToken) classifiedEntry {
	e := classifiedEntry{token: tok}
	if tok.Passthrough {
		return e
	}
	if tok.HasPostfix {
		if id, ok := rs.classify(tok.BaseWithoutPostfix()); ok {
			e.groupID = id
			e.postfixGroupID = rs.classifyModifierGroup(id)
		}
	}
	if e.groupID == "" {
		id, ok := rs.classify(tok.Base)
		if !ok {
			return e
		}
		e.groupID = id
	}
	e.signature = modifierSignature(tok)
	return e
}

// classify finds the first class group, in declaration order, whose rules accept base.
func (rs *ruleSet) classify(base string) (ClassGroupID, bool) {
	candidate := base
	if len(candidate) > 1 && candidate[0] == '-' {
		candidate = candidate[1:]
	}

	idx, ok := rs.byKey[firstSegment(candidate)]
	if !ok {
		idx = rs.wildcard
	}
	for _, i := range idx {
		if matchAny(rs.groups[i].Rules, candidate) {
			return rs.groups[i].ID, true
		}
	}
	return arbitraryProperty(base)
}

// classifyModifierGroup returns id when it takes part in postfix modifier conflicts.
func (rs *ruleSet) classifyModifierGroup(id ClassGroupID) ClassGroupID {
	if _, ok := rs.modifierConflicts[id]; ok {
		return id
	}
	return ""
}

// arbitraryProperty groups "[mask-type:luminance]" style classes by their property name.
func arbitraryProperty(base string) (ClassGroupID, bool) {
	if len(base) < 3 || base[0] != '[' || base[len(base)-1] != ']' {
		return "", false
	}
	inner := base[1 : len(base)-1]
	colon := strings.IndexByte(inner, ':')
	if colon <= 0 || colon == len(inner)-1 {
		return "", false
	}
	return arbitraryPropertyPrefix + inner[:colon], true
}
