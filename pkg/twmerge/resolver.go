package twmerge

import "strings"

// resolve drops every entry that a later entry with the same modifier signature overrides
// and joins the survivors in their original order. It also returns how many were dropped.
func (rs *ruleSet) resolve(entries []classifiedEntry) (string, int) {
	superseded := make([]bool, len(entries))
	latest := make(map[string]int, len(entries))

	for i, e := range entries {
		if e.groupID == "" {
			continue
		}
		rs.invalidate(e, func(gid ClassGroupID) {
			key := e.signature + "\x00" + gid
			if j, ok := latest[key]; ok {
				superseded[j] = true
				delete(latest, key)
			}
		})
		latest[e.signature+"\x00"+e.groupID] = i
	}

	var sb strings.Builder
	dropped := 0
	for i, e := range entries {
		if superseded[i] {
			dropped++
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.token.Original)
	}
	return sb.String(), dropped
}

// invalidate calls fn for the entry's own group, every group conflicting with it in either
// direction, and the modifier conflicts when a postfix modifier was used.
func (rs *ruleSet) invalidate(e classifiedEntry, fn func(ClassGroupID)) {
	fn(e.groupID)
	for _, gid := range rs.conflicts[e.groupID] {
		fn(gid)
	}
	if e.postfixGroupID != "" {
		for _, gid := range rs.modifierConflicts[e.postfixGroupID] {
			fn(gid)
		}
	}
}
