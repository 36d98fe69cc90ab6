package search

import (
	"strings"

	"ruyatech/internal/models"
)

// MemberFilters are the public browse facets. Each active facet narrows the
// result further (plain conjunction, no OR across facets), and array facets
// require every selected tag on a candidate, not just one.
type MemberFilters struct {
	Role          models.MemberRole
	Location      string
	MinExperience int
	Skills        []string
	Interests     []string
	Industries    []string
	HiringOnly    bool
}

// Match applies the facet conjunction to one member.
func (f MemberFilters) Match(m models.Member) bool {
	if f.Role != "" && m.Role != f.Role {
		return false
	}
	if f.Location != "" && !MatchTerm(f.Location, m.City, m.Country) {
		return false
	}
	if f.MinExperience > 0 && m.YearsExperience() < f.MinExperience {
		return false
	}
	if !containsAll(m.Skills(), f.Skills) {
		return false
	}
	if !containsAll(m.Interests(), f.Interests) {
		return false
	}
	if !containsAll(m.Industries(), f.Industries) {
		return false
	}
	if f.HiringOnly && !m.Hiring() {
		return false
	}
	return true
}

// FilterMembers narrows the directory to members matching every active
// facet.
func FilterMembers(members []models.Member, f MemberFilters) []models.Member {
	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if f.Match(m) {
			out = append(out, m)
		}
	}
	return out
}

// containsAll reports whether every wanted tag appears in have,
// case-insensitively. An empty want list matches anything.
func containsAll(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if strings.EqualFold(h, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
