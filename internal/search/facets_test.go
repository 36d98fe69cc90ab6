package search

import (
	"testing"

	"ruyatech/internal/models"
)

func professional(id string, years int, skills ...string) models.Member {
	return models.Member{
		Base: models.Base{ID: id},
		Role: models.MemberRoleProfessional,
		Bio: &models.Bio{
			Kind: models.BioProfessional,
			Professional: &models.ProfessionalInfo{
				YearsExperience: years,
				Skills:          skills,
			},
		},
	}
}

func TestSkillFacetRequiresEveryTag(t *testing.T) {
	t.Parallel()

	members := []models.Member{
		professional("m1", 3, "React"),
		professional("m2", 5, "React", "SQL", "Go"),
		professional("m3", 2, "SQL"),
	}

	// Selecting two skills means both must be present; one of them is not
	// enough.
	got := FilterMembers(members, MemberFilters{Skills: []string{"React", "SQL"}})
	if len(got) != 1 || got[0].ID != "m2" {
		t.Fatalf("expected only m2, got %v", got)
	}

	// Tag comparison ignores case.
	got = FilterMembers(members, MemberFilters{Skills: []string{"react"}})
	if len(got) != 2 {
		t.Fatalf("expected m1 and m2, got %v", got)
	}

	// No facet selected matches everyone.
	got = FilterMembers(members, MemberFilters{})
	if len(got) != 3 {
		t.Fatalf("expected all members, got %d", len(got))
	}
}

func TestFacetConjunction(t *testing.T) {
	t.Parallel()

	members := []models.Member{
		professional("m1", 8, "Go"),
		professional("m2", 2, "Go"),
		{
			Base: models.Base{ID: "m3"},
			Role: models.MemberRoleCompany,
			City: "Dubai",
			Bio: &models.Bio{
				Kind:    models.BioCompany,
				Company: &models.CompanyInfo{Industries: []string{"Fintech"}, Hiring: true},
			},
		},
	}

	got := FilterMembers(members, MemberFilters{
		Role:          models.MemberRoleProfessional,
		MinExperience: 5,
		Skills:        []string{"Go"},
	})
	if len(got) != 1 || got[0].ID != "m1" {
		t.Fatalf("expected only m1, got %v", got)
	}

	got = FilterMembers(members, MemberFilters{HiringOnly: true})
	if len(got) != 1 || got[0].ID != "m3" {
		t.Fatalf("expected only the hiring company, got %v", got)
	}

	got = FilterMembers(members, MemberFilters{Location: "dubai"})
	if len(got) != 1 || got[0].ID != "m3" {
		t.Fatalf("expected location facet to match city, got %v", got)
	}
}
