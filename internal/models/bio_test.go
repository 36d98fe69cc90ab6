package models

import (
	"encoding/json"
	"testing"
)

func TestBioMarshalEmitsRoleKeyedObject(t *testing.T) {
	t.Parallel()

	bio := Bio{
		Kind: BioProfessional,
		Professional: &ProfessionalInfo{
			Title:           "Engineer",
			YearsExperience: 6,
			Skills:          []string{"Go", "SQL"},
		},
	}

	raw, err := json.Marshal(bio)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var wire map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal wire: %v", err)
	}
	if len(wire) != 1 {
		t.Fatalf("expected exactly one role key, got %v", wire)
	}
	if _, ok := wire["professional_info"]; !ok {
		t.Fatalf("expected professional_info key, got %v", wire)
	}
}

func TestBioUnmarshalDetectsRoleKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want BioKind
	}{
		{"professional", `{"professional_info":{"title":"Engineer"}}`, BioProfessional},
		{"student", `{"academic_info":{"institution":"KAUST"}}`, BioStudent},
		{"company", `{"company_info":{"legal_name":"Globex","hiring":true}}`, BioCompany},
	}
	for _, tc := range cases {
		var bio Bio
		if err := json.Unmarshal([]byte(tc.raw), &bio); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.name, err)
		}
		if bio.Kind != tc.want {
			t.Fatalf("%s: expected kind %q got %q", tc.name, tc.want, bio.Kind)
		}
	}
}

func TestMemberBioAccessors(t *testing.T) {
	t.Parallel()

	m := Member{
		Role: MemberRoleCompany,
		Bio: &Bio{
			Kind:    BioCompany,
			Company: &CompanyInfo{Industries: []string{"Fintech"}, Hiring: true},
		},
	}
	if got := m.Industries(); len(got) != 1 || got[0] != "Fintech" {
		t.Fatalf("unexpected industries %v", got)
	}
	if !m.Hiring() {
		t.Fatal("expected hiring company")
	}

	// Accessors are nil-safe for members without a bio.
	var bare Member
	if bare.Skills() != nil || bare.YearsExperience() != 0 || bare.Hiring() {
		t.Fatal("expected zero values for a member without a bio")
	}
}

func TestStatusEffectiveDefaultsToUnpublished(t *testing.T) {
	t.Parallel()

	var missing AdStatus
	if missing.Effective() != AdStatusUnpublished {
		t.Fatalf("expected unpublished, got %q", missing.Effective())
	}
	if AdStatusPending.Effective() != AdStatusPending {
		t.Fatal("a present status must pass through unchanged")
	}
	if missing.Known() {
		t.Fatal("the missing status is not part of the closed enum")
	}

	var post PostStatus
	if post.Effective() != PostStatusUnpublished {
		t.Fatalf("expected unpublished, got %q", post.Effective())
	}
}
