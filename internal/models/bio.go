package models

import "encoding/json"

// BioKind selects which profile payload a member carries.
type BioKind string

const (
	BioProfessional BioKind = "professional"
	BioStudent      BioKind = "student"
	BioCompany      BioKind = "company"
)

// Bio is the role-specific structured profile attached to a member. Exactly
// one payload is set, matching Kind. Updates go through the typed payloads
// directly; there is no string-path mutation.
type Bio struct {
	Kind         BioKind
	Professional *ProfessionalInfo
	Academic     *AcademicInfo
	Company      *CompanyInfo
}

// ProfessionalInfo is the profile payload for working professionals.
type ProfessionalInfo struct {
	Title           string   `json:"title,omitempty"`
	YearsExperience int      `json:"years_experience,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Summary         string   `json:"summary,omitempty"`
}

// AcademicInfo is the profile payload for students.
type AcademicInfo struct {
	Institution    string   `json:"institution,omitempty"`
	Degree         string   `json:"degree,omitempty"`
	FieldOfStudy   string   `json:"field_of_study,omitempty"`
	GraduationYear int      `json:"graduation_year,omitempty"`
	Interests      []string `json:"interests,omitempty"`
}

// CompanyInfo is the profile payload for companies.
type CompanyInfo struct {
	LegalName  string   `json:"legal_name,omitempty"`
	Industries []string `json:"industries,omitempty"`
	Size       string   `json:"size,omitempty"`
	Website    string   `json:"website,omitempty"`
	Hiring     bool     `json:"hiring,omitempty"`
}

type bioWire struct {
	Professional *ProfessionalInfo `json:"professional_info,omitempty"`
	Academic     *AcademicInfo     `json:"academic_info,omitempty"`
	Company      *CompanyInfo      `json:"company_info,omitempty"`
}

// MarshalJSON emits the backend wire shape: a single role-keyed object.
func (b Bio) MarshalJSON() ([]byte, error) {
	var wire bioWire
	switch b.Kind {
	case BioProfessional:
		wire.Professional = b.Professional
	case BioStudent:
		wire.Academic = b.Academic
	case BioCompany:
		wire.Company = b.Company
	}
	return json.Marshal(wire)
}

// UnmarshalJSON detects which role key the backend sent and fills the
// matching payload.
func (b *Bio) UnmarshalJSON(data []byte) error {
	var wire bioWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch {
	case wire.Professional != nil:
		*b = Bio{Kind: BioProfessional, Professional: wire.Professional}
	case wire.Academic != nil:
		*b = Bio{Kind: BioStudent, Academic: wire.Academic}
	case wire.Company != nil:
		*b = Bio{Kind: BioCompany, Company: wire.Company}
	default:
		*b = Bio{}
	}
	return nil
}

// Skills returns the professional skill tags, if any.
func (m Member) Skills() []string {
	if m.Bio != nil && m.Bio.Professional != nil {
		return m.Bio.Professional.Skills
	}
	return nil
}

// Interests returns the academic interest tags, if any.
func (m Member) Interests() []string {
	if m.Bio != nil && m.Bio.Academic != nil {
		return m.Bio.Academic.Interests
	}
	return nil
}

// Industries returns the company industry tags, if any.
func (m Member) Industries() []string {
	if m.Bio != nil && m.Bio.Company != nil {
		return m.Bio.Company.Industries
	}
	return nil
}

// YearsExperience returns the professional experience, zero for other roles.
func (m Member) YearsExperience() int {
	if m.Bio != nil && m.Bio.Professional != nil {
		return m.Bio.Professional.YearsExperience
	}
	return 0
}

// Hiring reports whether a company profile is currently hiring.
func (m Member) Hiring() bool {
	return m.Bio != nil && m.Bio.Company != nil && m.Bio.Company.Hiring
}
