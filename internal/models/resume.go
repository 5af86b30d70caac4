package models

import (
	"database/sql/driver"
	"slices"
)

type Resume struct {
	Meta
	OwnerID uint   `gorm:"not null;index" json:"owner_id"`
	Title   string `json:"title"`

	Education  EducationList  `gorm:"type:jsonb;default:'[]'" json:"education"`
	Employment EmploymentList `gorm:"type:jsonb;default:'[]'" json:"employment"`
	References ContactList    `gorm:"type:jsonb;default:'[]'" json:"references"`
	Skills     StringList     `gorm:"type:jsonb;default:'[]'" json:"skills"`
}

func (r *Resume) EntityKind() Kind { return KindResume }

func (r *Resume) Refs() map[RefField]uint {
	return map[RefField]uint{RefOwner: r.OwnerID}
}

func (r *Resume) Clone() Entity {
	c := *r
	c.Education = slices.Clone(r.Education)
	c.Employment = slices.Clone(r.Employment)
	c.References = slices.Clone(r.References)
	c.Skills = slices.Clone(r.Skills)
	return &c
}

type Education struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
}

type EducationList []Education

func (l EducationList) Value() (driver.Value, error) {
	if l == nil {
		l = EducationList{}
	}
	return jsonbValue(l)
}

func (l *EducationList) Scan(src any) error { return jsonbScan(l, src) }

type Employment struct {
	Employer    string `json:"employer"`
	JobTitle    string `json:"job_title"`
	Description string `json:"description"`
	StartYear   int    `json:"start_year"`
	EndYear     int    `json:"end_year"`
}

type EmploymentList []Employment

func (l EmploymentList) Value() (driver.Value, error) {
	if l == nil {
		l = EmploymentList{}
	}
	return jsonbValue(l)
}

func (l *EmploymentList) Scan(src any) error { return jsonbScan(l, src) }

// Contact is a personal reference on a resume.
type Contact struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type ContactList []Contact

func (l ContactList) Value() (driver.Value, error) {
	if l == nil {
		l = ContactList{}
	}
	return jsonbValue(l)
}

func (l *ContactList) Scan(src any) error { return jsonbScan(l, src) }
