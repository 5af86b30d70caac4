package models

import (
	"database/sql/driver"
	"slices"
)

type Company struct {
	Meta
	OwnerID uint   `gorm:"not null;index" json:"owner_id"`
	Name    string `gorm:"not null" json:"name"`
	Bio     string `gorm:"size:500" json:"bio"`
	Street1 string `json:"street_1"`
	Street2 string `json:"street_2"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Type    string `json:"type"`
	Phone   string `json:"phone"`
	Fax     string `json:"fax"`
	Email   string `json:"email"`
	Website string `json:"website"`

	Departments StringList `gorm:"type:jsonb;default:'[]'" json:"departments"`

	JobApplicants RefSet `gorm:"type:jsonb;default:'[]'" json:"job_applicants"` // resume ids
	Employees     RefSet `gorm:"type:jsonb;default:'[]'" json:"employees"`      // user ids

	Inventory Inventory `gorm:"type:jsonb" json:"inventory"`
}

func (co *Company) EntityKind() Kind { return KindCompany }

func (co *Company) Refs() map[RefField]uint {
	return map[RefField]uint{RefOwner: co.OwnerID}
}

func (co *Company) RefSetField(f SetField) *RefSet {
	switch f {
	case SetJobApplicants:
		return &co.JobApplicants
	case SetEmployees:
		return &co.Employees
	}
	return nil
}

func (co *Company) Clone() Entity {
	c := *co
	c.Departments = slices.Clone(co.Departments)
	c.JobApplicants = slices.Clone(co.JobApplicants)
	c.Employees = slices.Clone(co.Employees)
	c.Inventory.Office = slices.Clone(co.Inventory.Office)
	c.Inventory.Sale = slices.Clone(co.Inventory.Sale)
	return &c
}

// InventoryLine tracks stock of one referenced item. ItemRef is the
// external item identifier and acts as the line's sub-identity.
type InventoryLine struct {
	ItemRef string `json:"item_ref"`
	Have    int    `json:"have"`
	Need    int    `json:"need"`
}

func (l InventoryLine) SubID() string { return l.ItemRef }

// Inventory holds the two typed stock lists of a company.
type Inventory struct {
	Office []InventoryLine `json:"office"`
	Sale   []InventoryLine `json:"sale"`
}

func (inv Inventory) Value() (driver.Value, error) { return jsonbValue(inv) }

func (inv *Inventory) Scan(src any) error { return jsonbScan(inv, src) }
