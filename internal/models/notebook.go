package models

import (
	"slices"
)

type Notebook struct {
	Meta
	OwnerID     uint       `gorm:"not null;index" json:"owner_id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	Tags        StringList `gorm:"type:jsonb;default:'[]'" json:"tags"`
}

func (n *Notebook) EntityKind() Kind { return KindNotebook }

func (n *Notebook) Refs() map[RefField]uint {
	return map[RefField]uint{RefOwner: n.OwnerID}
}

func (n *Notebook) Clone() Entity {
	c := *n
	c.Tags = slices.Clone(n.Tags)
	return &c
}

// NotebookSection is the middle level of the Notebook -> Section ->
// Note chain. Its notebook reference is immutable after creation.
type NotebookSection struct {
	Meta
	NotebookID uint       `gorm:"not null;index" json:"notebook_id"`
	Title      string     `gorm:"not null" json:"title"`
	Category   string     `json:"category"`
	Color      string     `json:"color"`
	Tags       StringList `gorm:"type:jsonb;default:'[]'" json:"tags"`
}

func (s *NotebookSection) EntityKind() Kind { return KindSection }

func (s *NotebookSection) Refs() map[RefField]uint {
	return map[RefField]uint{RefNotebook: s.NotebookID}
}

func (s *NotebookSection) Clone() Entity {
	c := *s
	c.Tags = slices.Clone(s.Tags)
	return &c
}

// Note keeps both parent references; the section named at creation
// must belong to the notebook named in the same request.
type Note struct {
	Meta
	NotebookID uint       `gorm:"not null;index" json:"notebook_id"`
	SectionID  uint       `gorm:"not null;index" json:"section_id"`
	Title      string     `gorm:"not null" json:"title"`
	Body       string     `gorm:"type:text" json:"body"`
	References StringList `gorm:"type:jsonb;default:'[]'" json:"references"`
}

func (n *Note) EntityKind() Kind { return KindNote }

func (n *Note) Refs() map[RefField]uint {
	return map[RefField]uint{RefNotebook: n.NotebookID, RefSection: n.SectionID}
}

func (n *Note) Clone() Entity {
	c := *n
	c.References = slices.Clone(n.References)
	return &c
}
