package models

import (
	"time"
)

// Kind identifies an entity type in the store.
type Kind string

const (
	KindUser     Kind = "user"
	KindCompany  Kind = "company"
	KindPost     Kind = "post"
	KindComment  Kind = "comment"
	KindPoll     Kind = "poll"
	KindResume   Kind = "resume"
	KindTodoList Kind = "todo_list"
	KindNotebook Kind = "notebook"
	KindSection  Kind = "notebook_section"
	KindNote     Kind = "note"
	KindRepost   Kind = "repost"
)

// RefField names an outbound single-reference field on an entity
// (author, owner, containing notebook, ...).
type RefField string

const (
	RefOwner    RefField = "owner"
	RefAuthor   RefField = "author"
	RefPost     RefField = "post"
	RefNotebook RefField = "notebook"
	RefSection  RefField = "section"
	RefFrom     RefField = "from"
	RefTo       RefField = "to"
)

// SetField names a reference-set column on an entity. The constant
// values match the database column names so JSONB containment queries
// can be built from them directly.
type SetField string

const (
	SetFriends       SetField = "friends"
	SetReposts       SetField = "reposts"
	SetJobApplicants SetField = "job_applicants"
	SetEmployees     SetField = "employees"
)

// Entity is implemented by every persisted model.
type Entity interface {
	EntityKind() Kind
	EntityID() uint
	SetEntityID(id uint)
	// Refs reports the entity's outbound single references. Reference
	// fields with a zero value are omitted.
	Refs() map[RefField]uint
	// Touch stamps UpdatedAt, and CreatedAt when it is still zero.
	Touch(t time.Time)
	// Clone returns a deep copy so callers never share slices with the
	// stored document.
	Clone() Entity
}

// SetHolder is implemented by entities that carry reference sets.
type SetHolder interface {
	// RefSetField returns a pointer to the named set, or nil when the
	// entity has no such field.
	RefSetField(f SetField) *RefSet
}

// Meta carries identity and timestamps, embedded by every entity.
type Meta struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Meta) EntityID() uint      { return m.ID }
func (m *Meta) SetEntityID(id uint) { m.ID = id }

func (m *Meta) Touch(t time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = t
	}
	m.UpdatedAt = t
}
