package models

import (
	"database/sql/driver"
	"slices"
	"time"
)

type TodoList struct {
	Meta
	OwnerID     uint       `gorm:"not null;index" json:"owner_id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	Due         *time.Time `json:"due"`

	Items TodoItems `gorm:"type:jsonb;default:'[]'" json:"items"`

	// Derived counts, recomputed on every item mutation.
	TodosTotal     int `json:"todos_total"`
	TodosCompleted int `json:"todos_completed"`
}

func (l *TodoList) EntityKind() Kind { return KindTodoList }

func (l *TodoList) Refs() map[RefField]uint {
	return map[RefField]uint{RefOwner: l.OwnerID}
}

func (l *TodoList) Clone() Entity {
	c := *l
	c.Items = slices.Clone(l.Items)
	return &c
}

// RecalcCounts refreshes the derived totals from the embedded items.
func (l *TodoList) RecalcCounts() {
	l.TodosTotal = len(l.Items)
	done := 0
	for _, it := range l.Items {
		if it.Complete {
			done++
		}
	}
	l.TodosCompleted = done
}

// TodoItem lives embedded in its list. ID is a uuid assigned on append
// so items are addressed by identity, not position.
type TodoItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Complete bool   `json:"complete"`
}

func (it TodoItem) SubID() string { return it.ID }

type TodoItems []TodoItem

func (l TodoItems) Value() (driver.Value, error) {
	if l == nil {
		l = TodoItems{}
	}
	return jsonbValue(l)
}

func (l *TodoItems) Scan(src any) error { return jsonbScan(l, src) }
