package models

// Repost passes a piece of content from one user to another. Creating
// one also adds its id to the recipient's inbound repost set.
type Repost struct {
	Meta
	FromID  uint   `gorm:"not null;index" json:"from_id"`
	ToID    uint   `gorm:"not null;index" json:"to_id"`
	Body    string `gorm:"type:text" json:"body"`
	Visible bool   `gorm:"default:true" json:"visible"`
}

func (r *Repost) EntityKind() Kind { return KindRepost }

func (r *Repost) Refs() map[RefField]uint {
	return map[RefField]uint{RefFrom: r.FromID, RefTo: r.ToID}
}

func (r *Repost) Clone() Entity {
	c := *r
	return &c
}
