package models

type Comment struct {
	Meta
	PostID   uint   `gorm:"not null;index" json:"post_id"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Body     string `gorm:"type:text;not null" json:"body"`
}

func (c *Comment) EntityKind() Kind { return KindComment }

func (c *Comment) Refs() map[RefField]uint {
	return map[RefField]uint{RefPost: c.PostID, RefAuthor: c.AuthorID}
}

func (c *Comment) Clone() Entity {
	cp := *c
	return &cp
}
