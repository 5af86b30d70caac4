package models

type Post struct {
	Meta
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Body     string `gorm:"type:text;not null" json:"body"`

	// Filled on queries, not stored.
	CommentCount int `gorm:"-" json:"comment_count"`
}

func (p *Post) EntityKind() Kind { return KindPost }

func (p *Post) Refs() map[RefField]uint {
	return map[RefField]uint{RefAuthor: p.AuthorID}
}

func (p *Post) Clone() Entity {
	c := *p
	return &c
}
