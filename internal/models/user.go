package models

import (
	"database/sql/driver"
	"slices"
)

type User struct {
	Meta
	FName    string `gorm:"not null" json:"fname"`
	LName    string `gorm:"not null" json:"lname"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash
	Bio      string `gorm:"size:500" json:"bio"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	// Avatar is a reference into media storage, never binary content.
	Avatar string `json:"avatar"`

	Friends RefSet `gorm:"type:jsonb;default:'[]'" json:"friends"` // user ids, symmetric
	Reposts RefSet `gorm:"type:jsonb;default:'[]'" json:"reposts"` // inbound repost ids

	MovieList MediaList `gorm:"type:jsonb;default:'[]'" json:"movie_list"`
	ShowList  MediaList `gorm:"type:jsonb;default:'[]'" json:"show_list"`
}

func (u *User) EntityKind() Kind        { return KindUser }
func (u *User) Refs() map[RefField]uint { return nil }

func (u *User) RefSetField(f SetField) *RefSet {
	switch f {
	case SetFriends:
		return &u.Friends
	case SetReposts:
		return &u.Reposts
	}
	return nil
}

func (u *User) Clone() Entity {
	c := *u
	c.Friends = slices.Clone(u.Friends)
	c.Reposts = slices.Clone(u.Reposts)
	c.MovieList = slices.Clone(u.MovieList)
	c.ShowList = slices.Clone(u.ShowList)
	return &c
}

// FullName is used in view payloads and notifications.
func (u *User) FullName() string {
	return u.FName + " " + u.LName
}

// MediaRef points at an externally hosted movie or show. Key is the
// external lookup identifier; saved-media lists are sets keyed by it.
type MediaRef struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

func (m MediaRef) SubID() string { return m.Key }

type MediaList []MediaRef

func (l MediaList) Value() (driver.Value, error) {
	if l == nil {
		l = MediaList{}
	}
	return jsonbValue(l)
}

func (l *MediaList) Scan(src any) error { return jsonbScan(l, src) }
