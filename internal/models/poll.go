package models

import (
	"database/sql/driver"
	"slices"
	"strconv"
	"time"
)

// MaxPollOptions bounds the fixed reply-option slots of a poll.
const MaxPollOptions = 6

type Poll struct {
	Meta
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Question string `gorm:"type:text;not null" json:"question"`

	Options PollOptions `gorm:"type:jsonb;default:'[]'" json:"options"`
	// Votes holds at most one entry per voter; casting again replaces
	// the voter's previous entry.
	Votes PollVotes `gorm:"type:jsonb;default:'[]'" json:"votes"`
}

func (p *Poll) EntityKind() Kind { return KindPoll }

func (p *Poll) Refs() map[RefField]uint {
	return map[RefField]uint{RefAuthor: p.AuthorID}
}

func (p *Poll) Clone() Entity {
	c := *p
	c.Options = slices.Clone(p.Options)
	c.Votes = slices.Clone(p.Votes)
	return &c
}

// HasOption reports whether id names one of the poll's option slots.
func (p *Poll) HasOption(id string) bool {
	for _, o := range p.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

type PollOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (o PollOption) SubID() string { return o.ID }

type PollOptions []PollOption

func (l PollOptions) Value() (driver.Value, error) {
	if l == nil {
		l = PollOptions{}
	}
	return jsonbValue(l)
}

func (l *PollOptions) Scan(src any) error { return jsonbScan(l, src) }

// PollVote records who voted for which option. Its sub-identity is the
// voter, which is what makes re-voting a replace instead of an append.
type PollVote struct {
	OptionID string    `json:"voted_for"`
	VoterID  uint      `json:"voted_by"`
	CastAt   time.Time `json:"cast_at"`
}

func (v PollVote) SubID() string { return strconv.FormatUint(uint64(v.VoterID), 10) }

type PollVotes []PollVote

func (l PollVotes) Value() (driver.Value, error) {
	if l == nil {
		l = PollVotes{}
	}
	return jsonbValue(l)
}

func (l *PollVotes) Scan(src any) error { return jsonbScan(l, src) }
