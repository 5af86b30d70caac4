package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"spread/internal/models"
	"spread/internal/setops"
)

// CreatePoll creates a poll with fixed option slots. Each option gets
// a stable id so votes address options by identity.
func (f *Facade) CreatePoll(ctx context.Context, authorID uint, question string, options []string) (*models.Poll, error) {
	fields := map[string]string{}
	if strings.TrimSpace(question) == "" {
		fields["question"] = "required"
	}
	if len(options) < 2 {
		fields["options"] = "a poll needs at least two options"
	}
	if len(options) > models.MaxPollOptions {
		fields["options"] = "a poll can have at most six options"
	}
	if len(fields) > 0 {
		return nil, validationFailed("invalid poll", fields)
	}
	if _, err := f.user(ctx, authorID); err != nil {
		return nil, translate(err)
	}

	poll := &models.Poll{AuthorID: authorID, Question: question}
	for _, text := range options {
		poll.Options = append(poll.Options, models.PollOption{ID: uuid.NewString(), Text: text})
	}
	if err := f.store.Create(ctx, poll); err != nil {
		return nil, translate(err)
	}
	return poll, nil
}

// CastVote records the voter's choice. A voter holds at most one vote
// per poll: voting again replaces the previous vote instead of
// appending a duplicate.
func (f *Facade) CastVote(ctx context.Context, pollID, voterID uint, optionID string) (*models.Poll, error) {
	if _, err := f.user(ctx, voterID); err != nil {
		return nil, translate(err)
	}
	e, err := f.store.Update(ctx, models.KindPoll, pollID, func(e models.Entity) error {
		poll := e.(*models.Poll)
		if !poll.HasOption(optionID) {
			return notFound("poll %d has no option %s", pollID, optionID)
		}
		poll.Votes, _ = setops.Upsert(poll.Votes, models.PollVote{
			OptionID: optionID,
			VoterID:  voterID,
			CastAt:   time.Now(),
		})
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return e.(*models.Poll), nil
}

// RetractVote removes the voter's vote if one exists.
func (f *Facade) RetractVote(ctx context.Context, pollID, voterID uint) (changed bool, err error) {
	_, err = f.store.Update(ctx, models.KindPoll, pollID, func(e models.Entity) error {
		poll := e.(*models.Poll)
		key := models.PollVote{VoterID: voterID}.SubID()
		poll.Votes, changed = setops.Remove(poll.Votes, key)
		return nil
	})
	if err != nil {
		return false, translate(err)
	}
	return changed, nil
}

// PollResults tallies votes per option id.
func (f *Facade) PollResults(ctx context.Context, pollID uint) (*models.Poll, map[string]int, error) {
	e, err := f.resolver.Resolve(ctx, models.KindPoll, pollID)
	if err != nil {
		return nil, nil, translate(err)
	}
	poll := e.(*models.Poll)
	tally := make(map[string]int, len(poll.Options))
	for _, o := range poll.Options {
		tally[o.ID] = 0
	}
	for _, v := range poll.Votes {
		tally[v.OptionID]++
	}
	return poll, tally, nil
}
