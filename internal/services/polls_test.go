package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePollValidatesOptionCount(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()
	ada := seedUser(t, s, "ada")

	_, err := f.CreatePoll(ctx, ada.ID, "best language?", []string{"go"})
	assert.True(t, IsCode(err, CodeValidationFailed))

	_, err = f.CreatePoll(ctx, ada.ID, "pick one", []string{"a", "b", "c", "d", "e", "f", "g"})
	assert.True(t, IsCode(err, CodeValidationFailed))

	poll, err := f.CreatePoll(ctx, ada.ID, "best language?", []string{"go", "rust"})
	require.NoError(t, err)
	require.Len(t, poll.Options, 2)
	assert.NotEmpty(t, poll.Options[0].ID)
	assert.NotEqual(t, poll.Options[0].ID, poll.Options[1].ID)
}

func TestCastVoteLastWins(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()
	ada := seedUser(t, s, "ada")
	bo := seedUser(t, s, "bo")

	poll, err := f.CreatePoll(ctx, ada.ID, "best language?", []string{"go", "rust"})
	require.NoError(t, err)
	goOpt, rustOpt := poll.Options[0].ID, poll.Options[1].ID

	poll, err = f.CastVote(ctx, poll.ID, bo.ID, goOpt)
	require.NoError(t, err)
	require.Len(t, poll.Votes, 1)
	assert.Equal(t, goOpt, poll.Votes[0].OptionID)

	// Re-voting replaces the previous entry instead of appending.
	poll, err = f.CastVote(ctx, poll.ID, bo.ID, rustOpt)
	require.NoError(t, err)
	require.Len(t, poll.Votes, 1)
	assert.Equal(t, rustOpt, poll.Votes[0].OptionID)
}

func TestCastVoteUnknownOption(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()
	ada := seedUser(t, s, "ada")

	poll, err := f.CreatePoll(ctx, ada.ID, "best language?", []string{"go", "rust"})
	require.NoError(t, err)

	_, err = f.CastVote(ctx, poll.ID, ada.ID, "no-such-option")
	assert.True(t, IsCode(err, CodeNotFound))

	// The failed vote never landed.
	got, _, err := f.PollResults(ctx, poll.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Votes)
}

func TestCastVoteUnknownPoll(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ada := seedUser(t, s, "ada")
	_, err := f.CastVote(context.Background(), 404, ada.ID, "x")
	assert.True(t, IsCode(err, CodeNotFound))
}

func TestRetractVote(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()
	ada := seedUser(t, s, "ada")
	bo := seedUser(t, s, "bo")

	poll, err := f.CreatePoll(ctx, ada.ID, "q", []string{"a", "b"})
	require.NoError(t, err)
	_, err = f.CastVote(ctx, poll.ID, bo.ID, poll.Options[0].ID)
	require.NoError(t, err)

	changed, err := f.RetractVote(ctx, poll.ID, bo.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = f.RetractVote(ctx, poll.ID, bo.ID)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestPollResultsTally(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()
	ada := seedUser(t, s, "ada")
	bo := seedUser(t, s, "bo")
	cy := seedUser(t, s, "cy")

	poll, err := f.CreatePoll(ctx, ada.ID, "q", []string{"a", "b"})
	require.NoError(t, err)
	optA, optB := poll.Options[0].ID, poll.Options[1].ID

	for _, vote := range []struct {
		voter  uint
		option string
	}{
		{ada.ID, optA},
		{bo.ID, optA},
		{cy.ID, optB},
	} {
		_, err = f.CastVote(ctx, poll.ID, vote.voter, vote.option)
		require.NoError(t, err)
	}

	_, tally, err := f.PollResults(ctx, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, tally[optA])
	assert.Equal(t, 1, tally[optB])
}
