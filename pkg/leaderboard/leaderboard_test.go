package leaderboard_test

import (
	"testing"

	"goals-project-backend/pkg/leaderboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var categories = []string{"gym", "reading", "sleep"}

func rows() []leaderboard.Entry {
	return []leaderboard.Entry{
		{UserID: "ana", Category: "gym", Score: 2},
		{UserID: "bea", Category: "gym", Score: 5},
		{UserID: "ana", Category: "reading", Score: 3},
		{UserID: "cai", Category: "gym", Score: 2},
		{UserID: "dan", Category: "unknown", Score: 9},
	}
}

func TestGroupByCategory(t *testing.T) {
	input := rows()
	boards := leaderboard.GroupByCategory(input, categories)

	require.Len(t, boards, 3)

	gym := boards["gym"]
	require.Len(t, gym, 3)
	assert.Equal(t, "bea", gym[0].UserID)
	assert.Equal(t, 1, gym[0].Rank)
	// Tied scores keep input order.
	assert.Equal(t, "ana", gym[1].UserID)
	assert.Equal(t, 2, gym[1].Rank)
	assert.Equal(t, "cai", gym[2].UserID)
	assert.Equal(t, 3, gym[2].Rank)

	require.Len(t, boards["reading"], 1)
	assert.Equal(t, 1, boards["reading"][0].Rank)

	assert.NotNil(t, boards["sleep"])
	assert.Empty(t, boards["sleep"])
	assert.NotContains(t, boards, "unknown")

	for _, r := range input {
		assert.Zero(t, r.Rank, "input rows must not be mutated")
	}
}

func TestUserPositions(t *testing.T) {
	boards := leaderboard.GroupByCategory(rows(), categories)

	got := leaderboard.UserPositions(boards, categories, "ana")
	assert.Equal(t, []leaderboard.Position{
		{Category: "gym", Rank: 2, Score: 2, Participants: 3},
		{Category: "reading", Rank: 1, Score: 3, Participants: 1},
	}, got)

	none := leaderboard.UserPositions(boards, categories, "zoe")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
