package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-tutor/internal/deck"
)

func TestScoreAgreesWithCategory(t *testing.T) {
	// strongest first, one hand per category
	hands := []string{
		"AsKsQsJsTs",
		"9h8h7h6h5h",
		"7s7h7d7cKs",
		"QsQhQd4c4s",
		"Ac9c7c4c2c",
		"AhKsQdJcTs",
		"8s8h8dKcQs",
		"JsJh4d4cAs",
		"TsTh7d4c2s",
		"AsJh8d5c3s",
	}

	var prev Score
	for i, h := range hands {
		cards := deck.MustParseCards(h)
		require.Equal(t, Categories[i], BestCategory(cards), h)

		score, err := ScoreCards(cards)
		require.NoError(t, err)
		if i > 0 {
			assert.Less(t, score, prev, "%s should score below the previous hand", h)
		}
		prev = score
	}
}

func TestScoreBreaksTiesByKicker(t *testing.T) {
	board := "Kd9s6c3h2d"
	high, err := ScoreCards(deck.MustParseCards("AhAc" + board))
	require.NoError(t, err)
	low, err := ScoreCards(deck.MustParseCards("QhQc" + board))
	require.NoError(t, err)

	assert.Equal(t, Pair, BestCategory(deck.MustParseCards("AhAc"+board)))
	assert.Equal(t, Pair, BestCategory(deck.MustParseCards("QhQc"+board)))
	assert.Greater(t, high, low)
}

func TestScoreCardsRejectsBadInput(t *testing.T) {
	_, err := ScoreCards(deck.MustParseCards("AsKs"))
	assert.Error(t, err)

	_, err = Detail(deck.MustParseCards("AsKsQsJs"))
	assert.Error(t, err)
}

func TestDetail(t *testing.T) {
	desc, err := Detail(deck.MustParseCards("AsKsQsJsTs2h3d"))
	require.NoError(t, err)
	assert.NotEmpty(t, desc)
}
