package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cardsolo/game"
)

func TestRenderObservableProducesDecodablePNG(t *testing.T) {
	hand := game.NewHand([]game.Card{{Suit: game.SuitA, Rank: 1}, {Suit: game.SuitB, Rank: 5}})
	field := game.NewField()
	field.Slot(game.Slot1).Push(game.Card{Suit: game.SuitC, Rank: 3})

	obs := &game.ObservableGameState{Hand: hand, Field: field}

	var buf bytes.Buffer
	require.NoError(t, RenderObservable(obs, &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Greater(t, img.Bounds().Dx(), 0)
	require.Greater(t, img.Bounds().Dy(), 0)
}
