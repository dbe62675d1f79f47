// Package render draws an ObservableGameState as a PNG: the two field
// slots and the hand, each card labelled with its suit and rank. It is
// a diagnostic export, not a UI — no event loop, no input handling.
// Grounded on the content of original_source's Streamlit view
// components (field_display, game_state_display, card_selection_table,
// deck_status_display), reimplemented as a one-shot renderer using the
// freetype/x-image dependencies the teacher's go.mod lists but never
// imports.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/cardsolo/game"
)

const (
	cardWidth  = 60
	cardHeight = 84
	cardGap    = 8
	margin     = 20
	fontSize   = 14
)

var (
	cardFill   = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	cardBorder = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	textColor  = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	bgColor    = color.RGBA{R: 20, G: 110, B: 60, A: 255}
)

// RenderObservable draws obs's hand and field onto a PNG and writes it
// to w.
func RenderObservable(obs *game.ObservableGameState, w io.Writer) error {
	handCards := obs.Hand.Sorted()
	fieldTops := fieldTopCards(obs.Field)

	rows := 2
	cols := maxInt(len(handCards), len(fieldTops))
	if cols == 0 {
		cols = 1
	}

	width := margin*2 + cols*(cardWidth+cardGap) - cardGap
	height := margin*3 + rows*(cardHeight+cardGap)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bgColor}, image.Point{}, draw.Src)

	face, err := loadFace()
	if err != nil {
		return err
	}

	drawRow(img, face, fieldTops, margin)
	drawRow(img, face, handCards, margin*2+cardHeight)

	return png.Encode(w, img)
}

func fieldTopCards(field *game.Field) []game.Card {
	var tops []game.Card
	if top, ok := field.Slot(game.Slot1).Top(); ok {
		tops = append(tops, top)
	}
	if top, ok := field.Slot(game.Slot2).Top(); ok {
		tops = append(tops, top)
	}
	return tops
}

func drawRow(img *image.RGBA, face *truetype.Font, cards []game.Card, y int) {
	for i, c := range cards {
		x := margin + i*(cardWidth+cardGap)
		drawCard(img, face, c, x, y)
	}
}

func drawCard(img *image.RGBA, face *truetype.Font, c game.Card, x, y int) {
	rect := image.Rect(x, y, x+cardWidth, y+cardHeight)
	draw.Draw(img, rect, &image.Uniform{C: cardFill}, image.Point{}, draw.Src)
	drawBorder(img, rect, cardBorder)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(face)
	ctx.SetFontSize(fontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(&image.Uniform{C: textColor})

	pt := freetype.Pt(x+8, y+cardHeight/2)
	_, _ = ctx.DrawString(c.String(), pt)
}

func drawBorder(img *image.RGBA, rect image.Rectangle, col color.Color) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		img.Set(x, rect.Min.Y, col)
		img.Set(x, rect.Max.Y-1, col)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		img.Set(rect.Min.X, y, col)
		img.Set(rect.Max.X-1, y, col)
	}
}

func loadFace() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
