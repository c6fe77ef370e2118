// Package window shows a rendered Surface in a desktop window.
package window

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Background fills the border around the image.
var Background color.Color = color.Black

// Game is an ebiten.Game that draws one fixed image on a black background.
type Game struct {
	frame Frame
	img   *ebiten.Image
}

// NewGame copies img into GPU memory once; Draw only blits it.
func NewGame(img image.Image, borderX, borderY int) *Game {
	b := img.Bounds()
	return &Game{
		frame: Frame{
			Width:   b.Dx(),
			Height:  b.Dy(),
			BorderX: borderX,
			BorderY: borderY,
		},
		img: ebiten.NewImageFromImage(img),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(Background)

	op := &ebiten.DrawImageOptions{}
	canvas := g.frame.Canvas()
	op.GeoM.Translate(float64(canvas.Min.X), float64(canvas.Min.Y))
	screen.DrawImage(g.img, op)
}

// Layout keeps the window contents at their native size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.frame.Size()
}

// Show opens a window titled title around img and blocks until it is closed.
func Show(title string, img image.Image, borderX, borderY int) error {
	g := NewGame(img, borderX, borderY)

	ebiten.SetWindowSize(g.frame.Size())
	ebiten.SetWindowTitle(title)
	// The image never changes; only input needs polling.
	ebiten.SetTPS(10)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
