// puzzle is the sliding-tile demo window: a 4×4 board shuffled by
// random valid moves, a move counter, an elapsed timer, and a banner
// when the board is solved. Press N for a new game.
package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"zenlang/pkg/puzzle"
)

const (
	tileSize  = 80
	boardSide = tileSize * puzzle.Size
	hudHeight = 40
)

type Game struct {
	board    *puzzle.Board
	tileImg  *ebiten.Image // reused tile background
	start    time.Time
	won      bool
	finished time.Duration // elapsed at the moment of the win
}

func newGame() *Game {
	g := &Game{board: puzzle.New(nil)}
	g.newRound()
	return g
}

func (g *Game) newRound() {
	g.board.Shuffle()
	g.start = time.Now()
	g.won = false
	g.finished = 0
}

func (g *Game) elapsed() time.Duration {
	if g.won {
		return g.finished
	}
	return time.Since(g.start)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.newRound()
		return nil
	}
	if g.won {
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if my < boardSide {
			if g.board.Move(mx/tileSize, my/tileSize) && g.board.Solved() {
				g.won = true
				g.finished = time.Since(g.start)
			}
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.tileImg == nil {
		g.tileImg = ebiten.NewImage(tileSize-2, tileSize-2)
	}

	face := basicfont.Face7x13
	for y := 0; y < puzzle.Size; y++ {
		for x := 0; x < puzzle.Size; x++ {
			tile := g.board.Tile(x, y)
			if tile == 0 {
				continue
			}
			g.tileImg.Fill(color.RGBA{R: 70, G: 110, B: 180, A: 255})
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*tileSize+1), float64(y*tileSize+1))
			screen.DrawImage(g.tileImg, op)

			label := fmt.Sprintf("%d", tile)
			tx := x*tileSize + tileSize/2 - len(label)*7/2
			ty := y*tileSize + tileSize/2 + 6
			text.Draw(screen, label, face, tx, ty, color.White)
		}
	}

	secs := int(g.elapsed().Seconds())
	hud := fmt.Sprintf("Moves: %d   Time: %02d:%02d   [N] new game", g.board.Moves(), secs/60, secs%60)
	ebitenutil.DebugPrintAt(screen, hud, 8, boardSide+12)

	if g.won {
		msg := fmt.Sprintf("Solved in %d moves, %02d:%02d", g.board.Moves(), secs/60, secs%60)
		text.Draw(screen, msg, face, boardSide/2-len(msg)*7/2, boardSide/2, color.RGBA{R: 255, G: 220, B: 80, A: 255})
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return boardSide, boardSide + hudHeight
}

func main() {
	ebiten.SetWindowSize(boardSide, boardSide+hudHeight)
	ebiten.SetWindowTitle("Sliding Puzzle")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
