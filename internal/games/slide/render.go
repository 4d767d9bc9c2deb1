package slide

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/grid"
)

const (
	cellWidth  = 6
	cellHeight = 2
	hudHeight  = 3
)

func boardDims(n int) (int, int) {
	return n*cellWidth + 1, n*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		y := g.screenH / 2
		dst.DrawTextCentered(y, "Window too small")
		dst.DrawTextCentered(y+1, "Please resize terminal")
		return
	}

	boardW, boardH := boardDims(g.size)
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)

	area := core.NewRect(boardX, boardY, boardW, boardH)
	switch {
	case g.paused:
		dst.DrawMessage(area, core.ColorCyan, "PAUSED", "Press P to resume")
	case g.solved:
		dst.DrawMessage(area, core.ColorBrightGreen, "SOLVED!", fmt.Sprintf("Moves: %d", g.moves), "Press R to restart")
	}
}

func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightCyan)

	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", g.moves))

	mode := "Arrows slide"
	if g.cursorMode {
		mode = "Cursor: Enter moves"
	}
	dst.DrawTextColor(boardX, 2, mode, core.ColorGray)

	if g.rejected > 0 {
		hint := "Can't move that"
		dst.DrawTextColor(core.Max(boardX, boardX+boardW-len(hint)), 2, hint, core.ColorBrightRed)
	}
}

// renderBoard draws tiles; tiles already on their goal cell are green.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	dst.DrawGrid(boardX, boardY, g.size, g.size, cellWidth, cellHeight, core.ColorGray)

	for i, val := range g.board.Cells() {
		pos := g.board.PositionOf(i)
		cellX := boardX + pos.Col*cellWidth + 1
		cellY := boardY + pos.Row*cellHeight + 1

		if g.cursorMode && i == g.cursor {
			dst.SetColor(cellX, cellY, '[', core.ColorBrightYellow)
			dst.SetColor(cellX+cellWidth-2, cellY, ']', core.ColorBrightYellow)
		}
		if val == grid.Empty {
			continue
		}

		color := core.ColorWhite
		if val == i+1 {
			color = core.ColorGreen
		}
		valStr := strconv.Itoa(val)
		padLeft := core.Max((cellWidth-1-len(valStr))/2, 0)
		dst.DrawTextColor(cellX+padLeft, cellY, valStr, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Slide | Tab: Cursor | Enter: Move | P: Pause | R: Restart | Q: Quit"
}
