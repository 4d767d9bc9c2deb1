package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3
)

// boardDims returns the drawn board size in characters for an n×n grid.
func boardDims(n int) (int, int) {
	return n*cellWidth + 1, n*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := boardDims(g.board.Size())
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d  Moves: %d", g.score, g.moves))

	var info string
	if g.mode == ModeCampaign {
		info = fmt.Sprintf("Level %d/%d  Target: %d", g.levelIndex+1, LevelCount(), g.engine.WinTile)
	} else {
		info = fmt.Sprintf("Max: %d", g.board.MaxTile())
	}
	dst.DrawText(core.Max(boardX, boardX+boardW-len(info)), 2, info)

	modeStr := "Campaign"
	if g.mode == ModeEndless {
		modeStr = "Endless"
	}
	dst.DrawTextColor(boardX, 2, modeStr, core.ColorGray)
}

// renderBoard draws the grid lines and the coloured tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	n := g.board.Size()
	dst.DrawGrid(boardX, boardY, n, n, cellWidth, cellHeight, core.ColorGray)

	for i, val := range g.board.Cells() {
		if val == 0 {
			continue
		}
		pos := g.board.PositionOf(i)
		cellX := boardX + pos.Col*cellWidth + 1
		cellY := boardY + pos.Row*cellHeight + 1

		valStr := strconv.Itoa(val)
		padLeft := core.Max((cellWidth-1-len(valStr))/2, 0)
		dst.DrawTextColor(cellX+padLeft, cellY, valStr, core.TileColor(val))
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	area := core.NewRect(boardX, boardY, boardW, boardH)

	switch {
	case g.paused:
		dst.DrawMessage(area, core.ColorCyan, "PAUSED", "Press P to resume")
	case g.levelCleared:
		head := fmt.Sprintf("Target %d reached!", g.engine.WinTile)
		if g.levelIndex >= LevelCount()-1 {
			dst.DrawMessage(area, core.ColorBrightGreen, head, "Final level complete!")
		} else {
			dst.DrawMessage(area, core.ColorBrightGreen, head, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}
	case g.completed:
		dst.DrawMessage(area, core.ColorBrightYellow, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")
	case g.gameOver:
		dst.DrawMessage(area, core.ColorBrightRed, "GAME OVER", fmt.Sprintf("Max tile: %d", g.board.MaxTile()), "Press R to restart")
	case g.showWin:
		dst.DrawMessage(area, core.ColorBrightYellow, fmt.Sprintf("You made %d!", g.engine.WinTile), "Keep going: any arrow key")
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD: Slide | P: Pause | R: Restart | Q: Quit"
}
