package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vkarpenko/snaketerm/internal/core"
	"github.com/vkarpenko/snaketerm/internal/game"
)

// Grid placement inside the terminal: one border column on each side, two
// rows of chrome above (border/title and score) and two below (overlay row
// and border). Matches the chrome margins in the gameplay config.
const (
	gridOffsetRow = 2
	gridOffsetCol = 1
)

const controlsHint = "Controls: Arrows/WASD to move, 'q' to quit"

// Draw renders a game snapshot into the screen buffer: border, title,
// score row, the snake and food, and the end-of-run overlay. It only reads
// the snapshot.
func Draw(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	dst.DrawBox(0, 0, w, h, core.ColorWhite)
	dst.DrawTextCentered(0, " S N A K E ", core.ColorBrightYellow)
	dst.DrawText(2, 1, fmt.Sprintf("Score: %d", snap.Score), core.ColorYellow)
	if len(controlsHint) < w-16 {
		dst.DrawText(w-len(controlsHint)-2, 1, controlsHint, core.ColorGray)
	}

	for i, seg := range snap.Snake {
		x := gridOffsetCol + seg.Col
		y := gridOffsetRow + seg.Row
		if i == 0 {
			dst.SetColored(x, y, '@', core.ColorBrightGreen)
		} else {
			dst.SetColored(x, y, '#', core.ColorGreen)
		}
	}

	dst.SetColored(gridOffsetCol+snap.Food.Col, gridOffsetRow+snap.Food.Row, '*', core.ColorBrightRed)

	if snap.Status == game.StatusEnded {
		msg := "GAME OVER! Press 'r' to restart or 'q' to quit"
		if snap.Won {
			msg = "YOU WIN! Press 'r' to play again or 'q' to quit"
		}
		dst.DrawTextCentered(h-2, msg, core.ColorBrightRed)
	}
}

// colorStyles maps core colors to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a screen buffer to a styled string. Adjacent cells
// with the same color are grouped into one styled run to keep the ANSI
// output small.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			runColor := s.CellAt(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.CellAt(x, y)
				if cell.Color != runColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[runColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
