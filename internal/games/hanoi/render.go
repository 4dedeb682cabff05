package hanoi

import (
	"fmt"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

const (
	hudRows  = 3 // Title, counters, mode line
	pegGap   = 2 // Columns between peg areas
	baseRune = '═'
)

// layout holds screen positions derived from the screen size and disk count.
type layout struct {
	unit    int // Columns added per disk size: 2 when wide, 1 when narrow
	colW    int
	topY    int // First row of the poles
	baseY   int
	footerY int
	centers [PegCount]int
	areas   [PegCount]core.Rect // Clickable area of each peg
}

// calculateLayout positions the three pegs for the current screen and disk
// count, falling back to narrow disks before declaring the screen too small.
func (g *Game) calculateLayout() {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	n := g.puzzle.DiskCount()
	poleH := n + 1

	var l layout
	total := 0
	for _, unit := range []int{2, 1} {
		l.unit = unit
		l.colW = unit*n + 3
		total = PegCount*l.colW + (PegCount-1)*pegGap
		if total <= w {
			break
		}
	}

	l.topY = hudRows + 1
	l.baseY = l.topY + poleH
	l.footerY = l.baseY + 1

	// Labels, cursor and message below the base, optional help line at the bottom
	needH := l.footerY + 3
	if g.cfg.Display.ShowHelp {
		needH++
	}
	g.tooSmall = total > w || needH > h

	startX := (w - total) / 2
	for i := range PegCount {
		x := startX + i*(l.colW+pegGap)
		l.centers[i] = x + l.colW/2
		l.areas[i] = core.NewRect(x, l.topY, l.colW, poleH+3)
	}
	g.layout = l
}

// PegAt returns the peg whose area contains the screen position, or NoPeg.
func (g *Game) PegAt(x, y int) int {
	if g.tooSmall {
		return NoPeg
	}
	for i, area := range g.layout.areas {
		if area.Contains(x, y) {
			return i
		}
	}
	return NoPeg
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	for peg := range PegCount {
		g.renderPeg(dst, peg)
	}
	g.renderFooter(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("%d disks need a larger terminal", g.puzzle.DiskCount()))
}

// renderHUD draws the title, counters and the mode line.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColored(0, "TOWER OF HANOI", core.ColorBrightYellow)

	counters := fmt.Sprintf("Disks: %d   Moves: %d   Optimal: %d",
		g.puzzle.DiskCount(), g.puzzle.MoveCount(), g.puzzle.OptimalMoveCount())
	dst.DrawTextCentered(1, counters)

	switch {
	case g.puzzle.AutoPlaying():
		dst.DrawTextCenteredColored(2, fmt.Sprintf("AUTO-SOLVE  %d moves left", g.player.Remaining()), core.ColorMagenta)
	case g.puzzle.IsSolved():
		dst.DrawTextCenteredColored(2, "SOLVED", core.ColorBrightGreen)
	}
}

// renderPeg draws one pole with its base, disks and label.
func (g *Game) renderPeg(dst *core.Screen, peg int) {
	l := g.layout
	cx := l.centers[peg]
	armed := g.puzzle.Selected() == peg

	poleColor := core.ColorGray
	if armed {
		poleColor = core.ColorBrightYellow
	}
	dst.DrawVLineColored(cx, l.topY, l.baseY-l.topY, g.cfg.Display.PegRune(), poleColor)
	dst.DrawHLineColored(l.areas[peg].X, l.baseY, l.colW, baseRune, core.ColorGray)

	diskRune := g.cfg.Display.DiskRune()
	for level, size := range g.puzzle.pegs[peg] {
		x, width := g.diskSpan(cx, size)
		color := core.DiskColor(size)
		if armed && level == len(g.puzzle.pegs[peg])-1 {
			color = core.ColorBrightWhite
		}
		dst.DrawHLineColored(x, l.baseY-1-level, width, diskRune, color)
	}

	label := fmt.Sprintf("%d", peg+1)
	labelColor := core.ColorWhite
	if armed {
		label = "[" + label + "]"
		labelColor = core.ColorBrightYellow
	}
	dst.DrawTextColored(cx-len(label)/2, l.footerY, label, labelColor)

	if peg == g.cursor && !g.controlsLocked {
		dst.SetColored(cx, l.footerY+1, '▲', core.ColorCyan)
	}
}

// diskSpan returns the leftmost column and width of a disk centred on cx.
func (g *Game) diskSpan(cx, size int) (int, int) {
	if g.layout.unit == 1 {
		return cx - size/2, size + 1
	}
	return cx - size, 2*size + 1
}

// renderFooter draws the status message and the key help.
func (g *Game) renderFooter(dst *core.Screen) {
	dst.DrawTextCenteredColored(g.layout.footerY+2, g.message, messageColor(g.messageKind))

	if !g.cfg.Display.ShowHelp {
		return
	}
	help := "1-3/←→+enter: move  a: auto-solve  r: restart  +/-: disks  q: quit"
	if g.controlsLocked {
		help = "a: stop auto-solve  q: quit"
	}
	dst.DrawTextCenteredColored(dst.Height()-1, help, core.ColorGray)
}

func messageColor(kind MessageKind) core.Color {
	switch kind {
	case MessageWin:
		return core.ColorBrightGreen
	case MessageError:
		return core.ColorBrightRed
	default:
		return core.ColorWhite
	}
}
