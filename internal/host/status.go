// Package host holds what the window and terminal frontends share.
package host

import (
	"fmt"

	"github.com/plus3/welltris/well"
)

// StatusLines is the text a frontend shows beside the well: the score once a
// round has been played, then a prompt or the running line count.
func StatusLines(s *well.Session) []string {
	var lines []string

	if engine := s.Engine(); engine != nil {
		lines = append(lines, well.FormatPoints(engine.Score()))
	}

	switch s.Mode() {
	case well.ModeMenu:
		if history := s.History(); history.Rounds > 0 {
			lines = append(lines, fmt.Sprintf("Game over. Best: %d", history.BestScore))
		}
		lines = append(lines, "Press Enter to play")
	case well.ModePlaying:
		lines = append(lines, fmt.Sprintf("Lines: %d", s.Engine().State().Lines))
	}

	return lines
}
