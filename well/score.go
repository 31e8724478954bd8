package well

import "github.com/dustin/go-humanize"

// FormatPoints renders a score the way hosts display it.
func FormatPoints(score uint32) string {
	return "Points: " + humanize.Comma(int64(score))
}
