package replay

import (
	"strings"

	"github.com/rivo/uniseg"
)

// DefaultLabel prefixes every replayed state.
const DefaultLabel = "The shapes are now: "

const ellipsis = "…"

// FormatLine joins shapes after label as a comma-separated list.
func FormatLine(label string, shapes []string) string {
	return label + strings.Join(shapes, ", ")
}

// Truncate shortens line to at most width terminal cells, cutting on grapheme
// cluster boundaries and marking the cut with an ellipsis. width <= 0 disables it.
func Truncate(line string, width int) string {
	if width <= 0 || uniseg.StringWidth(line) <= width {
		return line
	}
	limit := width - uniseg.StringWidth(ellipsis)
	if limit <= 0 {
		return ellipsis
	}

	var b strings.Builder
	used := 0
	state := -1
	rest := line
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > limit {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	b.WriteString(ellipsis)
	return b.String()
}
