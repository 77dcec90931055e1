package scenario

import (
	"fmt"
	"strings"
)

// RenderTable lays reference and progress side by side, one slot per
// row, for trace output. Shorter sequences leave their column blank.
func RenderTable(ref, prog []int) string {
	rows := len(ref)
	if len(prog) > rows {
		rows = len(prog)
	}

	var b strings.Builder
	b.WriteString("   Reference      Progress\n")
	for i := 0; i < rows; i++ {
		left := ""
		if i < len(ref) {
			left = fmt.Sprintf("%d", ref[i])
		}
		right := ""
		if i < len(prog) {
			right = fmt.Sprintf("%d", prog[i])
		}
		fmt.Fprintf(&b, "   %-12s   %s\n", left, right)
	}
	return b.String()
}
