package telemetry

import (
	"fmt"
	"io"
	"time"
)

// formatTimingTree writes the timing tree in a nested view:
//
//	tokenize expr.txt: 2ms
//	├─ read: 1ms
//	└─ scan: 0ms
func formatTimingTree(w io.Writer, root *timerNode) {
	_, _ = fmt.Fprintf(w, "%s: %s\n", root.name, formatDuration(root.end.Sub(root.start)))

	for i, child := range root.children {
		formatNode(w, child, "", i == len(root.children)-1)
	}
}

func formatNode(w io.Writer, node *timerNode, prefix string, isLast bool) {
	branch, extension := "├─ ", "│  "
	if isLast {
		branch, extension = "└─ ", "   "
	}

	_, _ = fmt.Fprintf(w, "%s%s%s: %s\n", prefix, branch, node.name, formatDuration(node.end.Sub(node.start)))

	childPrefix := prefix + extension
	for i, child := range node.children {
		formatNode(w, child, childPrefix, i == len(node.children)-1)
	}
}

// formatDuration shows milliseconds below a second, seconds above.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", float64(d)/float64(time.Second))
}
