package boundary

import "github.com/rivo/uniseg"

// Graphemes splits s into user-perceived characters (grapheme
// clusters) in visual order. Editing positions are plain code-point
// indices; these helpers exist for display code that needs to place a
// cursor on screen without landing inside a cluster.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	g := uniseg.NewGraphemes(s)
	out := make([]string, 0, len(s))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// StringWidth returns the monospace display width of s in cells.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}
