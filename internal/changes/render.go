package changes

import "fmt"

// RenderTree walks an aggregated, sorted tree and returns one ASCII-art line
// per entry. The synthetic root itself is not printed.
func RenderTree(root *Node) []string {
	return renderNodes(root.Children, "")
}

// renderNodes carries the indent prefix through the recursion: each ancestor
// contributes either a continuing vertical bar or blank space depending on
// whether it was the last of its siblings, so indentation cannot be derived
// from depth alone.
func renderNodes(nodes []*Node, indent string) []string {
	var lines []string
	for i, node := range nodes {
		connector := "├── "
		childIndent := indent + "│   "
		if i == len(nodes)-1 {
			connector = "└── "
			childIndent = indent + "    "
		}

		if node.IsFile() {
			change := node.Change
			if change.Status == StatusRenamed {
				// Renames hide the +/- counts even though they were computed
				// (the counts still drive the sort order).
				lines = append(lines, fmt.Sprintf(
					"%s%s`%s` -> `%s` (Renamed)",
					indent, connector, node.Name, change.OldPath,
				))
			} else {
				lines = append(lines, fmt.Sprintf(
					"%s%s`%s` (%s, +%d, -%d)",
					indent, connector, node.Name, change.Status, change.Additions, change.Deletions,
				))
			}
			continue
		}

		// Directories always carry the fixed "Modified" label.
		lines = append(lines, fmt.Sprintf(
			"%s%s%s/ (Modified, +%d, -%d)",
			indent, connector, node.Name, node.Additions, node.Deletions,
		))
		lines = append(lines, renderNodes(node.Children, childIndent)...)
	}
	return lines
}
