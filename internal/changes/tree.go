package changes

import (
	"slices"
	"strings"
)

// Node is one entry in the directory tree of changed paths. A node is either
// a file leaf (Change != nil, no children) or a directory (Change == nil)
// whose Additions/Deletions hold the recursive totals of its children.
type Node struct {
	Name string
	// Change is set iff this node is a file leaf.
	Change   *FileChange
	Children []*Node

	// Aggregated counts; only meaningful for directory nodes.
	Additions int
	Deletions int
}

func (n *Node) IsFile() bool {
	return n.Change != nil
}

// TotalChanges is the sort key for siblings: a file's own churn, or a
// directory's aggregated churn.
func (n *Node) TotalChanges() int {
	if n.Change != nil {
		return n.Change.TotalChanges()
	}
	return n.Additions + n.Deletions
}

func (n *Node) child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// BuildTree converts the flat change mapping into a directory tree rooted at
// a synthetic node (which is never rendered), computes each directory's
// aggregate counts bottom-up, and sorts every sibling list ascending by
// TotalChanges. The sort is stable, so entries with equal churn keep their
// insertion order; paths are inserted in lexicographic order to make the
// output deterministic. Ascending, so the largest changes render last.
func BuildTree(all map[string]*FileChange) *Node {
	root := &Node{}
	paths := make([]string, 0, len(all))
	for path := range all {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	for _, path := range paths {
		parts := strings.Split(path, "/")
		node := root
		for _, part := range parts[:len(parts)-1] {
			next := node.child(part)
			if next == nil {
				next = &Node{Name: part}
				node.Children = append(node.Children, next)
			}
			node = next
		}
		node.Children = append(node.Children, &Node{
			Name:   parts[len(parts)-1],
			Change: all[path],
		})
	}

	aggregate(root)
	sortTree(root)
	return root
}

// aggregate computes dir totals post-order: children first, then the sum of
// each direct child's contribution (a leaf's own counts, a subdirectory's
// already-aggregated totals).
func aggregate(n *Node) {
	if n.IsFile() {
		return
	}
	n.Additions = 0
	n.Deletions = 0
	for _, c := range n.Children {
		aggregate(c)
		if c.IsFile() {
			n.Additions += c.Change.Additions
			n.Deletions += c.Change.Deletions
		} else {
			n.Additions += c.Additions
			n.Deletions += c.Deletions
		}
	}
}

func sortTree(n *Node) {
	slices.SortStableFunc(n.Children, func(a, b *Node) int {
		return a.TotalChanges() - b.TotalChanges()
	})
	for _, c := range n.Children {
		if !c.IsFile() {
			sortTree(c)
		}
	}
}
