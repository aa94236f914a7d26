package schema

import "strings"

// CategoryNode is one node of the category forest. Leaves carry no children
// slice at all so the JSON shape distinguishes "leaf" from "empty branch".
type CategoryNode struct {
	Name     string          `json:"name"`
	Children []*CategoryNode `json:"children,omitempty"`
}

// BuildCategoryTree rebuilds the forest wholesale from a flat list of
// "/"-joined paths. Node identity is purely name+position; there is no
// persistent identity across reads.
func BuildCategoryTree(paths []string) []*CategoryNode {
	forest := []*CategoryNode{}

	for _, path := range paths {
		segments := splitPath(path)
		if len(segments) == 0 {
			continue
		}

		level := &forest
		for i, name := range segments {
			node := findNode(*level, name)
			if node == nil {
				node = &CategoryNode{Name: name}
				*level = append(*level, node)
			}
			// Only non-terminal segments get a children slice; a leaf and
			// an internal node with the same name at different paths never
			// conflict.
			if i < len(segments)-1 {
				if node.Children == nil {
					node.Children = []*CategoryNode{}
				}
				level = &node.Children
			}
		}
	}

	return forest
}

// TreePaths walks the forest back into the flat path list, one entry per
// leaf. BuildCategoryTree followed by TreePaths round-trips well-formed
// input.
func TreePaths(forest []*CategoryNode) []string {
	paths := []string{}
	var walk func(node *CategoryNode, prefix []string)
	walk = func(node *CategoryNode, prefix []string) {
		current := append(append([]string{}, prefix...), node.Name)
		if len(node.Children) == 0 {
			paths = append(paths, strings.Join(current, "/"))
			return
		}
		for _, child := range node.Children {
			walk(child, current)
		}
	}
	for _, root := range forest {
		walk(root, nil)
	}
	return paths
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s = strings.TrimSpace(s); s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func findNode(level []*CategoryNode, name string) *CategoryNode {
	for _, node := range level {
		if node.Name == name {
			return node
		}
	}
	return nil
}
