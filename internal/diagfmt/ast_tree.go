package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"wright/internal/ast"
)

type treeNode struct {
	label    string
	children []*treeNode
}

type treeBlock struct {
	lines []string
	width int
	root  int // колонка, над которой висит узел
}

const treeSpacing = 3

func buildTreeNode(o ASTNodeOutput) *treeNode {
	node := &treeNode{label: o.Type + formatFields(o.Fields)}
	for _, c := range o.Children {
		node.children = append(node.children, buildTreeNode(c))
	}
	return node
}

// FormatASTTree draws the tree top-down: each parent centered above its
// children and joined to them with / | \ connectors.
func FormatASTTree(w io.Writer, n ast.Node) error {
	block := renderTree(buildTreeNode(BuildASTOutput(n)))
	for _, line := range block.lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// renderTree converts a treeNode into a treeBlock containing an ASCII-art representation.
func renderTree(node *treeNode) treeBlock {
	labelWidth := runewidth.StringWidth(node.label)
	if len(node.children) == 0 {
		return treeBlock{lines: []string{node.label}, width: labelWidth, root: labelWidth / 2}
	}

	blocks := make([]treeBlock, len(node.children))
	height := 0
	for i, child := range node.children {
		blocks[i] = renderTree(child)
		height = max(height, len(blocks[i].lines))
	}

	// корни детей в координатах общей полосы детей
	positions := make([]int, len(blocks))
	childrenWidth := 0
	for i, b := range blocks {
		if i > 0 {
			childrenWidth += treeSpacing
		}
		positions[i] = childrenWidth + b.root
		childrenWidth += b.width
	}

	center := (positions[0] + positions[len(positions)-1]) / 2
	labelShift := max(0, center-labelWidth/2)
	childShift := max(0, labelWidth/2-center)
	rootPos := labelShift + labelWidth/2
	width := max(labelShift+labelWidth, childShift+childrenWidth)

	lines := make([]string, 0, 2+height)
	lines = append(lines, padRight(strings.Repeat(" ", labelShift)+node.label, width))

	connector := []byte(strings.Repeat(" ", width))
	connector[rootPos] = '|'
	for _, pos := range positions {
		pos += childShift
		switch {
		case pos < rootPos:
			connector[pos] = '/'
		case pos > rootPos:
			connector[pos] = '\\'
		default:
			connector[pos] = '|'
		}
	}
	lines = append(lines, string(connector))

	for row := range height {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", childShift))
		for i, b := range blocks {
			if i > 0 {
				sb.WriteString(strings.Repeat(" ", treeSpacing))
			}
			line := ""
			if row < len(b.lines) {
				line = b.lines[row]
			}
			sb.WriteString(padRight(line, b.width))
		}
		lines = append(lines, padRight(sb.String(), width))
	}

	return treeBlock{lines: lines, width: width, root: rootPos}
}
