package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"wright/internal/ast"
)

// ASTNodeOutput is the serialized form of a syntax tree node.
type ASTNodeOutput struct {
	Type     string          `json:"type" yaml:"type"`
	Span     string          `json:"span" yaml:"span"`
	Start    int             `json:"start" yaml:"start"`
	End      int             `json:"end" yaml:"end"`
	Fields   map[string]any  `json:"fields,omitempty" yaml:"fields,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty" yaml:"children,omitempty"`
}

// BuildASTOutput converts n and its descendants.
func BuildASTOutput(n ast.Node) ASTNodeOutput {
	f := n.Span()
	out := ASTNodeOutput{
		Type:   n.NodeKind(),
		Span:   formatSpan(f),
		Start:  f.Start,
		End:    f.End,
		Fields: nodeFields(n),
	}
	for _, c := range ast.Children(n) {
		out.Children = append(out.Children, BuildASTOutput(c))
	}
	return out
}

func nodeFields(n ast.Node) map[string]any {
	switch n := n.(type) {
	case *ast.Identifier:
		return map[string]any{"name": n.Name()}
	case *ast.Path:
		return map[string]any{"path": n.Canonical()}
	case *ast.AtomicTy:
		return map[string]any{"variant": n.Variant.String()}
	case *ast.NamedTy:
		return map[string]any{"generics": len(n.Generics)}
	case *ast.IntegerLiteral:
		return map[string]any{"value": n.Value.String()}
	case *ast.BooleanLiteral:
		return map[string]any{"value": n.Value}
	case *ast.StringLiteral:
		return map[string]any{"value": n.Value, "format": n.Format}
	case *ast.CharLiteral:
		return map[string]any{"value": string(n.Value)}
	case *ast.UnaryExpr:
		return map[string]any{"op": n.Op.String()}
	case *ast.BinaryExpr:
		return map[string]any{"op": n.Op.String()}
	case *ast.ImportDecl:
		return map[string]any{"vis": n.Vis.String(), "aliased": n.As != nil}
	case *ast.TypeAlias:
		return map[string]any{"vis": n.Vis.String(), "abstract": n.IsAbstract()}
	case *ast.ConstDecl:
		return map[string]any{"vis": n.Vis.String()}
	case *ast.File:
		if n.Source != nil {
			return map[string]any{"source": n.Source.Name().String()}
		}
	}
	return nil
}

func formatFields(fields map[string]any) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fields))
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		v := fields[k]
		if s, ok := v.(string); ok {
			v = fmt.Sprintf("%q", s)
		}
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return " " + strings.Join(parts, " ")
}

func nodeLabel(o ASTNodeOutput) string {
	return fmt.Sprintf("%s (span: %s)%s", o.Type, o.Span, formatFields(o.Fields))
}

// FormatASTPretty prints the tree with box-drawing branches, one node per line.
func FormatASTPretty(w io.Writer, n ast.Node) error {
	root := BuildASTOutput(n)
	if _, err := fmt.Fprintln(w, nodeLabel(root)); err != nil {
		return err
	}
	return formatChildrenPretty(w, root.Children, "")
}

func formatChildrenPretty(w io.Writer, children []ASTNodeOutput, prefix string) error {
	for i, c := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, nodeLabel(c)); err != nil {
			return err
		}
		if err := formatChildrenPretty(w, c.Children, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

func FormatASTJSON(w io.Writer, n ast.Node) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildASTOutput(n))
}

func FormatASTYAML(w io.Writer, n ast.Node) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(BuildASTOutput(n)); err != nil {
		return err
	}
	return encoder.Close()
}
