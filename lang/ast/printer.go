package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump pretty-prints a Spanned AST tree to w, one node per line, indented by
// depth — a minimal textual dump in the same spirit as the teacher's
// Printer/Walk machinery, scaled down to this core's much smaller node set
// (no comments, no token.File positions to resolve, since Span is
// self-contained).
func Dump(w io.Writer, root AST) {
	dump(w, root, 0)
}

func dump(w io.Writer, n AST, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := n.(type) {
	case Symbol:
		fmt.Fprintf(w, "%ssymbol %s\n", indent, v.Name)
	case DataNode:
		fmt.Fprintf(w, "%sdata %s\n", indent, v.Value)
	case Block:
		fmt.Fprintf(w, "%sblock {%d}\n", indent, len(v.Forms))
		for _, f := range v.Forms {
			dump(w, f.Item, depth+1)
		}
	case Form:
		fmt.Fprintf(w, "%sform {%d}\n", indent, len(v.Branches))
		for _, b := range v.Branches {
			dump(w, b.Item, depth+1)
		}
	case Group:
		fmt.Fprintf(w, "%sgroup\n", indent)
		dump(w, v.Expression.Item, depth+1)
	case Composition:
		fmt.Fprintf(w, "%scomposition\n", indent)
		dump(w, v.Argument.Item, depth+1)
		dump(w, v.Function.Item, depth+1)
	case Assign:
		fmt.Fprintf(w, "%sassign\n", indent)
		dump(w, v.Expression.Item, depth+1)
	case LambdaExpr:
		fmt.Fprintf(w, "%slambda\n", indent)
		dump(w, v.Expression.Item, depth+1)
	case Label:
		fmt.Fprintf(w, "%slabel %s\n", indent, v.Kind)
		dump(w, v.Expression.Item, depth+1)
	case Tuple:
		fmt.Fprintf(w, "%stuple {%d}\n", indent, len(v.Items))
		for _, it := range v.Items {
			dump(w, it.Item, depth+1)
		}
	case SyntaxNode:
		fmt.Fprintf(w, "%ssyntax\n", indent)
		dump(w, v.Expression.Item, depth+1)
	case FFINode:
		fmt.Fprintf(w, "%sffi %s\n", indent, v.Name)
		dump(w, v.Expression.Item, depth+1)
	case CSTPatternNode:
		fmt.Fprintf(w, "%scst-pattern\n", indent)
	case ArgPatternNode:
		fmt.Fprintf(w, "%sarg-pattern\n", indent)
	default:
		fmt.Fprintf(w, "%s!unknown node %T!\n", indent, n)
	}
}
