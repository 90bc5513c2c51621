package main

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/espresso-lang/espresso/ast"
	"github.com/espresso-lang/espresso/parser"
	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Print the syntax tree of a script",
	Long: `Print the syntax tree of a script, one top level statement per line.

Output formats:
  dump    constructor notation, e.g. BinaryExpression(+, Literal(1), Literal(2))
  string  source code regenerated from the tree
  json    nested objects with a type, an optional value and children`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := getEspressoCode(cmd, args)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("output")
		return printAST(cmd.OutOrStdout(), src, format)
	},
}

func init() {
	addInputFlags(astCmd)
	astCmd.Flags().StringP("output", "o", "dump", "Output format: dump, string or json")
	astCmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))
}

func printAST(w io.Writer, src source, format string) error {
	script, err := parser.Parse(src.code, parserOptions(src)...)
	if err != nil {
		return err
	}
	switch strings.ToLower(format) {
	case "", "dump":
		for _, stmt := range script.Items {
			fmt.Fprintln(w, ast.Dump(stmt))
		}
	case "string":
		fmt.Fprint(w, script.String())
	case "json":
		output, err := getOutputJSON(nodeToJSON(script))
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(output))
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
	return nil
}

// ASTNode represents a node in the JSON AST output
type ASTNode struct {
	Type     string      `json:"type"`
	Value    interface{} `json:"value,omitempty"`
	Line     int         `json:"line"`
	Column   int         `json:"column"`
	Children []*ASTNode  `json:"children,omitempty"`
}

func nodeToJSON(node ast.Node) *ASTNode {
	pos := node.Pos()
	result := &ASTNode{
		Type:   reflect.TypeOf(node).Elem().Name(),
		Line:   pos.LineNumber(),
		Column: pos.ColumnNumber(),
	}

	switch n := node.(type) {
	case *ast.Literal:
		result.Value = n.Value
	case *ast.Identifier:
		result.Value = n.Name
	case *ast.UnaryExpression:
		result.Value = n.Op
	case *ast.BinaryExpression:
		result.Value = n.Op
	case *ast.CallExpression:
		result.Value = n.Open
	case *ast.MethodCallExpression:
		result.Value = n.Open
	case *ast.CallAssignExpression:
		result.Value = n.Open
	case *ast.FunctionExpression:
		if n.Name != nil {
			result.Value = n.Name.Name
		}
	case *ast.VariableDeclaration:
		result.Value = n.Kind
	}

	for _, child := range children(node) {
		result.Children = append(result.Children, nodeToJSON(child))
	}
	return result
}

// childCollector records the nodes directly below the node being walked.
type childCollector struct {
	root  ast.Node
	nodes []ast.Node
}

func (c *childCollector) Visit(node ast.Node) ast.Visitor {
	if node == c.root {
		return c
	}
	c.nodes = append(c.nodes, node)
	return nil
}

func children(node ast.Node) []ast.Node {
	c := &childCollector{root: node}
	ast.Walk(c, node)
	return c.nodes
}
