package ast

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
// Holes in a Group are skipped.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Literal, *Identifier, *ThisExpression:
		// No children
	case *Group:
		walkList(v, n.Items)
	case *UnaryExpression:
		Walk(v, n.X)
	case *BinaryExpression:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *AccessExpression:
		Walk(v, n.X)
		Walk(v, n.Property)
	case *CallExpression:
		Walk(v, n.Callee)
		walkList(v, n.Args)
	case *MethodCallExpression:
		Walk(v, n.Object)
		Walk(v, n.Method)
		walkList(v, n.Args)
	case *IdentAssignExpression:
		Walk(v, n.Target)
		Walk(v, n.Value)
	case *AccessAssignExpression:
		Walk(v, n.X)
		Walk(v, n.Property)
		Walk(v, n.Value)
	case *CallAssignExpression:
		Walk(v, n.Callee)
		walkList(v, n.Args)
		Walk(v, n.Value)
	case *ArrayLiteral:
		walkList(v, n.Items)
	case *ObjectLiteral:
		for _, entry := range n.Entries {
			Walk(v, entry)
		}
	case *ObjectEntry:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *FunctionExpression:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		for _, param := range n.Params {
			Walk(v, param)
		}
		Walk(v, n.Body)
	case *FunctionParameter:
		Walk(v, n.Name)
		if n.Default != nil {
			Walk(v, n.Default)
		}
	case *VariableDeclaration:
		for _, b := range n.Bindings {
			Walk(v, b)
		}
	case *VariableBinding:
		Walk(v, n.Name)
		if n.Init != nil {
			Walk(v, n.Init)
		}
	case *IfChain:
		for _, clause := range n.Clauses {
			Walk(v, clause)
		}
		if n.Else != nil {
			Walk(v, n.Else)
		}
	case *IfClause:
		Walk(v, n.Condition)
		Walk(v, n.Body)
	case *ElseClause:
		Walk(v, n.Body)
	case *WhileExpression:
		Walk(v, n.Condition)
		Walk(v, n.Body)
	case *ReturnExpression:
		Walk(v, n.Value)
	case *FailExpression:
		Walk(v, n.Value)
	case *NewExpression:
		Walk(v, n.Prototype)
		walkList(v, n.Args)
	}
}

func walkList(v Visitor, list []Expr) {
	for _, x := range list {
		if x != nil {
			Walk(v, x)
		}
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}
