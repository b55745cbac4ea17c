package unit

// A Node is one element of a unit's rendered output. Leaf nodes carry Text;
// definition nodes reference another Definition together with the props and
// children it should be mounted with.
type Node struct {
	Def      Definition
	Props    *Props
	Children []*Node
	Text     string

	// Hidden nodes are mounted but contribute no visible output. A
	// suspending boundary uses this to keep pending content alive while
	// its fallback is on screen.
	Hidden bool
}

// NewNode builds a definition node.
//
// props may be nil, and nil is preserved: downstream setups distinguish
// "no props supplied" from "empty props" when applying their defaults.
// Likewise a nil children slice stays nil.
func NewNode(def Definition, props *Props, children []*Node) *Node {
	return &Node{Def: def, Props: props, Children: children}
}

// TextNode builds a leaf node.
func TextNode(text string) *Node {
	return &Node{Text: text}
}

// Group wraps nodes under a parent with no definition of its own.
func Group(children ...*Node) *Node {
	return &Node{Children: children}
}
