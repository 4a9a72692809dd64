package section

import (
	"github.com/dgallion1/chunklink/internal/document"
)

// RootTitle is the synthetic section covering every unit outside any heading,
// so no downstream stage has a null-hierarchy case.
const RootTitle = "Document"

// maxTitleRunes clips heading titles used as section labels.
const maxTitleRunes = 50

// Node is one section in the heading tree. Parent and Children are arena
// indices into the owning Tree, never live object references.
type Node struct {
	Title    string
	Level    int
	Parent   int // -1 at the root
	Children []int
}

// Tree is an arena of section nodes. Index 0 is always the synthetic root.
// The tree lives for one document run and is discarded after linkage.
type Tree struct {
	Nodes []Node
}

func newTree() *Tree {
	return &Tree{Nodes: []Node{{Title: RootTitle, Level: 0, Parent: -1}}}
}

func (t *Tree) add(parent int, title string, level int) int {
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{Title: title, Level: level, Parent: parent})
	t.Nodes[parent].Children = append(t.Nodes[parent].Children, idx)
	return idx
}

// Path returns the titles from the root to node idx inclusive.
func (t *Tree) Path(idx int) []string {
	var rev []string
	for i := idx; i >= 0; i = t.Nodes[i].Parent {
		rev = append(rev, t.Nodes[i].Title)
	}
	out := make([]string, len(rev))
	for i, title := range rev {
		out[len(rev)-1-i] = title
	}
	return out
}

// Annotation records a unit's position in the section hierarchy. Units stay
// immutable; annotations live in a side table parallel to the unit stream.
type Annotation struct {
	Section       int // arena index of the nearest enclosing section
	ParentSection string
	Path          []string // titles root to parent, inclusive
}

// Annotations is the side table produced by one Build pass.
type Annotations struct {
	tree   *Tree
	byPos  []Annotation
	byUnit map[string]int
}

// At returns the annotation of the unit at stream position i.
func (a Annotations) At(i int) Annotation {
	return a.byPos[i]
}

// ForUnit looks an annotation up by unit id.
func (a Annotations) ForUnit(id string) (Annotation, bool) {
	pos, ok := a.byUnit[id]
	if !ok {
		return Annotation{}, false
	}
	return a.byPos[pos], true
}

// Len returns the number of annotated units.
func (a Annotations) Len() int {
	return len(a.byPos)
}

// Tree exposes the arena built during the pass.
func (a Annotations) Tree() *Tree {
	return a.tree
}

// Build walks the unit stream once, maintaining a value-type stack of open
// sections, and returns the side table annotating every unit with its place
// in the hierarchy. A heading is annotated with the section it opens; every
// other unit with the section currently on top of the stack. A document with
// no headings puts everything under the synthetic root.
func Build(units []document.Unit) Annotations {
	tree := newTree()
	ann := Annotations{
		tree:   tree,
		byPos:  make([]Annotation, len(units)),
		byUnit: make(map[string]int, len(units)),
	}

	stack := []int{0}

	for i, u := range units {
		if u.Type == document.Heading && u.HeadingLevel >= 1 {
			level := u.HeadingLevel
			// A level deeper than the open depth plus two invents no
			// intermediate sections: it nests one below the current top.
			if depth := len(stack) - 1; level > depth+2 {
				level = depth + 1
			}
			for len(stack) > 1 && tree.Nodes[stack[len(stack)-1]].Level >= level {
				stack = stack[:len(stack)-1]
			}
			idx := tree.add(stack[len(stack)-1], clipTitle(u.Text), level)
			stack = append(stack, idx)
		}

		top := stack[len(stack)-1]
		ann.byPos[i] = Annotation{
			Section:       top,
			ParentSection: tree.Nodes[top].Title,
			Path:          tree.Path(top),
		}
		ann.byUnit[u.ID] = i
	}
	return ann
}

func clipTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= maxTitleRunes {
		return title
	}
	return string(runes[:maxTitleRunes])
}
