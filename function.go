package decir

import (
	"github.com/benbjohnson/immutable"

	"github.com/opforge/decir/graph"
)

// Block is a straight-line run of statements lifted at a given
// address. The last statement is the block's terminator.
type Block struct {
	Addr  uint64
	Stmts []Stmt
}

// Succs returns the addresses control may transfer to after the block,
// in branch order.
func (b *Block) Succs() []uint64 {
	if len(b.Stmts) == 0 {
		return nil
	}
	switch t := b.Stmts[len(b.Stmts)-1].(type) {
	case *GotoStmt:
		return []uint64{t.Target}
	case *IfStmt:
		if t.Then == t.Else {
			return []uint64{t.Then}
		}
		return []uint64{t.Then, t.Else}
	}
	return nil
}

// Function is a lifted function: basic blocks keyed by entry address.
type Function struct {
	Name  string
	Entry uint64

	blocks *immutable.SortedMap
}

// NewFunction returns an empty function entered at entry.
func NewFunction(name string, entry uint64) *Function {
	return &Function{
		Name:   name,
		Entry:  entry,
		blocks: immutable.NewSortedMap(&uint64Comparer{}),
	}
}

// AddBlock adds or replaces the block at b.Addr.
func (f *Function) AddBlock(b *Block) {
	f.blocks = f.blocks.Set(b.Addr, b)
}

// Block returns the block at addr, or nil.
func (f *Function) Block(addr uint64) *Block {
	v, ok := f.blocks.Get(addr)
	if !ok {
		return nil
	}
	return v.(*Block)
}

// Blocks returns the function's blocks in address order.
func (f *Function) Blocks() []*Block {
	a := make([]*Block, 0, f.blocks.Len())
	for itr := f.blocks.Iterator(); !itr.Done(); {
		_, v := itr.Next()
		a = append(a, v.(*Block))
	}
	return a
}

// CFG builds the function's control-flow graph: one node per block,
// keyed by block address, rooted at the entry block. Successor
// addresses with no lifted block are skipped.
func (f *Function) CFG() *graph.Directed {
	assert(f.Block(f.Entry) != nil, "cfg: no block at entry address %#x", f.Entry)

	g := graph.NewDirected()
	blocks := f.Blocks()
	for _, b := range blocks {
		g.AddNode(graph.Key(b.Addr))
	}
	for _, b := range blocks {
		for _, s := range b.Succs() {
			if f.Block(s) == nil {
				continue
			}
			g.AddEdge(graph.Key(b.Addr), graph.Key(s))
		}
	}
	g.SetRoot(graph.Key(f.Entry))
	return g
}

// ReduceFunc simplifies every statement of every block in f.
func ReduceFunc(f *Function) {
	for _, b := range f.Blocks() {
		for _, s := range b.Stmts {
			ReduceStmt(s)
		}
	}
}

// uint64Comparer compares two 64-bit unsigned integers. Implements immutable.Comparer.
type uint64Comparer struct{}

// Compare returns -1 if a is less than b, 0 if equal, and 1 if greater.
func (c *uint64Comparer) Compare(a, b interface{}) int {
	if i, j := a.(uint64), b.(uint64); i < j {
		return -1
	} else if i > j {
		return 1
	}
	return 0
}
