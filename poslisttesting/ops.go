package poslisttesting

type OpKind int

const (
	OpInsert OpKind = iota
	OpRemove
)

// Op is one positional mutation.
type Op struct {
	Kind  OpKind
	Index int
}

// NextOp picks, with equal odds, an insert at any valid position or a remove
// at any valid position of a list holding n values. An empty list always
// gets an insert.
func (c *TestContext) NextOp(n int) Op {
	if n > 0 && c.Coin() {
		return Op{Kind: OpRemove, Index: c.Intn(n)}
	}
	return Op{Kind: OpInsert, Index: c.Intn(n + 1)}
}
