package poslist

import "errors"

// slot is an arena index.
type slot uint32

const (
	noSlot   = ^slot(0)
	headSlot = slot(0)
)

const (
	left  uint8 = 0
	right uint8 = 1
)

var (
	ErrIndexOutOfRange = errors.New("poslist: index out of range")
	ErrDuplicateValue  = errors.New("poslist: duplicate value")

	ErrCorruptLink    = errors.New("poslist: parent/child link mismatch")
	ErrCorruptRank    = errors.New("poslist: stored rank does not match subtree size")
	ErrCorruptBalance = errors.New("poslist: stored balance does not match subtree heights")
	ErrCorruptIndex   = errors.New("poslist: reverse index does not match the tree")
)

// balanceToward returns the balance factor that means "heavier on side dir".
func balanceToward(dir uint8) int8 {
	if dir == right {
		return 1
	}
	return -1
}
