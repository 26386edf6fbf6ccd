package poslist

import (
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
)

// The CBOR form of a List is a plain array of its values in list order.
// Structure (slots, balance, rank) is never encoded; decoding rebuilds it.

func newEncMode() (cbor.EncMode, error) {
	return cbor.CoreDetEncOptions().EncMode()
}

func newDecMode() (cbor.DecMode, error) {
	return cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: math.MaxInt32,
	}.DecMode()
}

// MarshalCBOR encodes the values of the list, in order, as a CBOR array.
func (l *List[V]) MarshalCBOR() ([]byte, error) {
	em, err := newEncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(l.Values())
}

// UnmarshalCBOR replaces the contents of the list with the values of a CBOR
// array. The list is left unchanged if the array holds a repeated value.
func (l *List[V]) UnmarshalCBOR(data []byte) error {
	dm, err := newDecMode()
	if err != nil {
		return err
	}
	var values []V
	if err := dm.Unmarshal(data, &values); err != nil {
		return err
	}

	decoded := New[V](WithCapacity(len(values)))
	for i, v := range values {
		if !decoded.Insert(i, v) {
			return fmt.Errorf("%w: element %d of %d", ErrDuplicateValue, i, len(values))
		}
	}
	*l = *decoded
	return nil
}
