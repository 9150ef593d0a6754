package wire

import (
	"encoding/json"
	"strings"

	"github.com/quic-go/quic-go/quicvarint"
)

// Tuple is a track namespace: an ordered list of byte string elements.
type Tuple []string

func (t Tuple) append(buf []byte) []byte {
	buf = quicvarint.Append(buf, uint64(len(t)))
	for _, t := range t {
		buf = quicvarint.Append(buf, uint64(len(t)))
		buf = append(buf, t...)
	}
	return buf
}

func (t Tuple) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(t))
}

func (t Tuple) String() string {
	return strings.Join(t, "/")
}

// HasPrefix reports whether prefix matches the leading elements of t.
func (t Tuple) HasPrefix(prefix Tuple) bool {
	if len(prefix) > len(t) {
		return false
	}
	for i, p := range prefix {
		if t[i] != p {
			return false
		}
	}
	return true
}

func (t *Tuple) parse(r messageReader) error {
	length, err := readVarint(r)
	if err != nil {
		return err
	}
	tuple := Tuple{}
	for i := uint64(0); i < length; i++ {
		element, err := readVarIntString(r)
		if err != nil {
			return err
		}
		tuple = append(tuple, element)
	}
	*t = tuple
	return nil
}
