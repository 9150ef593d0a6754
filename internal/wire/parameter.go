package wire

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/quic-go/quic-go/quicvarint"
)

// Setup parameter keys
const (
	PathParameterKey           uint64 = 0x01
	MaxSubscribeIDParameterKey uint64 = 0x02
)

// Version specific parameter keys
const (
	AuthorizationParameterKey    uint64 = 0x02
	DeliveryTimeoutParameterKey  uint64 = 0x03
	MaxCacheDurationParameterKey uint64 = 0x04
)

// Parameter is a single key/value pair. Values are opaque bytes on the wire;
// integer valued parameters carry a varint inside the value.
type Parameter struct {
	Key   uint64
	Value []byte
}

func VarintParameter(key, value uint64) Parameter {
	return Parameter{
		Key:   key,
		Value: quicvarint.Append(nil, value),
	}
}

func StringParameter(key uint64, value string) Parameter {
	return Parameter{
		Key:   key,
		Value: []byte(value),
	}
}

func (p Parameter) String() string {
	return fmt.Sprintf("{key: %v, value: %x}", p.Key, p.Value)
}

func (p Parameter) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("key", p.Key),
		slog.Int("length", len(p.Value)),
	)
}

func (p Parameter) append(buf []byte) []byte {
	buf = quicvarint.Append(buf, p.Key)
	return AppendVarIntBytes(buf, p.Value)
}

// Parameters keeps the wire order. Duplicate keys are not rejected at this
// layer.
type Parameters []Parameter

// Varint returns the integer value of the first parameter with key.
func (pp Parameters) Varint(key uint64) (uint64, bool, error) {
	for _, p := range pp {
		if p.Key != key {
			continue
		}
		v, n, err := DecodeVarint(p.Value, 0)
		if err != nil {
			return 0, true, err
		}
		if n != len(p.Value) {
			return 0, true, malformed("parameter %v: trailing bytes after varint", key)
		}
		return v, true, nil
	}
	return 0, false, nil
}

// String returns the value of the first parameter with key as a string.
func (pp Parameters) String(key uint64) (string, bool) {
	for _, p := range pp {
		if p.Key == key {
			return string(p.Value), true
		}
	}
	return "", false
}

func (pp Parameters) Format() string {
	parts := make([]string, 0, len(pp))
	for _, p := range pp {
		parts = append(parts, p.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (pp Parameters) append(buf []byte) []byte {
	buf = quicvarint.Append(buf, uint64(len(pp)))
	for _, p := range pp {
		buf = p.append(buf)
	}
	return buf
}

func (pp *Parameters) parse(r messageReader) error {
	num, err := readVarint(r)
	if err != nil {
		return err
	}
	*pp = Parameters{}
	for i := uint64(0); i < num; i++ {
		key, err := readVarint(r)
		if err != nil {
			return err
		}
		value, err := readVarIntBytes(r)
		if err != nil {
			return err
		}
		*pp = append(*pp, Parameter{
			Key:   key,
			Value: value,
		})
	}
	return nil
}
