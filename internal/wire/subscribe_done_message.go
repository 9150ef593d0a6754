package wire

import (
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

type SubscribeDoneMessage struct {
	SubscribeID   uint64
	StatusCode    uint64
	ReasonPhrase  string
	ContentExists bool
	FinalGroup    uint64
	FinalObject   uint64
}

func (m *SubscribeDoneMessage) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", "subscribe_done"),
		slog.Uint64("subscribe_id", m.SubscribeID),
		slog.Uint64("status_code", m.StatusCode),
		slog.String("reason", m.ReasonPhrase),
		slog.Bool("content_exists", m.ContentExists),
	}
	if m.ContentExists {
		attrs = append(attrs,
			slog.Uint64("final_group_id", m.FinalGroup),
			slog.Uint64("final_object_id", m.FinalObject),
		)
	}
	return slog.GroupValue(attrs...)
}

func (m SubscribeDoneMessage) Type() ControlMessageType {
	return MessageTypeSubscribeDone
}

func (m *SubscribeDoneMessage) Append(buf []byte) []byte {
	buf = quicvarint.Append(buf, m.SubscribeID)
	buf = quicvarint.Append(buf, m.StatusCode)
	buf = AppendVarIntBytes(buf, []byte(m.ReasonPhrase))
	buf = appendFlag(buf, m.ContentExists)
	if m.ContentExists {
		buf = quicvarint.Append(buf, m.FinalGroup)
		buf = quicvarint.Append(buf, m.FinalObject)
	}
	return buf
}

func (m *SubscribeDoneMessage) parse(r messageReader) (err error) {
	m.SubscribeID, err = readVarint(r)
	if err != nil {
		return
	}
	m.StatusCode, err = readVarint(r)
	if err != nil {
		return
	}
	m.ReasonPhrase, err = readVarIntString(r)
	if err != nil {
		return
	}
	m.ContentExists, err = parseFlag(r, errInvalidContentExists)
	if err != nil || !m.ContentExists {
		return
	}
	m.FinalGroup, err = readVarint(r)
	if err != nil {
		return
	}
	m.FinalObject, err = readVarint(r)
	return
}
