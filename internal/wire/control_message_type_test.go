package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewControlMessage(t *testing.T) {
	for _, mt := range ControlMessageTypes() {
		msg, err := newControlMessage(mt)
		assert.NoError(t, err)
		assert.Equal(t, mt, msg.Type())
		assert.NotContains(t, mt.String(), "Unknown")
	}

	_, err := newControlMessage(0x01)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Equal(t, "UnknownMessage(0x1)", ControlMessageType(0x01).String())
}
