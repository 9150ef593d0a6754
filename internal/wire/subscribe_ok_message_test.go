package wire

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscribeOkMessageAppend(t *testing.T) {
	cases := []struct {
		som    SubscribeOkMessage
		buf    []byte
		expect []byte
	}{
		{
			som:    SubscribeOkMessage{},
			buf:    []byte{},
			expect: []byte{0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			som: SubscribeOkMessage{
				SubscribeID:   17,
				Expires:       time.Second,
				GroupOrder:    GroupOrderDescending,
				ContentExists: true,
				LargestGroup:  1,
				LargestObject: 2,
			},
			buf:    []byte{0x0a, 0x0b},
			expect: []byte{0x0a, 0x0b, 0x11, 0x43, 0xe8, 0x02, 0x01, 0x01, 0x02, 0x00},
		},
		{
			// largest location is only written when content exists
			som: SubscribeOkMessage{
				SubscribeID:   17,
				ContentExists: false,
				LargestGroup:  1,
				LargestObject: 2,
			},
			buf:    []byte{},
			expect: []byte{0x11, 0x00, 0x00, 0x00, 0x00},
		},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%v", i), func(t *testing.T) {
			res := tc.som.Append(tc.buf)
			assert.Equal(t, tc.expect, res)
		})
	}
}

func TestParseSubscribeOkMessage(t *testing.T) {
	cases := []struct {
		data   []byte
		expect *SubscribeOkMessage
		err    error
	}{
		{
			data: nil,
			err:  ErrTruncated,
		},
		{
			data: []byte{0x01, 0x00, 0x01, 0x00, 0x00},
			expect: &SubscribeOkMessage{
				SubscribeID: 1,
				GroupOrder:  GroupOrderAscending,
				Parameters:  Parameters{},
			},
		},
		{
			data: []byte{0x11, 0x43, 0xe8, 0x02, 0x01, 0x01, 0x02, 0x00},
			expect: &SubscribeOkMessage{
				SubscribeID:   17,
				Expires:       time.Second,
				GroupOrder:    GroupOrderDescending,
				ContentExists: true,
				LargestGroup:  1,
				LargestObject: 2,
				Parameters:    Parameters{},
			},
		},
		{
			data: []byte{0x11, 0x00, 0x01, 0x01, 0x01},
			err:  ErrTruncated,
		},
		{
			data: []byte{0x11, 0x00, 0x01, 0x05, 0x00},
			err:  errInvalidContentExists,
		},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%v", i), func(t *testing.T) {
			res := &SubscribeOkMessage{}
			err := res.parse(bytes.NewReader(tc.data))
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, res)
		})
	}
}
