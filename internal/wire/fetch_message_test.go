package wire

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchMessageAppend(t *testing.T) {
	cases := []struct {
		fm     FetchMessage
		buf    []byte
		expect []byte
	}{
		{
			fm: FetchMessage{
				SubscribeID:        1,
				SubscriberPriority: 2,
				GroupOrder:         GroupOrderAscending,
				FetchType:          FetchTypeStandalone,
				TrackNamespace:     Tuple{"ns"},
				TrackName:          []byte("t"),
				StartGroup:         3,
				StartObject:        4,
				EndGroup:           5,
				EndObject:          6,
			},
			buf:    []byte{},
			expect: []byte{0x01, 0x02, 0x01, 0x01, 0x01, 0x02, 'n', 's', 0x01, 't', 0x03, 0x04, 0x05, 0x06, 0x00},
		},
		{
			// joining fetches only carry the joining fields
			fm: FetchMessage{
				SubscribeID:          1,
				SubscriberPriority:   2,
				GroupOrder:           GroupOrderDescending,
				FetchType:            FetchTypeJoining,
				TrackNamespace:       Tuple{"ignored"},
				JoiningSubscribeID:   7,
				PrecedingGroupOffset: 8,
			},
			buf:    []byte{0x0a},
			expect: []byte{0x0a, 0x01, 0x02, 0x02, 0x02, 0x07, 0x08, 0x00},
		},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%v", i), func(t *testing.T) {
			res := tc.fm.Append(tc.buf)
			assert.Equal(t, tc.expect, res)
		})
	}
}

func TestParseFetchMessage(t *testing.T) {
	cases := []struct {
		data   []byte
		expect *FetchMessage
		err    error
	}{
		{
			data: []byte{0x01, 0x02, 0x02, 0x02, 0x07, 0x08, 0x00},
			expect: &FetchMessage{
				SubscribeID:          1,
				SubscriberPriority:   2,
				GroupOrder:           GroupOrderDescending,
				FetchType:            FetchTypeJoining,
				JoiningSubscribeID:   7,
				PrecedingGroupOffset: 8,
				Parameters:           Parameters{},
			},
		},
		{
			data: []byte{0x01, 0x02, 0x01, 0x03, 0x00},
			err:  errInvalidFetchType,
		},
		{
			data: []byte{0x01, 0x02, 0x01, 0x01, 0x01, 0x02, 'n', 's', 0x01, 't', 0x03, 0x04},
			err:  ErrTruncated,
		},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%v", i), func(t *testing.T) {
			res := &FetchMessage{}
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

func TestFetchOkMessage(t *testing.T) {
	m := &FetchOkMessage{
		SubscribeID:         1,
		GroupOrder:          GroupOrderAscending,
		EndOfTrack:          true,
		LargestGroup:        2,
		LargestObject:       3,
		SubscribeParameters: Parameters{},
	}
	buf := m.Append(nil)
	assert.Equal(t, []byte{0x01, 0x01, 0x01, 0x02, 0x03, 0x00}, buf)

	res := &FetchOkMessage{}
	assert.NoError(t, res.parse(bytes.NewReader(buf)))
	assert.Equal(t, m, res)

	res = &FetchOkMessage{}
	err := res.parse(bytes.NewReader([]byte{0x01, 0x01, 0x02, 0x02, 0x03, 0x00}))
	assert.ErrorIs(t, err, errInvalidEndOfTrack)
}
