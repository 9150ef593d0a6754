package wire

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeVarint(t *testing.T) {
	cases := []struct {
		value  uint64
		expect []byte
		err    error
	}{
		{value: 0, expect: []byte{0x00}},
		{value: 63, expect: []byte{0x3f}},
		{value: 64, expect: []byte{0x40, 0x40}},
		{value: 16383, expect: []byte{0x7f, 0xff}},
		{value: 16384, expect: []byte{0x80, 0x00, 0x40, 0x00}},
		{value: 1073741823, expect: []byte{0xbf, 0xff, 0xff, 0xff}},
		{value: 1073741824, expect: []byte{0xc0, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00}},
		{value: MaxVarint, expect: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{value: MaxVarint + 1, expect: nil, err: ErrOutOfRange},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%v", i), func(t *testing.T) {
			res, err := EncodeVarint(tc.value)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, res)

			v, n, err := DecodeVarint(res, 0)
			assert.NoError(t, err)
			assert.Equal(t, tc.value, v)
			assert.Equal(t, len(res), n)
		})
	}
}

func TestAppendVarint(t *testing.T) {
	buf, err := AppendVarint([]byte{0x0a, 0x0b}, 64)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0x0b, 0x40, 0x40}, buf)

	buf, err = AppendVarint([]byte{0x0a}, MaxVarint+1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, []byte{0x0a}, buf)
}

func TestDecodeVarint(t *testing.T) {
	cases := []struct {
		data   []byte
		offset int
		expect uint64
		n      int
		err    error
	}{
		{data: []byte{0x25}, expect: 37, n: 1},
		{data: []byte{0x40, 0x25}, expect: 37, n: 2},
		{data: []byte{0x80, 0x00, 0x00, 0x25}, expect: 37, n: 4},
		{data: []byte{0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x25}, expect: 37, n: 8},
		{data: []byte{0xaa, 0x25, 0xbb}, offset: 1, expect: 37, n: 2},
		{data: nil, err: ErrTruncated},
		{data: []byte{}, err: ErrTruncated},
		{data: []byte{0x40}, err: ErrTruncated},
		{data: []byte{0x80, 0x00, 0x00}, err: ErrTruncated},
		{data: []byte{0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, err: ErrTruncated},
		{data: []byte{0x01}, offset: 2, err: ErrTruncated},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%v", i), func(t *testing.T) {
			v, n, err := DecodeVarint(tc.data, tc.offset)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, v)
			assert.Equal(t, tc.n, n)
		})
	}
}

func TestAppendVarIntBytes(t *testing.T) {
	cases := []struct {
		buf    []byte
		in     string
		expect []byte
	}{
		{
			buf:    nil,
			in:     "",
			expect: []byte{0x00},
		},
		{
			buf:    []byte{0x01, 0x02, 0x03},
			in:     "",
			expect: []byte{0x01, 0x02, 0x03, 0x00},
		},
		{
			buf:    []byte{},
			in:     "hello world",
			expect: append([]byte{0x0b}, []byte("hello world")...),
		},
		{
			buf:    []byte{0x01, 0x02, 0x03},
			in:     "hello world",
			expect: append([]byte{0x01, 0x02, 0x03, 0x0b}, []byte("hello world")...),
		},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%v", i), func(t *testing.T) {
			res := AppendVarIntBytes(tc.buf, []byte(tc.in))
			assert.Equal(t, tc.expect, res)
			assert.Equal(t, len(res)-len(tc.buf), varIntBytesLen([]byte(tc.in)))
		})
	}
}

func TestDecodeVarIntBytes(t *testing.T) {
	cases := []struct {
		data   []byte
		offset int
		expect []byte
		err    error
		n      int
	}{
		{
			data: nil,
			err:  ErrTruncated,
		},
		{
			data:   []byte{0x00},
			expect: []byte{},
			n:      1,
		},
		{
			data:   append([]byte{0x01}, "A"...),
			expect: []byte("A"),
			n:      2,
		},
		{
			data: append([]byte{0x04}, "ABC"...),
			err:  ErrTruncated,
		},
		{
			data:   append([]byte{0x02}, "ABC"...),
			expect: []byte("AB"),
			n:      3,
		},
		{
			data:   append([]byte{0xff, 0x02}, "ABC"...),
			offset: 1,
			expect: []byte("AB"),
			n:      4,
		},
		{
			data: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 'A'},
			err:  ErrTruncated,
		},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%v", i), func(t *testing.T) {
			res, n, err := DecodeVarIntBytes(tc.data, tc.offset)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, res)
			assert.Equal(t, tc.n, n)
		})
	}
}
