package types

import (
	"encoding/json"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestHexBytes(t *testing.T) {
	c := qt.New(t)

	c.Run("String", func(c *qt.C) {
		testCases := []struct {
			name string
			in   HexBytes
			want string
		}{
			{name: "nil slice", in: nil, want: "0x"},
			{name: "empty", in: HexBytes{}, want: "0x"},
			{name: "non-empty", in: HexBytes{0x00, 0xAB, 0xCD}, want: "0x00abcd"},
		}

		for _, tc := range testCases {
			tc := tc
			c.Run(tc.name, func(c *qt.C) {
				c.Assert((&tc.in).String(), qt.Equals, tc.want)
			})
		}
	})

	c.Run("JSON roundtrip", func(c *qt.C) {
		in := HexBytes{0xde, 0xad, 0xbe, 0xef}
		enc, err := json.Marshal(in)
		c.Assert(err, qt.IsNil)
		c.Assert(string(enc), qt.Equals, `"0xdeadbeef"`)

		var out HexBytes
		c.Assert(json.Unmarshal(enc, &out), qt.IsNil)
		c.Assert(out.Equal(in), qt.IsTrue)
	})

	c.Run("unmarshal without prefix", func(c *qt.C) {
		var out HexBytes
		c.Assert(json.Unmarshal([]byte(`"deadbeef"`), &out), qt.IsNil)
		c.Assert(out.Equal(HexBytes{0xde, 0xad, 0xbe, 0xef}), qt.IsTrue)
	})

	c.Run("unmarshal invalid", func(c *qt.C) {
		var out HexBytes
		c.Assert(json.Unmarshal([]byte(`"0xzz"`), &out), qt.IsNotNil)
	})

	c.Run("FromString", func(c *qt.C) {
		var out HexBytes
		c.Assert(out.FromString("0xdeadbeef"), qt.IsNil)
		c.Assert(out.Equal(HexBytes{0xde, 0xad, 0xbe, 0xef}), qt.IsTrue)
	})
}
