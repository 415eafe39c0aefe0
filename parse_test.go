package inet_test

import (
	"testing"

	inet "github.com/sagernet/sing-inet"

	"github.com/stretchr/testify/require"
)

func TestParseIPv4(t *testing.T) {
	t.Parallel()
	t.Run("dotted quad", func(t *testing.T) {
		for text, expected := range map[string][]uint16{
			"0.0.0.0":         {0, 0, 0, 0},
			"192.168.0.1":     {192, 168, 0, 1},
			"255.255.255.255": {255, 255, 255, 255},
			"14.323.643.66":   {14, 323, 643, 66},
			"300.1.2.3":       {300, 1, 2, 3},
			"010.1.1.1":       {10, 1, 1, 1},
		} {
			address, err := inet.ParseAddress(text)
			require.NoError(t, err, text)
			require.Equal(t, inet.AddressFamilyIPv4, address.Family(), text)
			require.Equal(t, expected, components(t, address), text)
		}
	})
	t.Run("single number", func(t *testing.T) {
		for text, expected := range map[string][]uint16{
			"0":          {0, 0, 0, 0},
			"3232235521": {192, 168, 0, 1},
			"4294967295": {255, 255, 255, 255},
		} {
			address, err := inet.ParseAddress(text)
			require.NoError(t, err, text)
			require.Equal(t, expected, components(t, address), text)
		}
	})
	t.Run("two parts", func(t *testing.T) {
		for text, expected := range map[string][]uint16{
			"192.11042817": {192, 168, 128, 1},
			"10.1":         {10, 0, 0, 1},
			"1.16777216":   {1, 0, 0, 0},
		} {
			address, err := inet.ParseAddress(text)
			require.NoError(t, err, text)
			require.Equal(t, expected, components(t, address), text)
		}
	})
	t.Run("three parts", func(t *testing.T) {
		for text, expected := range map[string][]uint16{
			"10.1.515":  {10, 1, 2, 3},
			"172.16.1":  {172, 16, 0, 1},
			"1.2.65535": {1, 2, 255, 255},
		} {
			address, err := inet.ParseAddress(text)
			require.NoError(t, err, text)
			require.Equal(t, expected, components(t, address), text)
		}
	})
	t.Run("invalid", func(t *testing.T) {
		for _, text := range []string{
			"",
			"...",
			"abc",
			"1.2.3.4.5",
			"1..2.3",
			"65536.1.1.1",
			"1.2.3.65536",
			"256.1",
			"256.1.2",
			"1.2.4294967296",
			"4294967296",
			"-1.2.3.4",
			"+1.2.3.4",
			" 1.2.3.4",
			"1.2.3.4 ",
		} {
			_, err := inet.ParseAddress(text)
			require.Error(t, err, text)
			var exception inet.InvalidAddressException
			require.ErrorAs(t, err, &exception, text)
			require.Equal(t, text, exception.Address)
		}
	})
}

func TestParseIPv6(t *testing.T) {
	t.Parallel()
	t.Run("full form", func(t *testing.T) {
		address, err := inet.ParseAddress("0053:0000:0000:0000:000f:0fcf:3400:005f")
		require.NoError(t, err)
		require.Equal(t, inet.AddressFamilyIPv6, address.Family())
		require.Equal(t, []uint16{0x53, 0, 0, 0, 0xf, 0xfcf, 0x3400, 0x5f}, components(t, address))
	})
	t.Run("shorthand", func(t *testing.T) {
		for text, expected := range map[string][]uint16{
			"::":              {0, 0, 0, 0, 0, 0, 0, 0},
			"::1":             {0, 0, 0, 0, 0, 0, 0, 1},
			"1::":             {1, 0, 0, 0, 0, 0, 0, 0},
			"1::2":            {1, 0, 0, 0, 0, 0, 0, 2},
			"a:b::c:d":        {0xa, 0xb, 0, 0, 0, 0, 0xc, 0xd},
			"fe80::1":         {0xfe80, 0, 0, 0, 0, 0, 0, 1},
			"1:2:3:4:5:6:7:8": {1, 2, 3, 4, 5, 6, 7, 8},
			"ABCD::":          {0xabcd, 0, 0, 0, 0, 0, 0, 0},
		} {
			address, err := inet.ParseAddress(text)
			require.NoError(t, err, text)
			require.Equal(t, inet.AddressFamilyIPv6, address.Family(), text)
			require.Equal(t, expected, components(t, address), text)
		}
	})
	t.Run("permissive forms", func(t *testing.T) {
		// the scan records a marker for the first empty segment and
		// tolerates repeats of it, so these are accepted as written
		for text, canonical := range map[string]string{
			":1":     "::1",
			"1:::2":  "1::2",
			":1:2:3": "::1:2:3",
		} {
			address, err := inet.ParseAddress(text)
			require.NoError(t, err, text)
			require.Equal(t, canonical, address.String(), text)
		}
	})
	t.Run("invalid", func(t *testing.T) {
		for _, text := range []string{
			"1:2:3:",
			"1:",
			"1::2:",
			"1::2::3",
			"::1::",
			"1:2:3:4:5:6:7",
			"1:2",
			"1:2:3:4:5:6:7:8:9",
			"12345::",
			"g::",
			"0x1::",
			"1: 2::",
			"1.2.3.4:5",
		} {
			_, err := inet.ParseAddress(text)
			require.Error(t, err, text)
			var exception inet.InvalidAddressException
			require.ErrorAs(t, err, &exception, text)
		}
	})
}

func TestMustParseAddress(t *testing.T) {
	t.Parallel()
	require.Equal(t, "::1", inet.MustParseAddress("::1").String())
	require.Panics(t, func() {
		inet.MustParseAddress("not an address")
	})
}
