package inet

import (
	"strconv"
	"strings"
)

// ParseAddress parses text as an IPv6 address if it contains a colon,
// otherwise as one of the historical IPv4 notations: a single 32-bit
// decimal, a.b with a 24-bit b, a.b.c with a 16-bit c, or a dotted quad.
// Dotted-quad parts are 16-bit values; nothing clamps them to 0-255.
func ParseAddress(text string) (Address, error) {
	if strings.IndexByte(text, ':') >= 0 {
		return parseIPv6(text)
	}
	return parseIPv4(text)
}

func MustParseAddress(text string) Address {
	address, err := ParseAddress(text)
	if err != nil {
		panic("inet: ParseAddress(" + strconv.Quote(text) + "): " + err.Error())
	}
	return address
}

func parseIPv4(text string) (Address, error) {
	address := Address{family: AddressFamilyIPv4}
	parts := strings.Split(text, ".")
	switch len(parts) {
	case 1:
		value, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return Address{}, InvalidAddressException{text, err}
		}
		address.components[0] = uint16(byte(value >> 24))
		address.components[1] = uint16(byte(value >> 16))
		address.components[2] = uint16(byte(value >> 8))
		address.components[3] = uint16(byte(value))
	case 2:
		value, err := strconv.ParseUint(parts[0], 10, 8)
		if err != nil {
			return Address{}, InvalidAddressException{text, err}
		}
		address.components[0] = uint16(value)
		value, err = strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return Address{}, InvalidAddressException{text, err}
		}
		address.components[1] = uint16(byte(value >> 16))
		address.components[2] = uint16(byte(value >> 8))
		address.components[3] = uint16(byte(value))
	case 3:
		for i := 0; i < 2; i++ {
			value, err := strconv.ParseUint(parts[i], 10, 8)
			if err != nil {
				return Address{}, InvalidAddressException{text, err}
			}
			address.components[i] = uint16(value)
		}
		value, err := strconv.ParseUint(parts[2], 10, 16)
		if err != nil {
			return Address{}, InvalidAddressException{text, err}
		}
		address.components[2] = uint16(byte(value >> 8))
		address.components[3] = uint16(byte(value))
	case 4:
		for i := 0; i < 4; i++ {
			value, err := strconv.ParseUint(parts[i], 10, 16)
			if err != nil {
				return Address{}, InvalidAddressException{text, err}
			}
			address.components[i] = uint16(value)
		}
	default:
		return Address{}, InvalidAddressException{Address: text}
	}
	return address, nil
}

func parseIPv6(text string) (Address, error) {
	address := Address{family: AddressFamilyIPv6}
	if text == "::" {
		return address, nil
	}
	index := 0
	marker := -1
	// pos sits one position before the string at first, so a leading colon
	// reads as an empty segment and records the marker.
	pos := -1
	for pos < len(text) {
		end := strings.IndexByte(text[pos+1:], ':')
		last := end < 0
		if last {
			end = len(text)
		} else {
			end += pos + 1
		}
		segment := text[pos+1 : end]
		switch {
		case segment != "":
			if index > 7 {
				return Address{}, InvalidAddressException{Address: text}
			}
			value, err := strconv.ParseUint(segment, 16, 16)
			if err != nil {
				return Address{}, InvalidAddressException{text, err}
			}
			address.components[index] = uint16(value)
			index++
		case last:
			// a trailing colon is valid only as the tail of the "::" pair
			if marker != index {
				return Address{}, InvalidAddressException{Address: text}
			}
		case marker < 0:
			marker = index
		case marker != index:
			// a second "::" past the first
			return Address{}, InvalidAddressException{Address: text}
		}
		pos = end
	}
	if marker < 0 {
		if index < 8 {
			return Address{}, InvalidAddressException{Address: text}
		}
		return address, nil
	}
	if index < 8 {
		// expand the "::" run: move the groups written past the marker to
		// the tail and zero the vacated slots
		for i := 0; i < index-marker; i++ {
			address.components[7-i] = address.components[index-1-i]
		}
		for i := marker; i < marker+8-index; i++ {
			address.components[i] = 0
		}
	}
	return address, nil
}
