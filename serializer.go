package inet

import (
	"encoding/binary"
	"io"

	E "github.com/sagernet/sing-inet/common/exceptions"
	"github.com/sagernet/sing-inet/common/rw"
)

type SerializerOption func(*Serializer)

func AddressFamilyByte(b byte, f Family) SerializerOption {
	return func(s *Serializer) {
		s.familyMap[b] = f
		s.familyByteMap[f] = b
	}
}

type Serializer struct {
	familyMap     map[byte]Family
	familyByteMap map[Family]byte
}

func NewSerializer(options ...SerializerOption) *Serializer {
	s := &Serializer{
		familyMap:     make(map[byte]Family),
		familyByteMap: make(map[Family]byte),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Serializer) WriteAddress(writer io.Writer, address Address) error {
	familyByte, loaded := s.familyByteMap[address.Family()]
	if !loaded {
		return InvalidAddressTypeException{"serialization", address.Family()}
	}
	err := rw.WriteByte(writer, familyByte)
	if err != nil {
		return err
	}
	components := make([]byte, 2*address.ComponentCount())
	for i := 0; i < address.ComponentCount(); i++ {
		binary.BigEndian.PutUint16(components[2*i:], address.components[i])
	}
	return rw.WriteBytes(writer, components)
}

func (s *Serializer) AddressLen(address Address) int {
	return 1 + 2*address.ComponentCount()
}

func (s *Serializer) ReadAddress(reader io.Reader) (Address, error) {
	familyByte, err := rw.ReadByte(reader)
	if err != nil {
		return Address{}, E.Cause(err, "read address family")
	}
	family, loaded := s.familyMap[familyByte]
	if !loaded {
		return Address{}, E.New("unknown address family: ", familyByte)
	}
	address := NewAddress(family)
	components, err := rw.ReadBytes(reader, 2*address.ComponentCount())
	if err != nil {
		return Address{}, E.Cause(err, "read address components")
	}
	for i := 0; i < address.ComponentCount(); i++ {
		address.components[i] = binary.BigEndian.Uint16(components[2*i:])
	}
	return address, nil
}
