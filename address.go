package inet

// Address is an IPv4 or IPv6 address held as 16-bit components: 4 for IPv4,
// 8 for IPv6. The family is fixed at construction; only component values
// change afterwards. The zero Address is the IPv4 all-zero address, and two
// addresses compare equal with == iff family and components match.
type Address struct {
	family     Family
	components [8]uint16
}

func NewAddress(family Family) Address {
	return Address{family: family}
}

func (a Address) Family() Family {
	return a.family
}

func (a Address) ComponentCount() int {
	return a.family.ComponentCount()
}

func (a Address) Component(index int) (uint16, error) {
	if index < 0 || index >= a.family.ComponentCount() {
		return 0, InvalidComponentIndexException{index}
	}
	return a.components[index], nil
}

func (a *Address) SetComponent(index int, value uint16) error {
	if index < 0 || index >= a.family.ComponentCount() {
		return InvalidComponentIndexException{index}
	}
	a.components[index] = value
	return nil
}

// Uint32 assembles an IPv4 address big-endian, component 0 being the most
// significant byte. Component values above 0xff are not masked.
func (a Address) Uint32() (uint32, error) {
	if !a.family.IsIPv4() {
		return 0, InvalidAddressTypeException{"uint32 conversion", a.family}
	}
	return uint32(a.components[0])<<24 | uint32(a.components[1])<<16 | uint32(a.components[2])<<8 | uint32(a.components[3]), nil
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	address, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = address
	return nil
}
