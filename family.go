package inet

type Family byte

const (
	AddressFamilyIPv4 Family = iota
	AddressFamilyIPv6
)

func (af Family) IsIPv4() bool {
	return af == AddressFamilyIPv4
}

func (af Family) IsIPv6() bool {
	return af == AddressFamilyIPv6
}

func (af Family) ComponentCount() int {
	if af == AddressFamilyIPv6 {
		return 8
	}
	return 4
}

func (af Family) String() string {
	switch af {
	case AddressFamilyIPv4:
		return "ipv4"
	case AddressFamilyIPv6:
		return "ipv6"
	default:
		return "unknown"
	}
}
