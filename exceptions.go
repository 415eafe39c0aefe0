package inet

import "fmt"

type InvalidAddressException struct {
	Address string
	Cause   error
}

func (e InvalidAddressException) Error() string {
	if e.Cause == nil {
		return fmt.Sprint("invalid address: ", e.Address)
	}
	return fmt.Sprint("invalid address: ", e.Address, ": ", e.Cause.Error())
}

func (e InvalidAddressException) Unwrap() error {
	return e.Cause
}

type InvalidComponentIndexException struct {
	Index int
}

func (e InvalidComponentIndexException) Error() string {
	return fmt.Sprint("invalid component index: ", e.Index)
}

type InvalidAddressTypeException struct {
	Operation string
	Family    Family
}

func (e InvalidAddressTypeException) Error() string {
	return fmt.Sprint(e.Operation, " not supported for ", e.Family, " address")
}
