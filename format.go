package inet

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the canonical text form: dotted decimal for IPv4, and for
// IPv6 lowercase hex groups with the first longest run of two or more zero
// components compressed to "::".
func (a Address) String() string {
	if a.family.IsIPv4() {
		return fmt.Sprintf("%d.%d.%d.%d", a.components[0], a.components[1], a.components[2], a.components[3])
	}
	runStart, runLen := a.zeroRun()
	if runLen == 8 {
		return "::"
	}
	var builder strings.Builder
	if runLen > 1 {
		a.appendHex(&builder, 0, runStart)
		builder.WriteString("::")
		a.appendHex(&builder, runStart+runLen, 8)
	} else {
		a.appendHex(&builder, 0, 8)
	}
	return builder.String()
}

func (a Address) appendHex(builder *strings.Builder, from int, to int) {
	for i := from; i < to; i++ {
		if i > from {
			builder.WriteByte(':')
		}
		builder.WriteString(strconv.FormatUint(uint64(a.components[i]), 16))
	}
}

// zeroRun finds the longest run of consecutive zero components, keeping the
// first of equal-length runs. Strict improvement only: a later run of the
// same length never replaces an earlier one.
func (a Address) zeroRun() (start int, length int) {
	start = -1
	currentStart, currentLen := -1, 0
	for i := 0; i < 8; i++ {
		if a.components[i] != 0 {
			continue
		}
		if currentLen > 0 && currentStart+currentLen == i {
			currentLen++
		} else {
			currentStart, currentLen = i, 1
		}
		if currentLen > length {
			start, length = currentStart, currentLen
		}
	}
	return
}
