package tiling

import (
	"strconv"
	"strings"

	"github.com/eak1mov/go-hypertiles/poincare"
)

// Address is the sequence of neighbor directions leading from the origin tile.
// The empty address is the origin.
type Address []uint8

const addressDisplayDigits = 5

// FormatAddress renders an address for on-screen labels: "O" for the origin,
// the digits for short addresses and ".." plus the last five digits otherwise.
func FormatAddress(addr Address) string {
	if len(addr) == 0 {
		return "O"
	}
	var sb strings.Builder
	if len(addr) > addressDisplayDigits {
		sb.WriteString("..")
		addr = addr[len(addr)-addressDisplayDigits:]
	}
	for _, dir := range addr {
		sb.WriteString(strconv.Itoa(int(dir)))
	}
	return sb.String()
}

func (a Address) String() string {
	return FormatAddress(a)
}

// Child returns a new address extended by dir. The receiver is not modified.
func (a Address) Child(dir uint8) Address {
	child := make(Address, len(a)+1)
	copy(child, a)
	child[len(a)] = dir
	return child
}

// replayAddress composes the neighbor table along addr starting at the
// identity, alternating parity at every step.
func replayAddress(addr Address, xforms [2][]poincare.Mobius) poincare.Mobius {
	t := poincare.Identity()
	for depth, dir := range addr {
		t = t.Compose(xforms[depth%2][dir])
	}
	return t
}
