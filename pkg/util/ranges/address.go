package ranges

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"net"
	"strings"
)

var (
	// ErrInvalidAddress is returned (wrapped) by ParseAddress for anything that is
	// not a dotted-quad IPv4 literal.
	ErrInvalidAddress = errors.New("invalid IPv4 address")
)

// An Address is an IPv4 address in host integer form.
type Address uint32

// ParseAddress parses a dotted-quad IPv4 literal. IPv6 literals, including
// IPv4-mapped ones like "::ffff:10.0.0.1", are rejected.
func ParseAddress(s string) (Address, error) {
	// net.ParseIP returns mapped IPv6 literals in the same 16-byte form as IPv4
	// ones, so the literal itself is checked for IPv6 syntax.
	ip := net.ParseIP(s).To4()
	if ip == nil || strings.Contains(s, ":") {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidAddress)
	}
	return Address(bytesToUint32(ip)), nil
}

// MustParseAddress is like ParseAddress but panics on error.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err.Error())
	}
	return a
}

// Next returns the address immediately after a. It returns false for
// 255.255.255.255, which has no successor.
func (a Address) Next() (Address, bool) {
	if a == math.MaxUint32 {
		return a, false
	}
	return a + 1, true
}

// IP returns a as a 4-byte net.IP
func (a Address) IP() net.IP {
	return net.IP(uint32ToBytes(uint32(a)))
}

func (a Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(a>>24), byte(a>>16), byte(a>>8), byte(a))
}

func uint32ToBytes(u uint32) []byte {
	bytes := make([]byte, 4)
	binary.BigEndian.PutUint32(bytes, u)
	return bytes
}

func bytesToUint32(bytes []byte) uint32 {
	if len(bytes) == 16 {
		to4 := net.IP(bytes).To4()
		if to4 != nil {
			bytes = to4
		}
	}
	return binary.BigEndian.Uint32(bytes)
}
