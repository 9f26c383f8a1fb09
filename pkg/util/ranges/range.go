package ranges

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

var (
	// ErrInvalidRange is returned (wrapped) when a Range starts after it ends.
	ErrInvalidRange = errors.New("start address greater than end address")
)

// A Range represents a range of addresses by its start and end values (inclusive)
type Range struct {
	Start Address
	End   Address
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Len returns the number of addresses in r, or 0 if r is invalid.
func (r Range) Len() uint64 {
	if r.Start > r.End {
		return 0
	}
	return uint64(r.End-r.Start) + 1
}

// A Block represents a CIDR block by its start address and a mask value
type Block struct {
	Start Address
	Mask  uint32
}

// PrefixLen returns the CIDR prefix length of b.
func (b Block) PrefixLen() int {
	return bits.OnesCount32(b.Mask)
}

// Last returns the last address covered by b.
func (b Block) Last() Address {
	return b.Start | Address(^b.Mask)
}

// Size returns the number of addresses covered by b.
func (b Block) Size() uint64 {
	return uint64(^b.Mask) + 1
}

// Range converts b to an equivalent Range
func (b Block) Range() Range {
	return Range{Start: b.Start, End: b.Last()}
}

// String uses the CIDR format <ip>/<bits>.
func (b Block) String() string {
	return fmt.Sprintf("%s/%d", b.Start, b.PrefixLen())
}

// Blocks converts r to the minimal list of CIDR blocks that exactly covers it, in
// ascending order.
func (r Range) Blocks() ([]Block, error) {
	if r.Start > r.End {
		return nil, fmt.Errorf("%s: %w", r, ErrInvalidRange)
	}

	blocks := []Block{}

	// Repeatedly find the largest usable Block starting at start, then update start
	// to point to after that block, and loop until we reach r.End.
	start := r.Start
	for {
		block := nextBlock(start, r.End)
		blocks = append(blocks, block)

		blockEnd := block.Last()
		if blockEnd == r.End {
			// Reached the end
			break
		}
		start = blockEnd + 1
	}

	return blocks, nil
}

// nextBlock computes the largest Block starting at start and ending at or before
// end.
func nextBlock(start, end Address) Block {
	// A Block covers a range from a starting value, to that value with some
	// consecutive number of its trailing "0" bits flipped to "1". Eg, if start is
	// 10.0.0.32, the candidate blocks are 10.0.0.32/27, /28, /29 ... /32.
	//
	// The largest one flips every trailing "0" bit in start:
	//
	//     start    = 0x0a000020 = ...00100000
	//     mask     = 0xffffffe0 = ...11100000
	//     blockEnd = 0x0a00003f = ...00111111
	//
	// Any wider mask would produce values less than start. For start == 0 the
	// shift below yields a zero mask, which is 0.0.0.0/0.
	mask := uint32(math.MaxUint32) << bits.TrailingZeros32(uint32(start))
	if Address(uint32(start)|^mask) <= end {
		return Block{Start: start, Mask: mask}
	}

	// Otherwise use the largest power-of-2 length not exceeding (end - start + 1).
	// That is the value with a single "1" bit at the position of the leading "1"
	// bit of (end - start + 1), and its mask has "1" bits up to that position:
	//
	//     start       = 0x0a000020 = ...00100000
	//     end         = 0x0a00002a = ...00101010
	//     end-start+1 = 0x0000000b = ...00001011
	//     length      = 0x00000008 = ...00001000
	//     mask        = 0xfffffff8 = ...11111000
	//
	// end-start+1 cannot overflow here: the only range of length 2^32 starts at 0
	// and was handled above.
	maskLen := bits.LeadingZeros32(uint32(end-start)+1) + 1
	mask = math.MaxUint32 << (32 - maskLen)
	return Block{Start: start, Mask: mask}
}
