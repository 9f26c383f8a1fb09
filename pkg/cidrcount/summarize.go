// Package cidrcount groups IPv4 addresses by area and summarizes each area's
// addresses into CIDR blocks.
package cidrcount

import (
	"fmt"
	"strings"

	"github.com/openshift/cidr-counter/pkg/util/ranges"
)

// ConsumeMode controls how many addresses Summarize consumes after summarizing a
// run.
type ConsumeMode string

const (
	// ConsumeAddresses consumes every address of the run just summarized.
	ConsumeAddresses ConsumeMode = "addresses"
	// ConsumeBlocks consumes one address per CIDR block emitted for the run. This
	// re-scans part of every run that needed fewer blocks than addresses. It
	// reproduces how older tooling advanced through the list; the reported count
	// is still the number of blocks.
	ConsumeBlocks ConsumeMode = "blocks"
)

// ConsumeModes lists the supported ConsumeMode values.
var ConsumeModes = []string{string(ConsumeAddresses), string(ConsumeBlocks)}

// A Group is the CIDR cover of one contiguous run of addresses.
type Group struct {
	Range  ranges.Range
	Blocks []ranges.Block
}

// SummarizeError is returned by Summarize when a run could not be converted to
// CIDR blocks. It carries the state needed to diagnose the failure.
type SummarizeError struct {
	// Area is filled in by Count; Summarize does not know it.
	Area      string
	Range     ranges.Range
	Remaining []ranges.Address
	Groups    int
	Err       error
}

func (e *SummarizeError) Error() string {
	if e.Area != "" {
		return fmt.Sprintf("area %q: summarizing %s: %v", e.Area, e.Range, e.Err)
	}
	return fmt.Sprintf("summarizing %s: %v", e.Range, e.Err)
}

func (e *SummarizeError) Unwrap() error {
	return e.Err
}

// RemainingString formats the unconsumed addresses as "[a, b, c]".
func (e *SummarizeError) RemainingString() string {
	strs := make([]string, 0, len(e.Remaining))
	for _, a := range e.Remaining {
		strs = append(strs, a.String())
	}
	return "[" + strings.Join(strs, ", ") + "]"
}

// Summarize partitions addrs into maximal runs of consecutive addresses (in the
// order given, not sorted order) and returns the minimal CIDR cover of each run.
func Summarize(addrs []ranges.Address, mode ConsumeMode) ([]Group, error) {
	if mode != ConsumeAddresses && mode != ConsumeBlocks {
		return nil, fmt.Errorf("unknown consume mode %q", mode)
	}

	var groups []Group
	for len(addrs) > 0 {
		r, n := longestRun(addrs)
		blocks, err := r.Blocks()
		if err != nil {
			return groups, &SummarizeError{
				Range:     r,
				Remaining: addrs,
				Groups:    len(groups),
				Err:       err,
			}
		}
		groups = append(groups, Group{Range: r, Blocks: blocks})

		if mode == ConsumeBlocks {
			n = len(blocks)
		}
		addrs = addrs[n:]
	}
	return groups, nil
}

// longestRun returns the run starting at addrs[0] and the number of addresses in
// it. addrs must not be empty.
func longestRun(addrs []ranges.Address) (ranges.Range, int) {
	r := ranges.Range{Start: addrs[0], End: addrs[0]}
	n := 1
	for ; n < len(addrs); n++ {
		next, ok := r.End.Next()
		if !ok || addrs[n] != next {
			break
		}
		r.End = next
	}
	return r, n
}

// BlockCount returns the total number of CIDR blocks in groups.
func BlockCount(groups []Group) int {
	count := 0
	for _, g := range groups {
		count += len(g.Blocks)
	}
	return count
}
