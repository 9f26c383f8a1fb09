package cidrcount

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/openshift/cidr-counter/pkg/util/ranges"
)

func parseAddresses(strs ...string) []ranges.Address {
	addrs := make([]ranges.Address, 0, len(strs))
	for _, s := range strs {
		addrs = append(addrs, ranges.MustParseAddress(s))
	}
	return addrs
}

// groupStrings renders groups as [run][block...] for comparison.
func groupStrings(groups []Group) [][]string {
	out := [][]string{}
	for _, g := range groups {
		strs := []string{g.Range.String()}
		for _, b := range g.Blocks {
			strs = append(strs, b.String())
		}
		out = append(out, strs)
	}
	return out
}

func TestSummarize(t *testing.T) {
	for _, tc := range []struct {
		name   string
		addrs  []ranges.Address
		mode   ConsumeMode
		groups [][]string
		count  int
	}{
		{
			name:   "empty",
			addrs:  nil,
			mode:   ConsumeAddresses,
			groups: [][]string{},
			count:  0,
		},
		{
			name:  "single address",
			addrs: parseAddresses("10.0.0.7"),
			mode:  ConsumeAddresses,
			groups: [][]string{
				{"10.0.0.7-10.0.0.7", "10.0.0.7/32"},
			},
			count: 1,
		},
		{
			name:  "one run",
			addrs: parseAddresses("10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4"),
			mode:  ConsumeAddresses,
			groups: [][]string{
				{"10.0.0.1-10.0.0.4", "10.0.0.1/32", "10.0.0.2/31", "10.0.0.4/32"},
			},
			count: 3,
		},
		{
			name:  "non-consecutive",
			addrs: parseAddresses("10.0.0.5", "10.0.0.9"),
			mode:  ConsumeAddresses,
			groups: [][]string{
				{"10.0.0.5-10.0.0.5", "10.0.0.5/32"},
				{"10.0.0.9-10.0.0.9", "10.0.0.9/32"},
			},
			count: 2,
		},
		{
			name:  "runs follow input order",
			addrs: parseAddresses("10.0.0.2", "10.0.0.1", "10.0.0.3", "10.0.0.4"),
			mode:  ConsumeAddresses,
			groups: [][]string{
				{"10.0.0.2-10.0.0.2", "10.0.0.2/32"},
				{"10.0.0.1-10.0.0.1", "10.0.0.1/32"},
				{"10.0.0.3-10.0.0.4", "10.0.0.3/32", "10.0.0.4/32"},
			},
			count: 4,
		},
		{
			name:  "aligned run",
			addrs: parseAddresses("192.168.0.0", "192.168.0.1", "192.168.0.2", "192.168.0.3", "192.168.1.0"),
			mode:  ConsumeAddresses,
			groups: [][]string{
				{"192.168.0.0-192.168.0.3", "192.168.0.0/30"},
				{"192.168.1.0-192.168.1.0", "192.168.1.0/32"},
			},
			count: 2,
		},
		{
			name:  "duplicates break runs",
			addrs: parseAddresses("10.0.0.1", "10.0.0.1", "10.0.0.2"),
			mode:  ConsumeAddresses,
			groups: [][]string{
				{"10.0.0.1-10.0.0.1", "10.0.0.1/32"},
				{"10.0.0.1-10.0.0.2", "10.0.0.1/32", "10.0.0.2/32"},
			},
			count: 3,
		},
		{
			name:  "no wrap past the last address",
			addrs: parseAddresses("255.255.255.254", "255.255.255.255", "0.0.0.0", "0.0.0.1"),
			mode:  ConsumeAddresses,
			groups: [][]string{
				{"255.255.255.254-255.255.255.255", "255.255.255.254/31"},
				{"0.0.0.0-0.0.0.1", "0.0.0.0/31"},
			},
			count: 2,
		},
		{
			name:  "consume blocks re-scans the run",
			addrs: parseAddresses("10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4"),
			mode:  ConsumeBlocks,
			groups: [][]string{
				{"10.0.0.1-10.0.0.4", "10.0.0.1/32", "10.0.0.2/31", "10.0.0.4/32"},
				{"10.0.0.4-10.0.0.4", "10.0.0.4/32"},
			},
			count: 4,
		},
		{
			name:  "consume blocks matches addresses for single runs",
			addrs: parseAddresses("10.0.0.5", "10.0.0.9"),
			mode:  ConsumeBlocks,
			groups: [][]string{
				{"10.0.0.5-10.0.0.5", "10.0.0.5/32"},
				{"10.0.0.9-10.0.0.9", "10.0.0.9/32"},
			},
			count: 2,
		},
		{
			name:  "consume blocks with aligned run",
			addrs: parseAddresses("10.0.0.0", "10.0.0.1", "10.0.0.2", "10.0.0.3"),
			mode:  ConsumeBlocks,
			groups: [][]string{
				{"10.0.0.0-10.0.0.3", "10.0.0.0/30"},
				{"10.0.0.1-10.0.0.3", "10.0.0.1/32", "10.0.0.2/31"},
				{"10.0.0.3-10.0.0.3", "10.0.0.3/32"},
			},
			count: 4,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			groups, err := Summarize(tc.addrs, tc.mode)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.groups, groupStrings(groups)); diff != "" {
				t.Fatalf("bad groups (-want +got):\n%s", diff)
			}
			if count := BlockCount(groups); count != tc.count {
				t.Fatalf("bad block count %d, expected %d", count, tc.count)
			}
		})
	}
}

func TestSummarizeUnknownMode(t *testing.T) {
	_, err := Summarize(parseAddresses("10.0.0.1"), ConsumeMode("bogus"))
	if err == nil {
		t.Fatalf("expected error for unknown consume mode")
	}
}

func TestSummarizeError(t *testing.T) {
	err := &SummarizeError{
		Range:     ranges.Range{Start: ranges.MustParseAddress("10.0.0.9"), End: ranges.MustParseAddress("10.0.0.5")},
		Remaining: parseAddresses("10.0.0.9", "10.0.0.5"),
		Groups:    2,
		Err:       ranges.ErrInvalidRange,
	}
	if !errors.Is(err, ranges.ErrInvalidRange) {
		t.Fatalf("SummarizeError does not unwrap to its cause")
	}
	if got, want := err.Error(), "summarizing 10.0.0.9-10.0.0.5: start address greater than end address"; got != want {
		t.Fatalf("bad message %q, expected %q", got, want)
	}
	err.Area = "X"
	if got, want := err.Error(), `area "X": summarizing 10.0.0.9-10.0.0.5: start address greater than end address`; got != want {
		t.Fatalf("bad message %q, expected %q", got, want)
	}
	if got, want := err.RemainingString(), "[10.0.0.9, 10.0.0.5]"; got != want {
		t.Fatalf("bad remaining list %q, expected %q", got, want)
	}
}
