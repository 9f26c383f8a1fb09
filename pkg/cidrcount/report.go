package cidrcount

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"k8s.io/klog/v2"
)

// OutputFormat selects how a Report is printed.
type OutputFormat string

const (
	// OutputCount prints "<Area>: <number of blocks>".
	OutputCount OutputFormat = "count"
	// OutputCIDRs prints every area's blocks, ";" between blocks of one run and
	// ", " between runs.
	OutputCIDRs OutputFormat = "cidrs"
)

// OutputFormats lists the supported OutputFormat values.
var OutputFormats = []string{string(OutputCount), string(OutputCIDRs)}

// AreaSummary is the summarized form of one area.
type AreaSummary struct {
	Name      string
	Addresses int
	Groups    []Group
}

// Blocks returns the number of CIDR blocks in s.
func (s AreaSummary) Blocks() int {
	return BlockCount(s.Groups)
}

// Report is the result of summarizing every area.
type Report struct {
	Areas []AreaSummary
}

// Count summarizes each area in name order. On failure it returns the areas
// summarized so far together with the error; a *SummarizeError has its Area set.
func Count(areas *Areas, mode ConsumeMode) (*Report, error) {
	report := &Report{}
	for _, name := range areas.Names() {
		addrs := areas.Addresses(name)
		groups, err := Summarize(addrs, mode)
		if err != nil {
			var serr *SummarizeError
			if errors.As(err, &serr) {
				serr.Area = name
			}
			return report, err
		}
		summary := AreaSummary{Name: name, Addresses: len(addrs), Groups: groups}
		klog.V(4).Infof("Area %q: %d addresses, %d runs, %d blocks", name, len(addrs), len(groups), summary.Blocks())
		report.Areas = append(report.Areas, summary)
	}
	return report, nil
}

// Print writes one line per area to w.
func (r *Report) Print(w io.Writer, format OutputFormat) error {
	for _, area := range r.Areas {
		var line string
		switch format {
		case OutputCount:
			line = fmt.Sprintf("%s: %d\n", area.Name, area.Blocks())
		case OutputCIDRs:
			line = fmt.Sprintf("%s: %s\n", area.Name, formatGroups(area.Groups))
		default:
			return fmt.Errorf("unknown output format %q", format)
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatGroups(groups []Group) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		blocks := make([]string, 0, len(g.Blocks))
		for _, b := range g.Blocks {
			blocks = append(blocks, b.String())
		}
		parts = append(parts, strings.Join(blocks, ";"))
	}
	return strings.Join(parts, ", ")
}
