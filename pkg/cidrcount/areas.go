package cidrcount

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/openshift/cidr-counter/pkg/util/ranges"
)

const (
	DefaultAreaColumn = "Area"
	DefaultIPColumn   = "IP"

	utf8BOM = "\ufeff"
)

// Columns names the CSV header columns holding the area and the IP address.
type Columns struct {
	Area string
	IP   string
}

// DefaultColumns returns the standard "Area" and "IP" column names.
func DefaultColumns() Columns {
	return Columns{Area: DefaultAreaColumn, IP: DefaultIPColumn}
}

// Areas holds the addresses of each area, in the order they were read.
type Areas struct {
	names sets.String
	addrs map[string][]ranges.Address

	// Rows is the number of data rows read; Accepted + Skipped == Rows.
	Rows     int
	Accepted int
	Skipped  int
}

// NewAreas returns an empty Areas.
func NewAreas() *Areas {
	return &Areas{
		names: sets.NewString(),
		addrs: map[string][]ranges.Address{},
	}
}

// Add appends addr to area's address list.
func (a *Areas) Add(area string, addr ranges.Address) {
	a.names.Insert(area)
	a.addrs[area] = append(a.addrs[area], addr)
}

// Names returns the area names in ascending byte order.
func (a *Areas) Names() []string {
	return a.names.List()
}

// Addresses returns area's addresses in input order.
func (a *Areas) Addresses(area string) []ranges.Address {
	return a.addrs[area]
}

// Len returns the number of areas.
func (a *Areas) Len() int {
	return a.names.Len()
}

// LoadAreas reads a CSV document with a header row from r. Rows whose area is
// empty after trimming whitespace are skipped; every other row must carry a valid
// IPv4 address.
func LoadAreas(r io.Reader, columns Columns) (*Areas, error) {
	reader := csv.NewReader(r)
	// Rows may carry more or fewer fields than the header; only the area and IP
	// columns have to be present.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("missing CSV header")
	} else if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	// A repeated column name refers to its last occurrence.
	areaIdx, ipIdx := -1, -1
	for i, name := range header {
		switch name {
		case columns.Area:
			areaIdx = i
		case columns.IP:
			ipIdx = i
		}
	}
	if areaIdx < 0 {
		return nil, fmt.Errorf("column %q not found in CSV header %q", columns.Area, header)
	}
	if ipIdx < 0 {
		return nil, fmt.Errorf("column %q not found in CSV header %q", columns.IP, header)
	}

	areas := NewAreas()
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		areas.Rows++

		if len(record) <= areaIdx || len(record) <= ipIdx {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: %d fields, too short for columns %q and %q", line, len(record), columns.Area, columns.IP)
		}

		area := strings.TrimSpace(record[areaIdx])
		if area == "" {
			areas.Skipped++
			continue
		}

		addr, err := ranges.ParseAddress(record[ipIdx])
		if err != nil {
			line, _ := reader.FieldPos(ipIdx)
			return nil, fmt.Errorf("line %d: column %q: %w", line, columns.IP, err)
		}
		areas.Add(area, addr)
		areas.Accepted++
	}

	return areas, nil
}
