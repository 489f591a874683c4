package types

import (
	"fmt"
	"strings"
)

// DataSource selects which backend answers reads
type DataSource string

// data sources
const (
	SourceContract DataSource = "contract"
	SourceIndex    DataSource = "index"
	SourceAuto     DataSource = "auto"
)

// ParseDataSource parses a data source name. "subgraph" is accepted as an alias of index.
func ParseDataSource(s string) (DataSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(SourceContract):
		return SourceContract, nil
	case string(SourceIndex), "subgraph":
		return SourceIndex, nil
	case string(SourceAuto):
		return SourceAuto, nil
	default:
		return "", fmt.Errorf("unknown data source %s", s)
	}
}

// ValidateBasic returns an error if the data source is not one of the known modes
func (s DataSource) ValidateBasic() error {
	switch s {
	case SourceContract, SourceIndex, SourceAuto:
		return nil
	default:
		return fmt.Errorf("unknown data source %s", string(s))
	}
}

// ActiveSource is the backend that actually answered a read
type ActiveSource string

// active sources
const (
	ActiveNone     ActiveSource = "none"
	ActiveContract ActiveSource = "contract"
	ActiveIndex    ActiveSource = "index"
)
