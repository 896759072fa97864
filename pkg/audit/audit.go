package audit

import (
	"github.com/app-sre/invprobe/pkg/inventory"
)

// Audit records every inventory query received by the fixture server.
type Audit interface {
	Write(*QueryData) error
}

type QueryData struct {
	Type      inventory.QueryType
	Filters   inventory.Filters
	Client    string
	Timestamp int64
}
