package ledger

import (
	"fmt"

	"github.com/iotaledger/sawfly/packages/util"
)

// EventKind tags one event type within its emitting module. The kinds
// themselves are declared by the module packages.
type EventKind string

// Event is one entry of a receipt's ordered event list.
type Event struct {
	Module string
	Kind   EventKind
	Data   [][]byte
}

func NewEvent(module string, kind EventKind, data ...[]byte) *Event {
	return &Event{Module: module, Kind: kind, Data: data}
}

func (e *Event) String() string {
	ret := fmt.Sprintf("%s.%s(", e.Module, e.Kind)
	for i, d := range e.Data {
		if i > 0 {
			ret += ", "
		}
		ret += util.PrefixHex(d, 8)
	}
	return ret + ")"
}
