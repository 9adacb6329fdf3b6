package ledger

import (
	"github.com/iotaledger/sawfly/packages/hashing"
)

// Receipt is the finalized result of one submitted call, with the events
// emitted during its execution in emission order.
type Receipt struct {
	RequestID  hashing.HashValue
	BlockIndex uint32
	GasBurned  uint64
	Events     []*Event
}

func (r *Receipt) EventsOfKind(kind EventKind) []*Event {
	var ret []*Event
	for _, e := range r.Events {
		if e.Kind == kind {
			ret = append(ret, e)
		}
	}
	return ret
}
