package ledger

import (
	"sort"
)

// CallSpec describes one runtime entry point: its dotted location and the
// number of arguments it declares.
type CallSpec struct {
	Module string `json:"module"`
	Entry  string `json:"entry"`
	Arity  int    `json:"arity"`
}

// CallTable is the runtime descriptor a node serves: the set of entry points
// the connected runtime accepts. Clients resolve the deployment protocol
// against it once, at construction.
type CallTable struct {
	specs map[string]CallSpec
}

func NewCallTable(specs ...CallSpec) *CallTable {
	t := &CallTable{specs: make(map[string]CallSpec, len(specs))}
	for _, s := range specs {
		t.specs[s.Module+"."+s.Entry] = s
	}
	return t
}

func (t *CallTable) Has(module, entry string) bool {
	_, ok := t.specs[module+"."+entry]
	return ok
}

func (t *CallTable) Arity(module, entry string) (int, bool) {
	s, ok := t.specs[module+"."+entry]
	if !ok {
		return 0, false
	}
	return s.Arity, true
}

// List returns the entry points in stable (sorted) order.
func (t *CallTable) List() []CallSpec {
	ret := make([]CallSpec, 0, len(t.specs))
	for _, s := range t.specs {
		ret = append(ret, s)
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Module != ret[j].Module {
			return ret[i].Module < ret[j].Module
		}
		return ret[i].Entry < ret[j].Entry
	})
	return ret
}
