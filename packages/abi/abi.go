// Package abi parses contract metadata artifacts and encodes constructor and
// message call data against them.
package abi

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/sawfly/packages/hashing"
)

var (
	ErrConstructorNotFound = ierrors.New("constructor not found")
	ErrMessageNotFound     = ierrors.New("message not found")
	ErrEncoding            = ierrors.New("cannot encode arguments")
)

// ABI is the parsed metadata of one contract: its constructor and message
// tables. The tables are frozen at parse time.
type ABI struct {
	Name    string
	Version string

	constructors []*Constructor
	messages     []*Message
}

type jsonABI struct {
	Name         string      `json:"name"`
	Version      string      `json:"version"`
	Constructors []jsonEntry `json:"constructors"`
	Messages     []jsonEntry `json:"messages"`
}

type jsonEntry struct {
	Label    string      `json:"label"`
	Selector string      `json:"selector,omitempty"`
	Params   []jsonParam `json:"params"`
}

type jsonParam struct {
	Label string `json:"label"`
	Type  string `json:"type"`
}

func FromJSON(data []byte) (*ABI, error) {
	var raw jsonABI
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ierrors.Wrap(err, "invalid metadata")
	}
	if raw.Name == "" {
		return nil, ierrors.New("invalid metadata: missing contract name")
	}

	a := &ABI{Name: raw.Name, Version: raw.Version}
	seen := map[[4]byte]string{}
	for i, e := range raw.Constructors {
		selector, params, err := parseEntry(e, seen)
		if err != nil {
			return nil, ierrors.Wrapf(err, "constructor %q", e.Label)
		}
		a.constructors = append(a.constructors, &Constructor{
			Label:    e.Label,
			Selector: selector,
			Params:   params,
			index:    i,
		})
	}
	for _, e := range raw.Messages {
		selector, params, err := parseEntry(e, seen)
		if err != nil {
			return nil, ierrors.Wrapf(err, "message %q", e.Label)
		}
		a.messages = append(a.messages, &Message{
			Label:    e.Label,
			Selector: selector,
			Params:   params,
		})
	}
	return a, nil
}

func LoadFile(path string) (*ABI, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ierrors.Wrap(err, "cannot read metadata file")
	}
	return FromJSON(data)
}

func parseEntry(e jsonEntry, seen map[[4]byte]string) ([4]byte, []Param, error) {
	var selector [4]byte
	if e.Label == "" {
		return selector, nil, ierrors.New("missing label")
	}
	if e.Selector == "" {
		// no explicit selector in the artifact: derive it from the label
		copy(selector[:], hashing.HashData([]byte(e.Label)).Bytes())
	} else {
		b, err := hexutil.Decode(e.Selector)
		if err != nil {
			return selector, nil, ierrors.Wrap(err, "invalid selector")
		}
		if len(b) != len(selector) {
			return selector, nil, ierrors.Errorf("invalid selector: expected %d bytes, got %d", len(selector), len(b))
		}
		copy(selector[:], b)
	}
	if prev, ok := seen[selector]; ok {
		return selector, nil, ierrors.Errorf("selector collides with %q", prev)
	}
	seen[selector] = e.Label

	params := make([]Param, len(e.Params))
	for i, p := range e.Params {
		if !isSupportedType(p.Type) {
			return selector, nil, ierrors.Errorf("parameter %q has unsupported type %q", p.Label, p.Type)
		}
		params[i] = Param{Label: p.Label, Type: p.Type}
	}
	return selector, params, nil
}

func (a *ABI) Constructors() []*Constructor {
	ret := make([]*Constructor, len(a.constructors))
	copy(ret, a.constructors)
	return ret
}

func (a *ABI) Messages() []*Message {
	ret := make([]*Message, len(a.messages))
	copy(ret, a.messages)
	return ret
}

// FindConstructor resolves ctor to exactly one constructor entry. Accepted
// forms: a *Constructor of this ABI, a label, a 0x selector string, or a
// positional index.
func (a *ABI) FindConstructor(ctor any) (*Constructor, error) {
	switch c := ctor.(type) {
	case *Constructor:
		for _, known := range a.constructors {
			if known == c {
				return c, nil
			}
		}
		return nil, ierrors.Wrapf(ErrConstructorNotFound, "constructor %q does not belong to contract %q", c.Label, a.Name)
	case string:
		if strings.HasPrefix(c, "0x") {
			b, err := hexutil.Decode(c)
			if err != nil || len(b) != 4 {
				return nil, ierrors.Wrapf(ErrConstructorNotFound, "invalid selector %q", c)
			}
			for _, known := range a.constructors {
				if known.Selector == [4]byte(b) {
					return known, nil
				}
			}
			return nil, ierrors.Wrapf(ErrConstructorNotFound, "no constructor with selector %s", c)
		}
		for _, known := range a.constructors {
			if known.Label == c {
				return known, nil
			}
		}
		return nil, ierrors.Wrapf(ErrConstructorNotFound, "contract %q has no constructor %q", a.Name, c)
	case int:
		if c < 0 || c >= len(a.constructors) {
			return nil, ierrors.Wrapf(ErrConstructorNotFound, "constructor index %d out of range", c)
		}
		return a.constructors[c], nil
	default:
		return nil, ierrors.Wrapf(ErrConstructorNotFound, "unsupported selector type %T", ctor)
	}
}

// FindMessage resolves a message entry by label or 0x selector string.
func (a *ABI) FindMessage(name string) (*Message, error) {
	if strings.HasPrefix(name, "0x") {
		b, err := hexutil.Decode(name)
		if err != nil || len(b) != 4 {
			return nil, ierrors.Wrapf(ErrMessageNotFound, "invalid selector %q", name)
		}
		for _, known := range a.messages {
			if known.Selector == [4]byte(b) {
				return known, nil
			}
		}
		return nil, ierrors.Wrapf(ErrMessageNotFound, "no message with selector %s", name)
	}
	for _, known := range a.messages {
		if known.Label == name {
			return known, nil
		}
	}
	return nil, ierrors.Wrapf(ErrMessageNotFound, "contract %q has no message %q", a.Name, name)
}
