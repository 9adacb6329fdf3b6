package abi

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Param is one declared parameter of a constructor or message.
type Param struct {
	Label string
	Type  string
}

// Constructor is one entry of the constructor table.
type Constructor struct {
	Label    string
	Selector [4]byte
	Params   []Param

	index int
}

// Index is the constructor's position in the table.
func (c *Constructor) Index() int {
	return c.index
}

func (c *Constructor) SelectorHex() string {
	return hexutil.Encode(c.Selector[:])
}

// Encode builds the constructor call data: the 4-byte dispatch selector,
// then each argument in declared order. A non-nil trailingSalt is appended
// verbatim after the arguments; runtimes of the legacy generation carry the
// instantiation salt there instead of in a call argument of its own.
func (c *Constructor) Encode(args []any, trailingSalt []byte) ([]byte, error) {
	data, err := encodeEntry(c.Selector, c.Params, args)
	if err != nil {
		return nil, err
	}
	if trailingSalt != nil {
		data = append(data, trailingSalt...)
	}
	return data, nil
}

// Message is one entry of the message table.
type Message struct {
	Label    string
	Selector [4]byte
	Params   []Param
}

func (m *Message) SelectorHex() string {
	return hexutil.Encode(m.Selector[:])
}

// Encode builds the message call data: selector plus arguments.
func (m *Message) Encode(args []any) ([]byte, error) {
	return encodeEntry(m.Selector, m.Params, args)
}
