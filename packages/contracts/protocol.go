package contracts

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// ProtocolKind distinguishes the deployment call shapes a runtime accepts.
type ProtocolKind byte

const (
	// SinglePhase runtimes upload and instantiate in one combined call.
	SinglePhase ProtocolKind = iota
	// DualPhase runtimes store the code first and instantiate it by hash in
	// a separate call.
	DualPhase
)

const (
	instantiateArityLegacy   = 4
	instantiateArityWithSalt = 5
)

// Protocol is the deployment shape of a connected runtime. It is resolved
// once, when a handle is constructed, and never re-probed per call.
type Protocol struct {
	Kind ProtocolKind
	// ExplicitSalt reports whether instantiate declares the salt as its own
	// argument; legacy runtimes expect it folded into the constructor data.
	ExplicitSalt bool
}

// DetectProtocol resolves the deployment protocol against the runtime's
// call table.
func DetectProtocol(chain Chain) (Protocol, error) {
	arity, hasInstantiate := chain.CallArity(ModuleContracts, EntryInstantiate)
	if chain.HasCall(ModuleContracts, EntryInstantiateWithCode) {
		p := Protocol{Kind: SinglePhase, ExplicitSalt: true}
		if hasInstantiate {
			p.ExplicitSalt = arity == instantiateArityWithSalt
		}
		return p, nil
	}
	if !hasInstantiate {
		return Protocol{}, ierrors.Wrapf(ErrUnsupportedRuntime,
			"call table has neither %s.%s nor %s.%s",
			ModuleContracts, EntryInstantiateWithCode, ModuleContracts, EntryInstantiate)
	}
	switch arity {
	case instantiateArityWithSalt:
		return Protocol{Kind: DualPhase, ExplicitSalt: true}, nil
	case instantiateArityLegacy:
		return Protocol{Kind: DualPhase, ExplicitSalt: false}, nil
	default:
		return Protocol{}, ierrors.Wrapf(ErrUnsupportedRuntime,
			"%s.%s declares %d parameters", ModuleContracts, EntryInstantiate, arity)
	}
}

func (p Protocol) String() string {
	switch {
	case p.Kind == SinglePhase:
		return "single-phase"
	case p.ExplicitSalt:
		return "dual-phase (explicit salt)"
	default:
		return "dual-phase (legacy salt)"
	}
}
