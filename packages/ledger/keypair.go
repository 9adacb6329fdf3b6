package ledger

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/binary"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/sawfly/packages/hashing"
)

const SeedSize = ed25519.SeedSize

// NewSeed produces a fresh random master seed.
func NewSeed() []byte {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return seed
}

// SubSeed derives the seed of one address index from a master seed.
func SubSeed(seed []byte, index uint32) []byte {
	indexBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(indexBytes, index)
	return hashing.HashData(seed, indexBytes).Bytes()
}

// KeyPair signs calls on behalf of one account.
type KeyPair struct {
	privateKey ed25519.PrivateKey
}

func NewKeyPair() *KeyPair {
	return &KeyPair{privateKey: ed25519.NewKeyFromSeed(NewSeed())}
}

func KeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != SeedSize {
		return nil, ierrors.Errorf("KeyPairFromSeed: expected %d bytes, got %d", SeedSize, len(seed))
	}
	return &KeyPair{privateKey: ed25519.NewKeyFromSeed(seed)}, nil
}

func (kp *KeyPair) PublicKey() []byte {
	return kp.privateKey.Public().(ed25519.PublicKey)
}

func (kp *KeyPair) Address() AccountID {
	return AccountIDFromPublicKey(kp.PublicKey())
}

func (kp *KeyPair) Sign(data []byte) []byte {
	return ed25519.Sign(kp.privateKey, data)
}

// VerifySignature checks sig over data against pub and the account derived
// from it.
func VerifySignature(account AccountID, pub, data, sig []byte) error {
	if len(pub) != ed25519.PublicKeySize {
		return ierrors.Errorf("invalid public key size %d", len(pub))
	}
	if AccountIDFromPublicKey(pub) != account {
		return ierrors.Errorf("public key does not match account %s", account.ShortString())
	}
	if !ed25519.Verify(pub, data, sig) {
		return ierrors.New("invalid signature")
	}
	return nil
}
