package core

import (
	"crypto/sha256"
	"encoding/binary"
)

const GenesisHashSeed = "GaugeLedger:genesis:v1"

// StateHasher chains per-command state hashes:
// hash[N] = SHA-256(hash[N-1] || sequence || digest).
type StateHasher struct {
	prevHash [32]byte
}

func NewStateHasher() *StateHasher {
	return &StateHasher{prevHash: sha256.Sum256([]byte(GenesisHashSeed))}
}

// ComputeHash advances the chain and returns the new tip.
func (h *StateHasher) ComputeHash(sequence int64, digests ...[]byte) [32]byte {
	hasher := sha256.New()
	hasher.Write(h.prevHash[:])

	var seqBuf [8]byte
	binary.LittleEndian.PutUint64(seqBuf[:], uint64(sequence))
	hasher.Write(seqBuf[:])

	for _, d := range digests {
		hasher.Write(d)
	}

	var hash [32]byte
	copy(hash[:], hasher.Sum(nil))
	h.prevHash = hash
	return hash
}

// Tip returns the current chain head.
func (h *StateHasher) Tip() [32]byte {
	return h.prevHash
}
