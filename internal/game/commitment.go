package game

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// DefaultKeyBytes is the secret key length used when none is configured.
const DefaultKeyBytes = 16

var (
	ErrEntropySource = errors.New("entropy source failure")
	ErrMalformedHex  = errors.New("malformed hex")
)

// CommitmentScheme binds a move to a fresh secret key with HMAC-SHA256.
type CommitmentScheme struct {
	keyBytes int
	entropy  io.Reader
}

// NewCommitmentScheme returns a scheme drawing keyBytes-long keys from
// entropy. A nil entropy uses crypto/rand; a non-positive length uses
// DefaultKeyBytes.
func NewCommitmentScheme(keyBytes int, entropy io.Reader) *CommitmentScheme {
	if keyBytes <= 0 {
		keyBytes = DefaultKeyBytes
	}
	if entropy == nil {
		entropy = rand.Reader
	}
	return &CommitmentScheme{keyBytes: keyBytes, entropy: entropy}
}

// KeyBytes returns the configured key length.
func (s *CommitmentScheme) KeyBytes() int {
	return s.keyBytes
}

// Commitment is a hidden, provable choice. The key stays private until
// Reveal is called by the owner.
type Commitment struct {
	key    []byte
	move   string
	digest []byte
}

// Reveal is what gets disclosed after the round is resolved.
type Reveal struct {
	Move      string `json:"move"`
	Key       string `json:"key"`
	DigestHex string `json:"digest"`
}

// Commit draws a new key and computes HMAC-SHA256(key, move).
func (s *CommitmentScheme) Commit(move string) (*Commitment, error) {
	key := make([]byte, s.keyBytes)
	if _, err := io.ReadFull(s.entropy, key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropySource, err)
	}
	return &Commitment{
		key:    key,
		move:   move,
		digest: computeDigest(key, move),
	}, nil
}

// Digest returns a copy of the published digest.
func (c *Commitment) Digest() []byte {
	out := make([]byte, len(c.digest))
	copy(out, c.digest)
	return out
}

// DigestHex returns the digest as lowercase hex.
func (c *Commitment) DigestHex() string {
	return hex.EncodeToString(c.digest)
}

// Reveal discloses the key together with the committed move.
func (c *Commitment) Reveal() Reveal {
	return Reveal{
		Move:      c.move,
		Key:       hex.EncodeToString(c.key),
		DigestHex: c.DigestHex(),
	}
}

// Move returns the committed move name.
func (c *Commitment) Move() string {
	return c.move
}

// Verify recomputes the digest of r and compares it with the published one.
func (r Reveal) Verify() (bool, error) {
	return VerifyCommitment(r.Move, r.Key, r.DigestHex)
}

// VerifyCommitment checks that digestHex equals HMAC-SHA256(key, move).
func VerifyCommitment(move, keyHex, digestHex string) (bool, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return false, fmt.Errorf("%w: key: %v", ErrMalformedHex, err)
	}
	provided, err := hex.DecodeString(digestHex)
	if err != nil {
		return false, fmt.Errorf("%w: digest: %v", ErrMalformedHex, err)
	}
	return hmac.Equal(computeDigest(key, move), provided), nil
}

// DigestHex computes the hex digest for an explicit key. Used by verifiers
// that already hold the revealed key.
func DigestHex(key []byte, move string) string {
	return hex.EncodeToString(computeDigest(key, move))
}

func computeDigest(key []byte, move string) []byte {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(move))
	return h.Sum(nil)
}
