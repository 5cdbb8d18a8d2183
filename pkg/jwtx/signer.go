package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is anything that can sign session claims into a compact JWT.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	PublicJWK() JWK
}

// EdDSASigner signs session tokens with an Ed25519 key.
type EdDSASigner struct {
	kid string
	key ed25519.PrivateKey
	pub ed25519.PublicKey
}

// NewEphemeralSigner generates a fresh Ed25519 keypair for this process.
// Sessions do not survive a restart, which is fine for bearer tokens with a
// short TTL; users just sign in again.
func NewEphemeralSigner(kid string) (*EdDSASigner, error) {
	pub, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &EdDSASigner{kid: kid, key: key, pub: pub}, nil
}

// NewSignerFromSeed builds a signer from a 32-byte Ed25519 seed. Used when
// multiple replicas must verify each other's sessions.
func NewSignerFromSeed(kid string, seed []byte) (*EdDSASigner, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, errors.New("jwtx: invalid Ed25519 seed size")
	}
	key := ed25519.NewKeyFromSeed(seed)
	return &EdDSASigner{
		kid: kid,
		key: key,
		pub: key.Public().(ed25519.PublicKey),
	}, nil
}

func (s *EdDSASigner) Alg() string { return jwt.SigningMethodEdDSA.Alg() }
func (s *EdDSASigner) KID() string { return s.kid }

// Sign turns claims into a signed compact JWT string.
func (s *EdDSASigner) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// PublicJWK returns the JWK to publish so others can verify our tokens.
func (s *EdDSASigner) PublicJWK() JWK {
	return NewEd25519JWK(s.kid, "sig", s.Alg(), s.pub)
}
