package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testIssuer = "rollover-portal"

func newTestSigner(t *testing.T) (*EdDSASigner, *KeySet) {
	t.Helper()

	signer, err := NewEphemeralSigner("test-key-001")
	require.NoError(t, err)

	keys := NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	return signer, keys
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, keys := newTestSigner(t)
	verifier := NewVerifier(keys, testIssuer)

	claims := NewSessionClaims(
		"01USER", "alice@example.com", "Alice Example",
		time.Hour, testIssuer, time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01USER", got.Subject)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, "Alice Example", got.Name)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer, keys := newTestSigner(t)
	verifier := NewVerifier(keys, testIssuer)

	claims := NewSessionClaims(
		"01USER", "a@b.c", "",
		time.Minute, testIssuer, time.Now().UTC().Add(-2*time.Hour),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer, keys := newTestSigner(t)
	verifier := NewVerifier(keys, "someone-else")

	claims := NewSessionClaims("01USER", "", "", time.Hour, testIssuer, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	signer, _ := newTestSigner(t)
	otherKeys := NewKeySet()
	verifier := NewVerifier(otherKeys, testIssuer)

	claims := NewSessionClaims("01USER", "", "", time.Hour, testIssuer, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestSignerFromSeedIsDeterministic(t *testing.T) {
	t.Parallel()

	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}

	a, err := NewSignerFromSeed("kid", seed)
	require.NoError(t, err)
	b, err := NewSignerFromSeed("kid", seed)
	require.NoError(t, err)
	require.Equal(t, a.PublicJWK(), b.PublicJWK())

	_, err = NewSignerFromSeed("kid", seed[:16])
	require.Error(t, err)
}
