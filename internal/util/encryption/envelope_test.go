package encryption

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Encrypt_Decrypt_RoundTrip(t *testing.T) {
	plaintexts := []string{
		"Felt good",
		"a",
		"multi\nline\ncontent with unicode: सुरक्षा",
	}

	for _, plaintext := range plaintexts {
		envelope, err := Encrypt(plaintext, "worker@tatapower.com")
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, envelope)

		decrypted, err := Decrypt(envelope, "worker@tatapower.com")
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func Test_Decrypt_WrongSecret_FailsClosed(t *testing.T) {
	envelope, err := Encrypt("private journal entry", "owner@example.com")
	require.NoError(t, err)

	plaintext, err := Decrypt(envelope, "attacker@example.com")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Empty(t, plaintext)
}

func Test_Encrypt_SameInputs_ProduceDifferentEnvelopes(t *testing.T) {
	first, err := Encrypt("Day 1", "worker@tatapower.com")
	require.NoError(t, err)

	second, err := Encrypt("Day 1", "worker@tatapower.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func Test_Encrypt_EmptyInputs_ReturnInvalidArgument(t *testing.T) {
	_, err := Encrypt("", "secret")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Encrypt("plaintext", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Decrypt("irrelevant", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func Test_Decrypt_MalformedEnvelope_ReturnsMalformedError(t *testing.T) {
	// "" is valid base64 decoding to zero bytes, so it is malformed, not
	// an argument error
	_, err := Decrypt("", "secret")
	assert.ErrorIs(t, err, ErrMalformedEnvelope)

	_, err = Decrypt("not-base64!!", "secret")
	assert.ErrorIs(t, err, ErrMalformedEnvelope)

	// valid base64, but shorter than salt+nonce
	short := base64.StdEncoding.EncodeToString(make([]byte, 20))
	_, err = Decrypt(short, "secret")
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}

func Test_Decrypt_TamperedCiphertext_Fails(t *testing.T) {
	envelope, err := Encrypt("original", "secret@example.com")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(envelope)
	require.NoError(t, err)

	raw[len(raw)-1] ^= 0xFF
	tampered := base64.StdEncoding.EncodeToString(raw)

	_, err = Decrypt(tampered, "secret@example.com")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func Test_DecryptOrFallback_SubstitutesPlaceholder(t *testing.T) {
	envelope, err := Encrypt("Day 1", "owner@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Day 1", DecryptOrFallback(envelope, "owner@example.com", "Unable to decrypt title"))
	assert.Equal(
		t,
		"Unable to decrypt title",
		DecryptOrFallback(envelope, "other@example.com", "Unable to decrypt title"),
	)
	assert.Equal(
		t,
		"Unable to decrypt title",
		DecryptOrFallback("garbage", "owner@example.com", "Unable to decrypt title"),
	)
}
