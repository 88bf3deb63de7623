package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Envelope layout: base64(salt ∥ nonce ∥ ciphertext+tag). The salt and
// nonce are drawn fresh on every Encrypt call and travel with the
// ciphertext; only the shared secret is needed to decrypt.
const (
	saltSize         = 16
	nonceSize        = 12
	keySize          = 32
	pbkdf2Iterations = 100_000
)

var (
	ErrInvalidArgument   = errors.New("encryption: plaintext and secret are required")
	ErrMalformedEnvelope = errors.New("encryption: malformed envelope")
	ErrDecryptionFailed  = errors.New("encryption: decryption failed, invalid data or wrong secret")
)

// Encrypt seals plaintext under a key derived from secret and returns the
// base64 envelope. Two calls with identical inputs produce different
// envelopes because the salt and nonce are random per call.
func Encrypt(plaintext, secret string) (string, error) {
	if plaintext == "" || secret == "" {
		return "", ErrInvalidArgument
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	gcm, err := newGCM(secret, salt)
	if err != nil {
		return "", err
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	combined := make([]byte, 0, saltSize+nonceSize+len(sealed))
	combined = append(combined, salt...)
	combined = append(combined, nonce...)
	combined = append(combined, sealed...)

	return base64.StdEncoding.EncodeToString(combined), nil
}

// Decrypt opens an envelope produced by Encrypt with the same secret.
// A wrong secret or tampered data fails with ErrDecryptionFailed; no
// partial plaintext is ever returned.
func Decrypt(envelope, secret string) (string, error) {
	if secret == "" {
		return "", ErrInvalidArgument
	}

	// an empty envelope is valid base64 decoding to zero bytes; the length
	// guard below classifies it as malformed
	combined, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", ErrMalformedEnvelope
	}

	if len(combined) <= saltSize+nonceSize {
		return "", ErrMalformedEnvelope
	}

	salt := combined[:saltSize]
	nonce := combined[saltSize : saltSize+nonceSize]
	sealed := combined[saltSize+nonceSize:]

	gcm, err := newGCM(secret, salt)
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// DecryptOrFallback decrypts an envelope and substitutes fallback when the
// record cannot be opened, so one bad row never blocks rendering a list.
func DecryptOrFallback(envelope, secret, fallback string) string {
	plaintext, err := Decrypt(envelope, secret)
	if err != nil {
		return fallback
	}

	return plaintext
}

func newGCM(secret string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(secret), salt, pbkdf2Iterations, keySize, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return gcm, nil
}
