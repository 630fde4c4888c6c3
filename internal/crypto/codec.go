package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"
)

// ErrIncorrectMasterPassword reports an authentication failure while
// decrypting a sync item: the credential's security password or account
// salt does not match the one the ciphertext was produced under.
var ErrIncorrectMasterPassword = errors.New("incorrect master password")

// encryptPasswordNamespace domain-separates sync-item encrypt passwords
// from any other derivation of the same salt and password material.
const encryptPasswordNamespace = "B8392FFE-200E-4197-8BDE-E3FEBD1A77AC"

// rawKeySeparator joins the per-type semantic parts of a raw key. The
// ordering of parts is fixed per data type and must be identical on every
// device.
const rawKeySeparator = "__"

// JoinKeyParts joins semantic key parts with the raw-key separator,
// dropping empty parts the way the original key builder does.
func JoinKeyParts(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, rawKeySeparator)
}

// itemCodec is the private implementation of [ItemCodec].
type itemCodec struct {
	// Argon2id tuning parameters, adjustable per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	// Key derivation is expensive; items in a batch share one credential,
	// so derived keys are cached per password string.
	mu   sync.Mutex
	keys map[string][]byte
}

// NewItemCodec constructs an [ItemCodec] with the Argon2id parameters
// recommended by OWASP (2024): 1 iteration, 64 MiB, 4 threads, 256-bit key.
func NewItemCodec() ItemCodec {
	return &itemCodec{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
		keys:         make(map[string][]byte),
	}
}

// HashKey implements [ItemCodec]. The digest is unsalted so the same raw
// key hashes identically on every device.
func (c *itemCodec) HashKey(rawKey string) string {
	sum := sha512.Sum512([]byte(rawKey))
	return hex.EncodeToString(sum[:])
}

// BuildEncryptPassword implements [ItemCodec].
func (c *itemCodec) BuildEncryptPassword(accountSalt, securityPassword string) (string, error) {
	if accountSalt == "" || securityPassword == "" {
		return "", errors.New("build encrypt password: accountSalt and securityPassword are required")
	}
	return accountSalt + ":" + securityPassword + ":" + encryptPasswordNamespace, nil
}

// deriveKey stretches password into a 256-bit AES key with Argon2id. The
// salt is a fixed constant: cross-device determinism is required, and the
// password string already embeds the per-account salt.
func (c *itemCodec) deriveKey(password string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	if key, ok := c.keys[password]; ok {
		return key
	}

	key := argon2.IDKey(
		[]byte(password),
		[]byte(encryptPasswordNamespace),
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)
	c.keys[password] = key
	return key
}

// EncryptString implements [ItemCodec]. The output is a Base64 (standard
// encoding) string of the blob: nonce (12 bytes) ‖ ciphertext.
func (c *itemCodec) EncryptString(plaintext, password string) (string, error) {
	block, err := aes.NewCipher(c.deriveKey(password))
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptString implements [ItemCodec]. An auth-tag mismatch almost always
// means the wrong credential, so it surfaces as
// [ErrIncorrectMasterPassword].
func (c *itemCodec) DecryptString(encrypted, password string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	block, err := aes.NewCipher(c.deriveKey(password))
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrIncorrectMasterPassword)
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIncorrectMasterPassword, err)
	}

	return string(plaintext), nil
}
