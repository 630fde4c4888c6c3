package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/item_codec_mock.go -package=mock

// ItemCodec is the pure encryption/decryption and key-derivation pipeline
// for sync items. It performs no I/O; every method is a deterministic
// function of its inputs (randomness enters only through encryption nonces).
//
// Pipeline:
//
//	rawKey   = "<dataType> >> " + JoinKeyParts(parts...)
//	id       = HashKey(rawKey)                       (SHA-512, unsalted)
//	password = BuildEncryptPassword(salt, syncPwd)   (namespaced concat)
//	data     = EncryptString(canonicalJSON, password)
//
// HashKey is deliberately unsalted: the same logical entity on two devices
// must collapse to the same relay record.
type ItemCodec interface {
	// HashKey returns the hex SHA-512 digest of rawKey.
	HashKey(rawKey string) string

	// BuildEncryptPassword binds ciphertexts to both the account (via the
	// relay-issued salt) and the user's security password. The fixed
	// namespace constant domain-separates this password from any other use
	// of the same material; it adds no entropy.
	BuildEncryptPassword(accountSalt, securityPassword string) (string, error)

	// EncryptString encrypts plaintext under a key derived from password
	// and returns a base64 blob (nonce ‖ ciphertext).
	EncryptString(plaintext, password string) (string, error)

	// DecryptString reverses EncryptString. An authentication failure is
	// reported as ErrIncorrectMasterPassword, never as garbage output.
	DecryptString(encrypted, password string) (string, error)

	// CanonicalSerialize returns key-order-stable JSON for v, so identical
	// logical content always serializes identically.
	CanonicalSerialize(v any) (string, error)
}
