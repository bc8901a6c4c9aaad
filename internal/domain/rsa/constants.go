package rsa

// PublicExponent is the fixed public exponent e for every generated key pair.
const PublicExponent = 65537

// MinModulusBits is the smallest supported modulus size. Smaller sizes are undefined.
const MinModulusBits = 512

// HashSize is the output size in bytes of the engine hash (SHA-256).
const HashSize = 32

// SaltSize is the PSS salt length in bytes, fixed to the hash size.
const SaltSize = 32

// SeedSize is the number of entropy bytes drawn to seed a BBS stream.
const SeedSize = 64

// DecryptionVariant selects how the private-key exponentiation is performed.
// All variants produce the same plaintext; they differ in speed and in
// resistance to timing analysis.
type DecryptionVariant string

// Private-key operation variants.
const (
	// VariantNaive computes c^d mod n directly.
	VariantNaive DecryptionVariant = "naive"
	// VariantBlinded randomizes the exponent with a multiple of phi.
	VariantBlinded DecryptionVariant = "blinded"
	// VariantCRT splits the exponentiation over p and q.
	VariantCRT DecryptionVariant = "crt"
	// VariantBlindedCRT combines CRT with per-prime exponent blinding.
	VariantBlindedCRT DecryptionVariant = "blinded-crt"
)

// KeyTypePrivate represents a private key.
const KeyTypePrivate = "private"

// KeyTypePublic represents a public key.
const KeyTypePublic = "public"
