package rsa

import "errors"

// ErrInputTooLarge indicates a plaintext exceeding the OAEP capacity
// k - 2*hLen - 2, or an integer representative that is not below the modulus.
var ErrInputTooLarge = errors.New("input too large for RSA modulus")

// ErrOAEPDecoding covers every OAEP decode failure: wrong leading byte,
// label hash mismatch or missing separator. The causes are deliberately
// indistinguishable to the caller to limit padding-oracle leakage; the
// specific cause is only logged at debug level.
var ErrOAEPDecoding = errors.New("oaep decoding error")

// ErrPrimeGenerationExhausted indicates that no prime was found within the
// configured number of candidate draws.
var ErrPrimeGenerationExhausted = errors.New("prime generation exhausted maximum tries")

// ErrKeyHardeningExhausted indicates that the rejection loop over the private
// exponent could not find an acceptable d within its budget.
var ErrKeyHardeningExhausted = errors.New("key hardening exhausted maximum attempts")

// ErrKeyDecoding indicates a malformed serialized key blob.
var ErrKeyDecoding = errors.New("malformed key blob")
