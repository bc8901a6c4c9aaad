// Package cryptography implements the RSA engine: safe-prime key
// generation with private-exponent hardening, the OAEP and PSS padding
// engines, the public and private modular-exponentiation operations
// (naive, blinded, CRT, blinded-CRT) and the portable key codec.

package cryptography
