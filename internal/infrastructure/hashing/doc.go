// Package hashing implements the SHA-256 and SHA-512 hash functions from
// scratch per FIPS 180-4. The RSA engine uses SHA-256 exclusively; SHA-512
// is provided for completeness. Inputs are raw byte strings and digests are
// returned as raw bytes.

package hashing
