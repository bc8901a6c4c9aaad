// Package rsa defines the data model, contracts and error taxonomy for the
// from-scratch RSA engine: key pairs built from safe primes, OAEP encryption,
// PSS signatures and the four private-key operation variants.

package rsa
