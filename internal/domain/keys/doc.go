// Package keys defines the contracts and models for storing and retrieving
// serialized RSA key material and its metadata.

package keys
