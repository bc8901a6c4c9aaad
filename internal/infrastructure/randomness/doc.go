// Package randomness provides the entropy oracle contract and the
// Blum Blum Shub pseudo-random stream that produces the bulk random
// material of the RSA engine. The oracle is consulted only to seed BBS
// instances; a stream is stateful and must not be shared between
// goroutines without synchronization.

package randomness
