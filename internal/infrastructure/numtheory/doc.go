// Package numtheory implements the integer arithmetic primitives of the RSA
// engine: square-and-multiply modular exponentiation, the extended Euclidean
// inverse, binary GCD, integer roots, the Miller-Rabin primality test and
// the safe-prime finder.

package numtheory
