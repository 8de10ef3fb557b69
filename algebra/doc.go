// Package algebra implements arithmetic modulo a prime Q and the linear algebra
// over Z_q[X]/(X^256+1) shared by ML-DSA and ML-KEM.
//
// Normal-domain values (Polynomial, Vector) and NTT-domain values
// (NttPolynomial, NttVector, NttMatrix) are distinct types, so mixing them
// without going through a transform does not compile. Vector and matrix shapes
// are carried by Dim type parameters for the same reason.
//
// Every operation returns a fresh value with canonical coefficients in [0, Q).
// Moving between the two domains is the job of package ntt.
package algebra
