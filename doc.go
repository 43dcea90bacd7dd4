// Package lvsparse is a compressed-column sparse matrix arithmetic kernel
// for Go.
//
// What is inside?
//
//	matrix/ — generic row-major Dense[T], the Element constraint, shared
//	          sentinel errors and shape validators (the dense side of the kernel).
//	sparse/ — the CSC container, the binary co-iteration engine, the scalar
//	          broadcast engine, unary and in-place operations.
//
// Element types are floating-point and complex numbers; the identity of
// each is its Go zero value.
//
// Quick example (a + b where 3 + (-3) cancels):
//
//	a = [3 0]      b = [-3 2]      a + b = [0 2]
//	    [0 5]          [ 0 0]              [0 5]    nnz = 2
//
//	go get github.com/katalvlaran/lvsparse
package lvsparse
