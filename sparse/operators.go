// SPDX-License-Identifier: MIT

// Package sparse: element-wise operator capabilities.
//
// One generic merge routine serves every binary operator; what differs between
// operators is captured by BinaryOp: the element function, the identity of T
// and a Policy selecting how the result pattern is produced.
//
//	Policy        | emitted cells                       | typical op
//	--------------+-------------------------------------+-----------
//	Union         | rows stored in a OR b               | +, -
//	Intersection  | rows stored in a AND b              | product
//	Dense         | every row (0 OP 0 may be non-zero)  | quotient

package sparse

import "github.com/katalvlaran/lvsparse/matrix"

// Policy selects the output strategy of the co-iteration engine.
type Policy uint8

const (
	// PolicyUnion visits the union of both patterns; OP(x,0) and OP(0,y) are
	// evaluated for one-sided rows. Valid when OP(0,0) == 0.
	PolicyUnion Policy = iota

	// PolicyIntersection only evaluates rows stored in both operands.
	// Valid when OP(x,0) == OP(0,y) == 0 for finite x, y.
	PolicyIntersection

	// PolicyDense evaluates every cell through a per-column dense
	// accumulator seeded with OP(0,0). Required when OP(0,0) != 0.
	PolicyDense
)

const panicNilOpFunc = "sparse: NewBinaryOp: fn must not be nil"

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case PolicyUnion:
		return "union"
	case PolicyIntersection:
		return "intersection"
	case PolicyDense:
		return "dense"
	default:
		return "unknown"
	}
}

// BinaryOp is the capability set the engine needs from an operator.
type BinaryOp[T matrix.Element] interface {
	// Name is used in error messages and logs (e.g. "operator +").
	Name() string

	// Apply evaluates the operator on two elements, in textual order.
	Apply(x, y T) T

	// Identity returns the additive identity of T.
	Identity() T

	// Policy selects the merge strategy.
	Policy() Policy
}

// funcOp adapts a plain function to BinaryOp.
type funcOp[T matrix.Element] struct {
	name   string
	policy Policy
	fn     func(x, y T) T
}

func (o funcOp[T]) Name() string   { return o.name }
func (o funcOp[T]) Apply(x, y T) T { return o.fn(x, y) }
func (o funcOp[T]) Identity() T    { return matrix.Zero[T]() }
func (o funcOp[T]) Policy() Policy { return o.policy }

// NewBinaryOp builds a custom operator. Choosing a policy that does not
// match fn (e.g. PolicyUnion for an fn with fn(0,0) != 0) yields results that
// differ from the dense evaluation; the engine does not second-guess it.
//
// Panics when fn is nil (programmer error).
func NewBinaryOp[T matrix.Element](name string, policy Policy, fn func(x, y T) T) BinaryOp[T] {
	if fn == nil {
		panic(panicNilOpFunc)
	}

	return funcOp[T]{name: name, policy: policy, fn: fn}
}

// Plus is element-wise addition (PolicyUnion).
func Plus[T matrix.Element]() BinaryOp[T] {
	return funcOp[T]{name: "operator +", policy: PolicyUnion, fn: func(x, y T) T { return x + y }}
}

// Minus is element-wise subtraction (PolicyUnion).
func Minus[T matrix.Element]() BinaryOp[T] {
	return funcOp[T]{name: "operator -", policy: PolicyUnion, fn: func(x, y T) T { return x - y }}
}

// Times is the Hadamard product (PolicyIntersection).
func Times[T matrix.Element]() BinaryOp[T] {
	return funcOp[T]{name: "product", policy: PolicyIntersection, fn: func(x, y T) T { return x * y }}
}

// Divide is the Hadamard quotient (PolicyDense): 0/0 is not the identity
// for floating-point T, so every cell must be evaluated.
func Divide[T matrix.Element]() BinaryOp[T] {
	return funcOp[T]{name: "quotient", policy: PolicyDense, fn: func(x, y T) T { return x / y }}
}

// renamedOp reports a different Name (e.g. "operator +=") for the same op.
type renamedOp[T matrix.Element] struct {
	BinaryOp[T]
	name string
}

func (o renamedOp[T]) Name() string { return o.name }
