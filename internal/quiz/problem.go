// Package quiz implements the arithmetic quiz engine: problem generation,
// scoring, turn handling, the countdown and the game lifecycle.
// It has no terminal dependencies so the rules stay pure and testable.
package quiz

import (
	"fmt"
	"math/rand"
	"time"
)

// Operator is an arithmetic operation a problem can use.
type Operator int

const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// Symbol returns the sign shown to players.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return "?"
	}
}

// String returns a human-readable name for the operator.
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "unknown"
	}
}

// Apply computes a op b. Division is integer division and panics when b is 0.
// Unknown operators add.
func (o Operator) Apply(a, b int) int {
	switch o {
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	default:
		return a + b
	}
}

// Problem is a single question. It is never mutated after generation.
type Problem struct {
	FirstOperand  int
	SecondOperand int
	Operator      Operator
	Answer        int
}

// String renders the problem the way it is shown, e.g. "7 + 4 = ?".
func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d = ?", p.FirstOperand, p.Operator.Symbol(), p.SecondOperand)
}

// Operand ranges, inclusive.
const (
	addMin        = 1
	addMax        = 15
	subMinuendMin = 5
	subMinuendMax = 19
	mulMin        = 2
	mulMax        = 11
	divFactorMin  = 2
	divFactorMax  = 11
)

// Generator produces problems from a seeded random source.
// The same seed always yields the same sequence of problems.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator. A seed of 0 means seed from the clock.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate creates a new problem using an operator allowed at the given difficulty.
// Unknown difficulties use the easy operator set.
func (g *Generator) Generate(d Difficulty) Problem {
	ops := d.Operators()
	op := ops[g.rng.Intn(len(ops))]

	switch op {
	case OpSubtract:
		first := g.between(subMinuendMin, subMinuendMax)
		second := g.between(1, first-1)
		return Problem{FirstOperand: first, SecondOperand: second, Operator: op, Answer: op.Apply(first, second)}

	case OpMultiply:
		a := g.between(mulMin, mulMax)
		b := g.between(mulMin, mulMax)
		return Problem{FirstOperand: a, SecondOperand: b, Operator: op, Answer: op.Apply(a, b)}

	case OpDivide:
		divisor := g.between(divFactorMin, divFactorMax)
		quotient := g.between(divFactorMin, divFactorMax)
		dividend := OpMultiply.Apply(divisor, quotient)
		return Problem{FirstOperand: dividend, SecondOperand: divisor, Operator: op, Answer: op.Apply(dividend, divisor)}

	default:
		a := g.between(addMin, addMax)
		b := g.between(addMin, addMax)
		return Problem{FirstOperand: a, SecondOperand: b, Operator: OpAdd, Answer: OpAdd.Apply(a, b)}
	}
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
