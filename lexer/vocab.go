package lexer

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Vocabulary tables. Built once at package init and never written afterwards,
// so they are safe to share across concurrent Tokenize calls without
// synchronization.

// functions is the set of recognized function names. Note that "log_base"
// contains an underscore the identifier scanner never accepts, and "^" is
// claimed by the operator branch before the identifier scanner could see it;
// both entries exist as metadata for downstream consumers.
var functions = map[string]struct{}{
	"sin":      {},
	"cos":      {},
	"tan":      {},
	"sec":      {},
	"csc":      {},
	"cot":      {},
	"asin":     {},
	"acos":     {},
	"atan":     {},
	"asec":     {},
	"acsc":     {},
	"acot":     {},
	"log":      {},
	"ln":       {},
	"log_base": {},
	"sqrt":     {},
	"abs":      {},
	"nroot":    {},
	"^":        {},
}

// functionArity maps each function to its expected argument count. The
// tokenizer never enforces arity; the table is carried for the parser.
var functionArity = map[string]int{
	"sin":      1,
	"cos":      1,
	"tan":      1,
	"sec":      1,
	"csc":      1,
	"cot":      1,
	"asin":     1,
	"acos":     1,
	"atan":     1,
	"asec":     1,
	"acsc":     1,
	"acot":     1,
	"log":      1,
	"ln":       1,
	"log_base": 2,
	"sqrt":     1,
	"abs":      1,
	"nroot":    2,
	"^":        2,
}

// constants maps named constants to their values. Decimal keeps the shipped
// 16-digit literals exact instead of rounding through a float64.
var constants = map[string]decimal.Decimal{
	"pi": decimal.RequireFromString("3.141592653589793"),
	"e":  decimal.RequireFromString("2.718281828459045"),
}

var variables = map[string]struct{}{
	"x": {},
	"y": {},
	"z": {},
}

// IsFunction reports whether name is a recognized function.
func IsFunction(name string) bool {
	_, ok := functions[name]
	return ok
}

// Arity returns the expected argument count for a recognized function.
func Arity(name string) (int, bool) {
	n, ok := functionArity[name]
	return n, ok
}

// IsConstant reports whether name is a recognized constant.
func IsConstant(name string) bool {
	_, ok := constants[name]
	return ok
}

// ConstantValue returns the value of a recognized constant.
func ConstantValue(name string) (decimal.Decimal, bool) {
	v, ok := constants[name]
	return v, ok
}

// IsVariable reports whether name is a recognized variable.
func IsVariable(name string) bool {
	_, ok := variables[name]
	return ok
}

// Functions returns the recognized function names in sorted order.
func Functions() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Constants returns the recognized constant names in sorted order.
func Constants() []string {
	names := make([]string, 0, len(constants))
	for name := range constants {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Variables returns the recognized variable names in sorted order.
func Variables() []string {
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
