package calculator

import (
	"fmt"
	"strings"
)

// Operation identifies one of the binary arithmetic operations.
type Operation int

const (
	OpAdd Operation = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
)

var operationNames = map[Operation]string{
	OpAdd:      "add",
	OpSubtract: "subtract",
	OpMultiply: "multiply",
	OpDivide:   "divide",
}

var operationLabels = map[Operation]string{
	OpAdd:      "Addition",
	OpSubtract: "Subtraction",
	OpMultiply: "Multiplication",
	OpDivide:   "Division",
}

var operationAliases = map[string]Operation{
	"add":      OpAdd,
	"+":        OpAdd,
	"subtract": OpSubtract,
	"sub":      OpSubtract,
	"-":        OpSubtract,
	"multiply": OpMultiply,
	"mul":      OpMultiply,
	"*":        OpMultiply,
	"x":        OpMultiply,
	"divide":   OpDivide,
	"div":      OpDivide,
	"/":        OpDivide,
}

// Operations returns every operation in declaration order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// String returns the canonical name, e.g. "add".
func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}

	return fmt.Sprintf("Operation(%d)", int(o))
}

// Label returns the display label, e.g. "Addition".
func (o Operation) Label() string {
	if label, ok := operationLabels[o]; ok {
		return label
	}

	return o.String()
}

// Aliases returns the alternative names accepted by ParseOperation,
// excluding the canonical name.
func (o Operation) Aliases() []string {
	var aliases []string

	for alias, op := range operationAliases {
		if op == o && alias != o.String() {
			aliases = append(aliases, alias)
		}
	}

	return aliases
}

// ParseOperation resolves a name or symbol to an Operation.
func ParseOperation(s string) (Operation, error) {
	op, ok := operationAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}

	return op, nil
}
