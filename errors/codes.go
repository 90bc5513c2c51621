package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Syntax errors
type ErrorCode string

const (
	E1001 ErrorCode = "E1001" // Unexpected token
	E1002 ErrorCode = "E1002" // Expected token
	E1003 ErrorCode = "E1003" // Unclosed delimiter
	E1004 ErrorCode = "E1004" // Invalid assignment target
	E1005 ErrorCode = "E1005" // Invalid literal
	E1006 ErrorCode = "E1006" // Maximum nesting depth exceeded
	E1007 ErrorCode = "E1007" // Invalid token
	E1008 ErrorCode = "E1008" // Invalid group opening
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E1001: "unexpected token",
	E1002: "expected token",
	E1003: "unclosed delimiter",
	E1004: "invalid assignment target",
	E1005: "invalid literal",
	E1006: "maximum nesting depth exceeded",
	E1007: "invalid token",
	E1008: "invalid group opening",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "syntax"
	default:
		return "unknown"
	}
}
