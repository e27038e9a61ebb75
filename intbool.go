package todoist

// IntBool is an integer that is semantically boolean. The API specifies
// several flag fields as 0/1 integers, so the value is preserved as an
// integer end-to-end for wire compatibility. The zero value is false.
type IntBool int

// NewIntBool converts a native bool to its wire representation.
func NewIntBool(v bool) IntBool {
	if v {
		return 1
	}

	return 0
}

// Bool reports the boolean meaning of the value. Any non-zero integer is
// true, matching how the server treats these fields.
func (b IntBool) Bool() bool {
	return b != 0
}

// Not returns the negated flag, normalized to 0 or 1.
func (b IntBool) Not() IntBool {
	return NewIntBool(!b.Bool())
}
