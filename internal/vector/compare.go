package vector

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Lt returns 1 where v < other, 0 elsewhere.
func (v Vector) Lt(other Vector) (Vector, error) {
	return v.binaryOp("lt", other, func(a, b float64) float64 { return boolToFloat(a < b) })
}

// Le returns 1 where v <= other, 0 elsewhere.
func (v Vector) Le(other Vector) (Vector, error) {
	return v.binaryOp("le", other, func(a, b float64) float64 { return boolToFloat(a <= b) })
}

// Eq returns 1 where v == other, 0 elsewhere.
func (v Vector) Eq(other Vector) (Vector, error) {
	return v.binaryOp("eq", other, func(a, b float64) float64 { return boolToFloat(a == b) })
}

// Ne returns 1 where v != other, 0 elsewhere.
func (v Vector) Ne(other Vector) (Vector, error) {
	return v.binaryOp("ne", other, func(a, b float64) float64 { return boolToFloat(a != b) })
}

// Ge returns 1 where v >= other, 0 elsewhere.
func (v Vector) Ge(other Vector) (Vector, error) {
	return v.binaryOp("ge", other, func(a, b float64) float64 { return boolToFloat(a >= b) })
}

// Gt returns 1 where v > other, 0 elsewhere.
func (v Vector) Gt(other Vector) (Vector, error) {
	return v.binaryOp("gt", other, func(a, b float64) float64 { return boolToFloat(a > b) })
}

// All reports whether every element is non-zero.
func (v Vector) All() bool {
	for _, x := range v.data {
		if x == 0 {
			return false
		}
	}
	return true
}

// Any reports whether at least one element is non-zero.
func (v Vector) Any() bool {
	for _, x := range v.data {
		if x != 0 {
			return true
		}
	}
	return false
}

// Equal reports whether v and other have the same width and values.
func (v Vector) Equal(other Vector) bool {
	if v.Dim() != other.Dim() {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
