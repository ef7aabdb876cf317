package vector

// normalizeIndex resolves a possibly negative index against dim.
func normalizeIndex(i, dim int) (int, error) {
	idx := i
	if idx < 0 {
		idx += dim
	}
	if idx < 0 || idx >= dim {
		return 0, &IndexError{Index: i, Dim: dim}
	}
	return idx, nil
}

// sliceIndices expands start:stop:step into concrete positions.
// Bounds are clamped and negative values count from the end.
func sliceIndices(start, stop, step, dim int) ([]int, error) {
	if step == 0 {
		return nil, &IndexError{Index: step, Dim: dim, Details: "slice step cannot be zero"}
	}

	lower, upper := 0, dim
	if step < 0 {
		lower, upper = -1, dim-1
	}
	clamp := func(i int) int {
		if i < 0 {
			i += dim
			if i < lower {
				i = lower
			}
		} else if i > upper {
			i = upper
		}
		return i
	}
	start, stop = clamp(start), clamp(stop)

	var idx []int
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		idx = append(idx, i)
	}
	return idx, nil
}

// At returns element i as a 1-element vector.
func (v Vector) At(i int) (Vector, error) {
	idx, err := normalizeIndex(i, v.Dim())
	if err != nil {
		return Vector{}, err
	}
	return Scalar(v.data[idx]), nil
}

// Slice returns the elements selected by start:stop:step.
// An empty selection is an index error since vectors cannot be empty.
//
// Out of range bounds are clamped, so an omitted bound is written as an
// overshooting one: v.Slice(0, v.Dim(), 1) selects everything, and
// v.Slice(-1, -v.Dim()-1, -1) selects everything in reverse (see Reverse).
func (v Vector) Slice(start, stop, step int) (Vector, error) {
	idx, err := sliceIndices(start, stop, step, v.Dim())
	if err != nil {
		return Vector{}, err
	}
	if len(idx) == 0 {
		return Vector{}, &IndexError{Index: start, Dim: v.Dim(), Details: "empty slice"}
	}
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = v.data[j]
	}
	return Vector{data: out}, nil
}

// Reverse returns the elements of v in reverse order.
func (v Vector) Reverse() Vector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[len(out)-1-i] = x
	}
	return Vector{data: out}
}

// Set returns a copy of v with element i replaced by x.
func (v Vector) Set(i int, x float64) (Vector, error) {
	idx, err := normalizeIndex(i, v.Dim())
	if err != nil {
		return Vector{}, err
	}
	out := v.Copy()
	out.data[idx] = x
	return out, nil
}

// SetSlice returns a copy of v with the positions selected by
// start:stop:step replaced by values. A 1-element values vector is
// broadcast over the selection; otherwise the lengths must match.
func (v Vector) SetSlice(start, stop, step int, values Vector) (Vector, error) {
	idx, err := sliceIndices(start, stop, step, v.Dim())
	if err != nil {
		return Vector{}, err
	}
	if values.Dim() != 1 && values.Dim() != len(idx) {
		return Vector{}, &IndexError{
			Index:   values.Dim(),
			Dim:     v.Dim(),
			Details: "number of indices doesn't match the number of values",
		}
	}
	out := v.Copy()
	for i, j := range idx {
		if values.Dim() == 1 {
			out.data[j] = values.data[0]
		} else {
			out.data[j] = values.data[i]
		}
	}
	return out, nil
}

// Delete returns a copy of v without element i.
func (v Vector) Delete(i int) (Vector, error) {
	idx, err := normalizeIndex(i, v.Dim())
	if err != nil {
		return Vector{}, err
	}
	if v.Dim() == 1 {
		return Vector{}, &IndexError{Index: i, Dim: v.Dim(), Details: "cannot delete the only element"}
	}
	out := make([]float64, 0, v.Dim()-1)
	out = append(out, v.data[:idx]...)
	out = append(out, v.data[idx+1:]...)
	return Vector{data: out}, nil
}
