package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/vector"
)

func requireGrad(t *testing.T, v *autodiff.Variable) []float64 {
	t.Helper()
	grad, ok := v.Grad()
	require.True(t, ok, "variable %s has no gradient", v)
	return grad.Data()
}

// TestGrad_Sin: d(sin v)/dv = cos v.
func TestGrad_Sin(t *testing.T) {
	g := autodiff.NewGraph()
	v := g.Variable(vector.MustNew(2, 1, -3))
	out := v.Sin()

	require.NoError(t, autodiff.Grad(out))

	want := []float64{math.Cos(2), math.Cos(1), math.Cos(-3)}
	assert.InDeltaSlice(t, want, requireGrad(t, v), 1e-8)
}

// TestGrad_LinearModel: h = w·x + b.
func TestGrad_LinearModel(t *testing.T) {
	g := autodiff.NewGraph()
	w := g.Variable(vector.MustNew(-0.5, 2, 3))
	b := g.Scalar(2)
	x := vector.MustNew(12, 3, 2)

	h := w.MatMul(autodiff.Const(x)).Add(b)

	value, err := h.Value()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{8}, value.Data(), 1e-12)

	require.NoError(t, autodiff.Grad(h))
	assert.InDeltaSlice(t, []float64{12, 3, 2}, requireGrad(t, w), 1e-8)
	assert.InDeltaSlice(t, []float64{1}, requireGrad(t, b), 1e-8)
}

// TestGrad_LogNormal differentiates the log-density of a normal distribution.
func TestGrad_LogNormal(t *testing.T) {
	g := autodiff.NewGraph()
	mu := g.Scalar(5)
	sigma := g.Scalar(2)

	v4 := g.Sub(autodiff.Scalar(10), mu)
	v5 := v4.Div(sigma)
	v6 := v5.Pow(autodiff.Scalar(2))
	v7 := g.Mul(autodiff.Scalar(-0.5), v6)
	v8 := sigma.Log()
	v9 := v7.Sub(v8)
	v10 := v9.Sub(autodiff.Scalar(0.5 * math.Log(2*math.Pi)))

	require.NoError(t, autodiff.Grad(v10))

	assert.InDelta(t, 1.25, requireGrad(t, mu)[0], 1e-8)
	assert.InDelta(t, 2.625, requireGrad(t, sigma)[0], 1e-8)
}

func TestGrad_BroadcastScalarAndVector(t *testing.T) {
	for _, n := range []int{1, 3, 8} {
		g := autodiff.NewGraph()
		s := g.Scalar(0.7)
		v := g.Variable(vector.Full(n, 1.5))

		require.NoError(t, autodiff.Grad(s.Add(v).Sum()))

		assert.Equal(t, []float64{float64(n)}, requireGrad(t, s), "n=%d", n)
		assert.Equal(t, vector.Ones(n).Data(), requireGrad(t, v), "n=%d", n)
	}
}

func TestGrad_ShapeMismatch(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.Variable(vector.MustNew(1, 2, 3))
	b := g.Variable(vector.MustNew(4, 5))

	builders := map[string]func(autodiff.Operand) autodiff.Node{
		"add": a.Add,
		"sub": a.Sub,
		"mul": a.Mul,
		"div": a.Div,
		"pow": a.Pow,
		"dot": a.MatMul,
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			// Building never evaluates; the error surfaces on use.
			out := build(b)

			_, err := out.Value()
			assert.ErrorIs(t, err, autodiff.ErrShapeMismatch)

			err = autodiff.Grad(out)
			assert.ErrorIs(t, err, autodiff.ErrShapeMismatch)
		})
	}
}

// TestGrad_Diamond: x feeds two branches that meet again at the root.
func TestGrad_Diamond(t *testing.T) {
	build := func(swap bool) (*autodiff.Variable, autodiff.Node) {
		g := autodiff.NewGraph()
		x := g.Variable(vector.MustNew(0.5, -1.5))
		left := x.Sin()
		right := x.Mul(autodiff.Scalar(3))
		if swap {
			left, right = right, left
		}
		return x, left.Add(right).Sum()
	}

	want := []float64{math.Cos(0.5) + 3, math.Cos(-1.5) + 3}
	for _, swap := range []bool{false, true} {
		x, root := build(swap)
		require.NoError(t, autodiff.Grad(root))
		assert.InDeltaSlice(t, want, requireGrad(t, x), 1e-12, "swap=%v", swap)
	}
}

// TestGrad_SharedIntermediate: an operation node consumed twice accumulates
// both contributions before propagating to its own parents.
func TestGrad_SharedIntermediate(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Scalar(1.5)
	e := x.Exp()
	y := e.Mul(e).Add(e.Sin()) // e² + sin(e)

	require.NoError(t, autodiff.Grad(y))

	ev := math.Exp(1.5)
	want := (2*ev + math.Cos(ev)) * ev
	assert.InDelta(t, want, requireGrad(t, x)[0], 1e-9)
}

func TestGrad_SameOperandTwice(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Variable(vector.MustNew(3, -2))

	require.NoError(t, autodiff.Grad(x.Mul(x)))
	assert.Equal(t, []float64{6, -4}, requireGrad(t, x))
}

func TestGrad_Deterministic(t *testing.T) {
	run := func() ([]float64, []float64) {
		g := autodiff.NewGraph()
		w := g.Variable(vector.MustNew(0.1, -0.2, 0.3))
		b := g.Scalar(-0.4)
		x := autodiff.Const(vector.MustNew(1, 2, 3))
		loss := w.Mul(x).Add(b).Sigmoid().Log().Neg().Sum()

		require.NoError(t, autodiff.Grad(loss))
		return requireGrad(t, w), requireGrad(t, b)
	}

	w1, b1 := run()
	w2, b2 := run()
	assert.Equal(t, w1, w2)
	assert.Equal(t, b1, b2)
}

func TestGrad_RepeatedCallsOverwrite(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Scalar(2)
	y := x.Mul(autodiff.Scalar(3))

	require.NoError(t, autodiff.Grad(y))
	require.NoError(t, autodiff.Grad(y))
	assert.Equal(t, []float64{3}, requireGrad(t, x), "gradients must not accumulate across calls")
}

func TestGrad_OnlyVariablesReceiveGradients(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.Variable(vector.MustNew(1, 2))
	b := g.Variable(vector.MustNew(3, 4))
	root := a.Mul(b).Tanh().Sum()

	require.NoError(t, autodiff.Grad(root))

	for _, n := range autodiff.TopologicalOrder(root) {
		v, isVar := n.(*autodiff.Variable)
		if n.IsLeaf() {
			require.True(t, isVar)
			_, ok := v.Grad()
			assert.True(t, ok, "leaf %s should have a gradient", n)
			continue
		}
		_, hasGradSlot := n.(interface {
			Grad() (vector.Vector, bool)
		})
		assert.False(t, hasGradSlot, "operation node %s must not carry a gradient", n)
	}
}

func TestGrad_LeafRoot(t *testing.T) {
	g := autodiff.NewGraph()
	v := g.Variable(vector.MustNew(1, 2, 3))

	require.NoError(t, autodiff.Grad(v))
	assert.Equal(t, []float64{1, 1, 1}, requireGrad(t, v))
}

func TestGrad_UnreachedVariableKeepsNoGradient(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Scalar(1)
	unused := g.Scalar(2)

	require.NoError(t, autodiff.Grad(x.Exp()))
	_, ok := unused.Grad()
	assert.False(t, ok)
}

func TestGrad_NilRoot(t *testing.T) {
	assert.Error(t, autodiff.Grad(nil))
}

func TestGrad_DeepChain(t *testing.T) {
	const depth = 50000

	g := autodiff.NewGraph()
	x := g.Scalar(0)
	var out autodiff.Node = x
	for i := 0; i < depth; i++ {
		out = out.Add(autodiff.Scalar(1))
	}

	value, err := out.Value()
	require.NoError(t, err)
	assert.Equal(t, []float64{depth}, value.Data())

	require.NoError(t, autodiff.Grad(out))
	assert.Equal(t, []float64{1}, requireGrad(t, x))
}

// TestGrad_Activations checks the analytic table against finite differences
// through the whole graph.
func TestGrad_Activations(t *testing.T) {
	const h = 1e-6
	point := []float64{-0.8, 0.4, 1.7}

	tests := []struct {
		name  string
		build func(autodiff.Node) autodiff.Node
	}{
		{"abs", autodiff.Node.Abs},
		{"neg", autodiff.Node.Neg},
		{"exp", autodiff.Node.Exp},
		{"log1p", autodiff.Node.Log1p},
		{"cos", autodiff.Node.Cos},
		{"tan", autodiff.Node.Tan},
		{"sinh", autodiff.Node.Sinh},
		{"cosh", autodiff.Node.Cosh},
		{"tanh", autodiff.Node.Tanh},
		{"sigmoid", autodiff.Node.Sigmoid},
		{"relu", autodiff.Node.ReLU},
		{"log of exp", func(n autodiff.Node) autodiff.Node { return n.Exp().Log() }},
		{"log2 of exp", func(n autodiff.Node) autodiff.Node { return n.Exp().Log2() }},
		{"log10 of exp", func(n autodiff.Node) autodiff.Node { return n.Exp().Log10() }},
	}

	eval := func(t *testing.T, build func(autodiff.Node) autodiff.Node, x []float64) float64 {
		t.Helper()
		g := autodiff.NewGraph()
		out, err := build(g.Variable(vector.MustNew(x...))).Sum().Value()
		require.NoError(t, err)
		s, err := out.Item()
		require.NoError(t, err)
		return s
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := autodiff.NewGraph()
			x := g.Variable(vector.MustNew(point...))
			require.NoError(t, autodiff.Grad(tt.build(x).Sum()))

			got := requireGrad(t, x)
			for i := range point {
				plus := append([]float64(nil), point...)
				minus := append([]float64(nil), point...)
				plus[i] += h
				minus[i] -= h
				numeric := (eval(t, tt.build, plus) - eval(t, tt.build, minus)) / (2 * h)
				assert.InDelta(t, numeric, got[i], 1e-5, "element %d", i)
			}
		})
	}
}
