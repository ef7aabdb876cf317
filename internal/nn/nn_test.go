package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/nn"
	"github.com/born-ml/autograd/internal/vector"
)

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func item(t *testing.T, n autodiff.Node) float64 {
	t.Helper()
	v, err := n.Value()
	require.NoError(t, err)
	x, err := v.Item()
	require.NoError(t, err)
	return x
}

func TestParameter(t *testing.T) {
	p := nn.NewParameter("test_param", vector.MustNew(1, 2, 3))

	assert.Equal(t, "test_param", p.Name())
	assert.Equal(t, 3, p.Dim())
	assert.Equal(t, []float64{1, 2, 3}, p.Value().Data())

	_, ok := p.Grad()
	assert.False(t, ok, "unbound parameter has no gradient")

	g := autodiff.NewGraph()
	v := p.Bind(g)
	assert.Same(t, v, p.Bind(g), "binding twice into one graph reuses the variable")

	require.NoError(t, autodiff.Grad(v.Mul(autodiff.Scalar(2)).Sum()))
	grad, ok := p.Grad()
	require.True(t, ok)
	assert.Equal(t, []float64{2, 2, 2}, grad.Data())

	p.ZeroGrad()
	_, ok = p.Grad()
	assert.False(t, ok)

	other := autodiff.NewGraph()
	assert.NotSame(t, v, p.Bind(other))
}

func TestParameter_SetValue(t *testing.T) {
	p := nn.NewParameter("w", vector.MustNew(1, 2))

	require.NoError(t, p.SetValue(vector.MustNew(3, 4)))
	assert.Equal(t, []float64{3, 4}, p.Value().Data())

	err := p.SetValue(vector.MustNew(1, 2, 3))
	assert.ErrorIs(t, err, vector.ErrShapeMismatch)
}

func TestParameter_SharedUseAccumulates(t *testing.T) {
	p := nn.NewParameter("w", vector.Scalar(3))
	g := autodiff.NewGraph()

	// w*w + w, both uses go through one binding.
	loss := p.Bind(g).Mul(p.Bind(g)).Add(p.Bind(g))
	require.NoError(t, autodiff.Grad(loss))

	grad, ok := p.Grad()
	require.True(t, ok)
	assert.Equal(t, []float64{7}, grad.Data())
}

func TestParameter_InterleavedBindsReuseVariable(t *testing.T) {
	p := nn.NewParameter("w", vector.Scalar(2))
	g1 := autodiff.NewGraph()
	g2 := autodiff.NewGraph()

	a := p.Bind(g1)
	other := p.Bind(g2)
	b := p.Bind(g1)
	assert.Same(t, a, b)
	assert.NotSame(t, a, other)

	require.NoError(t, autodiff.Grad(a.Mul(b)))
	grad, ok := p.Grad()
	require.True(t, ok)
	assert.Equal(t, []float64{4}, grad.Data())

	require.NoError(t, p.SetValue(vector.Scalar(5)))
	assert.NotSame(t, a, p.Bind(g1), "SetValue drops stale bindings")
}

func TestLinear_Forward(t *testing.T) {
	neuron, err := nn.NewLinearFrom(vector.MustNew(-0.5, 2, 3), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, neuron.InFeatures())

	g := autodiff.NewGraph()
	out := neuron.Forward(g.Variable(vector.MustNew(12, 3, 2)))
	assert.InDelta(t, 8, item(t, out), 1e-12)

	require.NoError(t, autodiff.Grad(out))
	dw, ok := neuron.Weight().Grad()
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{12, 3, 2}, dw.Data(), 1e-12)
	db, ok := neuron.Bias().Grad()
	require.True(t, ok)
	assert.Equal(t, []float64{1}, db.Data())
}

func TestLinear_ShapeMismatch(t *testing.T) {
	neuron := nn.NewLinear(3, rand.New(rand.NewSource(1)))
	g := autodiff.NewGraph()

	_, err := neuron.Forward(g.Variable(vector.MustNew(1, 2))).Value()
	assert.ErrorIs(t, err, vector.ErrShapeMismatch)

	_, err = nn.NewLinearFrom(vector.Vector{}, 0)
	assert.ErrorIs(t, err, vector.ErrConstruction)
}

func TestXavier_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	w := nn.Xavier(100, 100, 1, rng)
	bound := math.Sqrt(6.0 / 101)

	require.Equal(t, 100, w.Dim())
	for _, x := range w.Data() {
		assert.LessOrEqual(t, math.Abs(x), bound)
	}

	again := nn.Xavier(100, 100, 1, rand.New(rand.NewSource(42)))
	assert.Equal(t, w.Data(), again.Data(), "same seed, same weights")
}

func TestActivations(t *testing.T) {
	x := vector.MustNew(-1, 0.5)

	tests := []struct {
		name   string
		module nn.Module
		want   []float64
	}{
		{"relu", nn.NewReLU(), []float64{0, 0.5}},
		{"sigmoid", nn.NewSigmoid(), []float64{sigmoid(-1), sigmoid(0.5)}},
		{"tanh", nn.NewTanh(), []float64{math.Tanh(-1), math.Tanh(0.5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := autodiff.NewGraph()
			out, err := tt.module.Forward(g.Variable(x)).Value()
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, out.Data(), 1e-12)
			assert.Nil(t, tt.module.Parameters())
		})
	}
}

// TestLogisticRegression reproduces one forward/backward step of a logistic
// neuron with a cross-entropy loss.
func TestLogisticRegression(t *testing.T) {
	neuron, err := nn.NewLinearFrom(vector.MustNew(-0.5, 0.3, 1), 2)
	require.NoError(t, err)
	model := nn.NewSequential(neuron, nn.NewSigmoid())
	x := vector.MustNew(10, 0.4, 3.5)

	for _, y := range []float64{0, 1} {
		g := autodiff.NewGraph()
		pred := model.Forward(g.Variable(x))
		loss := nn.NewBCELoss().Forward(pred, y)

		z := -5 + 0.12 + 3.5 + 2
		p := sigmoid(z)
		wantLoss := -math.Log(p)
		if y == 0 {
			wantLoss = -math.Log(1 - p)
		}
		assert.InDelta(t, p, item(t, pred), 1e-12)
		assert.InDelta(t, wantLoss, item(t, loss), 1e-9)

		require.NoError(t, autodiff.Grad(loss))

		// dL/dz = p - y for sigmoid + BCE.
		dw, ok := neuron.Weight().Grad()
		require.True(t, ok)
		want := x.Scale(p - y).Data()
		assert.InDeltaSlice(t, want, dw.Data(), 1e-9, "y=%v", y)

		db, ok := neuron.Bias().Grad()
		require.True(t, ok)
		assert.InDelta(t, p-y, db.Data()[0], 1e-9)
	}
}

func TestBCELoss_SoftTarget(t *testing.T) {
	g := autodiff.NewGraph()
	p := g.Scalar(0.3)
	loss := nn.NewBCELoss().Forward(p, 0.25)

	want := -(0.25*math.Log(0.3) + 0.75*math.Log(0.7))
	assert.InDelta(t, want, item(t, loss), 1e-9)

	require.NoError(t, autodiff.Grad(loss))
	grad, _ := p.Grad()
	assert.InDelta(t, -(0.25/0.3)+0.75/0.7, grad.Data()[0], 1e-6)

	assert.Panics(t, func() { nn.NewBCELoss().Forward(p, 2) })
}

func TestMSELoss(t *testing.T) {
	g := autodiff.NewGraph()
	pred := g.Variable(vector.MustNew(1, 2, 4))
	loss := nn.NewMSELoss().Forward(pred, vector.MustNew(1, 1, 1))

	assert.InDelta(t, (0.0+1+9)/3, item(t, loss), 1e-12)

	require.NoError(t, autodiff.Grad(loss))
	grad, _ := pred.Grad()
	assert.InDeltaSlice(t, []float64{0, 2.0 / 3, 2}, grad.Data(), 1e-12)
}

func TestSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	model := nn.NewSequential(nn.NewLinear(2, rng))
	model.Add(nn.NewTanh())

	assert.Equal(t, 2, model.Len())
	assert.Len(t, model.Parameters(), 2)
	assert.IsType(t, &nn.Tanh{}, model.Module(1))
	assert.Panics(t, func() { model.Module(2) })
	assert.Equal(t, "Sequential(Linear, Tanh)", model.String())
}

func TestSequential_StateDict(t *testing.T) {
	src := nn.NewSequential(nn.NewLinear(3, rand.New(rand.NewSource(1))), nn.NewSigmoid())
	dst := nn.NewSequential(nn.NewLinear(3, rand.New(rand.NewSource(2))), nn.NewSigmoid())

	state := src.StateDict()
	require.Len(t, state, 2)
	assert.Contains(t, state, "0.weight")
	assert.Contains(t, state, "0.bias")

	require.NoError(t, dst.LoadStateDict(state))
	assert.Equal(t, state, dst.StateDict())

	state["1.extra"] = vector.Scalar(1)
	assert.Error(t, dst.LoadStateDict(state))

	delete(state, "1.extra")
	delete(state, "0.bias")
	assert.Error(t, dst.LoadStateDict(state))
}

func TestSequential_LoadStateDictIsAtomic(t *testing.T) {
	model := nn.NewSequential(
		nn.NewLinear(2, rand.New(rand.NewSource(1))),
		nn.NewTanh(),
		nn.NewLinear(1, rand.New(rand.NewSource(2))),
	)
	before := model.StateDict()

	tests := map[string]map[string]vector.Vector{
		"missing later key": {
			"0.weight": vector.MustNew(9, 9),
			"0.bias":   vector.Scalar(9),
			"2.weight": vector.Scalar(9),
		},
		"later width change": {
			"0.weight": vector.MustNew(9, 9),
			"0.bias":   vector.Scalar(9),
			"2.weight": vector.MustNew(9, 9),
			"2.bias":   vector.Scalar(9),
		},
	}
	for name, state := range tests {
		t.Run(name, func(t *testing.T) {
			require.Error(t, model.LoadStateDict(state))
			assert.Equal(t, before, model.StateDict(), "no parameter may change on a failed load")
		})
	}
}
