package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLogReg_Defaults(t *testing.T) {
	res, err := LogReg([]float64{-0.5, 0.3, 1}, []float64{10, 0.4, 3.5}, 2, 1)
	require.NoError(t, err)

	p := sigmoid(0.62)
	assert.InDelta(t, p, res.Model, 1e-12)
	assert.InDelta(t, -math.Log(p), res.Loss, 1e-9)
	assert.InDeltaSlice(t, []float64{10 * (p - 1), 0.4 * (p - 1), 3.5 * (p - 1)}, res.WeightGrad, 1e-9)
	assert.InDelta(t, p-1, res.BiasGrad, 1e-9)
}

func TestLogReg_NegativeLabel(t *testing.T) {
	res, err := LogReg([]float64{-0.5, 0.3, 1}, []float64{10, 0.4, 3.5}, 2, 0)
	require.NoError(t, err)

	p := sigmoid(0.62)
	assert.InDelta(t, -math.Log(1-p), res.Loss, 1e-9)
	assert.InDelta(t, p, res.BiasGrad, 1e-9)
}

func TestLogReg_Errors(t *testing.T) {
	_, err := LogReg([]float64{1, 2}, []float64{1, 2, 3}, 0, 1)
	assert.Error(t, err)

	_, err = LogReg(nil, []float64{1}, 0, 1)
	assert.Error(t, err)

	_, err = LogReg([]float64{1}, []float64{1}, 0, 0.5)
	assert.Error(t, err)
}

func TestLogRegCmd_JSON(t *testing.T) {
	out, err := run(t, "logreg", "--json", "--y", "0")
	require.NoError(t, err)

	var res LogRegResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, sigmoid(0.62), res.Model, 1e-12)
	assert.Len(t, res.WeightGrad, 3)
}

func TestLogRegCmd_Table(t *testing.T) {
	out, err := run(t, "logreg", "--w", "1,1", "--x", "0,0", "--b", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "model")
	assert.Contains(t, out, "0.5")
}

func TestTrain(t *testing.T) {
	for opt, lr := range map[string]float64{"sgd": 0.5, "adam": 0.1} {
		t.Run(opt, func(t *testing.T) {
			res, err := Train(context.Background(), TrainConfig{
				Optimizer: opt,
				LR:        lr,
				Epochs:    150,
				Samples:   48,
				Seed:      3,
			})
			require.NoError(t, err)

			assert.Less(t, res.FinalLoss, res.InitialLoss)
			assert.GreaterOrEqual(t, res.Accuracy, 0.85)
			assert.Len(t, res.Weight, 2)
		})
	}
}

func TestTrain_Deterministic(t *testing.T) {
	cfg := TrainConfig{Optimizer: "sgd", LR: 0.3, Epochs: 10, Samples: 16, Seed: 9}

	a, err := Train(context.Background(), cfg)
	require.NoError(t, err)
	b, err := Train(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTrain_Errors(t *testing.T) {
	_, err := Train(context.Background(), TrainConfig{Optimizer: "rmsprop", Epochs: 1, Samples: 1})
	assert.ErrorContains(t, err, "unknown optimizer")

	_, err = Train(context.Background(), TrainConfig{Optimizer: "sgd", Samples: 1})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Train(ctx, TrainConfig{Optimizer: "sgd", Epochs: 5, Samples: 4})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTrainCmd_JSON(t *testing.T) {
	out, err := run(t, "train", "--json", "--epochs", "5", "--samples", "8", "--log-every", "0")
	require.NoError(t, err)

	var res TrainResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 5, res.Epochs)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "autograd test\n", out)
}

func TestOutput_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOutput(false, &buf).Print([]string{"A", "BB"}, [][]string{{"1", "2"}}, nil))
	assert.Equal(t, "A  BB\n-  --\n1  2\n", buf.String())
}

