package cli

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/nn"
	"github.com/born-ml/autograd/internal/optim"
	"github.com/born-ml/autograd/internal/telemetry"
	"github.com/born-ml/autograd/internal/vector"
)

// TrainConfig configures a training run.
type TrainConfig struct {
	Optimizer string  // "sgd" or "adam"
	LR        float64 // Learning rate (0 = optimizer default)
	Momentum  float64 // SGD momentum
	Epochs    int
	Samples   int
	Seed      int64
	LogEvery  int // Log progress every N epochs (0 = never)
}

// TrainResult summarizes a finished run.
type TrainResult struct {
	Epochs      int       `json:"epochs"`
	InitialLoss float64   `json:"initial_loss"`
	FinalLoss   float64   `json:"final_loss"`
	Accuracy    float64   `json:"accuracy"`
	Weight      []float64 `json:"weight"`
	Bias        float64   `json:"bias"`
}

type sample struct {
	x vector.Vector
	y float64
}

// syntheticData draws points in [-1, 1]² labeled by the side of the line
// 2·x0 - x1 + 0.5 = 0 they fall on.
func syntheticData(n int, rng *rand.Rand) []sample {
	data := make([]sample, n)
	for i := range data {
		x0 := rng.Float64()*2 - 1
		x1 := rng.Float64()*2 - 1
		y := 0.0
		if 2*x0-x1+0.5 > 0 {
			y = 1
		}
		data[i] = sample{x: vector.MustNew(x0, x1), y: y}
	}
	return data
}

func newOptimizer(cfg TrainConfig, params []*nn.Parameter) (optim.Optimizer, error) {
	switch cfg.Optimizer {
	case "sgd":
		return optim.NewSGD(params, optim.SGDConfig{LR: cfg.LR, Momentum: cfg.Momentum}), nil
	case "adam":
		return optim.NewAdam(params, optim.AdamConfig{LR: cfg.LR}), nil
	default:
		return nil, fmt.Errorf("unknown optimizer %q (want sgd or adam)", cfg.Optimizer)
	}
}

// batchLoss builds the mean cross-entropy over data in a fresh graph.
func batchLoss(model nn.Module, data []sample) autodiff.Node {
	g := autodiff.NewGraph()
	bce := nn.NewBCELoss()

	var total autodiff.Node
	for _, s := range data {
		loss := bce.Forward(model.Forward(g.Variable(s.x)), s.y)
		if total == nil {
			total = loss
			continue
		}
		total = total.Add(loss)
	}
	return total.Div(autodiff.Scalar(float64(len(data))))
}

func accuracy(model nn.Module, data []sample) (float64, error) {
	correct := 0
	for _, s := range data {
		g := autodiff.NewGraph()
		p, err := scalarValue(model.Forward(g.Variable(s.x)))
		if err != nil {
			return 0, err
		}
		if (p >= 0.5) == (s.y == 1) {
			correct++
		}
	}
	return float64(correct) / float64(len(data)), nil
}

// Train fits a logistic neuron on a synthetic, linearly separable data set
// with full-batch gradient descent.
func Train(ctx context.Context, cfg TrainConfig) (TrainResult, error) {
	if cfg.Epochs <= 0 {
		return TrainResult{}, fmt.Errorf("epochs must be positive, got %d", cfg.Epochs)
	}
	if cfg.Samples <= 0 {
		return TrainResult{}, fmt.Errorf("samples must be positive, got %d", cfg.Samples)
	}

	logger := telemetry.FromContext(ctx)
	//nolint:gosec // Synthetic data, not security-critical
	rng := rand.New(rand.NewSource(cfg.Seed))
	data := syntheticData(cfg.Samples, rng)

	neuron := nn.NewLinear(2, rng)
	model := nn.NewSequential(neuron, nn.NewSigmoid())
	optimizer, err := newOptimizer(cfg, model.Parameters())
	if err != nil {
		return TrainResult{}, err
	}

	res := TrainResult{Epochs: cfg.Epochs}
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return TrainResult{}, err
		}

		loss := batchLoss(model, data)
		if err := autodiff.Grad(loss); err != nil {
			return TrainResult{}, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		value, err := scalarValue(loss)
		if err != nil {
			return TrainResult{}, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if epoch == 0 {
			res.InitialLoss = value
		}
		res.FinalLoss = value

		if err := optimizer.Step(); err != nil {
			return TrainResult{}, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		optimizer.ZeroGrad()

		if cfg.LogEvery > 0 && (epoch+1)%cfg.LogEvery == 0 {
			logger.Info("epoch done", "epoch", epoch+1, "loss", value, "lr", optimizer.GetLR())
		}
	}

	if res.Accuracy, err = accuracy(model, data); err != nil {
		return TrainResult{}, err
	}
	res.Weight = neuron.Weight().Value().Data()
	if res.Bias, err = neuron.Bias().Value().Item(); err != nil {
		return TrainResult{}, err
	}
	return res, nil
}

// NewTrainCmd creates the train command.
func NewTrainCmd(outputFn func(*cobra.Command) *Output) *cobra.Command {
	cfg := TrainConfig{}

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fit a logistic neuron on synthetic data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			logger := telemetry.WithRunID(telemetry.FromContext(ctx), strconv.FormatInt(cfg.Seed, 10))
			ctx = telemetry.WithLogger(ctx, logger)

			logger.Info("training started", "optimizer", cfg.Optimizer, "epochs", cfg.Epochs, "samples", cfg.Samples)
			res, err := Train(ctx, cfg)
			if err != nil {
				return err
			}
			logger.Info("training finished", "loss", res.FinalLoss, "accuracy", res.Accuracy)

			rows := [][]string{
				{"epochs", strconv.Itoa(res.Epochs)},
				{"initial_loss", formatFloat(res.InitialLoss)},
				{"final_loss", formatFloat(res.FinalLoss)},
				{"accuracy", formatFloat(res.Accuracy)},
				{"weight", fmt.Sprint(vector.MustNew(res.Weight...))},
				{"bias", formatFloat(res.Bias)},
			}
			return outputFn(cmd).Print([]string{"NAME", "VALUE"}, rows, res)
		},
	}

	cmd.Flags().StringVar(&cfg.Optimizer, "optimizer", "adam", "Optimizer (sgd, adam)")
	cmd.Flags().Float64Var(&cfg.LR, "lr", 0.1, "Learning rate")
	cmd.Flags().Float64Var(&cfg.Momentum, "momentum", 0, "SGD momentum")
	cmd.Flags().IntVar(&cfg.Epochs, "epochs", 200, "Number of epochs")
	cmd.Flags().IntVar(&cfg.Samples, "samples", 64, "Number of synthetic samples")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", 1, "Random seed")
	cmd.Flags().IntVar(&cfg.LogEvery, "log-every", 50, "Log progress every N epochs (0 disables)")

	return cmd
}
