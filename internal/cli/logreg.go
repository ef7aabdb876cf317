package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/nn"
	"github.com/born-ml/autograd/internal/telemetry"
	"github.com/born-ml/autograd/internal/vector"
)

// LogRegResult is one forward/backward pass of a logistic neuron.
type LogRegResult struct {
	Model      float64   `json:"model"`
	Loss       float64   `json:"loss"`
	WeightGrad []float64 `json:"weight_grad"`
	BiasGrad   float64   `json:"bias_grad"`
}

// LogReg evaluates sigmoid(w @ x + b) against label y with a cross-entropy
// loss and returns the gradients with respect to w and b.
func LogReg(w, x []float64, b, y float64) (LogRegResult, error) {
	weight, err := vector.New(w...)
	if err != nil {
		return LogRegResult{}, fmt.Errorf("weights: %w", err)
	}
	input, err := vector.New(x...)
	if err != nil {
		return LogRegResult{}, fmt.Errorf("inputs: %w", err)
	}
	if y != 0 && y != 1 {
		return LogRegResult{}, fmt.Errorf("label must be 0 or 1, got %g", y)
	}

	neuron, err := nn.NewLinearFrom(weight, b)
	if err != nil {
		return LogRegResult{}, err
	}
	model := nn.NewSequential(neuron, nn.NewSigmoid())

	g := autodiff.NewGraph()
	pred := model.Forward(g.Variable(input))
	loss := nn.NewBCELoss().Forward(pred, y)

	if err := autodiff.Grad(loss); err != nil {
		return LogRegResult{}, err
	}

	var res LogRegResult
	if res.Model, err = scalarValue(pred); err != nil {
		return LogRegResult{}, err
	}
	if res.Loss, err = scalarValue(loss); err != nil {
		return LogRegResult{}, err
	}
	dw, _ := neuron.Weight().Grad()
	db, _ := neuron.Bias().Grad()
	res.WeightGrad = dw.Data()
	if res.BiasGrad, err = db.Item(); err != nil {
		return LogRegResult{}, err
	}
	return res, nil
}

func scalarValue(n autodiff.Node) (float64, error) {
	v, err := n.Value()
	if err != nil {
		return 0, err
	}
	return v.Item()
}

// NewLogRegCmd creates the logreg command.
func NewLogRegCmd(outputFn func(*cobra.Command) *Output) *cobra.Command {
	var (
		w    []float64
		x    []float64
		bias float64
		y    float64
	)

	cmd := &cobra.Command{
		Use:   "logreg",
		Short: "Differentiate one logistic-regression step",
		Long: "Builds sigmoid(w @ x + b), takes the cross-entropy loss against the label\n" +
			"and prints the model output, the loss and its gradients.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := telemetry.FromContext(cmd.Context())

			res, err := LogReg(w, x, bias, y)
			if err != nil {
				return err
			}
			logger.Debug("logreg done", "model", res.Model, "loss", res.Loss)

			rows := [][]string{
				{"model", formatFloat(res.Model)},
				{"loss", formatFloat(res.Loss)},
				{"dloss/dw", fmt.Sprint(vector.MustNew(res.WeightGrad...))},
				{"dloss/db", formatFloat(res.BiasGrad)},
			}
			return outputFn(cmd).Print([]string{"NAME", "VALUE"}, rows, res)
		},
	}

	cmd.Flags().Float64SliceVar(&w, "w", []float64{-0.5, 0.3, 1}, "Weights")
	cmd.Flags().Float64SliceVar(&x, "x", []float64{10, 0.4, 3.5}, "Inputs")
	cmd.Flags().Float64Var(&bias, "b", 2, "Bias")
	cmd.Flags().Float64Var(&y, "y", 1, "Label (0 or 1)")

	return cmd
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}
