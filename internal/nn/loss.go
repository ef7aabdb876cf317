package nn

import (
	"fmt"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/vector"
)

// BCELoss is binary cross-entropy for probabilities in (0, 1).
//
// Loss = -Σ [y·log(p) + (1-y)·log(1-p)]
//
// Terms with a zero weight are left out of the graph, so a target of 1
// builds exactly -log(p) and a target of 0 builds -log(1-p).
//
// Example:
//
//	bce := nn.NewBCELoss()
//	loss := bce.Forward(model.Forward(x), 1)
//	_ = autodiff.Grad(loss)
type BCELoss struct{}

// NewBCELoss creates a new binary cross-entropy loss.
func NewBCELoss() *BCELoss {
	return &BCELoss{}
}

// Forward builds the loss of predictions against a target label in [0, 1].
func (l *BCELoss) Forward(predictions autodiff.Node, target float64) autodiff.Node {
	if target < 0 || target > 1 {
		panic(fmt.Sprintf("BCELoss: target must be in [0, 1], got %g", target))
	}
	g := predictions.Graph()

	var total autodiff.Node
	add := func(term autodiff.Node) {
		if total == nil {
			total = term
			return
		}
		total = total.Add(term)
	}
	if target != 0 {
		add(g.Mul(autodiff.Scalar(target), predictions.Log()))
	}
	if target != 1 {
		add(g.Mul(autodiff.Scalar(1-target), g.Sub(autodiff.Scalar(1), predictions).Log()))
	}
	return total.Sum().Neg()
}

// Parameters returns nil (loss functions have no trainable parameters).
func (l *BCELoss) Parameters() []*Parameter {
	return nil
}

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward builds the loss of predictions against targets. A width mismatch
// surfaces as ErrShapeMismatch on evaluation.
func (l *MSELoss) Forward(predictions autodiff.Node, targets vector.Vector) autodiff.Node {
	diff := predictions.Sub(autodiff.Const(targets))
	return diff.Mul(diff).Sum().Div(autodiff.Scalar(float64(targets.Dim())))
}

// Parameters returns nil.
func (l *MSELoss) Parameters() []*Parameter {
	return nil
}
