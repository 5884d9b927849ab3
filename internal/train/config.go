package train

import (
	"errors"
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Errors returned by Config.Validate and Trainer.Fit.
var (
	ErrInvalidConfig = errors.New("invalid training config")
	ErrInvalidData   = errors.New("invalid training data")
)

// Loss names accepted by Config.Loss.
const (
	LossMSE = "mse"
	LossSSE = "sse"
)

// Optimizer names accepted by Config.Optimizer.
const (
	OptimizerSGD  = "sgd"
	OptimizerAdam = "adam"
)

// Config holds the training loop settings.
type Config struct {
	Epochs    int     // Number of passes over the data (default: 100)
	LR        float64 // Learning rate (default: 0.1)
	Momentum  float64 // SGD momentum, [0, 1) (default: 0)
	Optimizer string  // "sgd" or "adam" (default: "sgd")
	Loss      string  // "mse" or "sse" (default: "mse")
	Patience  int     // Epochs without improvement before stopping, 0 disables
	MinDelta  float64 // Minimum loss decrease that counts as improvement
}

// DefaultConfig returns the reference settings: 100 epochs of plain
// gradient descent at lr 0.1 on mean squared error.
func DefaultConfig() Config {
	return Config{
		Epochs:    100,
		LR:        0.1,
		Optimizer: OptimizerSGD,
		Loss:      LossMSE,
	}
}

// Validate checks the config. Errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive, got %d: %w", c.Epochs, ErrInvalidConfig)
	}
	if c.LR <= 0 {
		return fmt.Errorf("learning rate must be positive, got %g: %w", c.LR, ErrInvalidConfig)
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return fmt.Errorf("momentum must be in [0, 1), got %g: %w", c.Momentum, ErrInvalidConfig)
	}
	if c.Patience < 0 {
		return fmt.Errorf("patience must not be negative, got %d: %w", c.Patience, ErrInvalidConfig)
	}
	if c.MinDelta < 0 {
		return fmt.Errorf("min delta must not be negative, got %g: %w", c.MinDelta, ErrInvalidConfig)
	}
	if _, err := lossFunc(c.Loss); err != nil {
		return err
	}
	switch c.Optimizer {
	case OptimizerSGD, OptimizerAdam:
	default:
		return fmt.Errorf("unknown optimizer %q: %w", c.Optimizer, ErrInvalidConfig)
	}
	return nil
}

type lossFn func(predictions, targets []*autodiff.Value) *autodiff.Value

func lossFunc(name string) (lossFn, error) {
	switch name {
	case LossMSE:
		return nn.MSELoss, nil
	case LossSSE:
		return nn.SumSquaredError, nil
	default:
		return nil, fmt.Errorf("unknown loss %q: %w", name, ErrInvalidConfig)
	}
}
