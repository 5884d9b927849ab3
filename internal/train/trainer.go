// Package train runs gradient-descent training loops over nn models.
//
// Each epoch builds a fresh graph: predictions for every sample, a scalar
// loss over them, then ZeroGrad, Backward and an optimizer step.
package train

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
)

// Model is a module whose parameter gradients can be zeroed.
// *nn.MLP and *nn.Sequential satisfy it.
type Model interface {
	nn.Module
	ZeroGrad()
}

// inFeatureser is implemented by models with a fixed input width, such as
// *nn.MLP. Fit checks samples against it.
type inFeatureser interface {
	InFeatures() int
}

// Trainer fits a Model to a fixed dataset.
type Trainer struct {
	model  Model
	opt    optim.Optimizer
	loss   lossFn
	cfg    Config
	logger *slog.Logger
}

// New creates a Trainer. A nil logger discards log output.
func New(model Model, cfg Config, logger *slog.Logger) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loss, err := lossFunc(cfg.Loss)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var opt optim.Optimizer
	switch cfg.Optimizer {
	case OptimizerAdam:
		opt = optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: cfg.LR})
	default:
		opt = optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: cfg.LR, Momentum: cfg.Momentum})
	}

	return &Trainer{
		model:  model,
		opt:    opt,
		loss:   loss,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Optimizer returns the optimizer driving the parameter updates.
func (t *Trainer) Optimizer() optim.Optimizer {
	return t.opt
}

// Fit trains on xs/ys for up to cfg.Epochs epochs, using the first model
// output as the prediction for each sample.
//
// The loss recorded for an epoch is computed before that epoch's update.
// Fit returns early with ctx.Err() if ctx is done between epochs, and sets
// History.StoppedEarly when Patience runs out.
func (t *Trainer) Fit(ctx context.Context, xs [][]float64, ys []float64) (History, error) {
	var hist History
	if err := checkData(xs, ys); err != nil {
		return hist, err
	}
	if m, ok := t.model.(inFeatureser); ok && len(xs[0]) != m.InFeatures() {
		return hist, fmt.Errorf("samples have %d features, model expects %d: %w", len(xs[0]), m.InFeatures(), ErrInvalidData)
	}

	targets := nn.Values(ys...)
	inputs := make([][]*autodiff.Value, len(xs))
	for i, x := range xs {
		inputs[i] = nn.Values(x...)
	}

	best, bad := 0.0, 0
	for epoch := range t.cfg.Epochs {
		if err := ctx.Err(); err != nil {
			return hist, fmt.Errorf("fit stopped at epoch %d: %w", epoch, err)
		}

		loss := t.step(inputs, targets)
		hist.Losses = append(hist.Losses, loss)
		t.logger.Debug("epoch done", "epoch", epoch, "loss", loss)

		if epoch == 0 || loss < best-t.cfg.MinDelta {
			best, bad = loss, 0
			continue
		}
		bad++
		if t.cfg.Patience > 0 && bad >= t.cfg.Patience {
			t.logger.Info("early stop", "epoch", epoch, "best_loss", best, "patience", t.cfg.Patience)
			hist.StoppedEarly = true
			break
		}
	}

	t.logger.Info("training finished", "epochs", hist.Len(), "final_loss", hist.Final())
	return hist, nil
}

// step runs one forward/backward/update cycle and returns the loss.
func (t *Trainer) step(inputs [][]*autodiff.Value, targets []*autodiff.Value) float64 {
	preds := make([]*autodiff.Value, len(inputs))
	for i, x := range inputs {
		preds[i] = t.model.Forward(x)[0]
	}
	loss := t.loss(preds, targets)

	t.model.ZeroGrad()
	loss.Backward()
	t.opt.Step()

	return loss.Data()
}

// Predict returns the first model output for each sample.
func Predict(model nn.Module, xs [][]float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = model.Forward(nn.Values(x...))[0].Data()
	}
	return out
}

func checkData(xs [][]float64, ys []float64) error {
	if len(xs) == 0 {
		return fmt.Errorf("no samples: %w", ErrInvalidData)
	}
	if len(xs) != len(ys) {
		return fmt.Errorf("%d inputs but %d targets: %w", len(xs), len(ys), ErrInvalidData)
	}
	for i, x := range xs {
		if len(x) != len(xs[0]) {
			return fmt.Errorf("sample %d has %d features, want %d: %w", i, len(x), len(xs[0]), ErrInvalidData)
		}
	}
	return nil
}
