// Package main provides the micrograd CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/train"
)

const version = "v0.1.0"

// errUsage marks command-line mistakes; main exits with status 2.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "micrograd: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "micrograd %s\n", version)
		return nil
	case "demo":
		runDemo(stdout)
		return nil
	case "train":
		return runTrain(ctx, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "micrograd - scalar autodiff engine and tiny MLP")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  demo       Walk through the engine on small expressions")
	fmt.Fprintln(w, "  train      Train an MLP on the built-in dataset (see train -h)")
}

// runDemo builds a few expressions, runs Backward and prints every node.
func runDemo(w io.Writer) {
	a := autodiff.NewValue(1).SetLabel("a")
	b := autodiff.NewValue(2).SetLabel("b")
	c := autodiff.NewValue(3).SetLabel("c")
	d := autodiff.Mul(a, autodiff.Add(b, c)).SetLabel("d")
	e := autodiff.Mul(d, a).SetLabel("e")

	e.Backward() // e = a²(b + c)
	fmt.Fprintln(w, "e = a^2 * (b + c)")
	for _, v := range []*autodiff.Value{a, b, c, d, e} {
		fmt.Fprintf(w, "  %s = %v\n", v.Label(), v)
	}

	fmt.Fprintf(w, "exp(2) = %v\n", autodiff.Exp(autodiff.NewValue(2)))

	g := autodiff.NewValue(2)
	h := autodiff.NewValue(5)
	i := autodiff.Div(g, h)
	i.Backward()
	fmt.Fprintf(w, "g / h: g = %v, h = %v, g/h = %v\n", g, h, i)
}

// Reference dataset: four 3-input examples with ±1 targets.
var (
	datasetX = [][]float64{
		{2, 3, -1},
		{3, -1, 0.5},
		{0.5, 1, 1},
		{1, 1, -1},
	}
	datasetY = []float64{1, -1, -1, 1}
)

func runTrain(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg := train.DefaultConfig()

	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Epochs, "epochs", cfg.Epochs, "Number of training epochs")
	fs.Float64Var(&cfg.LR, "lr", cfg.LR, "Learning rate")
	fs.Float64Var(&cfg.Momentum, "momentum", cfg.Momentum, "SGD momentum in [0, 1)")
	fs.StringVar(&cfg.Optimizer, "optim", cfg.Optimizer, "Optimizer: sgd or adam")
	fs.StringVar(&cfg.Loss, "loss", cfg.Loss, "Loss: mse or sse")
	fs.IntVar(&cfg.Patience, "patience", cfg.Patience, "Stop after this many epochs without improvement (0 = never)")
	fs.Float64Var(&cfg.MinDelta, "min-delta", cfg.MinDelta, "Minimum loss decrease counted as improvement")
	sizesFlag := fs.String("sizes", "3,4,4,1", "Comma-separated layer widths")
	seed := fs.Uint64("seed", 42, "Seed for weight initialization")
	verbose := fs.Bool("v", false, "Log every epoch")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("train: %w: %w", errUsage, err)
	}

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}
	if sizes[0] != len(datasetX[0]) {
		return fmt.Errorf("train: dataset has %d inputs, -sizes starts with %d: %w", len(datasetX[0]), sizes[0], errUsage)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	model := nn.NewMLP(sizes, nn.Uniform(nn.NewRand(*seed), -1, 1))
	trainer, err := train.New(model, cfg, logger)
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}
	logger.Info("model created", "sizes", sizes, "parameters", model.NumParameters(), "seed", *seed)

	fmt.Fprintln(stdout, "initial predictions:")
	printPredictions(stdout, train.Predict(model, datasetX))

	hist, err := trainer.Fit(ctx, datasetX, datasetY)
	for epoch, loss := range hist.Losses {
		fmt.Fprintf(stdout, "epoch: %d loss: %g\n", epoch, loss)
	}
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}

	best, bestEpoch := hist.Best()
	fmt.Fprintf(stdout, "best loss %g at epoch %d\n", best, bestEpoch)
	fmt.Fprintln(stdout, "final predictions:")
	printPredictions(stdout, train.Predict(model, datasetX))

	return nil
}

func printPredictions(w io.Writer, preds []float64) {
	for i, p := range preds {
		fmt.Fprintf(w, "  %v -> %.6f (target %g)\n", datasetX[i], p, datasetY[i])
	}
}

// parseSizes parses "3,4,4,1" into layer widths.
func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 {
		return nil, fmt.Errorf("sizes %q: need at least two widths: %w", s, errUsage)
	}

	sizes := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("sizes %q: %w: %w", s, errUsage, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("sizes %q: width %d must be positive: %w", s, n, errUsage)
		}
		sizes[i] = n
	}

	return sizes, nil
}
