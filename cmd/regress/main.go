// Package main provides the regress CLI.
//
// It trains a feedforward regressor on a CSV dataset, or loads a saved one,
// and then drops into an interactive prompt.
//
// Usage:
//
//	regress -data train.csv -topology "2 3 1" -hidden sigmoid -lr 0.1 -epochs 1000
//	regress -load model.rgrs
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/born-ml/regress/internal/config"
	"github.com/born-ml/regress/internal/dataset"
	"github.com/born-ml/regress/internal/model"
	"github.com/born-ml/regress/internal/prompt"
)

func main() {
	dataPath := flag.String("data", "", "CSV training data, one point per row: inputs then targets")
	loadPath := flag.String("load", "", "Saved .rgrs model to load")
	topology := flag.String("topology", "", `Layer sizes, input first (e.g. "2 3 1")`)
	hidden := flag.String("hidden", "", "Hidden activation(s): identity, relu, sigmoid, tanh (default relu)")
	lr := flag.Float64("lr", 0.01, "SGD learning rate")
	epochs := flag.Int("epochs", 100, "Training epochs")
	seed := flag.Uint64("seed", 0, "Initialisation seed (0 = from clock)")
	verbose := flag.Bool("verbose", false, "Print per-point and per-epoch loss")
	every := flag.Int("every", 1, "With -verbose, print every n-th epoch")
	flag.Parse()

	cfg := &config.Config{
		DataPath:     *dataPath,
		LoadPath:     *loadPath,
		LearningRate: *lr,
		Epochs:       *epochs,
		Seed:         *seed,
		Verbose:      *verbose,
	}

	var err error
	if cfg.LoadPath == "" {
		if cfg.Topology, err = config.ParseTopology(*topology); err != nil {
			log.Fatalf("Failed to parse topology: %v", err)
		}
		if cfg.Hidden, err = config.ParseActivations(*hidden, max(len(cfg.Topology)-2, 0)); err != nil {
			log.Fatalf("Failed to parse activations: %v", err)
		}
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatal(err)
	}

	r, err := buildRegressor(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.DataPath != "" {
		train(r, cfg, *every)
	}

	if err := prompt.New(os.Stdin, os.Stdout, r).Run(); err != nil {
		log.Fatal(err)
	}
}

func buildRegressor(cfg *config.Config) (*model.Regressor, error) {
	if cfg.LoadPath != "" {
		r, err := model.Load(cfg.LoadPath)
		if err != nil {
			return nil, err
		}
		fmt.Printf("Loaded %s: topology %v, %d epochs trained\n", cfg.LoadPath, r.Topology(), r.Epochs())
		return r, nil
	}

	r, err := model.New(model.Config{
		Topology:     cfg.Topology,
		Hidden:       cfg.Hidden,
		LearningRate: cfg.LearningRate,
		Seed:         cfg.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create regressor: %w", err)
	}
	fmt.Printf("Created regressor: topology %v, activations %v\n", r.Topology(), r.Activations())
	return r, nil
}

func train(r *model.Regressor, cfg *config.Config, every int) {
	topology := r.Topology()
	ds, err := dataset.LoadCSVFile(cfg.DataPath, topology[0], topology[len(topology)-1])
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	fmt.Printf("Loaded %d points from %s\n", ds.Len(), cfg.DataPath)

	var rep model.Reporter
	if cfg.Verbose {
		every = max(every, 1)
		rep = model.ReporterFuncs{
			OnPoint: func(epoch, index int, loss float64) {
				if epoch%every == 0 {
					fmt.Printf("  epoch %d point %d: loss %.6f\n", epoch, index, loss)
				}
			},
			OnEpoch: func(epoch int, total float64) {
				if epoch%every == 0 {
					fmt.Printf("Epoch %d: total loss %.6f\n", epoch, total)
				}
			},
		}
	}

	elapsed, err := r.TrainOnDataset(ds, cfg.Epochs, rep)
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}
	fmt.Printf("Trained %d epochs in %v\n", cfg.Epochs, elapsed)
}
