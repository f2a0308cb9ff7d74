package main

import (
	"flag"
	"log"
	"os"

	"github.com/safar/go-dataset-gen/internal/config"
	"github.com/safar/go-dataset-gen/internal/export"
	"github.com/safar/go-dataset-gen/internal/gen"
	"github.com/safar/go-dataset-gen/internal/logging"
)

var (
	seed      = flag.Uint64("seed", 0, "Random seed, 0 picks a random one (overrides DATAGEN_SEED)")
	outputDir = flag.String("output", "", "Output directory (overrides DATAGEN_OUTPUT_DIR)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}
	if *seed != 0 {
		cfg.Generation.Seed = *seed
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}

	logger := logging.New()

	g := gen.New(&cfg.Generation)
	customers := g.Customers()
	products := g.Catalog()
	orders, err := g.Orders(customers, products)
	if err != nil {
		log.Fatalf("Generate orders: %v", err)
	}

	logger.Info("dataset generated",
		"customers", len(customers),
		"products", len(products),
		"orders", len(orders))

	if err := export.WriteAll(logger, cfg.Output.Dir, customers, orders); err != nil {
		logger.Error("export incomplete", "error", err)
		os.Exit(1)
	}
}
