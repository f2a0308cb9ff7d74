package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/safar/go-dataset-gen/internal/models"
)

// WriteAll writes the customers, orders and products tables under dir,
// creating the directory if absent. The three writes run concurrently and
// are all waited on; each logs its own outcome, and the returned error joins
// every failure so one bad table cannot hide another. Tables are independent:
// a failed write does not stop or roll back its siblings.
func WriteAll(logger *slog.Logger, dir string, customers []models.Customer, orders []models.Order) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	tables := []table{
		customersTable(customers),
		ordersTable(orders),
		productsTable(orders),
	}

	errs := make([]error, len(tables))
	var wg sync.WaitGroup
	for i, t := range tables {
		wg.Add(1)
		go func() {
			defer wg.Done()
			path := filepath.Join(dir, t.file)
			if err := writeTable(path, t); err != nil {
				logger.Error("table write failed", "table", t.file, "error", err)
				errs[i] = err
				return
			}
			logger.Info("table written", "table", t.file, "path", path, "rows", len(t.rows))
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}

func writeTable(path string, t table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", t.file, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.header); err != nil {
		f.Close()
		return fmt.Errorf("write %s header: %w", t.file, err)
	}
	// WriteAll flushes and surfaces any buffered write error.
	if err := w.WriteAll(t.rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s rows: %w", t.file, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", t.file, err)
	}
	return nil
}
