package gen

import (
	"errors"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/safar/go-dataset-gen/internal/config"
)

var (
	ErrNoCustomers = errors.New("customer pool is empty")
	ErrNoProducts  = errors.New("product pool is empty")
)

// Generator produces randomized customer, product and order records. Every
// draw goes through one faker instance, so a non-zero seed makes the whole
// dataset reproducible.
type Generator struct {
	cfg   *config.GenerationConfig
	faker *gofakeit.Faker
	now   time.Time
}

func New(cfg *config.GenerationConfig) *Generator {
	return NewAt(cfg, time.Now())
}

// NewAt anchors the date windows to a fixed reference time, which together
// with a non-zero seed makes the output fully reproducible.
func NewAt(cfg *config.GenerationConfig, now time.Time) *Generator {
	return &Generator{
		cfg:   cfg,
		faker: gofakeit.New(cfg.Seed),
		now:   now,
	}
}
