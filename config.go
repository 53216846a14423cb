package bplus

import "fmt"

const (
	// DefaultOrder is the fanout used when a Config leaves Order unset.
	DefaultOrder = 12
	// MinOrder is the smallest usable fanout. Below three entries per node
	// the borrow-then-merge rebalancing degenerates.
	MinOrder = 3
)

// Config configures an ordered-map B+ tree.
type Config struct {
	// Order is the maximum number of entries held by any single node
	// before it must split. Zero selects DefaultOrder.
	Order int
}

func (cfg Config) normalized() Config {
	if cfg.Order == 0 {
		cfg.Order = DefaultOrder
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Order < MinOrder {
		return fmt.Errorf("%w: order %d below minimum %d", ErrInvalidConfig, cfg.Order, MinOrder)
	}
	return nil
}
