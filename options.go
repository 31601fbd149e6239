package arenalist

import (
	"go.uber.org/zap"

	"github.com/pavanmanishd/arenalist/expansion"
)

type config struct {
	policy expansion.Policy
	log    *zap.Logger
}

func defaultConfig() config {
	return config{
		policy: expansion.Default(),
		log:    zap.NewNop(),
	}
}

// Option configures a List.
type Option func(*config)

// WithPolicy sets the expansion policy used when the list outgrows its
// arena. A nil policy makes New fail with ErrNilPolicy.
func WithPolicy(p expansion.Policy) Option {
	return func(c *config) {
		c.policy = p
	}
}

// WithLogger sets the logger that receives arena growth events. A nil
// logger disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log == nil {
			log = zap.NewNop()
		}
		c.log = log
	}
}
