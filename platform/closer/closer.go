package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/you-humble/stock-dashboard/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type closeFn struct {
	name string
	fn   func(context.Context) error
}

// Closer runs registered shutdown hooks in reverse order of registration.
type Closer struct {
	mu     sync.Mutex
	once   sync.Once
	done   chan struct{}
	funcs  []closeFn
	logger Logger
}

var globalCloser = New()

func New() *Closer {
	return &Closer{
		done:   make(chan struct{}),
		logger: &logger.NoopLogger{},
	}
}

func SetLogger(l Logger) { globalCloser.SetLogger(l) }

func AddNamed(name string, fn func(context.Context) error) { globalCloser.AddNamed(name, fn) }

func CloseAll(ctx context.Context) error { return globalCloser.CloseAll(ctx) }

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

func (c *Closer) AddNamed(name string, fn func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, closeFn{name: name, fn: fn})
}

// CloseAll is safe to call more than once; only the first call runs the hooks.
func (c *Closer) CloseAll(ctx context.Context) error {
	var result error

	c.once.Do(func() {
		defer close(c.done)

		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		log := c.logger
		c.mu.Unlock()

		if len(funcs) == 0 {
			return
		}

		log.Info(ctx, "🛑 closing resources", logger.Int("count", len(funcs)))

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]

			if err := ctx.Err(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
				continue
			}

			if err := f.fn(ctx); err != nil {
				log.Error(ctx, "failed to close", logger.String("name", f.name), logger.ErrorF(err))
				errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
				continue
			}
			log.Info(ctx, "closed", logger.String("name", f.name))
		}

		result = errors.Join(errs...)
	})

	return result
}

// Done is closed once CloseAll has finished.
func (c *Closer) Done() <-chan struct{} { return c.done }
