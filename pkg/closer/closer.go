package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Closer обеспечивает потокобезопасное закрытие ресурсов в порядке LIFO.
type Closer struct {
	funcs []Func
	mu    sync.Mutex
	once  sync.Once
}

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

func NewCloser() *Closer {
	return &Closer{}
}

// Add добавляет функцию в список закрытия
func (c *Closer) Add(f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
}

// Close последовательно закрывает все зарегистрированные ресурсы (LIFO).
// При отмене контекста оставшиеся ресурсы не закрываются, их ошибки теряются.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.mu.Unlock()

		var errs []string
		for i := len(funcs) - 1; i >= 0; i-- {
			select {
			case <-ctx.Done():
				errs = append(errs, fmt.Sprintf("[!] shutdown interrupted: %v", ctx.Err()))
				err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(errs, "\n"))
				return
			default:
			}

			if closeErr := funcs[i](ctx); closeErr != nil {
				errs = append(errs, fmt.Sprintf("[!] %v", closeErr))
			}
		}

		if len(errs) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(errs, "\n"))
		}
	})

	return err
}
