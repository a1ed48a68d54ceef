// Package readretry повторяет операции чтения при временной недоступности хранилища.
// Мутации через него не проходят: повтор вставки может создать дубликат.
package readretry

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// Policy параметры повторов
type Policy struct {
	MaxRetries uint64
	BaseDelay  time.Duration
	// Retryable решает, стоит ли повторять ошибку
	Retryable func(error) bool
}

// Do выполняет fn, повторяя её не более MaxRetries раз с экспоненциальной задержкой,
// пока Retryable возвращает true
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	if p.MaxRetries == 0 || p.Retryable == nil {
		return fn(ctx)
	}

	base := p.BaseDelay
	if base <= 0 {
		base = 50 * time.Millisecond
	}
	backoff := retry.WithMaxRetries(p.MaxRetries, retry.NewExponential(base))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && p.Retryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// Get как Do, но для функций, возвращающих значение
func Get[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := Do(ctx, p, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	return result, err
}
