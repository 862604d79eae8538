package worker

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Xausdorf/mem-ledger/internal/domain/entity"
	"github.com/Xausdorf/mem-ledger/internal/domain/repository"
)

const DefaultInterval = 10 * time.Millisecond

type Config struct {
	Workers  int
	Interval time.Duration
}

type Processor interface {
	Execute(ctx context.Context, tx *entity.Transaction) entity.Outcome
}

// Pool runs a fixed number of workers. Each worker wakes up on its own
// ticker and drains the ledger until it finds nothing to take.
type Pool struct {
	ledger    repository.TransactionLedger
	processor Processor
	workers   int
	interval  time.Duration
	logger    *slog.Logger
}

func NewPool(ledger repository.TransactionLedger, processor Processor, cfg Config, logger *slog.Logger) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	return &Pool{
		ledger:    ledger,
		processor: processor,
		workers:   cfg.Workers,
		interval:  cfg.Interval,
		logger:    logger,
	}
}

// Run blocks until ctx is cancelled. A worker finishes the transaction in
// hand before it returns.
func (p *Pool) Run(ctx context.Context) error {
	p.logger.InfoContext(ctx, "worker pool starting", "workers", p.workers, "interval", p.interval)

	g, ctx := errgroup.WithContext(ctx)
	for i := range p.workers {
		g.Go(func() error {
			p.work(ctx, i)
			return nil
		})
	}
	err := g.Wait()

	p.logger.Info("worker pool stopped", "pending", p.ledger.Pending())
	return err
}

func (p *Pool) work(ctx context.Context, worker int) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Drain(ctx, worker)
		}
	}
}

// Drain is one tick of one worker. It returns how many transactions it
// moved to a terminal status; postponed ones are not counted.
func (p *Pool) Drain(ctx context.Context, worker int) int {
	processed := 0
	for ctx.Err() == nil {
		tx, ok := p.ledger.Next()
		if !ok {
			break
		}

		outcome := p.processor.Execute(ctx, tx)
		if err := p.ledger.Resolve(tx, outcome); err != nil {
			p.logger.ErrorContext(ctx, "resolve failed",
				"worker", worker,
				"transaction_id", tx.ID(),
				"outcome", outcome.String(),
				"error", err,
			)
			continue
		}
		if outcome != entity.OutcomePostponed {
			processed++
		}
	}

	if processed > 0 {
		p.logger.DebugContext(ctx, "tick done", "worker", worker, "processed", processed, "pending", p.ledger.Pending())
	}
	return processed
}
