package persistence

import (
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/observability"
	"context"
	"fmt"
	"log"
	"time"
)

// BatchWriter durably stores a batch of outputs.
type BatchWriter interface {
	WriteBatch(ctx context.Context, outputs []core.CoreOutput) error
}

// PersistenceWorker drains the persist channel and batch-writes to Postgres.
// The processor sends on the persist channel with a blocking send, so when
// this worker falls behind the processor stalls and no command is lost.
//
// Flushed outputs are forwarded on the optional flushed channel, which is
// how outbound publishing learns that an event is durable.
type PersistenceWorker struct {
	writer       BatchWriter
	inputChan    <-chan core.CoreOutput
	flushedChan  chan<- core.CoreOutput
	batchSize    int
	flushTimeout time.Duration
	maxBackoff   time.Duration
	metrics      *observability.Metrics
}

func NewPersistenceWorker(
	writer BatchWriter,
	inputChan <-chan core.CoreOutput,
	flushedChan chan<- core.CoreOutput,
	batchSize int,
	flushTimeout time.Duration,
	metrics *observability.Metrics,
) *PersistenceWorker {
	if batchSize < 1 {
		batchSize = 1
	}
	return &PersistenceWorker{
		writer:       writer,
		inputChan:    inputChan,
		flushedChan:  flushedChan,
		batchSize:    batchSize,
		flushTimeout: flushTimeout,
		maxBackoff:   30 * time.Second,
		metrics:      metrics,
	}
}

// Run batches incoming outputs and flushes either when the batch is full or
// the flush timeout expires. Blocks until ctx is cancelled or the input
// channel is closed; the pending batch is flushed in both cases.
func (pw *PersistenceWorker) Run(ctx context.Context) error {
	batch := make([]core.CoreOutput, 0, pw.batchSize)

	timer := time.NewTimer(pw.flushTimeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			batch = pw.drain(batch)
			if len(batch) > 0 {
				if err := pw.flush(context.Background(), batch); err != nil {
					log.Printf("ERROR: final flush failed: %v", err)
				}
			}
			return ctx.Err()

		case out, ok := <-pw.inputChan:
			if !ok {
				if len(batch) > 0 {
					if err := pw.flushWithRetry(context.Background(), batch); err != nil {
						log.Printf("ERROR: final flush failed: %v", err)
						return err
					}
				}
				return nil
			}

			batch = append(batch, out)
			if len(batch) >= pw.batchSize {
				if err := pw.flushWithRetry(ctx, batch); err != nil {
					log.Printf("ERROR: batch flush failed: %v", err)
				}
				batch = batch[:0]
				timer.Reset(pw.flushTimeout)
			}

		case <-timer.C:
			if len(batch) > 0 {
				if err := pw.flushWithRetry(ctx, batch); err != nil {
					log.Printf("ERROR: timeout flush failed: %v", err)
				}
				batch = batch[:0]
			}
			timer.Reset(pw.flushTimeout)
		}
	}
}

// drain appends every output already queued on the input channel.
func (pw *PersistenceWorker) drain(batch []core.CoreOutput) []core.CoreOutput {
	for {
		select {
		case out, ok := <-pw.inputChan:
			if !ok {
				return batch
			}
			batch = append(batch, out)
		default:
			return batch
		}
	}
}

// flushWithRetry retries with exponential backoff until the write succeeds
// or ctx is cancelled, in which case one last attempt is made with a
// background context. Batches are never dropped while the process lives.
func (pw *PersistenceWorker) flushWithRetry(ctx context.Context, batch []core.CoreOutput) error {
	backoff := 100 * time.Millisecond

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			log.Printf("WARN: persistence retry attempt %d (backoff=%v, commands=%d)",
				attempt, backoff, len(batch))
			if pw.metrics != nil {
				pw.metrics.PersistRetry.Inc()
			}
			select {
			case <-ctx.Done():
				if err := pw.flush(context.Background(), batch); err != nil {
					return fmt.Errorf("final flush on shutdown: %w", err)
				}
				return nil
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > pw.maxBackoff {
				backoff = pw.maxBackoff
			}
		}

		err := pw.flush(ctx, batch)
		if err == nil {
			if attempt > 0 {
				log.Printf("INFO: persistence flush succeeded after %d retries", attempt)
			}
			return nil
		}
		log.Printf("WARN: persistence flush failed: %v", err)
	}
}

func (pw *PersistenceWorker) flush(ctx context.Context, batch []core.CoreOutput) error {
	start := time.Now()

	if err := pw.writer.WriteBatch(ctx, batch); err != nil {
		if pw.metrics != nil {
			pw.metrics.PersistErrors.WithLabelValues("write_batch").Inc()
		}
		return err
	}

	if pw.metrics != nil {
		events := 0
		for _, out := range batch {
			events += len(out.Events)
		}
		pw.metrics.PersistBatchDur.Observe(time.Since(start).Seconds())
		pw.metrics.PersistBatchSize.Observe(float64(len(batch)))
		pw.metrics.PersistCommandsWritten.Add(float64(len(batch)))
		pw.metrics.PersistEventsWritten.Add(float64(events))
		pw.metrics.PersistLastSequence.Set(float64(batch[len(batch)-1].Sequence))
	}

	if pw.flushedChan != nil {
		for _, out := range batch {
			select {
			case pw.flushedChan <- out:
			default:
				if pw.metrics != nil {
					pw.metrics.PublishDrops.Inc()
				}
			}
		}
	}

	return nil
}
