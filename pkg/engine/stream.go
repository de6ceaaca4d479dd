package engine

import (
	"context"

	"github.com/Fmanuel809/validra-sub002/pkg/recordsource"
	"github.com/Fmanuel809/validra-sub002/pkg/validresult"
)

// ValidateStream validates records pulled from src one at a time, returning
// results as they complete. One producer goroutine reads from src into a
// buffered channel sized by StreamingChunkSize (disabling streaming forces
// that buffer down to 1, so at most one record is read ahead); one consumer goroutine
// validates sequentially and pushes to the result channel. There is no
// worker pool — records are never validated concurrently with each other,
// so ordering and fail-fast semantics carry over from Validate unchanged.
func (e *Engine) ValidateStream(ctx context.Context, src recordsource.Source) (<-chan *validresult.Result, <-chan error) {
	chunkSize := e.opts.StreamingChunkSize
	if !e.opts.EnableStreaming {
		chunkSize = 1
		e.logger.Warn(ctx, "streaming disabled; ValidateStream falls back to sequential one-by-one evaluation")
	}

	recordChan := make(chan recordsource.Record, chunkSize)
	resultChan := make(chan *validresult.Result, chunkSize)
	errChan := make(chan error, 1)

	go e.streamProduce(ctx, src, recordChan, errChan)
	go e.streamConsume(ctx, recordChan, resultChan, errChan)

	return resultChan, errChan
}

func (e *Engine) streamProduce(ctx context.Context, src recordsource.Source, recordChan chan<- recordsource.Record, errChan chan<- error) {
	defer close(recordChan)

	for {
		rec, ok, err := src.Next(ctx)
		if err != nil {
			select {
			case errChan <- err:
			default:
			}
			return
		}
		if !ok {
			return
		}

		select {
		case recordChan <- rec:
		case <-ctx.Done():
			return
		}
	}
}

func (e *Engine) streamConsume(ctx context.Context, recordChan <-chan recordsource.Record, resultChan chan<- *validresult.Result, errChan chan<- error) {
	defer close(resultChan)
	defer close(errChan)

	for rec := range recordChan {
		result, err := e.ValidateAsync(ctx, rec)
		if err != nil {
			select {
			case errChan <- err:
			default:
			}
			continue
		}

		select {
		case resultChan <- result:
		case <-ctx.Done():
			return
		}
	}
}
