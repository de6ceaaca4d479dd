// Package engine orchestrates rule compilation, field extraction, and
// helper evaluation into the three validation entry points: Validate (one
// record, sync helpers only), ValidateAsync (one record, async helpers
// allowed), and ValidateStream (many records from a recordsource.Source).
package engine

import (
	"context"
	"fmt"

	"github.com/Fmanuel809/validra-sub002/pkg/cachemgr"
	"github.com/Fmanuel809/validra-sub002/pkg/callback"
	"github.com/Fmanuel809/validra-sub002/pkg/compiler"
	"github.com/Fmanuel809/validra-sub002/pkg/diagnose"
	"github.com/Fmanuel809/validra-sub002/pkg/extract"
	"github.com/Fmanuel809/validra-sub002/pkg/helper"
	"github.com/Fmanuel809/validra-sub002/pkg/logsink"
	"github.com/Fmanuel809/validra-sub002/pkg/pool"
	"github.com/Fmanuel809/validra-sub002/pkg/rule"
	"github.com/Fmanuel809/validra-sub002/pkg/validresult"
	"github.com/Fmanuel809/validra-sub002/pkg/verrors"
)

const argsPoolKind = "args"

// Engine validates records against a fixed set of compiled rules.
type Engine struct {
	opts      Options
	rules     []compiler.CompiledRule
	extractor *extract.Extractor
	compiler  *compiler.Compiler
	cacheMgr  *cachemgr.Manager
	pool      *pool.Pool
	callbacks *callback.Manager
	logger    logsink.Logger

	recordsValidated int64
	recordsFailed    int64
	helperFailures   int64
	typeMismatches   int64
}

// New compiles rules against the global helper catalogue and returns an
// Engine ready to validate records.
func New(rules []rule.Rule, opts ...Option) (*Engine, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	logger := chooseLogger(options)

	ex := extract.New()
	comp := compiler.New(helper.Global())
	compiledRules, err := comp.CompileAll(rules)
	if err != nil {
		return nil, err
	}

	objPool := pool.New(options.MemoryPoolSize)
	objPool.Register(argsPoolKind, func() any { return make([]any, 0, 4) })

	e := &Engine{
		opts:      options,
		rules:     compiledRules,
		extractor: ex,
		compiler:  comp,
		cacheMgr:  cachemgr.New(ex, comp),
		pool:      objPool,
		callbacks: callback.NewManager(),
		logger:    logger,
	}
	return e, nil
}

func chooseLogger(opts Options) logsink.Logger {
	if opts.Silent {
		return logsink.NewNoop()
	}
	if opts.Logger != nil {
		return opts.Logger
	}
	return logsink.NewSlog(nil)
}

// Callbacks exposes the engine's callback manager so callers can register
// hooks before validating.
func (e *Engine) Callbacks() *callback.Manager {
	return e.callbacks
}

// Validate runs every compiled rule against record, then dispatches the
// completion callback named or supplied by the optional callbackRef
// (absent, a registered name, or an inline callback.Func). It rejects a
// rule set containing an async helper — use ValidateAsync for those.
func (e *Engine) Validate(ctx context.Context, record map[string]any, callbackRef ...any) (*validresult.Result, error) {
	for _, r := range e.rules {
		if r.Async {
			return nil, verrors.AsyncHelperInSync("rule \"" + r.Rule.Op + "\" uses an async helper; use ValidateAsync")
		}
	}
	return e.validateWithCallback(ctx, record, callbackRef)
}

// ValidateAsync runs every compiled rule against record, allowing async
// helpers to observe ctx cancellation, then dispatches the completion
// callback the same way Validate does. Rules still evaluate in declaration
// order — this engine never runs multiple rules for the same record
// concurrently.
func (e *Engine) ValidateAsync(ctx context.Context, record map[string]any, callbackRef ...any) (*validresult.Result, error) {
	return e.validateWithCallback(ctx, record, callbackRef)
}

func (e *Engine) validateWithCallback(ctx context.Context, record map[string]any, callbackRef []any) (*validresult.Result, error) {
	result, err := e.evaluate(ctx, record)
	if err != nil {
		return result, err
	}

	if len(callbackRef) > 0 {
		if err := e.callbacks.Dispatch(ctx, callbackRef[0], result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (e *Engine) evaluate(ctx context.Context, record map[string]any) (*validresult.Result, error) {
	if record == nil {
		return nil, verrors.InvalidInput("record must not be nil")
	}

	if e.opts.Debug {
		e.logger.Debug(ctx, "evaluating record", "rule_count", len(e.rules))
	}

	result := validresult.New(record)

	for _, r := range e.rules {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		args := e.buildArgs(record, r)
		ok, err := func() (ok bool, err error) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("helper panicked: %v", p)
				}
			}()
			return r.Resolver(ctx, args)
		}()
		e.releaseArgs(args)

		if err != nil {
			d := diagnose.TypeMismatch(r.Rule.Field, r.Rule.Op, err)
			if r.Rule.Message != "" {
				d.Message = r.Rule.Message
			}
			result.Add(d)
			e.typeMismatches++
			if e.opts.Debug {
				e.logger.Debug(ctx, "type mismatch", "field", r.Rule.Field, "op", r.Rule.Op, "cause", err)
			}
		} else {
			verdict := ok
			if r.Rule.Negative {
				verdict = !verdict
			}
			if !verdict {
				d := diagnose.HelperFailure(r.Rule.Field, r.Rule.Op, r.Rule.Negative)
				if r.Rule.Message != "" {
					d.Message = r.Rule.Message
				}
				result.Add(d)
				e.helperFailures++
				if e.opts.Debug {
					e.logger.Debug(ctx, "helper failure", "field", r.Rule.Field, "op", r.Rule.Op)
				}
			}
		}

		if e.opts.FailFast && !result.IsValid {
			break
		}
		if e.opts.MaxErrors > 0 && result.ErrorCount() >= e.opts.MaxErrors {
			break
		}
	}

	if result.IsValid {
		e.recordsValidated++
	} else {
		e.recordsFailed++
	}
	return result, nil
}

// buildArgs assembles a helper's argument vector: args[0] is the field
// value, followed by the rule's declared params in the order the helper's
// schema names them. A rule.FieldRef parameter is resolved against record
// before being placed in the vector, giving "matchesField" and similar
// cross-field helpers a plain value to compare rather than a pointer they'd
// need to dereference themselves.
func (e *Engine) buildArgs(record map[string]any, r compiler.CompiledRule) []any {
	var args []any
	if e.opts.EnableMemoryPool {
		args = e.pool.Get(argsPoolKind).([]any)[:0]
	} else {
		args = make([]any, 0, len(r.Params)+1)
	}

	args = append(args, e.extractor.Get(record, r.Rule.Field))

	for _, name := range r.Params {
		v := r.Rule.Params[name]
		if ref, ok := v.(rule.FieldRef); ok {
			v = e.extractor.Get(record, ref.Path)
		}
		args = append(args, v)
	}
	return args
}

func (e *Engine) releaseArgs(args []any) {
	if e.opts.EnableMemoryPool {
		e.pool.Put(argsPoolKind, args)
	}
}

// GetMetrics returns a combined snapshot of cache, pool, error-handler, and
// callback-manager metrics, plus cumulative record throughput.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		Caches: e.cacheMgr.Metrics(),
		Pool:   e.pool.AllMetrics(),
		ErrorHandler: ErrorHandlerMetrics{
			HelperFailures: e.helperFailures,
			TypeMismatches: e.typeMismatches,
		},
		CallbackManager: CallbackManagerMetrics{
			ActiveCallbacks: len(e.callbacks.ActiveCallbacks()),
		},
		RecordsValidated: e.recordsValidated,
		RecordsFailed:    e.recordsFailed,
	}
}

// ClearCaches empties the extractor's path cache and the compiler's
// compiled-rule cache without resetting throughput counters.
func (e *Engine) ClearCaches() {
	e.cacheMgr.ClearCaches()
}
