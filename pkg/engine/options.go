package engine

import "github.com/Fmanuel809/validra-sub002/pkg/logsink"

// Options configure a new Engine. Use the With* functions with New rather
// than constructing Options directly — New starts from defaults
// (MemoryPoolSize 256, StreamingChunkSize 100) that the zero value lacks.
type Options struct {
	Debug              bool
	Silent             bool
	EnableMemoryPool   bool
	MemoryPoolSize     int
	EnableStreaming    bool
	StreamingChunkSize int
	FailFast           bool
	MaxErrors          int
	Logger             logsink.Logger
}

// Option mutates Options during New.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		MemoryPoolSize:     256,
		StreamingChunkSize: 100,
		MaxErrors:          0,
	}
}

// WithDebug enables verbose logging of compilation and evaluation steps.
func WithDebug(debug bool) Option {
	return func(o *Options) { o.Debug = debug }
}

// WithSilent suppresses all logging, including warnings and errors.
func WithSilent(silent bool) Option {
	return func(o *Options) { o.Silent = silent }
}

// WithMemoryPool toggles reuse of scratch argument slices across record
// validations.
func WithMemoryPool(enable bool) Option {
	return func(o *Options) { o.EnableMemoryPool = enable }
}

// WithMemoryPoolSize bounds the per-kind object pool when memory pooling is
// enabled. Ignored (and left at its default) when n <= 0.
func WithMemoryPoolSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MemoryPoolSize = n
		}
	}
}

// WithStreaming toggles whether ValidateStream chunks its producer instead
// of reading one record at a time.
func WithStreaming(enable bool) Option {
	return func(o *Options) { o.EnableStreaming = enable }
}

// WithStreamingChunkSize sets how many records ValidateStream buffers per
// chunk. Ignored (and left at its default) when n <= 0.
func WithStreamingChunkSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.StreamingChunkSize = n
		}
	}
}

// WithFailFast stops validating a record's remaining rules once one fails.
func WithFailFast(failFast bool) Option {
	return func(o *Options) { o.FailFast = failFast }
}

// WithMaxErrors caps the number of diagnostics collected per record; 0
// (the default) means unlimited.
func WithMaxErrors(n int) Option {
	return func(o *Options) { o.MaxErrors = n }
}

// WithLogger overrides the engine's default log/slog-backed logger — hosts
// embedding the engine in a service that already has a structured logger
// supply it here instead. Ignored (left nil, resolved by chooseLogger) when
// logger is nil.
func WithLogger(logger logsink.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
