package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fmanuel809/validra-sub002/pkg/callback"
	"github.com/Fmanuel809/validra-sub002/pkg/recordsource"
	"github.com/Fmanuel809/validra-sub002/pkg/rule"
	"github.com/Fmanuel809/validra-sub002/pkg/validresult"
)

// mockLogger records the messages passed to Warn for assertions; the other
// levels are no-ops, same shape as logsink's own noop.
type mockLogger struct {
	warnings []string
}

func (m *mockLogger) Debug(context.Context, string, ...any) {}
func (m *mockLogger) Info(context.Context, string, ...any)  {}
func (m *mockLogger) Warn(_ context.Context, msg string, _ ...any) {
	m.warnings = append(m.warnings, msg)
}
func (m *mockLogger) Error(context.Context, string, ...any) {}

// debugLogger additionally records Debug calls.
type debugLogger struct {
	mockLogger
	debugs []string
}

func (d *debugLogger) Debug(_ context.Context, msg string, _ ...any) {
	d.debugs = append(d.debugs, msg)
}

func TestValidatePassingRecord(t *testing.T) {
	e, err := New([]rule.Rule{
		{Op: "isEmail", Field: "email"},
		{Op: "gte", Field: "age", Params: map[string]any{"value": 18}},
	})
	require.NoError(t, err)

	result, err := e.Validate(context.Background(), map[string]any{
		"email": "ada@example.com",
		"age":   21,
	})
	require.NoError(t, err)
	assert.True(t, result.IsValid)
}

func TestValidateFailingRecordCollectsDiagnostics(t *testing.T) {
	e, err := New([]rule.Rule{
		{Op: "isEmail", Field: "email"},
		{Op: "gte", Field: "age", Params: map[string]any{"value": 18}},
	})
	require.NoError(t, err)

	result, err := e.Validate(context.Background(), map[string]any{
		"email": "not-an-email",
		"age":   10,
	})
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.Len(t, result.FieldErrors("email"), 1)
	assert.Len(t, result.FieldErrors("age"), 1)
}

func TestValidateHonorsNegative(t *testing.T) {
	e, err := New([]rule.Rule{
		{Op: "eq", Field: "status", Params: map[string]any{"value": "banned"}, Negative: true},
	})
	require.NoError(t, err)

	result, err := e.Validate(context.Background(), map[string]any{"status": "active"})
	require.NoError(t, err)
	assert.True(t, result.IsValid)
}

func TestValidateHonorsFailFast(t *testing.T) {
	e, err := New([]rule.Rule{
		{Op: "isEmail", Field: "email"},
		{Op: "gte", Field: "age", Params: map[string]any{"value": 18}},
	}, WithFailFast(true))
	require.NoError(t, err)

	result, err := e.Validate(context.Background(), map[string]any{
		"email": "bad",
		"age":   5,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.ErrorCount())
}

func TestMatchesFieldCrossFieldComparison(t *testing.T) {
	e, err := New([]rule.Rule{
		{Op: "matchesField", Field: "confirmPassword", Params: map[string]any{"otherValue": rule.FieldRef{Path: "password"}}},
	})
	require.NoError(t, err)

	result, err := e.Validate(context.Background(), map[string]any{
		"password":        "s3cret",
		"confirmPassword": "s3cret",
	})
	require.NoError(t, err)
	assert.True(t, result.IsValid)

	result, err = e.Validate(context.Background(), map[string]any{
		"password":        "s3cret",
		"confirmPassword": "other",
	})
	require.NoError(t, err)
	assert.False(t, result.IsValid)
}

func TestGetMetricsReportsThroughput(t *testing.T) {
	e, err := New([]rule.Rule{{Op: "isString", Field: "name"}})
	require.NoError(t, err)

	_, err = e.Validate(context.Background(), map[string]any{"name": "Ada"})
	require.NoError(t, err)
	_, err = e.Validate(context.Background(), map[string]any{"name": 42})
	require.NoError(t, err)

	m := e.GetMetrics()
	assert.Equal(t, int64(1), m.RecordsValidated)
	assert.Equal(t, int64(1), m.RecordsFailed)
}

func TestValidateStreamProcessesAllRecords(t *testing.T) {
	e, err := New([]rule.Rule{{Op: "isString", Field: "name"}})
	require.NoError(t, err)

	src := recordsource.FromSlice([]recordsource.Record{
		{"name": "Ada"},
		{"name": "Grace"},
		{"name": 42},
	})

	results, errs := e.ValidateStream(context.Background(), src)

	var got []*struct{ valid bool }
	for r := range results {
		got = append(got, &struct{ valid bool }{r.IsValid})
	}
	for err := range errs {
		require.NoError(t, err)
	}

	require.Len(t, got, 3)
	assert.True(t, got[0].valid)
	assert.True(t, got[1].valid)
	assert.False(t, got[2].valid)
}

func TestValidateRejectsNilRecord(t *testing.T) {
	e, err := New([]rule.Rule{{Op: "isString", Field: "name"}})
	require.NoError(t, err)

	result, err := e.Validate(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestValidateDispatchesNamedCallback(t *testing.T) {
	e, err := New([]rule.Rule{{Op: "isString", Field: "name"}})
	require.NoError(t, err)

	var got *validresult.Result
	e.Callbacks().Register("onComplete", func(_ context.Context, args ...any) error {
		got = args[0].(*validresult.Result)
		return nil
	})

	result, err := e.Validate(context.Background(), map[string]any{"name": "Ada"}, "onComplete")
	require.NoError(t, err)
	assert.Same(t, result, got)
}

func TestValidateUnknownCallbackNameFails(t *testing.T) {
	e, err := New([]rule.Rule{{Op: "isString", Field: "name"}})
	require.NoError(t, err)

	_, err = e.Validate(context.Background(), map[string]any{"name": "Ada"}, "missing")
	require.Error(t, err)
}

func TestValidateDispatchesInlineCallbackFunc(t *testing.T) {
	e, err := New([]rule.Rule{{Op: "isString", Field: "name"}})
	require.NoError(t, err)

	called := false
	inline := callback.Func(func(context.Context, ...any) error {
		called = true
		return nil
	})

	_, err = e.Validate(context.Background(), map[string]any{"name": "Ada"}, inline)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestGetMetricsReportsErrorHandlerAndCallbackManager(t *testing.T) {
	e, err := New([]rule.Rule{
		{Op: "gte", Field: "age", Params: map[string]any{"value": 18}},
	})
	require.NoError(t, err)
	e.Callbacks().Register("onComplete", func(context.Context, ...any) error { return nil })

	_, err = e.Validate(context.Background(), map[string]any{"age": "not-a-number"})
	require.NoError(t, err)
	_, err = e.Validate(context.Background(), map[string]any{"age": 5})
	require.NoError(t, err)

	m := e.GetMetrics()
	assert.Equal(t, int64(1), m.ErrorHandler.TypeMismatches)
	assert.Equal(t, int64(1), m.ErrorHandler.HelperFailures)
	assert.Equal(t, 1, m.CallbackManager.ActiveCallbacks)
}

func TestValidateStreamWarnsWhenStreamingDisabled(t *testing.T) {
	logger := &mockLogger{}
	e, err := New([]rule.Rule{{Op: "isString", Field: "name"}}, WithStreaming(false), WithLogger(logger))
	require.NoError(t, err)

	src := recordsource.FromSlice([]recordsource.Record{{"name": "Ada"}})
	results, errs := e.ValidateStream(context.Background(), src)

	for range results {
	}
	for err := range errs {
		require.NoError(t, err)
	}

	assert.Len(t, logger.warnings, 1)
}

func TestValidateEmitsDebugLogsWhenEnabled(t *testing.T) {
	logger := &debugLogger{}
	e, err := New([]rule.Rule{{Op: "isString", Field: "name"}}, WithDebug(true), WithLogger(logger))
	require.NoError(t, err)

	_, err = e.Validate(context.Background(), map[string]any{"name": 42})
	require.NoError(t, err)
	assert.NotEmpty(t, logger.debugs)
}

func TestClearCachesResetsEngineCaches(t *testing.T) {
	e, err := New([]rule.Rule{{Op: "isString", Field: "name"}})
	require.NoError(t, err)

	_, err = e.Validate(context.Background(), map[string]any{"name": "Ada"})
	require.NoError(t, err)

	e.ClearCaches()
	m := e.GetMetrics()
	assert.Equal(t, 0, m.Caches.Extractor.Size)
}
