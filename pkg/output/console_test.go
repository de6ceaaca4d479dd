package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fmanuel809/validra-sub002/pkg/diagnose"
	"github.com/Fmanuel809/validra-sub002/pkg/validresult"
)

func TestWriteValidResult(t *testing.T) {
	var buf bytes.Buffer
	w := NewConsoleWriter().WithWriter(&buf).WithNoColor(true)

	result := validresult.New(map[string]any{"name": "Ada"})
	require.NoError(t, w.Write(result))
	assert.Contains(t, buf.String(), "valid")
}

func TestWriteInvalidResultListsFieldsAndDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	w := NewConsoleWriter().WithWriter(&buf).WithNoColor(true)

	result := validresult.New(map[string]any{"age": 10})
	result.Add(diagnose.HelperFailure("age", "gte", false))

	require.NoError(t, w.Write(result))
	out := buf.String()
	assert.Contains(t, out, "invalid")
	assert.Contains(t, out, "age")
	assert.Contains(t, out, "gte")
}

func TestWriteSummaryLine(t *testing.T) {
	var buf bytes.Buffer
	w := NewConsoleWriter().WithWriter(&buf).WithNoColor(true)

	w.WriteSummary(Stats{RecordsValidated: 8, RecordsFailed: 2, Duration: 0.5})
	assert.Contains(t, buf.String(), "validated: 8")
	assert.Contains(t, buf.String(), "failed: 2")
}
