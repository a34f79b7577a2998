//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "backoffice-api"
	ConsumerName = "backoffice-reporting"

	StateOrdersBaseline  = "orders baseline"
	StateOrderProcessing = "COD order 301 is processing"
	StateOrderMissing    = "no order with id 999"
)

const (
	ProcessingOrderID int64 = 301
	MissingOrderID    int64 = 999
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the reporting consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleOrderPayload is the order seeded for the processing state.
func ExampleOrderPayload() map[string]any {
	return map[string]any{
		"id":            ProcessingOrderID,
		"fullName":      "Pact Customer",
		"paymentMethod": "COD",
		"orderStatus":   "processing",
		"totalPrice":    "25.5",
		"createdDate":   "2024-06-12T10:00:00Z",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
