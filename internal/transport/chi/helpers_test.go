package chi

import (
	"encoding/json"
	"testing"

	"github.com/kailas-cloud/runstore/internal/domain/value"
)

func mustValue(t *testing.T, raw string) value.Value {
	t.Helper()
	var v value.Value
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("value %s: %v", raw, err)
	}
	return v
}
