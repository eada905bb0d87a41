package health

import (
	"context"
	"errors"
	"testing"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

func TestCheck_AllHealthy(t *testing.T) {
	svc := New("memory", &mockPinger{}, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Backend != "memory" {
		t.Errorf("expected backend memory, got %q", r.Backend)
	}
	if r.Checks["database"] != CheckOK {
		t.Errorf("expected database %q, got %q", CheckOK, r.Checks["database"])
	}
}

func TestCheck_DBError(t *testing.T) {
	svc := New("postgres", &mockPinger{err: errors.New("conn refused")}, nil)
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["database"] != CheckError {
		t.Errorf("expected database %q, got %q", CheckError, r.Checks["database"])
	}
}

func TestCheck_PartialFailure(t *testing.T) {
	svc := New("mongo", &mockPinger{}, map[string]Pinger{
		"tracing": PingFunc(func(context.Context) error { return errors.New("exporter down") }),
		"skipped": nil,
	})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["tracing"] != CheckError {
		t.Errorf("expected tracing %q, got %q", CheckError, r.Checks["tracing"])
	}
	if _, ok := r.Checks["skipped"]; ok {
		t.Error("nil components must not be checked")
	}
}
