package experiment

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		projectID string
		ename     string
		wantErr   string
	}{
		{"valid", "e1", "p1", "baseline", ""},
		{"missing project", "e1", "", "baseline", "project ID is required"},
		{"bad id", "e/1", "p1", "baseline", "alphanumeric"},
		{"empty name", "e1", "p1", "", "name is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.id, tt.projectID, tt.ename, "", "bob", 42)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if e.ProjectID() != tt.projectID || e.DateCreated() != 42 {
					t.Errorf("got project=%q created=%d", e.ProjectID(), e.DateCreated())
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}
