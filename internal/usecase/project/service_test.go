package project

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/runstore/internal/domain"
	domproj "github.com/kailas-cloud/runstore/internal/domain/project"
)

type mockRepo struct {
	created   domproj.Project
	getResult domproj.Project
	createErr error
	getErr    error
}

func (m *mockRepo) Create(_ context.Context, p domproj.Project) error {
	m.created = p
	return m.createErr
}

func (m *mockRepo) Get(_ context.Context, _ string) (domproj.Project, error) {
	return m.getResult, m.getErr
}

func newTestService(repo *mockRepo) *Service {
	s := New(repo)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return s
}

func TestCreate_HappyPath(t *testing.T) {
	repo := &mockRepo{}
	p, err := newTestService(repo).Create(context.Background(), CreateParams{ID: "vision", Name: "Vision", Owner: "alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID() != "vision" || p.DateCreated() != 1700000000000 {
		t.Errorf("project = %+v", p)
	}
	if repo.created.ID() != "vision" {
		t.Errorf("repo got %q", repo.created.ID())
	}
}

func TestCreate_GeneratesID(t *testing.T) {
	p, err := newTestService(&mockRepo{}).Create(context.Background(), CreateParams{Name: "Vision"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uuid.Parse(p.ID()); err != nil {
		t.Errorf("generated id %q is not a UUID: %v", p.ID(), err)
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params CreateParams
	}{
		{"empty name", CreateParams{ID: "p1"}},
		{"bad id", CreateParams{ID: "a b", Name: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestService(&mockRepo{}).Create(context.Background(), tt.params)
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestCreate_AlreadyExists(t *testing.T) {
	repo := &mockRepo{createErr: domain.ErrAlreadyExists}
	_, err := newTestService(repo).Create(context.Background(), CreateParams{ID: "p1", Name: "x"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := &mockRepo{getErr: domain.NewNotFound("project", "p1")}
	_, err := newTestService(repo).Get(context.Background(), "p1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
