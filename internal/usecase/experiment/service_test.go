package experiment

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/runstore/internal/domain"
	domexp "github.com/kailas-cloud/runstore/internal/domain/experiment"
	domproj "github.com/kailas-cloud/runstore/internal/domain/project"
)

type mockRepo struct {
	created   []domexp.Experiment
	createErr error
}

func (m *mockRepo) Create(_ context.Context, e domexp.Experiment) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, e)
	return nil
}

func (m *mockRepo) Get(_ context.Context, id string) (domexp.Experiment, error) {
	for _, e := range m.created {
		if e.ID() == id {
			return e, nil
		}
	}
	return domexp.Experiment{}, domain.NewNotFound("experiment", id)
}

type mockProjects struct {
	known map[string]bool
}

func (m *mockProjects) Get(_ context.Context, id string) (domproj.Project, error) {
	if !m.known[id] {
		return domproj.Project{}, domain.NewNotFound("project", id)
	}
	return domproj.Reconstruct(id, id, "", "", 1, 1), nil
}

func newTestService() (*Service, *mockRepo) {
	repo := &mockRepo{}
	return New(repo, &mockProjects{known: map[string]bool{"p1": true}}), repo
}

func TestCreate_HappyPath(t *testing.T) {
	svc, repo := newTestService()
	exp, err := svc.Create(context.Background(), CreateParams{ID: "e1", ProjectID: "p1", Name: "baseline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exp.ProjectID() != "p1" || len(repo.created) != 1 {
		t.Errorf("experiment = %+v, created = %d", exp, len(repo.created))
	}

	got, err := svc.Get(context.Background(), "e1")
	if err != nil || got.Name() != "baseline" {
		t.Errorf("Get = %+v, %v", got, err)
	}
}

func TestCreate_UnknownProject(t *testing.T) {
	svc, repo := newTestService()
	_, err := svc.Create(context.Background(), CreateParams{ProjectID: "p404", Name: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Error("experiment must not be stored")
	}
}

func TestCreate_InvalidBeforeLookup(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Create(context.Background(), CreateParams{ProjectID: "p404"})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
