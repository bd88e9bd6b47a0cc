package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/blaisecz/bedtime-estimator/pkg/pagination"
	"github.com/google/uuid"
)

func TestModelService_NoDatabase(t *testing.T) {
	svc := NewModelService(nil)

	if _, err := svc.List(context.Background(), domain.ModelArtifactFilter{}); !errors.Is(err, domain.ErrRegistryUnavailable) {
		t.Errorf("List: expected ErrRegistryUnavailable, got %v", err)
	}
	if _, err := svc.Active(context.Background()); !errors.Is(err, domain.ErrRegistryUnavailable) {
		t.Errorf("Active: expected ErrRegistryUnavailable, got %v", err)
	}
}

func TestModelService_ListPaginates(t *testing.T) {
	repo := NewMockModelArtifactRepository()
	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		repo.listResult = append(repo.listResult, domain.ModelArtifact{
			ID:        uuid.New(),
			Name:      "SleepCalculator",
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}
	svc := NewModelService(repo)

	list, err := svc.List(context.Background(), domain.ModelArtifactFilter{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Data) != 2 {
		t.Fatalf("expected 2 artifacts, got %d", len(list.Data))
	}
	if repo.lastFilter.Limit != 2 {
		t.Errorf("expected limit to reach repository, got %d", repo.lastFilter.Limit)
	}

	cursor, err := pagination.DecodeCursor(list.NextCursor)
	if err != nil || cursor == nil {
		t.Fatalf("expected next cursor, got %q (%v)", list.NextCursor, err)
	}
	if cursor.ID != list.Data[1].ID {
		t.Errorf("cursor should point at last artifact on page")
	}
}

func TestModelService_ListEmpty(t *testing.T) {
	svc := NewModelService(NewMockModelArtifactRepository())

	list, err := svc.List(context.Background(), domain.ModelArtifactFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Data == nil || len(list.Data) != 0 {
		t.Errorf("expected empty non-nil data, got %#v", list.Data)
	}
	if list.NextCursor != "" {
		t.Errorf("expected no next cursor, got %q", list.NextCursor)
	}
}

func TestModelService_Active(t *testing.T) {
	repo := NewMockModelArtifactRepository()
	svc := NewModelService(repo)

	if _, err := svc.Active(context.Background()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty registry, got %v", err)
	}

	artifact := &domain.ModelArtifact{Name: "SleepCalculator", Version: "1"}
	if err := repo.Create(context.Background(), artifact); err != nil {
		t.Fatal(err)
	}
	if err := repo.Activate(context.Background(), artifact.ID); err != nil {
		t.Fatal(err)
	}

	got, err := svc.Active(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != artifact.ID {
		t.Errorf("expected %s, got %s", artifact.ID, got.ID)
	}
}
