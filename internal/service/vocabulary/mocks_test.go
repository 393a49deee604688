package vocabulary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	CreateFunc                func(ctx context.Context, w *domain.Word) (*domain.Word, error)
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetByNormalizedOrStemFunc func(ctx context.Context, normalized, stem string) (*domain.Word, error)
	UpdateFunc                func(ctx context.Context, id uuid.UUID, params domain.WordUpdate) (*domain.Word, error)
	DeleteFunc                func(ctx context.Context, id uuid.UUID) error
	ListFunc                  func(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error)

	mu          sync.Mutex
	createCalls int
	updateCalls int
}

func (m *wordRepoMock) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	m.mu.Lock()
	m.createCalls++
	m.mu.Unlock()
	if m.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, w)
}

func (m *wordRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if m.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *wordRepoMock) GetByNormalizedOrStem(ctx context.Context, normalized, stem string) (*domain.Word, error) {
	if m.GetByNormalizedOrStemFunc == nil {
		panic("wordRepoMock.GetByNormalizedOrStemFunc is nil")
	}
	return m.GetByNormalizedOrStemFunc(ctx, normalized, stem)
}

func (m *wordRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.WordUpdate) (*domain.Word, error) {
	m.mu.Lock()
	m.updateCalls++
	m.mu.Unlock()
	if m.UpdateFunc == nil {
		panic("wordRepoMock.UpdateFunc is nil")
	}
	return m.UpdateFunc(ctx, id, params)
}

func (m *wordRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("wordRepoMock.DeleteFunc is nil")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *wordRepoMock) List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error) {
	if m.ListFunc == nil {
		panic("wordRepoMock.ListFunc is nil")
	}
	return m.ListFunc(ctx, filter)
}

func (m *wordRepoMock) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *wordRepoMock) UpdateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateCalls
}

var _ occurrenceSource = &occurrenceSourceMock{}

type occurrenceSourceMock struct {
	OccurrenceIndexFunc func(ctx context.Context) (*domain.OccurrenceIndex, error)
}

func (m *occurrenceSourceMock) OccurrenceIndex(ctx context.Context) (*domain.OccurrenceIndex, error) {
	if m.OccurrenceIndexFunc == nil {
		panic("occurrenceSourceMock.OccurrenceIndexFunc is nil")
	}
	return m.OccurrenceIndexFunc(ctx)
}
