package library

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/domain"
)

var _ fileRepo = &fileRepoMock{}

type fileRepoMock struct {
	CreateFunc            func(ctx context.Context, f *domain.SubtitleFile) (*domain.SubtitleFile, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.SubtitleFile, error)
	GetByHashFunc         func(ctx context.Context, contentHash string) (*domain.SubtitleFile, error)
	ListFunc              func(ctx context.Context) ([]domain.SubtitleFile, error)
	ListCuesFunc          func(ctx context.Context, fileID uuid.UUID) ([]domain.Cue, error)
	ListCuesByFileIDsFunc func(ctx context.Context, fileIDs []uuid.UUID) (map[uuid.UUID][]domain.Cue, error)
	InsertCuesFunc        func(ctx context.Context, fileID uuid.UUID, cues []domain.Cue) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error

	mu          sync.Mutex
	createCalls int
}

func (m *fileRepoMock) Create(ctx context.Context, f *domain.SubtitleFile) (*domain.SubtitleFile, error) {
	m.mu.Lock()
	m.createCalls++
	m.mu.Unlock()
	if m.CreateFunc == nil {
		panic("fileRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, f)
}

func (m *fileRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.SubtitleFile, error) {
	if m.GetByIDFunc == nil {
		panic("fileRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *fileRepoMock) GetByHash(ctx context.Context, contentHash string) (*domain.SubtitleFile, error) {
	if m.GetByHashFunc == nil {
		panic("fileRepoMock.GetByHashFunc is nil")
	}
	return m.GetByHashFunc(ctx, contentHash)
}

func (m *fileRepoMock) List(ctx context.Context) ([]domain.SubtitleFile, error) {
	if m.ListFunc == nil {
		panic("fileRepoMock.ListFunc is nil")
	}
	return m.ListFunc(ctx)
}

func (m *fileRepoMock) ListCues(ctx context.Context, fileID uuid.UUID) ([]domain.Cue, error) {
	if m.ListCuesFunc == nil {
		panic("fileRepoMock.ListCuesFunc is nil")
	}
	return m.ListCuesFunc(ctx, fileID)
}

func (m *fileRepoMock) ListCuesByFileIDs(ctx context.Context, fileIDs []uuid.UUID) (map[uuid.UUID][]domain.Cue, error) {
	if m.ListCuesByFileIDsFunc == nil {
		panic("fileRepoMock.ListCuesByFileIDsFunc is nil")
	}
	return m.ListCuesByFileIDsFunc(ctx, fileIDs)
}

func (m *fileRepoMock) InsertCues(ctx context.Context, fileID uuid.UUID, cues []domain.Cue) error {
	if m.InsertCuesFunc == nil {
		panic("fileRepoMock.InsertCuesFunc is nil")
	}
	return m.InsertCuesFunc(ctx, fileID, cues)
}

func (m *fileRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("fileRepoMock.DeleteFunc is nil")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *fileRepoMock) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

// txManagerMock runs the function directly without a transaction.
type txManagerMock struct{}

func (txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ cueParser = &cueParserMock{}

type cueParserMock struct {
	ParseFunc func(ctx context.Context, text string) ([]domain.Cue, error)

	mu         sync.Mutex
	parseCalls int
}

func (m *cueParserMock) Parse(ctx context.Context, text string) ([]domain.Cue, error) {
	m.mu.Lock()
	m.parseCalls++
	m.mu.Unlock()
	if m.ParseFunc == nil {
		panic("cueParserMock.ParseFunc is nil")
	}
	return m.ParseFunc(ctx, text)
}

func (m *cueParserMock) ParseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.parseCalls
}

var _ cueCache = &cueCacheMock{}

// cueCacheMock is an in-memory stand-in for the Redis cue cache.
type cueCacheMock struct {
	mu      sync.Mutex
	entries map[string][]domain.Cue
}

func newCueCacheMock() *cueCacheMock {
	return &cueCacheMock{entries: make(map[string][]domain.Cue)}
}

func (m *cueCacheMock) Get(ctx context.Context, contentHash string) ([]domain.Cue, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cues, ok := m.entries[contentHash]
	return cues, ok
}

func (m *cueCacheMock) Set(ctx context.Context, contentHash string, cues []domain.Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[contentHash] = cues
}

func (m *cueCacheMock) Invalidate(ctx context.Context, contentHash string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, contentHash)
}
