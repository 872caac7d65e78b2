package session

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dmitrijs2005/renewadmin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/renewadmin/internal/dbx"
)

// Store persists the session token. Load returns "" when nothing is stored.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string, username string) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps the token in process memory.
type MemoryStore struct {
	mu       sync.Mutex
	token    string
	username string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStore) Save(ctx context.Context, token string, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.username = username
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// LastUsername returns the username of the most recent Save.
func (m *MemoryStore) LastUsername(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.username, nil
}

// MetadataStore keeps the token in the local SQLite metadata table so a
// login survives restarts of the CLI.
type MetadataStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewMetadataStore(db *sql.DB) *MetadataStore {
	return &MetadataStore{db: db}
}

func (s *MetadataStore) repo(db dbx.DBTX) *metadata.SQLiteRepository {
	r := metadata.NewSQLiteRepository(db)
	if s.now != nil {
		r.WithNow(s.now)
	}
	return r
}

func (s *MetadataStore) value(ctx context.Context, key metadata.Key) (string, error) {
	e, err := s.repo(s.db).Get(ctx, key)
	if err != nil || e == nil {
		return "", err
	}
	return string(e.Value), nil
}

func (s *MetadataStore) Load(ctx context.Context) (string, error) {
	return s.value(ctx, metadata.KeyToken)
}

// Save writes the token and the username in one transaction.
func (s *MetadataStore) Save(ctx context.Context, token string, username string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, metadata.KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyUsername, []byte(username))
	})
}

// Clear drops the token. The last username is kept to prefill sign-in.
func (s *MetadataStore) Clear(ctx context.Context) error {
	return s.repo(s.db).Delete(ctx, metadata.KeyToken)
}

// LastUsername returns the username of the most recent login, or "".
func (s *MetadataStore) LastUsername(ctx context.Context) (string, error) {
	return s.value(ctx, metadata.KeyUsername)
}

// SignedInAt is when the stored token was saved; zero when there is none.
func (s *MetadataStore) SignedInAt(ctx context.Context) (time.Time, error) {
	e, err := s.repo(s.db).Get(ctx, metadata.KeyToken)
	if err != nil || e == nil {
		return time.Time{}, err
	}
	return e.UpdatedAt, nil
}

// Forget wipes every locally kept value, including the last username.
func (s *MetadataStore) Forget(ctx context.Context) error {
	return s.repo(s.db).Clear(ctx)
}
