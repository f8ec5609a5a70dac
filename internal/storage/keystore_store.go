// Package storage persists encrypted keystore records as one JSON file per
// record under <root>/keystore, next to an address index.
package storage

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"ethwallet/internal/keystore"
	"ethwallet/pkg/keylock"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	keystoreDir   = "keystore"
	recordExt     = ".json"
	loadWorkers   = 8
	dirPermission = 0o700
)

var (
	ErrInvalidPath       error = errors.New("invalid keystore path")
	ErrNotFound          error = errors.New("keystore not found")
	ErrDuplicateKeystore error = errors.New("keystore already exists")
)

type KeystoreStore struct {
	logs  *zap.SugaredLogger
	dir   string
	locks *keylock.KeyedMutex

	indexMu sync.Mutex
	index   map[string]string
}

// NewKeystoreStore creates the keystore directory under rootDir if needed and
// loads the address index, rebuilding it from the records when it is missing
// or unreadable.
func NewKeystoreStore(logger *zap.SugaredLogger, rootDir string) (*KeystoreStore, error) {
	if strings.TrimSpace(rootDir) == "" {
		return nil, fmt.Errorf("%w: empty root directory", ErrInvalidPath)
	}

	dir := filepath.Join(rootDir, keystoreDir)
	if err := os.MkdirAll(dir, dirPermission); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	s := &KeystoreStore{
		logs:  logger,
		dir:   dir,
		locks: keylock.New(),
	}

	index, err := readIndex(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warnw("keystore index unreadable, rebuilding", "dir", dir, "error", err)
		}
		if index, err = s.rebuildIndex(context.Background()); err != nil {
			return nil, fmt.Errorf("rebuild keystore index: %w", err)
		}
	}
	s.index = index

	return s, nil
}

func (s *KeystoreStore) Dir() string {
	return s.dir
}

// Save writes rec atomically. With isFirst set the record must be new;
// otherwise an existing record with the same id is replaced. An address
// already owned by another record is always rejected.
func (s *KeystoreStore) Save(ctx context.Context, rec *keystore.Record, isFirst bool) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("save keystore: %w", err)
	}

	unlock, err := s.locks.Lock(ctx, rec.ID)
	if err != nil {
		return fmt.Errorf("lock keystore %s: %w", rec.ID, err)
	}
	defer unlock()

	name := rec.ID + recordExt
	if isFirst {
		if _, err := os.Stat(filepath.Join(s.dir, name)); err == nil {
			return fmt.Errorf("%w: %s", ErrDuplicateKeystore, rec.ID)
		}
	}

	added, err := s.reserve(rec)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		s.releaseEntries(added)
		return fmt.Errorf("encode keystore: %w", err)
	}

	if err := writeFileAtomic(s.dir, name, data); err != nil {
		s.releaseEntries(added)
		return fmt.Errorf("write keystore %s: %w", rec.ID, err)
	}

	s.persistIndex()

	s.logs.Infow("keystore saved",
		"id", rec.ID,
		"kind", rec.Kind,
		"addresses", len(rec.Addresses),
	)
	return nil
}

// LoadAll returns every readable record ordered by creation time. Corrupt
// or partially written files are skipped.
func (s *KeystoreStore) LoadAll(ctx context.Context) ([]*keystore.Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read keystore dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if isRecordFile(e) {
			names = append(names, e.Name())
		}
	}

	records := make([]*keystore.Record, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(loadWorkers)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rec, err := s.readRecord(name)
			if err != nil {
				s.logs.Warnw("skipping unreadable keystore", "file", name, "error", err)
				return nil
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load keystores: %w", err)
	}

	records = slices.DeleteFunc(records, func(r *keystore.Record) bool { return r == nil })
	slices.SortFunc(records, func(a, b *keystore.Record) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return records, nil
}

func (s *KeystoreStore) LoadByID(ctx context.Context, id string) (*keystore.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	rec, err := s.readRecord(id + recordExt)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	return rec, nil
}

// LoadByAddress resolves addr through the index, falling back to a full
// scan and repairing the index when it is stale.
func (s *KeystoreStore) LoadByAddress(ctx context.Context, addr common.Address) (*keystore.Record, error) {
	s.indexMu.Lock()
	id, ok := s.index[indexKey(addr)]
	s.indexMu.Unlock()

	if ok {
		rec, err := s.LoadByID(ctx, id)
		if err == nil && rec.HasAddress(addr) {
			return rec, nil
		}
		s.logs.Warnw("stale keystore index entry", "address", addr.Hex(), "id", id, "error", err)
	}

	records, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.HasAddress(addr) {
			s.indexMu.Lock()
			s.index[indexKey(addr)] = rec.ID
			s.indexMu.Unlock()
			s.persistIndex()
			return rec, nil
		}
	}

	if ok {
		return s.dropStaleEntry(ctx, addr, id)
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, addr.Hex())
}

// dropStaleEntry removes the index entry mapping addr to id once no Save of
// id is in flight. A Save that reserved the entry but had not yet written the
// record when it was read is waited for, and its record returned.
func (s *KeystoreStore) dropStaleEntry(ctx context.Context, addr common.Address, id string) (*keystore.Record, error) {
	unlock, err := s.locks.Lock(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lock keystore %s: %w", id, err)
	}
	defer unlock()

	rec, err := s.LoadByID(ctx, id)
	if err == nil && rec.HasAddress(addr) {
		return rec, nil
	}

	key := indexKey(addr)
	s.indexMu.Lock()
	stale := s.index[key] == id
	if stale {
		delete(s.index, key)
	}
	s.indexMu.Unlock()

	if stale {
		s.persistIndex()
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, addr.Hex())
}

// Delete removes the record holding addr together with all of its index
// entries.
func (s *KeystoreStore) Delete(ctx context.Context, addr common.Address) error {
	rec, err := s.LoadByAddress(ctx, addr)
	if err != nil {
		return err
	}

	unlock, err := s.locks.Lock(ctx, rec.ID)
	if err != nil {
		return fmt.Errorf("lock keystore %s: %w", rec.ID, err)
	}
	defer unlock()

	err = os.Remove(filepath.Join(s.dir, rec.ID+recordExt))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove keystore %s: %w", rec.ID, err)
	}
	syncDir(s.dir)

	s.indexMu.Lock()
	for key, id := range s.index {
		if id == rec.ID {
			delete(s.index, key)
		}
	}
	s.indexMu.Unlock()
	s.persistIndex()

	s.logs.Infow("keystore deleted", "id", rec.ID)
	return nil
}

// reserve claims the record's addresses in the index and returns the keys it
// newly added, dropping entries the record no longer holds.
func (s *KeystoreStore) reserve(rec *keystore.Record) ([]string, error) {
	s.indexMu.Lock()
	defer s.indexMu.Unlock()

	keys := make([]string, 0, len(rec.Addresses))
	for _, a := range rec.Addresses {
		key := indexKey(common.HexToAddress(a))
		if owner, ok := s.index[key]; ok && owner != rec.ID {
			return nil, fmt.Errorf("%w: address %s", ErrDuplicateKeystore, a)
		}
		keys = append(keys, key)
	}

	for key, id := range s.index {
		if id == rec.ID && !slices.Contains(keys, key) {
			delete(s.index, key)
		}
	}

	var added []string
	for _, key := range keys {
		if _, ok := s.index[key]; !ok {
			s.index[key] = rec.ID
			added = append(added, key)
		}
	}
	return added, nil
}

func (s *KeystoreStore) releaseEntries(keys []string) {
	s.indexMu.Lock()
	defer s.indexMu.Unlock()

	for _, key := range keys {
		delete(s.index, key)
	}
}

// persistIndex writes the in-memory index. Failures are only logged since
// the index can always be rebuilt from the records.
func (s *KeystoreStore) persistIndex() {
	s.indexMu.Lock()
	defer s.indexMu.Unlock()

	if err := writeIndex(s.dir, s.index); err != nil {
		s.logs.Warnw("failed to persist keystore index", "dir", s.dir, "error", err)
	}
}

func (s *KeystoreStore) rebuildIndex(ctx context.Context) (map[string]string, error) {
	records, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]string)
	for _, rec := range records {
		for _, a := range rec.Addresses {
			key := indexKey(common.HexToAddress(a))
			if _, ok := index[key]; !ok {
				index[key] = rec.ID
			}
		}
	}

	if err := writeIndex(s.dir, index); err != nil {
		s.logs.Warnw("failed to persist keystore index", "dir", s.dir, "error", err)
	}
	return index, nil
}

func (s *KeystoreStore) readRecord(name string) (*keystore.Record, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, err
	}

	var rec keystore.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", keystore.ErrMalformedKeystore, err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if rec.ID+recordExt != name {
		return nil, fmt.Errorf("%w: id %s does not match file %s", keystore.ErrMalformedKeystore, rec.ID, name)
	}
	return &rec, nil
}

func isRecordFile(e fs.DirEntry) bool {
	name := e.Name()
	return e.Type().IsRegular() &&
		name != indexFile &&
		!strings.HasPrefix(name, tempPrefix) &&
		strings.HasSuffix(name, recordExt)
}
