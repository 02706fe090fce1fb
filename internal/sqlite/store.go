// Package sqlite implements the SQLite task store.
//
// A Store owns one *sql.DB for the lifetime of a CLI invocation. Statements
// run without an enclosing transaction, so a multi-row call such as AddTasks
// or MarkDone can partially apply before failing.
//
// Statements addressed by id never report a missing row as an error. EditTask,
// MarkDone and RemoveTask return the number of rows they touched; zero means
// the id did not exist and nothing changed.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/todo/pkg/types"
)

// driverName is the database/sql driver registered by modernc.org/sqlite.
const driverName = "sqlite"

// Compile-time interface check: Store must implement TaskStore.
var _ types.TaskStore = (*Store)(nil)

// Store implements types.TaskStore on a single SQLite file.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// Open validates cfg, creates the parent directory of the database file if
// needed, opens the file and initializes the schema. Every failure wraps
// types.ErrStorageUnavailable. The caller must Close the returned Store.
func Open(cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, unavailable("validating config", err)
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, unavailable("creating database directory", err)
		}
	}

	db, err := sql.Open(driverName, cfg.DBPath)
	if err != nil {
		return nil, unavailable("opening database", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, unavailable("connecting to database", err)
	}

	s := &Store{db: db, path: cfg.DBPath}
	if err := s.Initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Path returns the database file path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Initialize creates the tasks table if it does not exist. Existing rows are
// never touched, so it is safe to call on every start.
func (s *Store) Initialize() error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	if _, err := db.Exec(createTasks); err != nil {
		return unavailable("creating tasks table", err)
	}
	return nil
}

// AddTasks inserts one task per text with done=false and returns the ids in
// insertion order. Duplicate texts are allowed. Each insert commits on its
// own; on failure the ids inserted so far are returned with an error wrapping
// types.ErrWrite.
func (s *Store) AddTasks(texts []string) ([]int64, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(texts))
	for _, text := range texts {
		res, err := db.Exec(insertTask, text)
		if err != nil {
			return ids, writeFailed(fmt.Sprintf("inserting task %q", text), err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return ids, writeFailed("reading inserted id", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// EditTask overwrites the text of task id. A missing id is a no-op: it
// returns 0 and a nil error.
func (s *Store) EditTask(id int64, text string) (int64, error) {
	db, err := s.handle()
	if err != nil {
		return 0, err
	}
	return execAffected(db, fmt.Sprintf("editing task %d", id), updateText, text, id)
}

// ListTasks returns a lazy sequence of all tasks ordered by ascending id.
// Each range over the sequence runs a fresh query, so it always reflects the
// current contents of the store. The query holds the only connection, so the
// loop body must not call back into the Store.
func (s *Store) ListTasks() iter.Seq2[types.Task, error] {
	return func(yield func(types.Task, error) bool) {
		db, err := s.handle()
		if err != nil {
			yield(types.Task{}, err)
			return
		}

		rows, err := db.Query(selectTasks)
		if err != nil {
			yield(types.Task{}, fmt.Errorf("querying tasks: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var t types.Task
			if err := rows.Scan(&t.ID, &t.Text, &t.Done); err != nil {
				yield(types.Task{}, fmt.Errorf("scanning task: %w", err))
				return
			}
			if !yield(t, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(types.Task{}, fmt.Errorf("iterating tasks: %w", err))
		}
	}
}

// MarkDone sets done=true on every listed id and returns the total rows
// changed. Missing ids are skipped silently. There is no operation that sets
// done back to false.
func (s *Store) MarkDone(ids []int64) (int64, error) {
	db, err := s.handle()
	if err != nil {
		return 0, err
	}

	var total int64
	for _, id := range ids {
		n, err := execAffected(db, fmt.Sprintf("marking task %d done", id), updateDone, id)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// RemoveTask deletes task id. Ids are never reused after removal. A missing
// id is a no-op: it returns 0 and a nil error.
func (s *Store) RemoveTask(id int64) (int64, error) {
	db, err := s.handle()
	if err != nil {
		return 0, err
	}
	return execAffected(db, fmt.Sprintf("removing task %d", id), deleteTask, id)
}

// ExportJSONL writes every task to path as one JSON object per line, in id
// order, replacing the file atomically. It returns the number of tasks written.
func (s *Store) ExportJSONL(path string) (int, error) {
	var records []json.RawMessage
	for t, err := range s.ListTasks() {
		if err != nil {
			return 0, err
		}
		rec, err := json.Marshal(t)
		if err != nil {
			return 0, fmt.Errorf("marshaling task %d: %w", t.ID, err)
		}
		records = append(records, rec)
	}
	if err := writeJSONL(path, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Close releases the database handle. After Close every operation returns
// types.ErrStoreClosed. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// handle returns the open database or ErrStoreClosed.
func (s *Store) handle() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// execAffected runs a single-row mutation and reports rows affected.
func execAffected(db *sql.DB, op, query string, args ...any) (int64, error) {
	res, err := db.Exec(query, args...)
	if err != nil {
		return 0, writeFailed(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, writeFailed(op, err)
	}
	return n, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, types.ErrStorageUnavailable, err)
}

func writeFailed(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, types.ErrWrite, err)
}
