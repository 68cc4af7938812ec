/*
jsonfile.go - Snapshot store over a single JSON document

PURPOSE:
  Persists the whole employee + leave-request snapshot as one flat JSON
  document. Loads parse and shape-check the document; saves replace it
  atomically. This is the only persistence in the system.

DOCUMENT LAYOUT:
  {
    "employees":      [ ...Employee records... ],
    "leave_requests": [ ...LeaveRequest records... ]
  }
  Dates are YYYY-MM-DD, timestamps RFC 3339. Field shapes are enforced by
  validator tags on the record types; cross-record invariants (duplicate
  ids, dangling employee references, date ordering) by leave.NewState.

ATOMIC REPLACE:
  Saves marshal to <path>.tmp and rename over the target, so a failed
  write never leaves a half-written document behind. A save either fully
  replaces the prior snapshot or leaves it untouched.

ERROR MAPPING:
  missing document            -> leave.NotFoundError (caller seeds)
  unreadable / unwritable     -> leave.IOError
  unparseable or bad shape    -> leave.CorruptDataError

CONCURRENCY:
  None here. The store assumes one active writer; leave.Service holds
  that lock. Concurrent external writers are undefined behavior.

SEE ALSO:
  - leave/workflow.go: The single writer over this store
  - leave/types.go: Record shapes and NewState invariants
*/
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/warp/leave-engine/leave"
)

// document is the persisted wire shape.
type document struct {
	Employees     []*leave.Employee `json:"employees" validate:"dive,required"`
	LeaveRequests []*leave.Request  `json:"leave_requests" validate:"dive,required"`
}

// Store reads and replaces one snapshot document.
type Store struct {
	path     string
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a store for the document at path. Nothing is touched until
// the first Load or Save. A nil logger logs nowhere.
func New(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		path:     path,
		log:      log.Named("jsonfile_store"),
		validate: validator.New(),
	}
}

// Path returns the document location.
func (s *Store) Path() string { return s.path }

// Load reads and checks the snapshot. A missing document is
// NotFoundError so the caller can decide to seed; anything present but
// wrong-shaped is CorruptDataError.
func (s *Store) Load(ctx context.Context) (*leave.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &leave.NotFoundError{Entity: "snapshot", ID: s.path}
		}
		return nil, &leave.IOError{Op: "read", Path: s.path, Err: err}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &leave.CorruptDataError{Path: s.path, Err: err}
	}
	if err := s.validate.Struct(&doc); err != nil {
		return nil, &leave.CorruptDataError{Path: s.path, Err: err}
	}

	st, err := leave.NewState(doc.Employees, doc.LeaveRequests)
	if err != nil {
		return nil, &leave.CorruptDataError{Path: s.path, Err: err}
	}

	s.log.Debug("snapshot loaded",
		zap.Int("employees", len(doc.Employees)),
		zap.Int("leave_requests", len(doc.LeaveRequests)))
	return st, nil
}

// Save atomically replaces the snapshot with the given state.
func (s *Store) Save(ctx context.Context, st *leave.State) error {
	doc := document{
		Employees:     st.Employees(),
		LeaveRequests: st.Requests(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &leave.IOError{Op: "write", Path: s.path, Err: err}
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &leave.IOError{Op: "write", Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return &leave.IOError{Op: "replace", Path: s.path, Err: err}
	}

	s.log.Debug("snapshot saved",
		zap.Int("employees", len(doc.Employees)),
		zap.Int("leave_requests", len(doc.LeaveRequests)))
	return nil
}

// Raw returns the persisted document bytes as-is, for callers that
// publish the snapshot (the hr://snapshot resource). Rename-based saves
// make this read atomic: it sees the old document or the new one, never
// a mix.
func (s *Store) Raw(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &leave.NotFoundError{Entity: "snapshot", ID: s.path}
		}
		return nil, &leave.IOError{Op: "read", Path: s.path, Err: err}
	}
	return data, nil
}
