package localfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"scolarium/core"
	"scolarium/storage"
)

// AlertFunc surfaces a blocking, user-visible storage alert. It is a
// collaborator capability; pass nil to discard alerts.
type AlertFunc func(msg string)

// Store persists the whole document as one JSON file. Every Save overwrites
// the entire document in a single write (temp file + rename).
type Store struct {
	mu    sync.RWMutex
	path  string
	log   core.Logger
	alert AlertFunc
}

var _ storage.Store = (*Store)(nil)

func NewStore(path string, log core.Logger, alert AlertFunc) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating data dir")
	}
	if alert == nil {
		alert = func(string) {}
	}
	return &Store{path: path, log: log, alert: alert}, nil
}

// Load reads the stored document. A missing file or an undecodable one yields
// the default document; the caller never fails. Top-level keys present in the
// file replace the defaults wholesale, absent ones keep their defaults (the
// merge is deliberately one level deep: a stored settings object missing a
// newly introduced sub-field does not regain that sub-field's default).
func (s *Store) Load() core.AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error("reading data file", err)
		}
		return core.DefaultAppData()
	}
	return decode(data, s.log)
}

// Save serializes and writes the entire document. Write faults are logged and
// alerted here and do not reach the caller; the caller's in-memory state is
// not rolled back.
func (s *Store) Save(doc core.AppData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.saveFailed(err)
		return
	}
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		s.saveFailed(err)
		return
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		s.saveFailed(err)
	}
}

func (s *Store) saveFailed(err error) {
	s.log.Error("saving data file", err)
	s.alert("Saving failed: the document could not be written. Recent changes may be lost on exit.")
}

// Clear removes the persisted document entirely. The next Load returns a
// fresh default document.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.log.Error("clearing data file", err)
	}
}

func (s *Store) UpdateField(field core.Field, value interface{}) (core.AppData, error) {
	doc := s.Load()
	if err := field.Set(&doc, value); err != nil {
		return core.AppData{}, err
	}
	s.Save(doc)
	return doc, nil
}

// decode merges the stored object over the default document, one level deep.
func decode(data []byte, log core.Logger) core.AppData {
	doc := core.DefaultAppData()

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Error("parsing data file", err)
		return doc
	}
	if msg, ok := raw["settings"]; ok {
		var settings core.Settings
		if err := json.Unmarshal(msg, &settings); err != nil {
			log.Error("parsing data file", errors.Wrap(err, "settings"))
			return core.DefaultAppData()
		}
		doc.Settings = settings
	}
	if msg, ok := raw["currentSchoolYear"]; ok {
		if err := json.Unmarshal(msg, &doc.CurrentSchoolYear); err != nil {
			log.Error("parsing data file", errors.Wrap(err, "currentSchoolYear"))
			return core.DefaultAppData()
		}
	}
	if msg, ok := raw["schoolYears"]; ok {
		var years map[string]*core.SchoolYear
		if err := json.Unmarshal(msg, &years); err != nil {
			log.Error("parsing data file", errors.Wrap(err, "schoolYears"))
			return core.DefaultAppData()
		}
		doc.SchoolYears = years
	}
	doc.Normalize()
	return doc
}
