package theme

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/foliodev/folio/internal/errors"
)

// StateFileName is the file holding persisted UI state.
const StateFileName = "state.yaml"

// state is the on-disk shape of the persisted preference.
// One key, matching the original single storage slot.
type state struct {
	Theme string `yaml:"theme"`
}

// Store persists the theme preference in a state file.
type Store struct {
	path string
}

// NewStore creates a store rooted at dir (normally ~/.config/folio).
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, StateFileName)}
}

// Path returns the state file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted theme. Absent file, unreadable file, or an
// out-of-domain value all degrade to DefaultTheme; a missing preference
// is not an error.
func (s *Store) Load() Theme {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return DefaultTheme
	}

	var st state
	if err := yaml.Unmarshal(data, &st); err != nil {
		return DefaultTheme
	}

	return Parse(st.Theme)
}

// Save persists the theme, creating the state directory if needed.
func (s *Store) Save(t Theme) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrTheme,
			"Cannot create state directory",
			"Check permissions on "+filepath.Dir(s.path))
	}

	data, err := yaml.Marshal(state{Theme: t.String()})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTheme,
			"Cannot encode theme state", "")
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrTheme,
			"Cannot write theme state file",
			"Check permissions on "+s.path)
	}

	return nil
}

// Toggle flips the persisted theme and returns the new value.
// The flipped value is returned even when persisting fails so the
// caller can still apply it for the current session.
func (s *Store) Toggle() (Theme, error) {
	next := s.Load().Flipped()
	if err := s.Save(next); err != nil {
		return next, err
	}
	return next, nil
}
