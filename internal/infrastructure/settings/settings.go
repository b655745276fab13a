// Package settings holds the named configuration sections of the installed
// simulation programs and persists them as YAML.
package settings

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNoSection = errors.New("missing section")
	ErrNoOption  = errors.New("missing option")
)

// Section is a named group of string options.
type Section struct {
	name    string
	options map[string]string
}

// Name returns the section name.
func (s *Section) Name() string { return s.name }

// Get returns the value of an option.
func (s *Section) Get(option string) (string, bool) {
	v, ok := s.options[option]
	return v, ok
}

// Set assigns an option.
func (s *Section) Set(option, value string) {
	s.options[option] = value
}

// Unset removes an option.
func (s *Section) Unset(option string) {
	delete(s.options, option)
}

// Options returns the option names in sorted order.
func (s *Section) Options() []string {
	names := make([]string, 0, len(s.options))
	for name := range s.options {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Settings is the full set of sections. The zero value is not usable; use New.
type Settings struct {
	sections map[string]*Section
}

// New returns empty settings.
func New() *Settings {
	return &Settings{sections: make(map[string]*Section)}
}

// Section returns the named section.
func (s *Settings) Section(name string) (*Section, bool) {
	sec, ok := s.sections[name]
	return sec, ok
}

// AddSection returns the named section, creating it if needed.
func (s *Settings) AddSection(name string) *Section {
	if sec, ok := s.sections[name]; ok {
		return sec
	}
	sec := &Section{name: name, options: make(map[string]string)}
	s.sections[name] = sec
	return sec
}

// RemoveSection deletes the named section.
func (s *Settings) RemoveSection(name string) {
	delete(s.sections, name)
}

// Sections returns the section names in sorted order.
func (s *Settings) Sections() []string {
	names := make([]string, 0, len(s.sections))
	for name := range s.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns section.option or an error wrapping ErrNoSection or
// ErrNoOption.
func (s *Settings) Lookup(section, option string) (string, error) {
	sec, ok := s.Section(section)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoSection, section)
	}
	v, ok := sec.Get(option)
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrNoOption, section, option)
	}
	return v, nil
}

// Clone returns a deep copy.
func (s *Settings) Clone() *Settings {
	out := New()
	for name, sec := range s.sections {
		dst := out.AddSection(name)
		for k, v := range sec.options {
			dst.options[k] = v
		}
	}
	return out
}

func (s *Settings) toMap() map[string]map[string]string {
	m := make(map[string]map[string]string, len(s.sections))
	for name, sec := range s.sections {
		opts := make(map[string]string, len(sec.options))
		for k, v := range sec.options {
			opts[k] = v
		}
		m[name] = opts
	}
	return m
}

func fromMap(m map[string]map[string]string) *Settings {
	s := New()
	for name, opts := range m {
		sec := s.AddSection(name)
		for k, v := range opts {
			sec.options[k] = v
		}
	}
	return s
}
