// Package accounts maps statement account numbers to display names. The
// table front-end uses the registry to recognize account-summary rows;
// the text front-end uses its placeholder identity when synthesizing the
// single aggregate summary, since plain text carries no account metadata.
package accounts

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnknownName is the sentinel display name for account numbers that are
// recognized but have no configured name.
const UnknownName = "Unknown"

// Account is one account identity.
type Account struct {
	Number string `yaml:"number"`
	Name   string `yaml:"name"`
}

// RegistryFile is the on-disk YAML shape of a registry.
type RegistryFile struct {
	Placeholder Account           `yaml:"placeholder"`
	UnknownName string            `yaml:"unknown_name"`
	Numbers     []string          `yaml:"numbers"`
	Names       map[string]string `yaml:"names"`
}

// Registry holds the configured set of known account numbers and their
// display names.
type Registry struct {
	known       map[string]struct{}
	names       map[string]string
	unknownName string
	placeholder Account
}

// NewRegistry builds a registry from a number-to-name table. Extra
// numbers without names may be listed to widen row recognition; they
// resolve to the unknown-name sentinel.
func NewRegistry(names map[string]string, extraNumbers []string, placeholder Account) *Registry {
	r := &Registry{
		known:       make(map[string]struct{}, len(names)+len(extraNumbers)),
		names:       make(map[string]string, len(names)),
		unknownName: UnknownName,
		placeholder: placeholder,
	}
	for number, name := range names {
		digits := DigitsOnly(number)
		if digits == "" {
			continue
		}
		r.known[digits] = struct{}{}
		r.names[digits] = name
	}
	for _, number := range extraNumbers {
		digits := DigitsOnly(number)
		if digits != "" {
			r.known[digits] = struct{}{}
		}
	}
	return r
}

// LoadRegistry reads a registry from a YAML file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading accounts file: %w", err)
	}

	var file RegistryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing accounts file %s: %w", path, err)
	}

	r := NewRegistry(file.Names, file.Numbers, file.Placeholder)
	r.SetUnknownName(file.UnknownName)
	return r, nil
}

// SetUnknownName overrides the sentinel display name for recognized
// numbers that have no configured name. An empty name keeps the current
// sentinel.
func (r *Registry) SetUnknownName(name string) {
	if name != "" {
		r.unknownName = name
	}
}

// Known reports whether the digits of number match a configured account.
func (r *Registry) Known(number string) bool {
	_, ok := r.known[DigitsOnly(number)]
	return ok
}

// Lookup resolves an account number to its full identity. Numbers with
// no configured name resolve to the unknown-name sentinel; this is not
// an error.
func (r *Registry) Lookup(number string) Account {
	digits := DigitsOnly(number)
	name, ok := r.names[digits]
	if !ok {
		name = r.unknownName
	}
	return Account{Number: digits, Name: name}
}

// Placeholder returns the identity used for summaries synthesized from
// plain text.
func (r *Registry) Placeholder() Account {
	return r.placeholder
}

// DigitsOnly strips every non-digit character from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
