package entities

import (
	"sort"
	"strings"
)

// Environment is an inherited process environment with explicit overrides
// layered on top. Overrides always win over inherited values.
type Environment struct {
	inherited []string
	overrides map[string]string
}

// NewEnvironment wraps inherited, given in os.Environ form ("KEY=value").
func NewEnvironment(inherited []string) *Environment {
	return &Environment{
		inherited: append([]string(nil), inherited...),
		overrides: make(map[string]string),
	}
}

// With returns a copy of the environment with key forced to value.
func (e *Environment) With(key, value string) *Environment {
	next := &Environment{
		inherited: e.inherited,
		overrides: make(map[string]string, len(e.overrides)+1),
	}
	for k, v := range e.overrides {
		next.overrides[k] = v
	}
	next.overrides[key] = value
	return next
}

// Get returns the effective value of key.
func (e *Environment) Get(key string) (string, bool) {
	if v, ok := e.overrides[key]; ok {
		return v, true
	}
	// the last inherited entry wins, matching how exec resolves duplicates
	for i := len(e.inherited) - 1; i >= 0; i-- {
		k, v, found := strings.Cut(e.inherited[i], "=")
		if found && k == key {
			return v, true
		}
	}
	return "", false
}

// Environ renders the environment for exec.Cmd.Env. Inherited entries keep
// their order; overridden keys are dropped from it and appended sorted by key.
func (e *Environment) Environ() []string {
	result := make([]string, 0, len(e.inherited)+len(e.overrides))
	for _, kv := range e.inherited {
		k, _, _ := strings.Cut(kv, "=")
		if _, overridden := e.overrides[k]; overridden {
			continue
		}
		result = append(result, kv)
	}

	keys := make([]string, 0, len(e.overrides))
	for k := range e.overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		result = append(result, k+"="+e.overrides[k])
	}
	return result
}
