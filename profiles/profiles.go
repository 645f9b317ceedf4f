// Package profiles holds the compiled-in register programmes. Each profile is
// a named, versioned configuration; the sequencer itself is profile-agnostic.
package profiles

import (
	"sort"
	"sync"

	"rfbringup-go/errcode"
	"rfbringup-go/types"
)

const (
	NameE407     = "e407"
	NameE407Fast = "e407-fast"
)

var (
	mu       sync.RWMutex
	registry = map[string]types.Profile{}
)

// Register adds a profile. It panics on an invalid or duplicate profile:
// tables are compiled in, so either is a build defect.
func Register(p types.Profile) {
	if err := p.Validate(); err != nil {
		panic(err.Error())
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[p.Name]; dup {
		panic("profiles: duplicate " + p.Name)
	}
	registry[p.Name] = p.Clone()
}

// Lookup returns a private copy of the named profile.
func Lookup(name string) (types.Profile, error) {
	mu.RLock()
	p, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return types.Profile{}, &errcode.E{C: errcode.UnknownProfile, Op: "lookup", Msg: name}
	}
	return p.Clone(), nil
}

// Names lists registered profiles in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Default returns the profile selected at build time.
func Default() types.Profile {
	p, err := Lookup(defaultName)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// DefaultName is the build-selected profile name.
func DefaultName() string { return defaultName }
