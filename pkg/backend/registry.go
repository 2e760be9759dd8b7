package backend

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/trashhalo/pwaicon/pkg/icon"
)

// Default is the backend used when none is configured.
const Default = "raster"

var ErrUnknownBackend = errors.New("unknown backend")

// Prober is implemented by backends that depend on something outside the
// binary and may be missing at runtime.
type Prober interface {
	Available() error
}

var (
	mu       sync.RWMutex
	backends = map[string]icon.Backend{}
)

// Register makes a backend available by name. A later registration under the
// same name replaces the earlier one.
func Register(b icon.Backend) {
	mu.Lock()
	defer mu.Unlock()
	backends[b.Name()] = b
}

func Lookup(name string) (icon.Backend, error) {
	mu.RLock()
	defer mu.RUnlock()
	b, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return b, nil
}

// Names lists registered backends in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Available reports whether b can draw right now.
func Available(b icon.Backend) error {
	if p, ok := b.(Prober); ok {
		return p.Available()
	}
	return nil
}

func init() {
	Register(Raster{})
	Register(Vector{})
	Register(SVG{})
	Register(NewRsvg(""))
}
