package yui

import (
	"sort"
	"strings"
	"sync"
	"time"

	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/logging"
)

// Pump drives a backend's input handling for one dialog.
type Pump interface {
	// PumpUntilEventOrTimeout processes native input until an event is
	// pending on d, work is queued on the UI, or deadline passes. A zero
	// deadline means no timeout. Returning early is allowed; the caller
	// loops.
	PumpUntilEventOrTimeout(d *Dialog, deadline time.Time) error
}

//go:generate mockgen -package=yui_test -destination=mock_desktop_test.go github.com/odvcencio/yui/pkg/yui DesktopServices

// DesktopServices are the process-wide facilities behind the Application
// façade. File pickers return "" when the user cancels.
type DesktopServices interface {
	AskForExistingDirectory(startDir, headline string) string
	AskForExistingFile(startWith, filter, headline string) string
	AskForSaveFileName(startWith, filter, headline string) string
	SetApplicationTitle(title string)
	SetApplicationIcon(path string)
	ThemeIconExists(name string) bool
	SetBusyCursor(busy bool)
	Beep()
}

// Backend renders widgets with one toolkit.
type Backend interface {
	Name() string
	// Supports reports whether the backend implements a widget kind.
	Supports(kind WidgetKind) bool
	// Realize creates the native counterpart of w. The parent, if any, is
	// realized first.
	Realize(w Widget) (Peer, error)
	OpenDialog(d *Dialog) error
	DestroyDialog(d *Dialog) error
	Pump() Pump
	Desktop() DesktopServices
	Close() error
}

// Registration describes a backend to the selector.
type Registration struct {
	Name string
	// Priority orders probing; lower probes first.
	Priority int
	// Probe reports whether the toolkit is usable in this process. A nil
	// probe always succeeds.
	Probe func() bool
	// New builds the backend for ui.
	New func(ui *UI) (Backend, error)
	// Manual registrations are only chosen by name, never by probing.
	Manual bool
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Registration{}
)

// RegisterBackend adds or replaces a backend registration. Backends call
// it from init.
func RegisterBackend(r Registration) {
	r.Name = strings.ToLower(strings.TrimSpace(r.Name))
	registryMu.Lock()
	registry[r.Name] = r
	registryMu.Unlock()
}

// Registrations returns all registered backends in probe order.
func Registrations() []Registration {
	registryMu.RLock()
	out := make([]Registration, 0, len(registry))
	for _, r := range registry {
		out = append(out, r)
	}
	registryMu.RUnlock()
	sortRegistrations(out)
	return out
}

func sortRegistrations(regs []Registration) {
	sort.SliceStable(regs, func(i, j int) bool {
		if regs[i].Priority != regs[j].Priority {
			return regs[i].Priority < regs[j].Priority
		}
		return regs[i].Name < regs[j].Name
	})
}

// SelectBackend picks a registration. A non-empty override naming a
// registered backend (case-insensitive) wins without probing; otherwise
// the non-manual backends are probed in priority order. An unknown
// override falls back to probing.
func SelectBackend(override string, regs []Registration) (Registration, error) {
	sorted := append([]Registration(nil), regs...)
	sortRegistrations(sorted)

	name := strings.ToLower(strings.TrimSpace(override))
	if name != "" {
		for _, r := range sorted {
			if strings.EqualFold(r.Name, name) {
				return r, nil
			}
		}
		logging.Default().Warn(logging.CategoryBackend, "unknown_override", "unknown backend requested; probing", map[string]any{
			"requested": override,
		})
	}

	var tried []string
	for _, r := range sorted {
		if r.Manual {
			continue
		}
		tried = append(tried, r.Name)
		if r.Probe == nil || r.Probe() {
			return r, nil
		}
	}
	return Registration{}, yerrors.New(yerrors.ErrCodeNoBackend, "no usable backend found").
		WithContext("probed", strings.Join(tried, ","))
}

// KindSet is a simple set of widget kinds for Backend.Supports implementations.
type KindSet map[WidgetKind]bool

// AllKindsExcept returns a set of every kind except the listed ones.
func AllKindsExcept(missing ...WidgetKind) KindSet {
	s := KindSet{}
	for _, k := range AllKinds() {
		s[k] = true
	}
	for _, k := range missing {
		delete(s, k)
	}
	return s
}

// Has reports membership.
func (s KindSet) Has(k WidgetKind) bool { return s[k] }
