package store

import "sync"

// sidebarBreakpoint is the viewport width above which the sidebar starts
// open. The sidebar state itself is never persisted.
const sidebarBreakpoint = 768

// prefsPersister is the slice of localstate the preference store needs.
type prefsPersister interface {
	DarkMode() bool
	SetDarkMode(on bool) error
}

// PrefsState is a point-in-time copy of the UI preferences.
type PrefsState struct {
	DarkMode       bool
	SidebarOpen    bool
	SelectedFilter string
}

// Prefs holds the UI preferences. Dark mode is loaded from persisted state
// at construction and written back on every change; the sidebar and filter
// reset each run.
type Prefs struct {
	mu    sync.RWMutex
	state prefsPersister

	darkMode       bool
	sidebarOpen    bool
	selectedFilter string
}

// NewPrefs initializes preferences from persisted state and the current
// viewport width.
func NewPrefs(state prefsPersister, viewportWidth int) *Prefs {
	return &Prefs{
		state:          state,
		darkMode:       state.DarkMode(),
		sidebarOpen:    viewportWidth > sidebarBreakpoint,
		selectedFilter: "all",
	}
}

// ToggleDarkMode flips the theme and persists the new value.
func (p *Prefs) ToggleDarkMode() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.darkMode = !p.darkMode
	return p.state.SetDarkMode(p.darkMode)
}

// SetSidebarOpen sets the sidebar visibility for this run.
func (p *Prefs) SetSidebarOpen(open bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sidebarOpen = open
}

// ToggleSidebar flips the sidebar visibility for this run.
func (p *Prefs) ToggleSidebar() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sidebarOpen = !p.sidebarOpen
}

// SetSelectedFilter records the active list filter.
func (p *Prefs) SetSelectedFilter(filter string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selectedFilter = filter
}

// Snapshot returns a copy of the current preferences.
func (p *Prefs) Snapshot() PrefsState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return PrefsState{
		DarkMode:       p.darkMode,
		SidebarOpen:    p.sidebarOpen,
		SelectedFilter: p.selectedFilter,
	}
}
