package store

import "testing"

type memPrefs struct {
	darkMode bool
	saves    int
}

func (m *memPrefs) DarkMode() bool { return m.darkMode }
func (m *memPrefs) SetDarkMode(on bool) error {
	m.darkMode = on
	m.saves++
	return nil
}

func TestPrefsInit(t *testing.T) {
	persisted := &memPrefs{darkMode: true}

	wide := NewPrefs(persisted, 1280)
	snap := wide.Snapshot()
	if !snap.DarkMode {
		t.Fatalf("dark mode should load from persisted state")
	}
	if !snap.SidebarOpen {
		t.Fatalf("sidebar should start open on a wide viewport")
	}
	if snap.SelectedFilter != "all" {
		t.Fatalf("selected filter = %q, want all", snap.SelectedFilter)
	}

	narrow := NewPrefs(persisted, 600)
	if narrow.Snapshot().SidebarOpen {
		t.Fatalf("sidebar should start closed on a narrow viewport")
	}
}

func TestToggleDarkModePersists(t *testing.T) {
	persisted := &memPrefs{}
	prefs := NewPrefs(persisted, 1280)

	if err := prefs.ToggleDarkMode(); err != nil {
		t.Fatalf("toggle dark mode: %v", err)
	}
	if !prefs.Snapshot().DarkMode || !persisted.darkMode {
		t.Fatalf("toggle should flip and persist")
	}
	if err := prefs.ToggleDarkMode(); err != nil {
		t.Fatalf("toggle dark mode: %v", err)
	}
	if prefs.Snapshot().DarkMode || persisted.darkMode {
		t.Fatalf("second toggle should flip back")
	}
	if persisted.saves != 2 {
		t.Fatalf("saves = %d, want one per toggle", persisted.saves)
	}
}

func TestSidebarAndFilterAreSessionLocal(t *testing.T) {
	persisted := &memPrefs{}
	prefs := NewPrefs(persisted, 1280)

	prefs.ToggleSidebar()
	if prefs.Snapshot().SidebarOpen {
		t.Fatalf("sidebar should be closed after toggle")
	}
	prefs.SetSidebarOpen(true)
	if !prefs.Snapshot().SidebarOpen {
		t.Fatalf("sidebar should be open after set")
	}
	prefs.SetSelectedFilter("assignment")
	if got := prefs.Snapshot().SelectedFilter; got != "assignment" {
		t.Fatalf("selected filter = %q", got)
	}
	if persisted.saves != 0 {
		t.Fatalf("sidebar/filter changes must not persist, saves = %d", persisted.saves)
	}
}
