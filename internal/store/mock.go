package store

// MockAliasStore is a map-backed alias resolver for testing.
type MockAliasStore struct {
	Aliases map[string]string

	// Error flags for testing error conditions
	LoadError error
	SaveError error
}

// Load returns the configured error, if any.
func (m *MockAliasStore) Load() error {
	return m.LoadError
}

// Save returns the configured error, if any.
func (m *MockAliasStore) Save() error {
	return m.SaveError
}

// Resolve maps a raw merchant string through the mock aliases.
func (m *MockAliasStore) Resolve(raw string) (string, bool) {
	canonical, ok := m.Aliases[raw]
	return canonical, ok
}
