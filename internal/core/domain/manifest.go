package domain

// Manifest is a project's declared dependency sets, partitioned the way the
// manifest file declares them.
type Manifest struct {
	// Required holds the dependencies needed in every mode.
	Required DeclaredSet

	// Development holds dependencies needed only for development installs.
	Development DeclaredSet

	// Optional holds dependencies that may be absent without error.
	Optional DeclaredSet
}

// Merged returns the declared set an operation should consider for the given
// mode. ModeProduction yields only the required set; ModeAll yields the union
// of all three subsets with required entries winning on key collision.
func (m *Manifest) Merged(mode Mode) DeclaredSet {
	merged := make(DeclaredSet, len(m.Required))
	for id, constraint := range m.Required {
		merged[id] = constraint
	}
	if mode == ModeProduction {
		return merged
	}
	for _, subset := range []DeclaredSet{m.Development, m.Optional} {
		for id, constraint := range subset {
			if _, exists := merged[id]; !exists {
				merged[id] = constraint
			}
		}
	}
	return merged
}
