package manifest

// manifestFile represents the structure of the stow.yaml manifest file. All
// three mappings are optional.
type manifestFile struct {
	Dependencies map[string]string `yaml:"dependencies"`
	Development  map[string]string `yaml:"development"`
	Optional     map[string]string `yaml:"optional"`
}
