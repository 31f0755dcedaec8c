package config

// PackagesConfig describes the statute packages available to the service:
// where the package files live and how package ids map to display names.
type PackagesConfig struct {
	LawsDir  string       `yaml:"laws_dir"`
	Packages []PackageRef `yaml:"packages"`
}

// PackageRef is one entry of the manifest. ID names the JSON file under
// LawsDir (without extension); Name is the human-readable Korean label.
type PackageRef struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Default bool   `yaml:"default"`
}

// DefaultPackageIDs lists the packages marked for loading at startup. When
// none are marked, every package is loaded.
func (c *PackagesConfig) DefaultPackageIDs() []string {
	var ids []string
	for _, p := range c.Packages {
		if p.Default {
			ids = append(ids, p.ID)
		}
	}
	if len(ids) == 0 {
		for _, p := range c.Packages {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// Name resolves a package id to its display name, falling back to the id.
func (c *PackagesConfig) Name(id string) string {
	for _, p := range c.Packages {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}
