package config

const (
	// DefaultFileName is the preferred configuration file name.
	DefaultFileName = "gitver.yml"

	// DefaultAlternativeFileName is accepted when DefaultFileName is absent.
	DefaultAlternativeFileName = "gitver.yaml"
)

// DefaultCandidates returns the well-known configuration file names in
// selection order.
func DefaultCandidates() []string {
	return []string{DefaultFileName, DefaultAlternativeFileName}
}
