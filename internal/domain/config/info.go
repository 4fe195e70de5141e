package config

// Info carries the caller-supplied configuration selection, resolved once at
// startup from the command line and environment.
type Info struct {
	ConfigFile string
}

// HasConfigFile reports whether an explicit configuration file was supplied.
func (i Info) HasConfigFile() bool {
	return i.ConfigFile != ""
}
