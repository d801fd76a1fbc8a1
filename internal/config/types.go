package config

// Settings represents the bridge configuration (~/.argus/config.yaml)
type Settings struct {
	Memory MemorySettings `yaml:"memory" json:"memory"`
	Log    LogSettings    `yaml:"log" json:"log"`
}

// MemorySettings configures memory storage
type MemorySettings struct {
	DBPath     string `yaml:"db_path" json:"db_path"`       // local database file path
	Collection string `yaml:"collection" json:"collection"` // remote table name
	Driver     string `yaml:"driver" json:"driver"`         // sqlite, memory
}

// LogSettings configures logging
type LogSettings struct {
	Level string `yaml:"level" json:"level"` // debug, info, warn, error
	File  string `yaml:"file" json:"file"`   // optional log file path
}

// Credentials holds the resolved Supabase endpoint and key.
// The zero value means "remote backend not configured".
type Credentials struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Configured reports whether both endpoint and key were resolved.
func (c Credentials) Configured() bool {
	return c.URL != "" && c.Key != ""
}
