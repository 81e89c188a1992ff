package conf

type Bootstrap struct {
	Logging Logging `yaml:"logging" json:"logging"`
	Server  Server  `yaml:"server" json:"server"`
	Storage Storage `yaml:"storage" json:"storage"`
}

type Logging struct {
	Level  string `yaml:"level" json:"level"`
	Caller bool   `yaml:"caller" json:"caller"`
}

type Server struct {
	Addr string `yaml:"addr" json:"addr"`
}

type Storage struct {
	Path       string `yaml:"path" json:"path"`
	ExportPath string `yaml:"export_path" json:"export_path"`
}

// Default is the configuration used when no config file is given.
func Default() Bootstrap {
	return Bootstrap{
		Logging: Logging{Level: "info"},
		Server:  Server{Addr: ":8080"},
		Storage: Storage{Path: "tasks.json", ExportPath: "tasks_export.txt"},
	}
}
