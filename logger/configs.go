package logger

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

type Config struct {
	// Level selects the minimum level that is emitted. Unknown values
	// fall back to info.
	Level string `yaml:"level" env:"DOCAGENT_LOG_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"DOCAGENT_SERVICE_NAME"`
}
