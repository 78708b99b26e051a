package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "TASKDECK"

	ServiceName = "taskdeck_backend"
)
