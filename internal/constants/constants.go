package constants

const (
	Version        = `0.1.0`
	AppName        = `nb`
	ConfigFile     = `config`
	ConfigFileType = `yaml`
	ConfigDir      = `/.nb/`
	LogFile        = `debug.log`
	EnvPrefix      = `NB`

	DefaultNotesDir = `notes`
	TrashDir        = `.trash`
)
