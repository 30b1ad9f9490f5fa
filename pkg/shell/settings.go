package shell

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the interactive mode settings, read from settings.yaml in
// the weir directory. All fields are optional.
type Settings struct {
	// Prompt replaces the default prompt with a fixed string.
	Prompt string `yaml:"prompt"`
	// ValuePrefix is written before each value a command outputs.
	ValuePrefix string `yaml:"value-prefix"`
	// DBPath overrides the location of the history database. The -db flag
	// takes precedence over it.
	DBPath string `yaml:"db-path"`
}

func defaultSettings() Settings {
	return Settings{ValuePrefix: "▶ "}
}

// loadSettings reads the settings file. A missing file is not an error;
// fields absent from the file keep their defaults. On a bad file the
// defaults are returned along with the error, so the session can still
// start.
func loadSettings() (Settings, error) {
	settings := defaultSettings()
	path, err := settingsPath()
	if err != nil {
		return settings, err
	}
	return settings, loadSettingsFile(path, &settings)
}

func loadSettingsFile(path string, settings *Settings) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot read %v: %v", path, err)
	}
	err = yaml.Unmarshal(content, settings)
	if err != nil {
		*settings = defaultSettings()
		return fmt.Errorf("cannot parse %v: %v", path, err)
	}
	return nil
}
