package ember

import (
	"errors"
	"io/fs"

	"github.com/ignite-laboratories/core"
	"github.com/joho/godotenv"
)

// LoadSettings pre-populates the process environment from a dotenv file.
//
// A missing file is not an error. Variables that are already set in the environment are left untouched.
func LoadSettings(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		core.Verbosef(ModuleName, "no settings file at %s\n", path)
		return nil
	}
	if err != nil {
		return &ConfigError{Setting: SettingSettingsFile, Value: path, Err: err}
	}
	core.Verbosef(ModuleName, "loaded settings from %s\n", path)
	return nil
}

// PrepareRuntime resolves the runtime settings, loads the settings file they name, and resolves
// them again so the file can choose the backend and log level too.
func PrepareRuntime(lookup Lookup) (Runtime, error) {
	rt, err := ResolveRuntime(lookup)
	if err != nil {
		return Runtime{}, err
	}
	if err := LoadSettings(rt.SettingsFile); err != nil {
		return Runtime{}, err
	}
	return ResolveRuntime(lookup)
}
