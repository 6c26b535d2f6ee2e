package config

import (
	"emperror.dev/errors"
	"github.com/spf13/viper"
)

type Output struct {
	// Filename is the default report path when -o/--output is not given.
	Filename string
	// Context is the number of unified-diff context lines per file section.
	Context int
}

var Doc = struct {
	Output Output
}{
	Output: Output{
		Filename: "CHANGES.md",
		Context:  10,
	},
}

// Load initializes the configuration values.
// It may optionally be called with a list of additional paths to check for
// the config file.
// Returns a boolean indicating whether or not a config file was loaded and
// an error if one occurred.
func Load(paths []string) (bool, error) {
	config := viper.New()

	config.SetConfigName("config")
	config.AddConfigPath("$XDG_CONFIG_HOME/diffdoc")
	config.AddConfigPath("$HOME/.config/diffdoc")
	// Add additional custom paths. The primary use case for this is adding
	// repository-specific configuration (e.g., $REPO/.git/diffdoc/config.yaml).
	for _, path := range paths {
		config.AddConfigPath(path)
	}

	if err := config.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return false, nil
		}
		return false, err
	}

	if err := config.Unmarshal(&Doc); err != nil {
		return true, errors.Wrap(err, "failed to read diffdoc configs")
	}

	return true, nil
}
