package plan

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// configType is the plan file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for plan overrides, e.g.
// INTERVALCTL_MAX_TIME.
const envPrefix = "INTERVALCTL"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Load reads the plan at path, applies defaults and environment overrides
// and validates the result.
func Load(path string) (*Plan, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read plan %s: %w", path, err)
	}

	var p Plan
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("unmarshal plan %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validate plan %s: %w", path, err)
	}

	return &p, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("kind", string(KindMulti))
	v.SetDefault("max_time", -1)
	v.SetDefault("non_overlap", false)
	v.SetDefault("allow_overlap", false)
	v.SetDefault("period", 0)
}
