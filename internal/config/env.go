package config

import (
	"fmt"
	"os"
	"strconv"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "METEORS_"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// envInt64 stores the parsed METEORS_<name> into dst when the variable is set.
func envInt64(name string, dst *int64) error {
	v := GetEnv(EnvPrefix+name, "")
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s%s: %v", ErrInvalidConfiguration, EnvPrefix, name, err)
	}
	*dst = n
	return nil
}

// envBool stores the parsed METEORS_<name> into dst when the variable is set.
func envBool(name string, dst *bool) error {
	v := GetEnv(EnvPrefix+name, "")
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s%s: %v", ErrInvalidConfiguration, EnvPrefix, name, err)
	}
	*dst = b
	return nil
}
