package main

import (
	"os"
	"strconv"
)

// stringEnv returns the environment value for key, or def when unset.
func stringEnv(key, def string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	return value
}

// intEnv returns the environment value for key parsed as an integer,
// or def when unset or unparseable.
func intEnv(key string, def int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

// fallbackString resolves a connection setting: flag value first, then
// the environment, then the hardcoded default.
func fallbackString(flagValue, key, def string) string {
	if flagValue != "" {
		return flagValue
	}
	return stringEnv(key, def)
}

// fallbackInt resolves an integer setting the same way; a zero flag
// value means unset.
func fallbackInt(flagValue int, key string, def int) int {
	if flagValue != 0 {
		return flagValue
	}
	return intEnv(key, def)
}
