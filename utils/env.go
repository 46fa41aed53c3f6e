package utils

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// OverrideString replaces *target with the value of envVar when it is set.
func OverrideString(target *string, envVar string) {
	if value, found := os.LookupEnv(envVar); found {
		*target = value
	}
}

// OverrideInt replaces *target with the integer value of envVar when it is set.
func OverrideInt(target *int, envVar string) error {
	value, found := os.LookupEnv(envVar)
	if !found {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("env var '%s': %w", envVar, err)
	}
	*target = n
	return nil
}

// OverrideDuration replaces *target with the duration value of envVar when it is set.
func OverrideDuration(target *time.Duration, envVar string) error {
	value, found := os.LookupEnv(envVar)
	if !found {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("env var '%s': %w", envVar, err)
	}
	*target = d
	return nil
}
