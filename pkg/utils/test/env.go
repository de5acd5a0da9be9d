package test

import (
	"fmt"
	"os"
	"testing"
)

// EnvVars holds the variables a backend contract test needs. Tests are skipped when any is missing.
type EnvVars struct {
	vars map[string]string
}

func NewEnvVars(t *testing.T, keys ...string) EnvVars {
	t.Helper()
	e := EnvVars{
		vars: map[string]string{},
	}

	for _, key := range keys {
		value, ok := os.LookupEnv(key)
		if !ok || value == "" {
			t.Skipf("skipping test because %s is not set", key)
		}
		e.vars[key] = value
	}

	return e
}

func (e EnvVars) Get(key string) string {
	if v, ok := e.vars[key]; ok {
		return v
	}

	panic(fmt.Sprintf("env var %s is not set", key))
}
