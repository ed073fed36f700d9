package auth

import (
	"fmt"
	"os"
)

const (
	SecretEnvVar = "JWT_SECRET"
)

// SecretFromEnv reads the token-signing secret from the named environment
// variable and scrubs the variable afterwards, so the secret cannot leak to
// child processes. An unset or empty variable is a hard error: there is no
// default secret.
func SecretFromEnv(varname string, getfn func(string) string, setfn func(string, string) error) ([]byte, error) {
	if getfn == nil {
		getfn = os.Getenv
	}
	if setfn == nil {
		setfn = os.Setenv
	}
	val := getfn(varname)
	setfn(varname, "")
	if len(val) == 0 {
		return nil, fmt.Errorf("auth: environment variable %v must hold the token-signing secret", varname)
	}
	return []byte(val), nil
}
