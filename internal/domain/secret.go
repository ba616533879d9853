package domain

import (
	"fmt"
	"path"
	"strings"
)

const secretRefScheme = "bd://"

// PasswordSecretRef names the secret holding the password of a target.
func PasswordSecretRef(id TargetID) string {
	return secretRefScheme + string(id) + "/password"
}

// SecretPath turns a secret ref such as "bd://staging/password" into the
// slash separated path "staging/password" used by storage backends.
func SecretPath(ref string) (string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(ref), secretRefScheme)
	if !ok {
		return "", fmt.Errorf("invalid secret ref %q: expected %s prefix", ref, secretRefScheme)
	}

	cleaned := path.Clean(rest)
	if rest == "" || cleaned == "." || path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("invalid secret ref %q", ref)
	}

	return cleaned, nil
}
