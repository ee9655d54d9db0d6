package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// EnsureUID makes sure fields carries a uid, generating a new one only when
// the key is missing.
func EnsureUID(fields map[string]any) (uid string, changed bool, err error) {
	if fields == nil {
		return "", false, errors.New("fields map is nil")
	}

	if v, ok := fields["uid"]; ok {
		return strings.TrimSpace(fmt.Sprint(v)), false, nil
	}

	uid = uuid.NewString()
	fields["uid"] = uid
	return uid, true, nil
}

// ValidUID reports whether s parses as a UUID.
func ValidUID(s string) bool {
	_, err := uuid.Parse(strings.TrimSpace(s))
	return err == nil
}
