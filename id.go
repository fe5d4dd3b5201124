package finbook

import "github.com/google/uuid"

// newID returns a short random identifier with a type prefix, e.g. "ACC_1a2b3c4d".
// Identifiers are stable for the lifetime of the process, which is the only
// lifetime this system has.
func newID(prefix string) string {
	return prefix + uuid.NewString()[:8]
}
