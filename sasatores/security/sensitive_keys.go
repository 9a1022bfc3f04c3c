package security

import (
	"maps"
	"slices"
	"sync"
)

// defaultSensitiveKeys lists the key names whose values are always
// redacted. All entries are lowercase; matching is case-insensitive.
var defaultSensitiveKeys = []string{
	"password",
	"token",
	"secret",
	"apikey",
	"auth",
	"credential",
	"card_no",
}

var (
	sensitiveKeysMapOnce sync.Once
	sensitiveKeysMap     map[string]bool
)

// DefaultSensitiveKeys returns the built-in sensitive key names. The
// returned slice is a copy; mutating it does not affect the default
// sanitizer.
func DefaultSensitiveKeys() []string {
	return slices.Clone(defaultSensitiveKeys)
}

// DefaultSensitiveKeysMap provides a map version of DefaultSensitiveKeys
// for lookup operations. The underlying cache is initialized only once;
// each call returns a shallow clone so callers cannot mutate shared state.
func DefaultSensitiveKeysMap() map[string]bool {
	sensitiveKeysMapOnce.Do(func() {
		sensitiveKeysMap = make(map[string]bool, len(defaultSensitiveKeys))
		for _, key := range defaultSensitiveKeys {
			sensitiveKeysMap[key] = true
		}
	})

	clone := make(map[string]bool, len(sensitiveKeysMap))
	maps.Copy(clone, sensitiveKeysMap)

	return clone
}
