package animlist

import "fmt"

// ConfigError reports an unusable list configuration.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("animlist: invalid %s: %s", e.Field, e.Reason)
}

// ErrMissingKeyFunc is returned by New when no key extractor is given.
var ErrMissingKeyFunc = &ConfigError{Field: "key", Reason: "a key extractor is required"}
