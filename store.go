package md2html

import "github.com/alnah/go-md2html/internal/options"

// Store is a mutex-protected option set shared between conversions.
type Store = options.Store

// NewStore creates a Store seeded with a copy of initial.
func NewStore(initial Options) *Store { return options.NewStore(initial) }

// DefaultStore is the process-wide option set behind GetOption, GetOptions,
// SetOption and ConvertWithDefaults.
var DefaultStore = options.NewStore(options.Defaults())

// GetOption returns the value DefaultStore holds for key.
func GetOption(key string) (Value, bool) {
	return DefaultStore.Get(key)
}

// GetOptions returns a snapshot of DefaultStore.
func GetOptions() Options {
	return DefaultStore.GetAll()
}

// SetOption stores value under key in DefaultStore. Later conversions see
// it; conversions already running do not.
func SetOption(key string, value Value) {
	DefaultStore.Set(key, value)
}

// ConvertWithDefaults converts markdown with a snapshot of DefaultStore.
func ConvertWithDefaults(markdown string) string {
	return Convert(markdown, DefaultStore.GetAll())
}
