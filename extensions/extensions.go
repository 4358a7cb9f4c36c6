// Package extensions lets feature modules contribute extra fields to the
// course payloads served by the API, without the host course model knowing
// about them.
package extensions

import (
	"sort"
	"sync"
)

// CourseSettingsProvider contributes named fields to a course payload.
type CourseSettingsProvider interface {
	// Name identifies the provider. Registering the same name twice is a no-op.
	Name() string
	// Fields returns the extra fields for the course.
	Fields(courseID string) map[string]interface{}
}

var (
	mu        sync.RWMutex
	providers = map[string]CourseSettingsProvider{}
)

// Register adds a provider to the registry. Registration is idempotent:
// a provider name already present is left as is, with no duplicate and no
// error, so init paths may run more than once.
func Register(provider CourseSettingsProvider) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := providers[provider.Name()]; exists {
		return
	}
	providers[provider.Name()] = provider
}

// Providers returns the registered providers in a stable name order.
func Providers() []CourseSettingsProvider {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]CourseSettingsProvider, 0, len(names))
	for _, name := range names {
		result = append(result, providers[name])
	}
	return result
}

// MergeFields collects the fields of every registered provider for a course,
// keyed by provider name.
func MergeFields(courseID string) map[string]interface{} {
	merged := map[string]interface{}{}
	for _, provider := range Providers() {
		merged[provider.Name()] = provider.Fields(courseID)
	}
	return merged
}

// Reset clears the registry. Only used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	providers = map[string]CourseSettingsProvider{}
}
