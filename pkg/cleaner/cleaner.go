// Package cleaner provides interfaces and implementations for cleaning source text.
// Cleaners transform file contents into a cleaned form, typically by removing
// dead or unwanted fragments before the result is written back out.
package cleaner

// Cleaner transforms source text into a cleaned form.
type Cleaner interface {
	// Clean transforms the input text and returns the cleaned result.
	// Input that contains nothing to clean is returned unchanged.
	Clean(content string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
