// Package pagination normalizes page/limit requests into offset windows and
// builds the metadata returned alongside paged article lists.
package pagination

// HardMaxLimit is the largest page size any caller can obtain, regardless of
// configuration.
const HardMaxLimit = 100

// Config holds pagination defaults.
type Config struct {
	DefaultPage  int // Page used when the request omits it (typically 1)
	DefaultLimit int // Page size used when the request omits it (typically 20)
	MaxLimit     int // Upper clamp for the page size, never above HardMaxLimit
}

// DefaultConfig returns page=1, limit=20, max=100.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 20,
		MaxLimit:     HardMaxLimit,
	}
}

// sanitized caps MaxLimit at HardMaxLimit and pulls the defaults back into
// range.
func (c Config) sanitized() Config {
	if c.MaxLimit < 1 || c.MaxLimit > HardMaxLimit {
		c.MaxLimit = HardMaxLimit
	}
	if c.DefaultPage < 1 {
		c.DefaultPage = 1
	}
	c.DefaultLimit = clamp(c.DefaultLimit, 1, c.MaxLimit)
	return c
}
