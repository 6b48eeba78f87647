package bintrie

import "fmt"

// DefaultMaxDepth is the depth bound used when none is configured.
const DefaultMaxDepth = 8192

// CeilingPolicy decides what happens when an insert reaches the maximum
// depth and finds the target slot already occupied.
type CeilingPolicy uint8

const (
	// CeilingDefault selects the default policy of the trie configuration:
	// CeilingOverwrite for BinTrie, CeilingDrop for GroupTrie.
	CeilingDefault CeilingPolicy = iota
	// CeilingOverwrite replaces the occupant and hands it back to the caller.
	CeilingOverwrite
	// CeilingDrop silently discards the new item.
	CeilingDrop
)

func (p CeilingPolicy) String() string {
	switch p {
	case CeilingDefault:
		return "default"
	case CeilingOverwrite:
		return "overwrite"
	case CeilingDrop:
		return "drop"
	}
	return fmt.Sprintf("CeilingPolicy(%d)", uint8(p))
}

// Config configures a trie.
type Config struct {
	// MaxDepth bounds the number of descent steps. 0 means DefaultMaxDepth.
	MaxDepth uint32
	// Ceiling is the collision policy at MaxDepth.
	Ceiling CeilingPolicy
}

func (cfg Config) normalized(fallback CeilingPolicy) Config {
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.Ceiling == CeilingDefault {
		cfg.Ceiling = fallback
	}
	return cfg
}

func (cfg Config) validate() error {
	switch cfg.Ceiling {
	case CeilingDefault, CeilingOverwrite, CeilingDrop:
	default:
		return fmt.Errorf("%w: unknown ceiling policy %d", ErrInvalidConfig, uint8(cfg.Ceiling))
	}
	return nil
}
