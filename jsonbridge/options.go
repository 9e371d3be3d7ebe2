// SPDX-License-Identifier: MIT
// Package: selkit/jsonbridge
//
// options.go — functional options for the JSON encoder side.
//
// Contract (strict):
//   • Options are functional (type Option func(*bridgeConfig)).
//   • Defaults are deterministic: compact canonical output, no prefix.
//   • Options apply in order; last-wins. No hidden globals.

package jsonbridge

// Option customizes ToJSONText behavior by mutating a bridgeConfig before
// encoding begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*bridgeConfig)

// bridgeConfig aggregates the encoder knobs. Passed by value after
// resolution; immutable to callers.
type bridgeConfig struct {
	// prefix/indent mirror json.MarshalIndent; both empty means compact.
	prefix string
	indent string
}

// newBridgeConfig resolves options over deterministic defaults.
// Complexity: O(len(opts)) time, O(1) space.
func newBridgeConfig(opts ...Option) bridgeConfig {
	cfg := bridgeConfig{} // compact output by default

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIndent switches ToJSONText to pretty output using the given line
// prefix and per-level indent, exactly as json.MarshalIndent interprets
// them. Passing two empty strings restores compact output.
// Complexity: O(1) time, O(1) space.
func WithIndent(prefix, indent string) Option {
	return func(c *bridgeConfig) {
		c.prefix = prefix
		c.indent = indent
	}
}
