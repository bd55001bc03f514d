//go:build !hwydebug

package hwy

// DebugChecks reports whether contract assertions are compiled in.
// Build with -tags hwydebug to enable them.
const DebugChecks = false
