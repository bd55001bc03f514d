//go:build hwydebug

package hwy

// DebugChecks reports whether contract assertions are compiled in.
const DebugChecks = true
