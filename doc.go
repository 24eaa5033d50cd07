// Package p11trc is a call-level tracing proxy for PKCS#11 providers.
//
// A [Proxy] presents the same function table as a real provider, the
// delegate, and forwards every call to it unchanged. Around each call it
// writes a trace block describing the call's inputs and, once the delegate
// returns, another describing its outputs and status. Clients use the proxy's
// table exactly as they would use the delegate's, and get back exactly what
// the delegate returned.
//
// The delegate is loaded lazily, on the first call through the proxy, using
// settings read from the environment:
//
//	PKCS11_LOGGER_LIBRARY_PATH    path to the real provider (required)
//	PKCS11_LOGGER_LOG_FILE_PATH   trace file, opened in append mode
//	PKCS11_LOGGER_FLAGS           decimal bitmask of Flag values
//
// If the delegate can't be loaded, for whatever reason, every function in the
// proxy's table returns CKR_GENERAL_ERROR, and the reason is written to the
// trace (or to stderr, if the trace destinations were never established).
//
// Trace blocks are plain text. PINs are redacted unless [FlagEnablePIN] is
// set. Buffers are rendered as uppercase hex, attribute templates are rendered
// recursively, and every block starts with a timestamped separator line, so
// blocks written concurrently by different goroutines stay readable.
//
// In addition to the trace, a proxy keeps a short history of recent calls per
// function, and can publish call counts and latencies as Prometheus metrics.
package p11trc
