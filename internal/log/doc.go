// Package log provides logging with automatic redaction of personal data,
// built on top of the standard slog package.
//
// Inventory documents name a contact person per location, often with an
// e-mail address or phone number. Debug output traces every location, so
// the RedactHandler masks those values before they reach the log:
//   - attributes whose key names contact data (contact, email, phone, ...)
//   - string values that look like an e-mail address or a phone number
//
// # Usage
//
//	// Create a redacting logger
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Debug("location parsed",
//	    "site", "HQ",
//	    "contact", "Anna Berg", // Will be replaced with ***REDACTED***
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
