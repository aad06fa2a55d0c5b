// Package logging provides a minimal logging facade for basicsig tooling.
//
// The signature packages themselves never log: failures are returned to the
// caller as typed errors. This package exists for the programs built on top
// of them (the basicsig CLI, examples) and for the redaction placeholder that
// secret containers print instead of their contents.
//
// # Logger Interface
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// New wraps any *slog.Logger; NewText builds a text handler at a given
// level, typically obtained from ParseLevel.
//
// # Redaction Support
//
//	logger.Info(ctx, "secret key loaded", logging.Redacted("secret_key"))
//	// Logs: secret_key=[redacted]
//
//	logger.Info(ctx, "signed", logging.Public("signature", sig[:]))
//
// # Security Considerations
//
//   - Never log secret scalars or secret key encodings
//   - Use logging.Redacted() to mark sensitive attributes
//   - Use logging.Public() only for public keys and signatures
package logging
