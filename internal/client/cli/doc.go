// Package cli provides the interactive healthgate command-line client.
//
// The REPL talks to a Backend: either the gateway core running in-process
// (local SQLite or Postgres credentials, artifacts from disk or S3) or a
// remote gateway over gRPC. Typical flow: register or log in, list the
// diseases, then run "predict <disease>" and answer one prompt per field.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See runREPL for the command set.
package cli
