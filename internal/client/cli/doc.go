// Package cli provides the interactive TouchBase client.
//
// It wires configuration, the local session file, the data store client and
// the text generation provider, then runs a REPL. The REPL shows one of three
// panels (generate, contacts, occasions) and offers commands to sign in,
// maintain contacts and occasions, generate message options and log the one
// that was sent.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
