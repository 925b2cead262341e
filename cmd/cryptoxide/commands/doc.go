// Package commands defines the cryptoxide CLI.
//
// Commands
//
//   - keygen    Generate an Ed25519 keypair from a random or given seed
//   - sign      Sign a message with an Ed25519 secret key
//   - verify    Verify an Ed25519 signature
//   - exchange  Derive the X25519 shared secret between an Ed25519 keypair
//   - digest    Hash a file or standard input with SHA-512 or BLAKE2b
//
// Keys, signatures, and derived secrets are printed and accepted as hex.
// All commands are stateless; nothing is written to disk.
package commands
