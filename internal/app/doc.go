// Package app contains the application lifecycle. It wires configuration,
// logging, input discovery, the analysis engine and report rendering together,
// decoupled from any specific entrypoint like a CLI.
package app
