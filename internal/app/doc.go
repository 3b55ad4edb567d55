// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the validation lifecycle: parse the graph
// description, render its canonical form, and cross-check variable tensors
// against their binary data files. It is decoupled from any specific
// entrypoint like a CLI.
package app
