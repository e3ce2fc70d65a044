// Package application wires the config store, the registry of config types
// and the logger together, and implements the use cases behind the supernova
// CLI commands so the main package stays focused on flag parsing.
package application
