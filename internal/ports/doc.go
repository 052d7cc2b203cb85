// Package ports holds the interfaces the layers talk through. Handlers call
// the service interfaces, services call the repository, checker and seed
// source interfaces, and the storage and seedsource adapters implement them.
package ports
