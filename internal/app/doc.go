// Package app implements the device, person and usage use cases plus the CSV
// seed importer.
//
// A service loads what an operation needs, passes it to the domain
// constructors or Update methods along with storage-backed checkers, and
// persists the result. Domain errors are returned as they are; the HTTP layer
// decides the status code.
package app
