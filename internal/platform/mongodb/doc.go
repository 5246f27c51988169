// Package mongodb provides MongoDB-specific implementations for the data
// storage interfaces defined in the internal/store package. It handles the
// details of client connections, index bootstrapping, document mapping
// between domain entities and BSON records, and translation of driver
// errors into store sentinel errors.
package mongodb
