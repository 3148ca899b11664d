// Package storelist extracts store names and addresses from saved
// directory-listing HTML pages and writes them out as CSV.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., regexp/, csv/, sqlite/).
package storelist
