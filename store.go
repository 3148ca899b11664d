package storelist

import "context"

// Header returns the optional first row of the CSV output: "store name", "address".
func Header() []string {
	return []string{"店舗名", "住所"}
}

// Store is one extracted (name, address) pair.
type Store struct {
	// Name is the trimmed inner text of a name block.
	// Nested markup is kept verbatim.
	Name string

	// Address is the trimmed inner text of an address block with
	// trailing transit annotations removed.
	Address string

	// File is the path the store was read from.
	// Set by the caller; empty when extracting from a string directly.
	File string
}

// Record returns the store as a CSV row.
func (s Store) Record() []string {
	return []string{s.Name, s.Address}
}

// ExtractResult holds the stores found in one HTML page along with the
// raw block counts they were paired from.
type ExtractResult struct {
	Stores []Store

	// Names and Addresses are the number of name and address blocks matched.
	// When they differ, the surplus blocks are dropped.
	Names     int
	Addresses int
}

// Dropped returns the number of unpaired blocks.
func (r *ExtractResult) Dropped() int {
	if r.Names > r.Addresses {
		return r.Names - r.Addresses
	}
	return r.Addresses - r.Names
}

// Extractor finds store blocks in listing HTML.
type Extractor interface {
	// Extract returns the stores in html in document order.
	// Extraction is total: text without matching blocks yields no stores.
	Extract(html string) *ExtractResult
}

// Source lists and reads saved listing pages.
type Source interface {
	// List returns the regular files directly inside dir, sorted by path.
	// Returns ENOTFOUND if dir does not exist or is not a directory.
	List(ctx context.Context, dir string) ([]string, error)

	// Read returns the content of the file at path as text.
	// Returns ENOTFOUND if the file does not exist.
	Read(ctx context.Context, path string) (string, error)
}

// StoreWriter persists an extracted record sequence.
type StoreWriter interface {
	WriteStores(ctx context.Context, stores []Store) error
}
