// Package fixture catalogs the bundled instrument archives and extracts
// them on demand into a cache directory.
package fixture

import "fmt"

// catalog is the fixed set of archives shipped in the data tree. One
// archive per key; content is frozen at package build time.
var catalog = []Archive{
	{Key: KeyMetronix, ZipPath: "metronix/metronix_test_data.zip", TopDirs: []string{"Northern_Mining"}},
	{Key: KeyPhoenix, ZipPath: "phoenix/phoenix_test_data.zip", TopDirs: []string{"sample_data"}},
	{Key: KeyPhoenixMTU, ZipPath: "phoenix_mtu/phoenix_mtu_test_data.zip"},
	{Key: KeyUSGSASCII, ZipPath: "usgs_ascii/usgs_ascii_test_data.zip"},
	{Key: KeyNIMS, ZipPath: "nims/nims_test_data.zip"},
	{Key: KeyZen, ZipPath: "zen/zen_test_data.zip"},
	{Key: KeyMiniseed, ZipPath: "miniseed/test_stream.zip"},
	{Key: KeyLEMI, ZipPath: "lemi/lemi_test_data.zip"},
}

// Catalog returns the archive records for every bundled dataset.
func Catalog() []Archive {
	out := make([]Archive, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the archive record for key. It fails with ErrUnknownKey
// for keys outside the bundled set.
func Lookup(key Key) (Archive, error) {
	for _, arc := range catalog {
		if arc.Key == key {
			return arc, nil
		}
	}
	return Archive{}, fmt.Errorf("%w: %q", ErrUnknownKey, string(key))
}
