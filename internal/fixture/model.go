package fixture

// Key identifies one bundled instrument dataset.
type Key string

// Known instrument keys.
const (
	KeyMetronix   Key = "metronix"
	KeyPhoenix    Key = "phoenix"
	KeyPhoenixMTU Key = "phoenix_mtu"
	KeyUSGSASCII  Key = "usgs_ascii"
	KeyNIMS       Key = "nims"
	KeyZen        Key = "zen"
	KeyMiniseed   Key = "miniseed"
	KeyLEMI       Key = "lemi"
)

// Keys returns every bundled instrument key, in catalog order.
func Keys() []Key {
	keys := make([]Key, 0, len(catalog))
	for _, arc := range catalog {
		keys = append(keys, arc.Key)
	}
	return keys
}

// Archive describes one bundled zip and what it unpacks into.
type Archive struct {
	// Key is the instrument key the archive is looked up by.
	Key Key

	// ZipPath is the slash-separated archive path inside the data tree.
	ZipPath string

	// TopDirs lists the directories at the root of the archive. The
	// clean-package check forbids these from existing pre-extracted
	// next to the zip.
	TopDirs []string
}

// Dir returns the slash-separated directory holding the archive.
func (a Archive) Dir() string {
	for i := len(a.ZipPath) - 1; i >= 0; i-- {
		if a.ZipPath[i] == '/' {
			return a.ZipPath[:i]
		}
	}
	return "."
}
