package mth5testdata_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatcuk/doublestar/v4"

	mth5testdata "github.com/IAGA-DVI-DataStandards/mth5-test-data"
	"github.com/IAGA-DVI-DataStandards/mth5-test-data/internal/expect"
	"github.com/IAGA-DVI-DataStandards/mth5-test-data/internal/fixture"
	"github.com/IAGA-DVI-DataStandards/mth5-test-data/internal/verify"
)

// TestPackageIntegrity runs the full integrity suite against the
// embedded data tree, the same way fixturectl verify does.
func TestPackageIntegrity(t *testing.T) {
	t.Parallel()

	data := mth5testdata.Root()
	checker := &verify.Checker{
		Data:   data,
		Store:  &fixture.Store{Source: data, CacheDir: filepath.Join(t.TempDir(), "cache")},
		Expect: expect.Defaults(),
	}
	report := checker.Run()
	for _, result := range report.Results {
		if result.Status == verify.StatusFail {
			t.Errorf("%s %s: %s", result.Phase, result.Name, result.Detail)
		}
	}
	if !report.OK() {
		t.Fatalf("shipped package failed %d integrity checks", report.Failed)
	}
}

func TestRoot_ShipsAllArchives(t *testing.T) {
	t.Parallel()

	data := mth5testdata.Root()
	for _, zipPath := range expect.Defaults().Archives {
		info, err := fs.Stat(data, zipPath)
		if err != nil {
			t.Errorf("missing zip file: %s", zipPath)
			continue
		}
		if info.IsDir() {
			t.Errorf("not a file: %s", zipPath)
			continue
		}
		if !fixture.IsValidZip(data, zipPath) {
			t.Errorf("not a valid zip: %s", zipPath)
		}
	}
}

func TestPathIn_Idempotent(t *testing.T) {
	t.Parallel()

	cache := t.TempDir()
	for _, key := range mth5testdata.Keys() {
		first, err := mth5testdata.PathIn(cache, key)
		if err != nil {
			t.Fatalf("PathIn(%q): %v", key, err)
		}
		second, err := mth5testdata.PathIn(cache, key)
		if err != nil {
			t.Fatalf("PathIn(%q) second call: %v", key, err)
		}
		if first != second {
			t.Fatalf("PathIn(%q) returned %s then %s", key, first, second)
		}
		if info, err := os.Stat(first); err != nil || !info.IsDir() {
			t.Fatalf("PathIn(%q) = %s is not a directory: %v", key, first, err)
		}
	}
}

func TestPathIn_UnknownKey(t *testing.T) {
	t.Parallel()

	_, err := mth5testdata.PathIn(t.TempDir(), "geonics")
	if !errors.Is(err, fixture.ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestMetronix_ExtractedStructure(t *testing.T) {
	t.Parallel()

	path, err := mth5testdata.PathIn(t.TempDir(), "metronix")
	if err != nil {
		t.Fatalf("PathIn: %v", err)
	}
	stations := filepath.Join(path, "Northern_Mining", "stations")
	info, err := os.Stat(stations)
	if err != nil {
		t.Fatalf("Northern_Mining/stations not found after extraction: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("Northern_Mining/stations is not a directory")
	}
}

func TestPhoenix_ExtractedStructure(t *testing.T) {
	t.Parallel()

	path, err := mth5testdata.PathIn(t.TempDir(), "phoenix")
	if err != nil {
		t.Fatalf("PathIn: %v", err)
	}
	sample := os.DirFS(filepath.Join(path, "sample_data"))

	bins, err := doublestar.Glob(sample, "**/*.bin")
	if err != nil {
		t.Fatalf("glob *.bin: %v", err)
	}
	if len(bins) == 0 {
		t.Fatal("no .bin captures found in phoenix sample_data")
	}
	jsons, err := doublestar.Glob(sample, "**/*.json")
	if err != nil {
		t.Fatalf("glob *.json: %v", err)
	}
	if len(jsons) == 0 {
		t.Fatal("no .json files found in phoenix sample_data")
	}
}

func TestPhoenixMTU_ExtractedStructure(t *testing.T) {
	t.Parallel()

	path, err := mth5testdata.PathIn(t.TempDir(), "phoenix_mtu")
	if err != nil {
		t.Fatalf("PathIn: %v", err)
	}
	info, err := os.Stat(filepath.Join(path, "1690C16C.TBL"))
	if err != nil {
		t.Fatalf("1690C16C.TBL not found after extraction: %v", err)
	}
	if info.Size() < 25 {
		t.Fatalf("1690C16C.TBL is %d bytes, too small for one table block", info.Size())
	}
}

func TestStandaloneFixtures(t *testing.T) {
	t.Parallel()

	data := mth5testdata.Root()
	for _, file := range []string{
		"nims/mnp300a.BIN",
		"nims/mnp300b.BIN",
		"calibration_files/2254.csv",
	} {
		if _, err := fs.Stat(data, file); err != nil {
			t.Errorf("missing standalone fixture: %s", file)
		}
	}

	h5, err := fs.Glob(data, "mth5/parkfield/*.h5")
	if err != nil {
		t.Fatalf("glob parkfield: %v", err)
	}
	if len(h5) == 0 {
		t.Fatal("no .h5 files in mth5/parkfield")
	}
}

func TestXMLMetadataPresent(t *testing.T) {
	t.Parallel()

	data := mth5testdata.Root()
	for _, dir := range []string{
		"florida_xml_metadata_files",
		"stationxml",
		"iris/xml",
	} {
		matches, err := fs.Glob(data, dir+"/*.xml")
		if err != nil {
			t.Fatalf("glob %s: %v", dir, err)
		}
		if len(matches) == 0 {
			t.Errorf("no XML files in %s", dir)
		}
	}
}

func TestClearIn(t *testing.T) {
	t.Parallel()

	cache := t.TempDir()
	path, err := mth5testdata.PathIn(cache, "zen")
	if err != nil {
		t.Fatalf("PathIn: %v", err)
	}
	if err := mth5testdata.ClearIn(cache); err != nil {
		t.Fatalf("ClearIn: %v", err)
	}
	if _, err := os.Stat(path); err == nil {
		t.Fatal("extraction target survived ClearIn")
	}
	if _, err := mth5testdata.PathIn(cache, "zen"); err != nil {
		t.Fatalf("PathIn after ClearIn: %v", err)
	}
}

func TestKeys(t *testing.T) {
	t.Parallel()

	keys := mth5testdata.Keys()
	if len(keys) != 8 {
		t.Fatalf("expected 8 bundled keys, got %d", len(keys))
	}
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if seen[key] {
			t.Fatalf("duplicate key %q", key)
		}
		seen[key] = true
	}
	for _, want := range []string{"metronix", "phoenix", "phoenix_mtu", "usgs_ascii", "nims", "zen", "miniseed", "lemi"} {
		if !seen[want] {
			t.Fatalf("missing key %q", want)
		}
	}
}
