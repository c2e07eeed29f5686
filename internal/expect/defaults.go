package expect

// Defaults returns the expectation set for the bundled data tree.
func Defaults() Document {
	return Document{
		Archives: []string{
			"metronix/metronix_test_data.zip",
			"phoenix/phoenix_test_data.zip",
			"phoenix_mtu/phoenix_mtu_test_data.zip",
			"usgs_ascii/usgs_ascii_test_data.zip",
			"nims/nims_test_data.zip",
			"zen/zen_test_data.zip",
			"miniseed/test_stream.zip",
			"lemi/lemi_test_data.zip",
		},
		Structure: []StructureRule{
			{
				Key:  "metronix",
				Dirs: []string{"Northern_Mining", "Northern_Mining/stations"},
			},
			{
				Key:  "phoenix",
				Dirs: []string{"sample_data"},
				Globs: []GlobRule{
					{Pattern: "sample_data/**/*.bin", MinMatches: 1},
					{Pattern: "sample_data/**/*.json", MinMatches: 1},
				},
			},
			{
				Key: "phoenix_mtu",
				// One TBL block is 25 bytes; anything smaller is truncated.
				Files: []FileRule{{Path: "1690C16C.TBL", MinBytes: 25}},
			},
		},
		Standalone: []string{
			"nims/mnp300a.BIN",
			"nims/mnp300b.BIN",
			"calibration_files/2254.csv",
		},
		Metadata: []MetadataRule{
			{Dir: "florida_xml_metadata_files", Pattern: "*.xml", MinMatches: 1},
			{Dir: "stationxml", Pattern: "*.xml", MinMatches: 1},
			{Dir: "iris/xml", Pattern: "*.xml", MinMatches: 1},
			{Dir: "mth5/parkfield", Pattern: "*.h5", MinMatches: 1},
		},
	}
}
