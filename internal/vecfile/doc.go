// Package vecfile reads and writes vector sets for the vecsim CLI.
//
// A vector file is YAML (and therefore also plain JSON):
//
//	dimensions: 3
//	labels: [north, east, south]   # optional, one per vector
//	vectors:
//	  - [0, 1, 0]
//	  - [1, 0, 0]
//	  - [0, -1, 0]
//
// Files ending in .zst are zstd-compressed, files ending in .lz4 are
// lz4 frame-compressed; the compression suffix comes after the format
// suffix, e.g. vectors.yaml.zst.
package vecfile
