// Package compress implements self-describing block compression.
//
// A block is laid out as
//
//	[UncompressedSize uint32][CompressedSize uint32][Data...]
//
// where CompressedSize == 0 marks data stored uncompressed. The algorithm is
// not recorded in the block; callers persist it alongside.
package compress
