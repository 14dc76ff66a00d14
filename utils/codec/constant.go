package codec

import "github.com/abhissng/axon/utils/types"

// for encoding and decoding
const (
	// Text-based formats
	JSON types.CodecType = "json"
	YAML types.CodecType = "yaml"

	// Binary formats
	Gob types.CodecType = "gob"
)
