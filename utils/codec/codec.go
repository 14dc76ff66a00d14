package codec

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"

	"github.com/abhissng/axon/utils/types"
	"gopkg.in/yaml.v3"
)

// Encode serializes data based on the codec type.
func Encode[T any](data T, codecType types.CodecType) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch codecType {
	case JSON:
		err = json.NewEncoder(&buf).Encode(data)
	case YAML:
		err = yaml.NewEncoder(&buf).Encode(data)
	case Gob:
		enc := gob.NewEncoder(&buf)
		err = enc.Encode(data)
	default:
		return nil, errors.New("unsupported encoding format")
	}

	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode deserializes data based on the codec type.
func Decode[T any](data []byte, codecType types.CodecType) (T, error) {
	var result T
	var err error

	switch codecType {
	case JSON:
		err = json.Unmarshal(data, &result)

	case YAML:
		err = yaml.Unmarshal(data, &result)

	case Gob:
		buf := bytes.NewBuffer(data)
		dec := gob.NewDecoder(buf)
		err = dec.Decode(&result)

	default:
		err = errors.New("unsupported decoding format")
	}

	return result, err
}
