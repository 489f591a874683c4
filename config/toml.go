package config

import (
	"io"
	"reflect"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"

	"github.com/polypuls3/polypulse/types"
)

// WriteTOML encodes the given config into TOML and writes it to the given io.Writer.
// It uses mapstructure tags to determine the TOML keys.
func WriteTOML(w io.Writer, cfg interface{}) error {
	mapped, err := structToMap(cfg)
	if err != nil {
		return err
	}

	return toml.NewEncoder(w).Encode(mapped)
}

// structToMap converts a struct to a map using mapstructure tags for keys.
// Unlike mapstructure.Decode, this recursively converts nested structs and slices.
func structToMap(cfg interface{}) (map[string]interface{}, error) {
	mapped := make(map[string]interface{})

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &mapped})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}

	for k, v := range mapped {
		converted, err := convertValue(v)
		if err != nil {
			return nil, err
		}
		mapped[k] = converted
	}

	return mapped, nil
}

// convertValue recursively converts structs and slices to maps and slices of maps.
// Durations, addresses and data sources are written in the form the decode hooks read back.
func convertValue(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	switch d := v.(type) {
	case time.Duration:
		return d.String(), nil
	case common.Address:
		if d == (common.Address{}) {
			return "", nil
		}
		return d.Hex(), nil
	case types.DataSource:
		return string(d), nil
	}

	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Struct:
		return structToMap(v)
	case reflect.Slice:
		result := make([]interface{}, val.Len())
		for i := 0; i < val.Len(); i++ {
			converted, err := convertValue(val.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			result[i] = converted
		}
		return result, nil
	case reflect.Map:
		result := make(map[string]interface{})
		for iter := val.MapRange(); iter.Next(); {
			converted, err := convertValue(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			result[iter.Key().String()] = converted
		}
		return result, nil
	default:
		return v, nil
	}
}
