package config

import (
	"fmt"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/polypuls3/polypulse/types"
)

func stringToDataSource(
	f reflect.Type,
	t reflect.Type,
	data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}

	if t != reflect.TypeOf(types.DataSource("")) {
		return data, nil
	}

	return types.ParseDataSource(reflect.ValueOf(data).String())
}

func stringToAddress(
	f reflect.Type,
	t reflect.Type,
	data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}

	if t != reflect.TypeOf(common.Address{}) {
		return data, nil
	}

	s := reflect.ValueOf(data).String()
	if s == "" {
		return common.Address{}, nil
	}

	if !common.IsHexAddress(s) {
		return nil, fmt.Errorf("invalid address %s", s)
	}

	return common.HexToAddress(s), nil
}

// AddDecodeHooks adds decode hooks to the given config to correctly translate strings into data sources and addresses
func AddDecodeHooks(cfg *mapstructure.DecoderConfig) {
	hooks := []mapstructure.DecodeHookFunc{
		stringToDataSource,
		stringToAddress,
	}
	if cfg.DecodeHook != nil {
		hooks = append(hooks, cfg.DecodeHook)
	}

	cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(hooks...)
}
