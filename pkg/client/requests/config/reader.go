package config

import (
	"math"

	"github.com/BurntSushi/toml"
	yaml "gopkg.in/yaml.v2"

	"github.com/pokt-network/ibcquery/pkg/client/requests"
)

// ParseQueryDefaultsYAML parses a YAML query defaults config.
func ParseQueryDefaultsYAML(configContent []byte) (*QueryDefaultsConfig, error) {
	if len(configContent) == 0 {
		return nil, ErrQueryDefaultsConfigEmpty
	}

	var fileConfig FileQueryDefaultsConfig
	if err := yaml.Unmarshal(configContent, &fileConfig); err != nil {
		return nil, ErrQueryDefaultsConfigUnmarshalYAML.Wrap(err.Error())
	}

	return fileConfig.hydrate()
}

// ParseQueryDefaultsTOML parses a TOML query defaults config.
func ParseQueryDefaultsTOML(configContent []byte) (*QueryDefaultsConfig, error) {
	if len(configContent) == 0 {
		return nil, ErrQueryDefaultsConfigEmpty
	}

	var fileConfig FileQueryDefaultsConfig
	if _, err := toml.Decode(string(configContent), &fileConfig); err != nil {
		return nil, ErrQueryDefaultsConfigUnmarshalTOML.Wrap(err.Error())
	}

	return fileConfig.hydrate()
}

func (fc FileQueryDefaultsConfig) hydrate() (*QueryDefaultsConfig, error) {
	config := DefaultQueryDefaultsConfig()

	queryHeight, err := requests.ParseQueryHeight(fc.QueryHeight)
	if err != nil {
		return nil, ErrQueryDefaultsConfigInvalidHeight.Wrap(err.Error())
	}
	config.QueryHeight = queryHeight
	config.IncludeProof = requests.IncludeProofFromBool(fc.IncludeProof)

	if fc.Pagination != nil {
		limit := fc.Pagination.Limit
		if limit == 0 {
			limit = math.MaxUint64
		}
		config.Pagination = requests.PageRequest{
			Offset:     fc.Pagination.Offset,
			Limit:      limit,
			CountTotal: fc.Pagination.CountTotal,
			Reverse:    fc.Pagination.Reverse,
		}
	}

	return config, nil
}
