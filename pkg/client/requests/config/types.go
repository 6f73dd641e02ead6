package config

import "github.com/pokt-network/ibcquery/pkg/client/requests"

// FileQueryDefaultsConfig is the structure used to unmarshal a query defaults
// config file, in either YAML or TOML.
type FileQueryDefaultsConfig struct {
	// QueryHeight is "latest" (or empty) or "{revision}-{height}".
	QueryHeight  string                `yaml:"query_height" toml:"query_height"`
	IncludeProof bool                  `yaml:"include_proof" toml:"include_proof"`
	Pagination   *FilePaginationConfig `yaml:"pagination" toml:"pagination"`
}

// FilePaginationConfig is the pagination section of a query defaults config
// file. A Limit of 0 means every item.
type FilePaginationConfig struct {
	Limit      uint64 `yaml:"limit" toml:"limit"`
	Offset     uint64 `yaml:"offset" toml:"offset"`
	CountTotal bool   `yaml:"count_total" toml:"count_total"`
	Reverse    bool   `yaml:"reverse" toml:"reverse"`
}

// QueryDefaultsConfig holds the defaults applied to requests a caller does not
// configure explicitly.
type QueryDefaultsConfig struct {
	QueryHeight  requests.QueryHeight
	IncludeProof requests.IncludeProof
	Pagination   requests.PageRequest
}

// DefaultQueryDefaultsConfig returns the defaults used when no config file is
// given: latest height, no proof, every item.
func DefaultQueryDefaultsConfig() *QueryDefaultsConfig {
	return &QueryDefaultsConfig{
		QueryHeight:  requests.LatestHeight(),
		IncludeProof: requests.IncludeProofNo,
		Pagination:   *requests.PageRequestAll(),
	}
}

// PageRequest returns a fresh copy of the default pagination, safe for the
// caller to modify.
func (c *QueryDefaultsConfig) PageRequest() *requests.PageRequest {
	pageRequest := c.Pagination
	if pageRequest.Key != nil {
		pageRequest.Key = append([]byte(nil), pageRequest.Key...)
	}
	return &pageRequest
}
