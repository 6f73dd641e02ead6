package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/pokt-network/ibcquery/cmd/flags"
	"github.com/pokt-network/ibcquery/pkg/client/requests"
	"github.com/pokt-network/ibcquery/pkg/ibc/ident"
)

// requiredIdentifier reads the string flag flagName and validates it with newFn.
func requiredIdentifier[T ~string](
	cmd *cobra.Command,
	flagName string,
	newFn func(string) (T, error),
) (T, error) {
	value, err := cmd.Flags().GetString(flagName)
	if err != nil {
		return "", flags.ErrFlagNotRegistered.Wrapf("--%s: %s", flagName, err)
	}
	if value == "" {
		return "", flags.ErrFlagInvalidValue.Wrapf("--%s is required", flagName)
	}

	id, err := newFn(value)
	if err != nil {
		return "", flags.ErrFlagInvalidValue.Wrapf("--%s: %s", flagName, err)
	}
	return id, nil
}

// sequencesFlag reads the sequences flag, preserving the order given.
func sequencesFlag(cmd *cobra.Command) ([]ident.Sequence, error) {
	values, err := cmd.Flags().GetStringSlice(flags.FlagSequences)
	if err != nil {
		return nil, flags.ErrFlagNotRegistered.Wrapf("--%s: %s", flags.FlagSequences, err)
	}

	sequences := make([]ident.Sequence, 0, len(values))
	for _, value := range values {
		seq, err := ident.ParseSequence(value)
		if err != nil {
			return nil, flags.ErrFlagInvalidValue.Wrapf("--%s: %s", flags.FlagSequences, err)
		}
		sequences = append(sequences, seq)
	}
	return sequences, nil
}

func addPaginationFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64(flags.FlagLimit, 0, "Page size; overrides the config file")
	cmd.Flags().Uint64(flags.FlagOffset, 0, "Page offset; overrides the config file")
	cmd.Flags().Bool(flags.FlagCountTotal, false, "Request a total count (only honored with --offset)")
	cmd.Flags().Bool(flags.FlagReverse, false, "Request descending order")
	cmd.Flags().Bool(flags.FlagAllPages, false, "Request every item at once; ignores the other pagination flags")
}

// pageRequestFlags starts from the configured default pagination and applies
// the pagination flags that were explicitly set.
func (s *rootState) pageRequestFlags(cmd *cobra.Command) (*requests.PageRequest, error) {
	if allPages, _ := cmd.Flags().GetBool(flags.FlagAllPages); allPages {
		return requests.PageRequestAll(), nil
	}

	pageRequest := s.defaults.PageRequest()
	cmdFlags := cmd.Flags()
	if cmdFlags.Changed(flags.FlagLimit) {
		pageRequest.Limit, _ = cmdFlags.GetUint64(flags.FlagLimit)
	}
	if cmdFlags.Changed(flags.FlagOffset) {
		pageRequest.Offset, _ = cmdFlags.GetUint64(flags.FlagOffset)
	}
	if cmdFlags.Changed(flags.FlagCountTotal) {
		pageRequest.CountTotal, _ = cmdFlags.GetBool(flags.FlagCountTotal)
	}
	if cmdFlags.Changed(flags.FlagReverse) {
		pageRequest.Reverse, _ = cmdFlags.GetBool(flags.FlagReverse)
	}

	if err := pageRequest.ValidateBasic(); err != nil {
		return nil, err
	}
	return pageRequest, nil
}

func printJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
