package requests

import (
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"

	"github.com/pokt-network/ibcquery/pkg/ibc/ident"
)

var (
	_ Projector[*clienttypes.QueryClientStatesRequest]    = QueryClientStatesRequest{}
	_ Projector[*clienttypes.QueryConsensusStatesRequest] = QueryConsensusStatesRequest{}
)

// QueryClientStateRequest asks for the state of a client at Height.
type QueryClientStateRequest struct {
	ClientID ident.ClientID `json:"client_id"`
	Height   QueryHeight    `json:"height"`
}

// QueryClientStatesRequest lists the clients of a chain.
type QueryClientStatesRequest struct {
	Pagination *PageRequest `json:"pagination,omitempty"`
}

// ToRaw projects the request onto its ibc-go wire message.
func (r QueryClientStatesRequest) ToRaw() *clienttypes.QueryClientStatesRequest {
	return &clienttypes.QueryClientStatesRequest{
		Pagination: r.Pagination.ToRaw(),
	}
}

// QueryConsensusStateRequest asks, at QueryHeight, for the consensus state the
// client stored for ConsensusHeight.
type QueryConsensusStateRequest struct {
	ClientID        ident.ClientID     `json:"client_id"`
	ConsensusHeight clienttypes.Height `json:"consensus_height"`
	QueryHeight     QueryHeight        `json:"query_height"`
}

// QueryConsensusStatesRequest lists the consensus states stored by a client.
type QueryConsensusStatesRequest struct {
	ClientID   ident.ClientID `json:"client_id"`
	Pagination *PageRequest   `json:"pagination,omitempty"`
}

// ToRaw projects the request onto its ibc-go wire message.
func (r QueryConsensusStatesRequest) ToRaw() *clienttypes.QueryConsensusStatesRequest {
	return &clienttypes.QueryConsensusStatesRequest{
		ClientId:   r.ClientID.String(),
		Pagination: r.Pagination.ToRaw(),
	}
}

// QueryUpgradedClientStateRequest asks for the client state a chain commits
// to ahead of an upgrade.
type QueryUpgradedClientStateRequest struct {
	// UpgradeHeight is the height at which the chain halts for the upgrade.
	UpgradeHeight clienttypes.Height `json:"upgrade_height"`
}

// QueryUpgradedConsensusStateRequest asks for the consensus state a chain
// commits to ahead of an upgrade.
type QueryUpgradedConsensusStateRequest struct {
	// UpgradeHeight is the height at which the chain halts for the upgrade.
	UpgradeHeight clienttypes.Height `json:"upgrade_height"`
}

// QueryHostConsensusStateRequest asks a chain for its own consensus state.
type QueryHostConsensusStateRequest struct {
	Height QueryHeight `json:"height"`
}
