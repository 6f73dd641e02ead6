package requests

import (
	connectiontypes "github.com/cosmos/ibc-go/v8/modules/core/03-connection/types"

	"github.com/pokt-network/ibcquery/pkg/ibc/ident"
)

var (
	_ Projector[*connectiontypes.QueryConnectionsRequest]       = QueryConnectionsRequest{}
	_ Projector[*connectiontypes.QueryClientConnectionsRequest] = QueryClientConnectionsRequest{}
)

// QueryConnectionRequest asks for a connection end at Height.
type QueryConnectionRequest struct {
	ConnectionID ident.ConnectionID `json:"connection_id"`
	Height       QueryHeight        `json:"height"`
}

// QueryConnectionsRequest lists the connections of a chain.
type QueryConnectionsRequest struct {
	Pagination *PageRequest `json:"pagination,omitempty"`
}

// ToRaw projects the request onto its ibc-go wire message.
func (r QueryConnectionsRequest) ToRaw() *connectiontypes.QueryConnectionsRequest {
	return &connectiontypes.QueryConnectionsRequest{
		Pagination: r.Pagination.ToRaw(),
	}
}

// QueryClientConnectionsRequest asks for the connections built on a client.
type QueryClientConnectionsRequest struct {
	ClientID ident.ClientID `json:"client_id"`
}

// ToRaw projects the request onto its ibc-go wire message.
func (r QueryClientConnectionsRequest) ToRaw() *connectiontypes.QueryClientConnectionsRequest {
	return &connectiontypes.QueryClientConnectionsRequest{
		ClientId: r.ClientID.String(),
	}
}
