// Package requests defines the typed query requests a relayer sends to a chain's
// IBC query services. A request names the ledger object being asked for, the
// height it is anchored at (QueryHeight) and, where relevant, whether a proof is
// wanted (IncludeProof) and how a listing is paged (PageRequest).
//
// Requests which have a distinct wire message in the ibc-go query services
// implement Projector and convert to that message with ToRaw. The projection is
// total and infallible; the query height never appears in the wire message and
// is carried out-of-band instead, either as a CometBFT block height or as the
// x-cosmos-block-height gRPC metadata header.
//
// Nothing in this package performs I/O, and every value is safe for concurrent
// use once constructed.
package requests
