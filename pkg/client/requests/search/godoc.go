// Package search renders the historical event requests of package requests
// into CometBFT event search queries, the form accepted by the tx_search and
// block_search RPC endpoints of an indexing node.
package search
