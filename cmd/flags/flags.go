package flags

const (
	FlagLogLevel      = "log-level"
	FlagLogLevelUsage = "The logging level (debug|info|warn|error)"
	DefaultLogLevel   = "info"

	FlagConfig      = "config"
	FlagConfigUsage = "Path to a query defaults config file (.yaml, .yml or .toml)"

	FlagHeight      = "height"
	FlagHeightUsage = "The query height: latest or {revision}-{height}; overrides the config file"

	FlagClientID     = "client-id"
	FlagConnectionID = "connection-id"
	FlagPortID       = "port-id"
	FlagChannelID    = "channel-id"
	FlagSequences    = "sequences"

	FlagLimit      = "limit"
	FlagOffset     = "offset"
	FlagCountTotal = "count-total"
	FlagReverse    = "reverse"
	FlagAllPages   = "all-pages"

	FlagBlock      = "block"
	FlagBlockUsage = "Build block_search queries instead of tx_search queries (packet events only)"
)

const (
	FlagEvent           = "event"
	FlagSrcPort         = "src-port"
	FlagSrcChannel      = "src-channel"
	FlagDstPort         = "dst-port"
	FlagDstChannel      = "dst-channel"
	FlagConsensusHeight = "consensus-height"

	FlagQueryID      = "query-id"
	FlagChainID      = "chain-id"
	FlagPath         = "path"
	FlagRemoteHeight = "remote-height"
	FlagModule       = "module"
	FlagAction       = "action"
)
