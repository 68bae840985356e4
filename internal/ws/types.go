package ws

const (
	// server - client
	MsgReady = "ready"
	MsgRound = "round"
	MsgError = "error"
)
