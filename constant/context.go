package constant

type contextKey string

const BridgeClientKey contextKey = "bridge_client"
