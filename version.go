package markov

// Version is the toolkit version reported by the CLI and the MCP server.
const Version = "0.4.1"
