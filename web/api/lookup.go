package api

// LookupRequest represents the JSON body of POST /api/lookup
type LookupRequest struct {
	Contract string `json:"contract"` // Token contract address, passed to the sources verbatim
}

// TokenInfo is the consensus answer about a token; absent fields encode as null
type TokenInfo struct {
	Name        *string `json:"name"`
	Website     *string `json:"website"`
	Twitter     *string `json:"twitter"`
	Telegram    *string `json:"telegram"`
	Dexscreener *string `json:"dexscreener"`
}

// LookupResponse represents the API response format for POST /api/lookup
type LookupResponse struct {
	Success bool      `json:"success"`
	Data    TokenInfo `json:"data"`
}
