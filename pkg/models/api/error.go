package api

// Error is the flat JSON error body returned on any non-200 response.
type Error struct {
	Message string `json:"error"`
}
