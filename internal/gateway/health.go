package gateway

import "net/http"

// HealthResponse is the JSON response for GET /health.
type HealthResponse struct {
	Status   string   `json:"status"`
	Channels []string `json:"channels"`
}

// handleHealth returns an http.HandlerFunc for GET /health.
func (g *Gateway) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		resp := HealthResponse{Status: "ok", Channels: []string{}}
		if g.dispatcher != nil {
			resp.Channels = g.dispatcher.Channels()
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
