package server

// Response messages at the HTTP boundary. Internal details never leave the server.
const (
	msgNotFound = "task not found"
	msgInternal = "internal server error"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// HealthResponse is the response for /healthz
type HealthResponse struct {
	Status string `json:"status"`
}
