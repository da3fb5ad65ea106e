package health

// Response is the liveness payload
type Response struct {
	Status string `json:"status"`
}
