package dto

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type DatabaseCheckResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Error    string `json:"error,omitempty"`
}
