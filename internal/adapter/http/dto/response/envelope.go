package response

// Envelope is the uniform response wrapper every endpoint answers with.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func OK(data interface{}, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

func Fail(errMessage string) Envelope {
	return Envelope{Success: false, Error: errMessage}
}

type PaginationResponse struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}
