package dto

import "time"

// APIResponse is the success envelope of every JSON endpoint
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in a success envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// PaginationInfo describes one page of a listing
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"3"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"25"`
}

// HealthResponse reports service status and the state of the retrieval layer
type HealthResponse struct {
	Status       string `json:"status" example:"healthy"`
	Message      string `json:"message" example:"Berkeley Four Year Plan Generator is running"`
	RAGState     string `json:"ragState" example:"ready"`
	RAGReason    string `json:"ragReason,omitempty"`
	Courses      int    `json:"courses" example:"42"`
	CourseSource string `json:"courseSource" example:"data/courses.csv"`
	Majors       int    `json:"majors" example:"101"`
}
