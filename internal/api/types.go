package api

import "github.com/samcharles93/sauce/internal/render"

// ErrorBody is the payload of every non-2xx JSON response.
type ErrorBody struct {
	Error ResponseError `json:"error"`
}

type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Param   string `json:"param,omitempty"`
}

// Report is a stored inspection result.
type Report struct {
	ID        string       `json:"id"`
	Object    string       `json:"object"`
	CreatedAt int64        `json:"created_at"`
	Filename  string       `json:"filename,omitempty"`
	View      *render.View `json:"sauce"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Reports int    `json:"reports"`
}
