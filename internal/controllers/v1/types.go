package v1

import (
	kuuid "github.com/kouden-ledger/backend/internal/uuid"
)

type URIID struct {
	ID kuuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Response is the body of all responses of the v1 API.
type Response[T any] struct {
	Success bool    `json:"success" example:"true"`                                        // If the request succeeded
	Data    T       `json:"data"`                                                          // The resource, if the request succeeded
	Error   *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// CreateResponse is the body of responses to requests that create a list of resources.
//
// Every resource is reported on separately, so that some resources can be created
// even if others fail.
type CreateResponse[T any] struct {
	Success bool          `json:"success" example:"false"`                                       // If all resources were created
	Data    []Response[T] `json:"data"`                                                          // List of created resources
	Error   *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *CreateResponse[T]) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, Response[T]{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

func (r *CreateResponse[T]) appendData(data T) {
	r.Data = append(r.Data, Response[T]{Success: true, Data: data})
}
