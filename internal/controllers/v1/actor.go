package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kouden-ledger/backend/internal/allocation"
)

// The authentication proxy in front of the backend sets these headers.
const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// actor returns the caller of the request. Requests without a valid
// user ID have a Nil user, requests without a role are viewers.
func actor(c *gin.Context) allocation.Actor {
	a := allocation.Actor{
		Role: allocation.NormalizeRole(c.GetHeader(headerUserRole)),
	}

	id, err := uuid.Parse(c.GetHeader(headerUserID))
	if err == nil {
		a.UserID = id
	}

	return a
}

// writer returns the caller of the request if it may write.
func writer(c *gin.Context) (allocation.Actor, error) {
	a := actor(c)
	if a.UserID == uuid.Nil {
		return a, errUnauthenticated
	}

	if !a.CanWrite() {
		return a, allocation.ErrForbidden
	}

	return a, nil
}
