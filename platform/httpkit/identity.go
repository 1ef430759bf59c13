// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity represents the authenticated user's identity.
// This abstracts identity extraction from the web framework, allowing
// handlers to access user information without depending on Gin internals.
type Identity struct {
	userID        uuid.UUID
	authenticated bool
}

// UserID returns the authenticated user's ID.
func (i Identity) UserID() uuid.UUID { return i.userID }

// IsAuthenticated returns true if the user is authenticated.
func (i Identity) IsAuthenticated() bool { return i.authenticated }

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if user info is not present.
func GetIdentity(c *gin.Context) Identity {
	raw, ok := c.Get(ContextUserIDKey)
	if !ok {
		return Identity{}
	}

	userID, ok := raw.(uuid.UUID)
	if !ok {
		return Identity{}
	}

	return Identity{userID: userID, authenticated: true}
}
