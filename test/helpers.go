package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// Headers returns the authentication headers for a user with the given role
func Headers(userID uuid.UUID, role string) map[string]string {
	return map[string]string{
		"X-User-ID":   userID.String(),
		"X-User-Role": role,
	}
}
