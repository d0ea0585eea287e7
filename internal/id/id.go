package id

import "github.com/google/uuid"

// GenerateID returns a random (version 4) UUID string used to identify
// quiz sessions and the records they produce.
func GenerateID() string {
	return uuid.NewString()
}

