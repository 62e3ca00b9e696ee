package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key for a user's active session.
func (r *CacheKeyStruct) UserSessionKey(userID string) string {
	return fmt.Sprintf("login:%s", userID)
}

// FormPayloadKey returns the cache key for a form's payload
// (the form joined with its ordered questions).
func (r *CacheKeyStruct) FormPayloadKey(formID string) string {
	return fmt.Sprintf("form:%s:payload", formID)
}

var CacheKey = NewCacheKeyStruct()
