package apikey

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HeaderName is the request header carrying the shared secret.
const HeaderName = "X-API-Key"

// Middleware guards resource routes with a static shared-secret header.
// The comparison is a case-sensitive exact match against the configured key.
func Middleware(validKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderName)
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "API key required. Include X-API-Key header.",
			})
			return
		}

		if key != validKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid API key.",
			})
			return
		}

		c.Next()
	}
}
