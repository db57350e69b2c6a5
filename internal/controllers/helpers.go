package controllers

import (
	"net/http"
	"time"

	"uqifeed/internal/models"

	"github.com/gin-gonic/gin"
)

// currentUserID pulls the authenticated user id set by the auth middleware.
// Responds with 401 and returns false when it is absent.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
			"error":   "No authenticated user on the request",
		})
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
			"error":   "Invalid user id on the request",
		})
		return 0, false
	}
	return userID, true
}

// resolveLocation loads the timezone from the tz query parameter, falling
// back to the given default name and finally UTC.
func resolveLocation(c *gin.Context, fallback string) (*time.Location, error) {
	name := c.Query("tz")
	if name == "" {
		name = fallback
	}
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}

// parseDateParam parses a YYYY-MM-DD path parameter in the given location.
func parseDateParam(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(models.DateLayout, value, loc)
}
