package response

import "github.com/gin-gonic/gin"

// JSON writes a success payload as-is: handlers respond with the affected
// entity (or list) serialized directly, no wrapper object.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Error writes the single error envelope used across the API.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}
