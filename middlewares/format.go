package middlewares

import (
	"log"

	"github.com/gin-gonic/gin"
)

// RespondSuccess writes the success envelope every endpoint shares.
func RespondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// RespondError logs an error and writes the failure envelope to the client.
func RespondError(c *gin.Context, message string, status int, err error) {
	if err != nil {
		log.Printf("HTTP %d - %s: %v", status, message, err)
	} else {
		log.Printf("HTTP %d - %s", status, message)
	}
	c.JSON(status, gin.H{"success": false, "msg": message})
}
