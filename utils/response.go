package utils

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope: {status, message, data?}.

func JSONMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"status": status, "message": message})
}

func JSONData(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{"status": status, "message": message, "data": data})
}

// JSONPage is the listing envelope with pagination counters attached.
func JSONPage(c *gin.Context, message string, totalCount int64, page, pageSize, totalPages int, data interface{}) {
	c.JSON(200, gin.H{
		"status":     200,
		"message":    message,
		"totalCount": totalCount,
		"page":       page,
		"pageSize":   pageSize,
		"totalPages": totalPages,
		"data":       data,
	})
}
