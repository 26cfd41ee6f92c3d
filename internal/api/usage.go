package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Usage documents the payload contract for workflow authors.
func Usage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AI Powered English Learning Notes PDF Converter API",
		"usage": gin.H{
			"endpoint":     "/convert-to-pdf",
			"method":       "POST",
			"content_type": "application/json",
			"body_format":  "JSON with title, time, message, and output fields",
		},
		"example": gin.H{
			"title": "News Title",
			"time":  "2025-08-29T01:57:50.782-04:00",
			"message": gin.H{
				"content":  "News content...",
				"title":    "News Title",
				"time":     "2025-08-29T01:57:50.782-04:00",
				"sentence": `[{"word":"example","meaning_bn":"উদাহরণ","example_en":"This is an example sentence.","example_bn":"এটি একটি উদাহরণ বাক্য।"}]`,
			},
			"output": []gin.H{
				{
					"english":  "word",
					"bengali":  "শব্দ",
					"synonyms": []string{"synonym1", "synonym2"},
					"antonyms": []string{"antonym1", "antonym2"},
				},
			},
		},
	})
}
