package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog/internal/apperr"
)

// respondError is the single place errors become responses. Classified
// errors keep their status and message; everything else is a 500 with the
// cause logged server-side only.
func respondError(c *gin.Context, err error) {
	e := apperr.From(err)
	if e.Status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	body := gin.H{"message": e.Message}
	if e.Data != nil {
		body["data"] = e.Data
	}
	c.JSON(e.Status, body)
}
