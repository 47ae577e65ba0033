package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorBody is the JSON body of every error response.
type errorBody struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorBody{Error: msg})
}

func badRequest(c *gin.Context, msg string) { writeError(c, http.StatusBadRequest, msg) }
func notFound(c *gin.Context, msg string)   { writeError(c, http.StatusNotFound, msg) }
func conflict(c *gin.Context, msg string)   { writeError(c, http.StatusConflict, msg) }
func internal(c *gin.Context, msg string)   { writeError(c, http.StatusInternalServerError, msg) }
