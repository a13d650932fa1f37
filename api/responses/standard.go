// Package responses writes JSON bodies in the shapes clients rely on. Error
// bodies always carry the structured error under "error".
package responses

import (
	"net/http"

	"github.com/Aidin1998/userfeed/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body for 4xx/5xx replies.
type ErrorResponse struct {
	Message string        `json:"message,omitempty"`
	Error   *errors.Error `json:"error"`
}

// MessageResponse wraps data with a human readable message.
type MessageResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// OK sends a 200 response with body as is.
func OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// Created sends a 201 Created response
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, MessageResponse{Message: message, Data: data})
}

// Error sends err with the status of its kind.
func Error(c *gin.Context, err error) {
	e := errors.From(err)
	c.JSON(e.Status(), ErrorResponse{Error: e})
}

// ErrorWithMessage is Error with a top-level message next to the error.
func ErrorWithMessage(c *gin.Context, message string, err error) {
	e := errors.From(err)
	c.JSON(e.Status(), ErrorResponse{Message: message, Error: e})
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string, fields ...errors.FieldError) {
	e := errors.Invalid.Explain("%s", message)
	if len(fields) > 0 {
		e = e.WithFields(fields)
	}
	Error(c, e)
}
