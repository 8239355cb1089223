package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mydehq/pagesel/internal/i18n"
	"github.com/mydehq/pagesel/internal/render"
	"github.com/mydehq/pagesel/internal/selection"
	"github.com/mydehq/pagesel/internal/types"
)

// ParseRequest is the body of POST /api/v1/selection/parse
type ParseRequest struct {
	Selection string `json:"selection" form:"selection"`
	Locale    string `json:"locale" form:"locale"`
}

// NormalizeRequest is the body of POST /api/v1/selection/normalize
type NormalizeRequest struct {
	Ranges types.RangeSet `json:"ranges" binding:"required"`
}

// ErrorResponse describes a rejected request
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Value string `json:"value,omitempty"`
}

// HandleParse parses a selection string and returns its canonical form.
func HandleParse(c *gin.Context, cfg *Config) {
	limitBody(c, cfg)

	var req ParseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	locale := req.Locale
	if locale == "" {
		locale = c.GetHeader("Accept-Language")
	}
	if locale == "" {
		locale = cfg.Locale
	}

	ranges, err := selection.Parse(req.Selection)
	if err != nil {
		resp := ErrorResponse{Error: i18n.Message(err, locale)}
		var selErr types.SelectionError
		if errors.As(err, &selErr) {
			resp.Kind = selErr.Kind()
			resp.Value = selErr.Value()
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	c.JSON(http.StatusOK, render.NewResult(ranges))
}

// HandleNormalize returns the canonical form of a JSON interval list.
func HandleNormalize(c *gin.Context, cfg *Config) {
	limitBody(c, cfg)

	var req NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, render.NewResult(selection.Normalize(req.Ranges)))
}

func limitBody(c *gin.Context, cfg *Config) {
	if cfg.MaxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.MaxBodyBytes)
	}
}
