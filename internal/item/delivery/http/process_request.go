package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds the single item request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody(err)
	}
	return req, nil
}

// processParseBatchReq binds the batch request body.
func (h *handler) processParseBatchReq(c *gin.Context) (parseBatchReq, error) {
	var req parseBatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody(err)
	}
	return req, nil
}
