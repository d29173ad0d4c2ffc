package http

import (
	"github.com/gin-gonic/gin"

	"freezer-inventory/pkg/response"
)

// Parse godoc
// @Summary     Parse an item description
// @Description Turns free text such as "2 bags of frozen peas, expires in 2 weeks" into a structured item.
// @Description An optional AI candidate can be supplied, or requested with useAi.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Item description"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// ParseBatch godoc
// @Summary     Parse several item descriptions
// @Description Parses every description and returns the items in request order.
// @Description The whole batch fails if any description is invalid.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body parseBatchReq true "Item descriptions"
// @Success     200  {object} parseBatchResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/parse-batch [POST]
func (h *handler) ParseBatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseBatchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ParseBatch(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ParseBatch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseBatchResp(output))
}

// Categories godoc
// @Summary     List categories
// @Description Returns the closed set of item categories.
// @Tags        Items
// @Produce     json
// @Success     200 {object} categoriesResp
// @Router      /api/v1/items/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	response.OK(c, categoriesResp{Categories: h.uc.Categories()})
}
