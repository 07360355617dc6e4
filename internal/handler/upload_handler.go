package handler

import (
	"net/http"
	"strconv"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/services"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	service *services.UploadService
}

func NewUploadHandler(service *services.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// uploaderFromContext returns the optional attribution id set by the auth
// middleware.
func uploaderFromContext(c *gin.Context) uuid.NullUUID {
	if userID, ok := services.UserIDFromContext(c.Request.Context()); ok {
		return uuid.NullUUID{UUID: userID, Valid: true}
	}
	return uuid.NullUUID{}
}

func (h *UploadHandler) Single(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("no file provided"))
		return
	}

	rec, err := h.service.StoreSingle(c.Request.Context(), fh, uploaderFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewMessageResponse("file uploaded", httpdto.FromUploadRecord(rec)))
}

func (h *UploadHandler) Multiple(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid multipart form"))
		return
	}

	records, err := h.service.StoreMultiple(c.Request.Context(), form.File["files"], uploaderFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewMessageResponse("files uploaded", httpdto.FromUploadRecordSlice(records)))
}

func (h *UploadHandler) Mixed(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid multipart form"))
		return
	}

	records, err := h.service.StoreMixed(c.Request.Context(), form.File, uploaderFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewMessageResponse("files uploaded", httpdto.FromUploadRecordSlice(records)))
}

func (h *UploadHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	category := c.Query("category")

	// The envelope must reflect the paging that was actually applied.
	page, limit = services.NormalizePaging(page, limit)

	records, total, err := h.service.List(c.Request.Context(), category, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewPaginatedResponse(httpdto.FromUploadRecordSlice(records), page, limit, total))
}

func (h *UploadHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid upload id"))
		return
	}

	rec, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.FromUploadRecord(rec)))
}

func (h *UploadHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid upload id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewMessageResponse[any]("upload deleted", nil))
}

func (h *UploadHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(stats))
}
