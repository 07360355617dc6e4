package handler

import (
	"errors"
	"net/http"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/services"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/transport/httpdto"
	portal_errors "github.com/moshiurrahmandeap11/server-news-portal/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SettingsHandler struct {
	service *services.SettingsService
}

func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) Create(c *gin.Context) {
	var req httpdto.CreateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("site_name is required"))
		return
	}

	row, err := h.service.Create(c.Request.Context(), services.CreateSettingsInput{
		SiteName:        req.SiteName,
		Tagline:         req.Tagline,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		ContactAddress:  req.ContactAddress,
		FacebookURL:     req.FacebookURL,
		TwitterURL:      req.TwitterURL,
		InstagramURL:    req.InstagramURL,
		YoutubeURL:      req.YoutubeURL,
		LinkedinURL:     req.LinkedinURL,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		GoogleAnalytics: req.GoogleAnalytics,
		CopyrightText:   req.CopyrightText,
		MaintenanceMode: req.MaintenanceMode,
	}, actorFromContext(c))
	if err != nil {
		if errors.Is(err, portal_errors.ErrAlreadyExists) {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("basic settings already exist"))
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewMessageResponse("settings created", httpdto.FromSettings(row)))
}

func (h *SettingsHandler) Get(c *gin.Context) {
	row, err := h.service.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.FromSettings(row)))
}

func (h *SettingsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid settings id"))
		return
	}

	var req httpdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request body"))
		return
	}

	row, err := h.service.Update(c.Request.Context(), id, req.ToInput(), actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewMessageResponse("settings updated", httpdto.FromSettings(row)))
}

func (h *SettingsHandler) ReplaceLogo(c *gin.Context) {
	fh, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("no logo file provided"))
		return
	}

	row, err := h.service.ReplaceLogo(c.Request.Context(), fh, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewMessageResponse("logo updated", httpdto.FromSettings(row)))
}

func (h *SettingsHandler) ReplaceFavicon(c *gin.Context) {
	fh, err := c.FormFile("favicon")
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("no favicon file provided"))
		return
	}

	row, err := h.service.ReplaceFavicon(c.Request.Context(), fh, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewMessageResponse("favicon updated", httpdto.FromSettings(row)))
}

func (h *SettingsHandler) PublicInfo(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	baseURL := scheme + "://" + c.Request.Host

	info, err := h.service.GetPublicInfo(c.Request.Context(), baseURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(info))
}

func actorFromContext(c *gin.Context) uuid.NullUUID {
	if userID, ok := services.UserIDFromContext(c.Request.Context()); ok {
		return uuid.NullUUID{UUID: userID, Valid: true}
	}
	return uuid.NullUUID{}
}
