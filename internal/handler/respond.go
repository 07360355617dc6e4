package handler

import (
	"net/http"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/services"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/transport/httpdto"
	"github.com/moshiurrahmandeap11/server-news-portal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError shapes a service error into the JSON envelope. Unanticipated
// failures answer with a generic message; the detail is only logged.
func respondError(c *gin.Context, err error) {
	status := services.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		if l := logger.GetGlobalLogger(); l != nil {
			l.Errorf("%s %s: %s", c.Request.Method, c.Request.URL.Path, err)
		}
		message = "internal server error"
	}
	c.JSON(status, httpdto.NewErrorResponse(message))
}
