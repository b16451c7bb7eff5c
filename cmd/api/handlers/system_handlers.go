package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"review-desk/cmd/api/dto"
	"review-desk/cmd/api/store"
)

// IndexHandler godoc
// @Summary      Service banner
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.StatusResponseDTO
// @Router       / [get]
func IndexHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.StatusResponseDTO{
			Status:  "running",
			Message: "Review desk API is up. POST /submit_review to send feedback.",
		})
	}
}

// FaviconHandler 는 브라우저의 favicon 요청을 404 로그 없이 흘려보낸다.
func FaviconHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	}
}

// HealthHandler godoc
// @Summary      Health check
// @Description  Reports degraded when the backing store does not answer a ping
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.StatusResponseDTO
// @Failure      503  {object}  dto.StatusResponseDTO
// @Router       /health [get]
func HealthHandler(st store.Store, driver string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p, ok := st.(store.Pinger); ok {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
			defer cancel()
			if err := p.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, dto.StatusResponseDTO{
					Status:  "degraded",
					Storage: driver,
					Error:   err.Error(),
				})
				return
			}
		}
		c.JSON(http.StatusOK, dto.StatusResponseDTO{Status: "ok", Storage: driver})
	}
}
