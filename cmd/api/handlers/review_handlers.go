package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"review-desk/cmd/api/dto"
	"review-desk/cmd/api/services"
	"review-desk/cmd/internal/logger"
	"review-desk/models"
)

const errInvalidRequest = "invalid_request"

// SubmitReviewHandler godoc
// @Summary      Submit a review
// @Description  Validate a review, generate a reply and an internal summary, and store it
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SubmitReviewRequestDTO  true  "Review"
// @Success      200   {object}  dto.SubmitReviewResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /submit_review [post]
func SubmitReviewHandler(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SubmitReviewRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: errInvalidRequest})
			return
		}

		res, err := svc.Submit(c.Request.Context(), req.Rating, req.Review)
		if err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: verr.Error()})
				return
			}
			logger.Log.Errorf("submit review failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal_error"})
			return
		}
		c.JSON(http.StatusOK, dto.SubmitReviewResponseDTO{Success: true, UserReply: res.UserReply})
	}
}

// ListSubmissionsHandler godoc
// @Summary      List submissions
// @Description  All stored reviews in insertion order
// @Tags         reviews
// @Produce      json
// @Success      200  {array}   dto.ReviewRecordDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /submissions [get]
func ListSubmissionsHandler(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, toRecordDTOs(records))
	}
}

// StarSummaryHandler godoc
// @Summary      Summarize a rating group
// @Description  Common themes and one business action for reviews sharing a star rating
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      dto.StarSummaryRequestDTO  true  "Group"
// @Success      200   {object}  dto.StarSummaryResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /star_summary [post]
func StarSummaryHandler(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.StarSummaryRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: errInvalidRequest})
			return
		}
		answer := svc.SummarizeGroup(c.Request.Context(), req.Rating, req.Reviews)
		c.JSON(http.StatusOK, dto.StarSummaryResponseDTO{GroupAction: answer})
	}
}

// StatsHandler godoc
// @Summary      Dashboard statistics
// @Description  Total count, average rating, counts per star and per day
// @Tags         reviews
// @Produce      json
// @Success      200  {object}  dto.StatsDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /stats [get]
func StatsHandler(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.StatsDTO{
			Total:         stats.Total,
			AverageRating: stats.AverageRating,
			RatingCounts:  stats.RatingCounts,
			ByDay:         stats.ByDay,
		})
	}
}

func toRecordDTOs(records []models.ReviewRecord) []dto.ReviewRecordDTO {
	out := make([]dto.ReviewRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, dto.ReviewRecordDTO{
			Rating:    r.Rating,
			Review:    r.Review,
			Timestamp: r.Timestamp,
			UserReply: r.UserReply,
			AISummary: r.AISummary,
			AIActions: r.AIActions,
		})
	}
	return out
}
