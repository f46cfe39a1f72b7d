package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/sacvietnam/storefront/internal/apiclient"
	"github.com/sacvietnam/storefront/internal/pricing"
	"github.com/sacvietnam/storefront/internal/service"
)

type ErrorResponse struct {
	Error   string                    `json:"error"`
	Details string                    `json:"details,omitempty"`
	Errors  []service.ValidationError `json:"errors,omitempty"`
}

// MapError turns a handler error into a status and body. Remote errors are
// matched first so bad data from the product API is never reported as bad input.
func MapError(err error) (int, ErrorResponse) {
	var verrs service.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, ErrorResponse{Error: "validation failed", Errors: verrs}
	}

	var remote *service.RemoteError
	if errors.As(err, &remote) {
		if errors.Is(err, apiclient.ErrNotFound) {
			return http.StatusNotFound, ErrorResponse{Error: "product not found"}
		}
		return http.StatusBadGateway, ErrorResponse{Error: remote.Message}
	}

	if errors.Is(err, service.ErrIdempotencyConflict) || errors.Is(err, service.ErrSubmissionInFlight) {
		return http.StatusConflict, ErrorResponse{Error: err.Error()}
	}

	if errors.Is(err, pricing.ErrInvalidArgument) {
		return http.StatusBadRequest, ErrorResponse{Error: "invalid price or discount", Details: err.Error()}
	}

	if errors.Is(err, apiclient.ErrConstructionForbidden) {
		log.Error().Err(err).Msg("product API client used without a provider")
		return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
	}

	return MapDBError(err)
}

func MapDBError(err error) (int, ErrorResponse) {
	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound, ErrorResponse{Error: "resource not found"}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return http.StatusConflict, ErrorResponse{
				Error:   "resource already exists",
				Details: pgErr.Detail,
			}
		case "23514": // check_violation
			return http.StatusBadRequest, ErrorResponse{
				Error:   "constraint violation",
				Details: pgErr.Detail,
			}
		}
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			status, resp := MapError(c.Errors.Last().Err)
			c.JSON(status, resp)
		}
	}
}
