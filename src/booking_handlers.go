package main

import (
	"errors"
	"log"
	"net/http"
	"tabiway/src/common"
	"tabiway/src/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Public booking surface: guests can create bookings and look them up by
// booking number without an account.
func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var customerID *uuid.UUID
			if id := ctx.GetString("id"); id != "" {
				if parsed, err := uuid.Parse(id); err == nil {
					customerID = &parsed
				}
			}
			booking, err := common.CreateBooking(ctx.Request.Context(), &body, customerID)
			if err != nil {
				if errors.Is(err, common.ErrValidation) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				log.Printf("Could not create booking: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "booking creation failed, please retry"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		GET("/bookings/number/:number", func(ctx *gin.Context) {
			var params types.BookingNumberURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			booking, err := common.GetBookingByNumber(ctx.Request.Context(), params.Number)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		})
	return g
}

// Admin-only status mutations.
func bookingAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		PUT("/admin/bookings/:id/status", func(ctx *gin.Context) {
			var params types.BookingIDURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateBookingStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			id, _ := uuid.Parse(params.ID)
			booking, err := common.UpdateBookingStatus(ctx.Request.Context(), id, body.Status)
			if err != nil {
				ctx.JSON(statusForDomainError(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		PUT("/admin/bookings/:id/payment", func(ctx *gin.Context) {
			var params types.BookingIDURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdatePaymentStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			id, _ := uuid.Parse(params.ID)
			booking, err := common.UpdatePaymentStatus(ctx.Request.Context(), id, body.Status, body.ReferenceID)
			if err != nil {
				ctx.JSON(statusForDomainError(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		})
	return g
}

func statusForDomainError(err error) int {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrTerminalStatus), errors.Is(err, common.ErrInvalidTransition):
		return http.StatusConflict
	}
	return http.StatusUnprocessableEntity
}
