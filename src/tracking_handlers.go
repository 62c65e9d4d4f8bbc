package main

import (
	"errors"
	"io"
	"log"
	"net/http"
	"tabiway/src/common"
	"tabiway/src/lib"
	"tabiway/src/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func trackingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/admin/bookings/:id/tracking", func(ctx *gin.Context) {
			var params types.BookingIDURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.AppendTrackingEventRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			id, _ := uuid.Parse(params.ID)
			event, err := common.AppendTrackingEvent(ctx.Request.Context(), id, &body)
			if err != nil {
				ctx.JSON(statusForDomainError(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": event})
		}).
		GET("/admin/bookings/:id/tracking", func(ctx *gin.Context) {
			var params types.BookingIDURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			id, _ := uuid.Parse(params.ID)
			events, err := common.ListTrackingEvents(ctx.Request.Context(), id)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"data":            events,
				"delivery_status": common.DeliveryStatusOf(events),
			})
		})
	return g
}

// trackingStreamRoute streams newly appended tracking events for one booking
// over SSE. The redis subscription is closed when the viewer disconnects.
func trackingStreamRoute(g *gin.Engine) {
	apiv1 := apiv1Group(g)
	apiv1.GET("/track/:number/stream", func(ctx *gin.Context) {
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
		rdb := lib.GetRedisClient()
		if rdb == nil {
			ctx.Status(http.StatusServiceUnavailable)
			return
		}
		sub := rdb.Subscribe(ctx.Request.Context(), lib.TrackingChannel(booking.ID.String()))
		defer func() {
			if err := sub.Close(); err != nil {
				log.Printf("Error closing tracking subscription for %s: %s\n", booking.BookingNumber, err.Error())
			}
		}()
		ch := sub.Channel()

		ctx.Writer.Header().Set("Content-Type", "text/event-stream")
		ctx.Writer.Header().Set("Cache-Control", "no-cache")
		ctx.Stream(func(w io.Writer) bool {
			select {
			case msg, ok := <-ch:
				if !ok {
					return false
				}
				ctx.SSEvent("tracking", msg.Payload)
				return true
			case <-ctx.Request.Context().Done():
				return false
			}
		})
	})
}
