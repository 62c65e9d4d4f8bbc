package main

import (
	"net/http"
	"tabiway/src/db"
	"tabiway/src/models"
	"tabiway/src/query"
	"tabiway/src/types"
	"time"

	"github.com/gin-gonic/gin"
)

// The admin dashboard loads the full collection and filters in memory. Fine
// at this scale; push-invalidate notifications tell clients when to refetch.
func adminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/admin/bookings", func(ctx *gin.Context) {
			var filters types.AdminBookingsQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			gdb := db.GetDb().WithContext(ctx.Request.Context())
			var bookings []models.UnifiedBooking
			err := gdb.
				Model(&models.UnifiedBooking{}).
				Order("created_at desc").
				Find(&bookings).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			filtered := query.Filter(bookings, query.Params{
				Search:      filters.Search,
				ServiceType: filters.ServiceType,
				Status:      filters.Status,
				DateRange:   filters.DateRange,
			}, time.Now())
			ctx.JSON(http.StatusOK, gin.H{
				"data":    filtered,
				"count":   len(filtered),
				"summary": query.Summarize(filtered),
			})
		}).
		GET("/admin/summary", func(ctx *gin.Context) {
			gdb := db.GetDb().WithContext(ctx.Request.Context())
			var bookings []models.UnifiedBooking
			err := gdb.
				Model(&models.UnifiedBooking{}).
				Order("created_at desc").
				Find(&bookings).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"summary": query.Summarize(bookings)})
		})
	return g
}
