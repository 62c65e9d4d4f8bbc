package main

import (
	"errors"
	"log"
	"net/http"
	"tabiway/src/config"
	"tabiway/src/db"
	"tabiway/src/lib"
	"tabiway/src/models"
	"tabiway/src/pricing"
	"tabiway/src/types"
	"tabiway/src/utils"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Legacy porter flow: hotel-to-hotel luggage transfer with its own tables
// and a QR code generated per booking for drop-off verification.
func porterHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/hotels", func(ctx *gin.Context) {
			gdb := db.GetDb().WithContext(ctx.Request.Context())
			var hotels []models.Hotel
			if err := gdb.Model(&models.Hotel{}).Order("name asc").Find(&hotels).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": hotels, "count": len(hotels)})
		}).
		POST("/legacy/bookings", func(ctx *gin.Context) {
			var body types.CreateLegacyBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			amount, err := pricing.PorterAmount(body.LuggageType, body.LuggageCount)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			pickupDate, err := time.Parse(config.DATE_PARSE_FORMAT, body.PickupDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "bad pickup date"})
				return
			}

			booking := models.LegacyBooking{
				BookingNumber:  utils.GenerateBookingNumber(types.SERVICE_PORTER),
				CustomerName:   body.CustomerName,
				CustomerEmail:  body.CustomerEmail,
				CustomerPhone:  body.CustomerPhone,
				PickupHotelID:  body.PickupHotelID,
				DropoffHotelID: body.DropoffHotelID,
				LuggageType:    body.LuggageType,
				LuggageCount:   body.LuggageCount,
				PickupDate:     pickupDate,
				TotalAmount:    amount,
				Status:         types.BOOKING_PENDING,
			}
			gdb := db.GetDb().WithContext(ctx.Request.Context())
			err = gdb.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&booking).Error; err != nil {
					return err
				}
				filepath, err := lib.SaveBookingQRCode(booking.BookingNumber)
				if err != nil {
					// the code can be re-rendered from the payload later
					log.Printf("Could not render QR for %s: %s\n", booking.BookingNumber, err.Error())
				}
				qr := models.QRCode{
					BookingID: booking.ID,
					Payload:   booking.BookingNumber,
					FilePath:  filepath,
				}
				return tx.Create(&qr).Error
			})
			if err != nil {
				log.Printf("Could not create legacy booking: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "booking creation failed, please retry"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		GET("/legacy/bookings/:number", func(ctx *gin.Context) {
			var params types.BookingNumberURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			gdb := db.GetDb().WithContext(ctx.Request.Context())
			var booking models.LegacyBooking
			err := gdb.
				Model(&models.LegacyBooking{}).
				Where("booking_number = ?", params.Number).
				Preload("PickupHotel").
				Preload("DropoffHotel").
				First(&booking).
				Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		GET("/legacy/bookings/:number/qrcode", func(ctx *gin.Context) {
			var params types.BookingNumberURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			gdb := db.GetDb().WithContext(ctx.Request.Context())
			var qr models.QRCode
			err := gdb.
				Model(&models.QRCode{}).
				Joins("Booking").
				Where("\"Booking\".booking_number = ?", params.Number).
				First(&qr).
				Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			if qr.FilePath == "" {
				filepath, err := lib.SaveBookingQRCode(qr.Payload)
				if err != nil {
					ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not render qr code"})
					return
				}
				qr.FilePath = filepath
			}
			ctx.FileAttachment(qr.FilePath, "dropoff-code.jpeg")
		})
	return g
}
