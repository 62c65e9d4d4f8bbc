package main

import (
	"log"
	"net/http"
	"tabiway/src/lib"
	"tabiway/src/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// functionHandlers exposes the two small HTTP functions the booking pages
// call directly: payment-intent creation and transactional email.
func functionHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/functions/create-payment-intent", func(ctx *gin.Context) {
			var body types.CreatePaymentIntentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			pi, err := lib.CreatePaymentIntent(ctx.Request.Context(), body.Amount, body.Currency, body.BookingID, body.CustomerEmail)
			if err != nil {
				log.Printf("Error creating PaymentIntent for booking %s: %s\n", body.BookingID, err.Error())
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "could not create payment intent"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"clientSecret":    pi.ClientSecret,
				"paymentIntentId": pi.ID,
			})
		}).
		POST("/functions/send-email", func(ctx *gin.Context) {
			var body types.SendEmailRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			input := &lib.SendMailInput{
				From:     body.From,
				FromName: "Tabiway",
				To:       []string{body.To},
				Subject:  body.Subject,
				Body:     body.HTML,
				Html:     true,
			}
			if input.From == "" {
				input.From = "noreply@tabiway.example.com"
			}
			if err := lib.SendMail(input); err != nil {
				log.Printf("Error sending email to %s: %s\n", body.To, err.Error())
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "could not send email"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success": true,
				"emailId": uuid.New().String(),
			})
		})
	return g
}
