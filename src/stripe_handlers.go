package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"tabiway/src/common"
	"tabiway/src/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

func stripeWebhookRoute(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	apiv1.Use(requestTimeoutMiddleware)
	apiv1.POST("/webhook/stripe", func(ctx *gin.Context) {
		payload, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			log.Printf("Error reading request body: %s\n", err.Error())
			ctx.Status(http.StatusServiceUnavailable)
			return
		}
		whsecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
		event, err := webhook.ConstructEvent(payload, ctx.GetHeader("Stripe-Signature"), whsecret)
		if err != nil {
			log.Printf("Error verifying webhook signature: %s\n", err.Error())
			ctx.Status(http.StatusBadRequest)
			return
		}
		log.Printf("[StripeEvent] %s\n", event.Type)
		switch event.Type {
		case "payment_intent.succeeded":
			var pi stripe.PaymentIntent
			if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
				log.Printf("[Stripe] Error parsing PaymentIntent: %s\n", err.Error())
				break
			}
			log.Printf("[PaymentIntent] ID: %s %s\n", pi.ID, pi.Status)
			bookingID, err := uuid.Parse(pi.Metadata["bookingId"])
			if err != nil {
				log.Printf("Could not read booking id for PaymentIntent %s: %s\n", pi.ID, err.Error())
				break
			}
			if _, err := common.UpdatePaymentStatus(ctx.Request.Context(), bookingID, types.PAYMENT_COMPLETED, pi.ID); err != nil {
				log.Printf("Error completing payment for booking %s: %s\n", bookingID, err.Error())
			}
		case "payment_intent.payment_failed":
			var pi stripe.PaymentIntent
			if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
				log.Printf("[Stripe] Error parsing PaymentIntent: %s\n", err.Error())
				break
			}
			bookingID, err := uuid.Parse(pi.Metadata["bookingId"])
			if err != nil {
				log.Printf("Could not read booking id for PaymentIntent %s: %s\n", pi.ID, err.Error())
				break
			}
			if _, err := common.UpdatePaymentStatus(ctx.Request.Context(), bookingID, types.PAYMENT_FAILED, ""); err != nil {
				log.Printf("Error failing payment for booking %s: %s\n", bookingID, err.Error())
			}
		default:
			log.Printf("[Stripe] Unhandled event type %s\n", event.Type)
		}
		ctx.Status(http.StatusOK)
	})
	return apiv1
}
