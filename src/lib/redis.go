package lib

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func GetRedisClient() *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	redisHost := os.Getenv("REDIS_HOST")
	opt, err := redis.ParseURL(redisHost)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil
	}
	rdb := redis.NewClient(opt)
	redisClient = rdb
	return rdb
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}

const BookingsChangedChannel = "bookings:changed"

// publishes run detached from any request, so they carry their own deadline
const publishTimeout = 5 * time.Second

func TrackingChannel(bookingID string) string {
	return fmt.Sprintf("tracking:%s", bookingID)
}

// PublishBookingsChanged notifies admin dashboards that the booking
// collection changed. Consumers discard their in-memory list and refetch;
// this is push-to-invalidate, not incremental sync.
func PublishBookingsChanged(bookingID string) {
	rdb := GetRedisClient()
	if rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := rdb.Publish(ctx, BookingsChangedChannel, bookingID).Err(); err != nil {
		log.Printf("[redis] Could not publish invalidation for %s: %s\n", bookingID, err.Error())
	}
}

// PublishTrackingEvent pushes a serialized tracking event to the per-booking
// live channel consumed by the SSE stream.
func PublishTrackingEvent(bookingID string, payload string) {
	rdb := GetRedisClient()
	if rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := rdb.Publish(ctx, TrackingChannel(bookingID), payload).Err(); err != nil {
		log.Printf("[redis] Could not publish tracking event for %s: %s\n", bookingID, err.Error())
	}
}
