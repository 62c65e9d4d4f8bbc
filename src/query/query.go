package query

import (
	"strings"
	"tabiway/src/models"
	"tabiway/src/types"
	"time"
)

// Params are explicit, immutable filter inputs. Empty string or "all" means
// passthrough for that dimension; all set filters combine with AND.
type Params struct {
	Search      string
	ServiceType string
	Status      string
	DateRange   string
}

const (
	DateRangeAll   = "all"
	DateRangeToday = "today"
	DateRangeWeek  = "week"
	DateRangeMonth = "month"
)

// Filter applies the admin/customer search filters to a booking collection,
// preserving input order.
func Filter(bookings []models.UnifiedBooking, p Params, now time.Time) []models.UnifiedBooking {
	out := make([]models.UnifiedBooking, 0, len(bookings))
	search := strings.ToLower(strings.TrimSpace(p.Search))
	for _, b := range bookings {
		if search != "" && !matchesSearch(&b, search) {
			continue
		}
		if p.ServiceType != "" && p.ServiceType != DateRangeAll && string(b.ServiceType) != p.ServiceType {
			continue
		}
		if p.Status != "" && p.Status != DateRangeAll && string(b.BookingStatus) != p.Status {
			continue
		}
		if !inDateRange(b.CreatedAt, p.DateRange, now) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesSearch(b *models.UnifiedBooking, search string) bool {
	return strings.Contains(strings.ToLower(b.BookingNumber), search) ||
		strings.Contains(strings.ToLower(b.CustomerName), search) ||
		strings.Contains(strings.ToLower(b.CustomerEmail), search)
}

func inDateRange(createdAt time.Time, dateRange string, now time.Time) bool {
	switch dateRange {
	case DateRangeToday:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return !createdAt.Before(midnight)
	case DateRangeWeek:
		return createdAt.After(now.AddDate(0, 0, -7))
	case DateRangeMonth:
		// calendar month subtraction, not a fixed 30 days
		return createdAt.After(now.AddDate(0, -1, 0))
	default:
		return true
	}
}

// Summary holds the dashboard aggregates for a booking collection.
type Summary struct {
	Total         int                         `json:"total"`
	ByStatus      map[types.BookingStatus]int `json:"by_status"`
	ByServiceType map[types.ServiceType]int   `json:"by_service_type"`
	Revenue       int64                       `json:"revenue"`
	PaidBookings  int                         `json:"paid_bookings"`
}

// Summarize recomputes the dashboard statistics from scratch. Revenue only
// counts bookings whose payment completed.
func Summarize(bookings []models.UnifiedBooking) Summary {
	s := Summary{
		Total:         len(bookings),
		ByStatus:      map[types.BookingStatus]int{},
		ByServiceType: map[types.ServiceType]int{},
	}
	for _, b := range bookings {
		s.ByStatus[b.BookingStatus]++
		s.ByServiceType[b.ServiceType]++
		if b.PaymentStatus == types.PAYMENT_COMPLETED {
			s.Revenue += b.TotalAmount
			s.PaidBookings++
		}
	}
	return s
}
