package pricing

import (
	"fmt"
	"tabiway/src/types"

	"github.com/gosimple/slug"
)

// All amounts are integer yen. Yen has no subunit, so there is no rounding
// anywhere in this package.

const (
	LuggageStandardUnitPrice int64 = 1000
	LuggageLargeUnitPrice    int64 = 1500
)

var vehicleHourlyRates = map[types.VehicleType]int64{
	types.VEHICLE_STANDARD: 8000,
	types.VEHICLE_PREMIUM:  10000,
	types.VEHICLE_LUXURY:   15000,
	types.VEHICLE_VAN:      12000,
}

var consultationRates = map[types.ConsultationType]int64{
	types.CONSULTATION_VIDEO: 3000,
	types.CONSULTATION_CHAT:  2000,
	types.CONSULTATION_PHONE: 2500,
}

// Tour is one product in the fixed dinner-tour catalog.
type Tour struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PricePerPerson int64  `json:"price_per_person"`
	MaxGroupSize   int    `json:"max_group_size"`
}

var tourCatalog []Tour

func init() {
	seed := []struct {
		name     string
		price    int64
		maxGroup int
	}{
		{"Osaka Food Tour", 8000, 6},
		{"Kyoto Kaiseki Night", 15000, 4},
		{"Tokyo Izakaya Crawl", 9500, 8},
		{"Sushi Omakase Experience", 18000, 4},
		{"Ramen Alley Walk", 6500, 10},
		{"Kobe Beef Dinner", 22000, 6},
	}
	for _, s := range seed {
		tourCatalog = append(tourCatalog, Tour{
			ID:             slug.Make(s.name),
			Name:           s.name,
			PricePerPerson: s.price,
			MaxGroupSize:   s.maxGroup,
		})
	}
}

// Tours returns the dinner-tour catalog.
func Tours() []Tour {
	out := make([]Tour, len(tourCatalog))
	copy(out, tourCatalog)
	return out
}

// TourByID looks a tour up by its slug id.
func TourByID(id string) (Tour, bool) {
	for _, t := range tourCatalog {
		if t.ID == id {
			return t, true
		}
	}
	return Tour{}, false
}

func LuggageUnitPrice(t types.LuggageType) (int64, error) {
	switch t {
	case types.LUGGAGE_STANDARD:
		return LuggageStandardUnitPrice, nil
	case types.LUGGAGE_LARGE:
		return LuggageLargeUnitPrice, nil
	}
	return 0, fmt.Errorf("unknown luggage type %q", t)
}

func PorterAmount(luggageType types.LuggageType, count int) (int64, error) {
	unit, err := LuggageUnitPrice(luggageType)
	if err != nil {
		return 0, err
	}
	return unit * int64(count), nil
}

func durationUnits(rental types.RentalType, hours int) (int64, error) {
	switch rental {
	case types.RENTAL_HOURLY:
		return int64(hours), nil
	case types.RENTAL_HALF_DAY:
		return 4, nil
	case types.RENTAL_FULL_DAY:
		return 8, nil
	}
	return 0, fmt.Errorf("unknown rental type %q", rental)
}

func HireAmount(vehicle types.VehicleType, rental types.RentalType, hours int) (int64, error) {
	rate, ok := vehicleHourlyRates[vehicle]
	if !ok {
		return 0, fmt.Errorf("unknown vehicle type %q", vehicle)
	}
	units, err := durationUnits(rental, hours)
	if err != nil {
		return 0, err
	}
	return rate * units, nil
}

func DoctorAmount(consultation types.ConsultationType) (int64, error) {
	rate, ok := consultationRates[consultation]
	if !ok {
		return 0, fmt.Errorf("unknown consultation type %q", consultation)
	}
	return rate, nil
}

func DinnerAmount(tourID string, guests int) (int64, error) {
	tour, ok := TourByID(tourID)
	if !ok {
		return 0, fmt.Errorf("unknown tour %q", tourID)
	}
	if guests > tour.MaxGroupSize {
		return 0, fmt.Errorf("group of %d exceeds max group size %d for %q", guests, tour.MaxGroupSize, tour.Name)
	}
	return tour.PricePerPerson * int64(guests), nil
}
