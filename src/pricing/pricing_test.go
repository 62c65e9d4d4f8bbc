package pricing

import (
	"tabiway/src/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPorterAmount(t *testing.T) {
	cases := []struct {
		name        string
		luggageType types.LuggageType
		count       int
		want        int64
		wantErr     bool
	}{
		{"standard single", types.LUGGAGE_STANDARD, 1, 1000, false},
		{"standard pair", types.LUGGAGE_STANDARD, 2, 2000, false},
		{"large triple", types.LUGGAGE_LARGE, 3, 4500, false},
		{"unknown type", types.LuggageType("oversized"), 1, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := PorterAmount(c.luggageType, c.count)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestPorterAmountMonotonicInCount(t *testing.T) {
	var prev int64
	for count := 1; count <= 10; count++ {
		got, err := PorterAmount(types.LUGGAGE_STANDARD, count)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev)
		assert.Equal(t, int64(count)*LuggageStandardUnitPrice, got)
		prev = got
	}
}

func TestHireAmount(t *testing.T) {
	cases := []struct {
		name    string
		vehicle types.VehicleType
		rental  types.RentalType
		hours   int
		want    int64
		wantErr bool
	}{
		{"standard hourly", types.VEHICLE_STANDARD, types.RENTAL_HOURLY, 3, 24000, false},
		{"premium half day", types.VEHICLE_PREMIUM, types.RENTAL_HALF_DAY, 0, 40000, false},
		{"luxury full day", types.VEHICLE_LUXURY, types.RENTAL_FULL_DAY, 0, 120000, false},
		{"van full day", types.VEHICLE_VAN, types.RENTAL_FULL_DAY, 0, 96000, false},
		{"unknown vehicle", types.VehicleType("tuktuk"), types.RENTAL_HOURLY, 1, 0, true},
		{"unknown rental", types.VEHICLE_STANDARD, types.RentalType("weekly"), 1, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := HireAmount(c.vehicle, c.rental, c.hours)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDoctorAmount(t *testing.T) {
	video, err := DoctorAmount(types.CONSULTATION_VIDEO)
	assert.NoError(t, err)
	assert.Equal(t, int64(3000), video)

	chat, err := DoctorAmount(types.CONSULTATION_CHAT)
	assert.NoError(t, err)
	assert.Equal(t, int64(2000), chat)

	phone, err := DoctorAmount(types.CONSULTATION_PHONE)
	assert.NoError(t, err)
	assert.Equal(t, int64(2500), phone)

	_, err = DoctorAmount(types.ConsultationType("house_call"))
	assert.Error(t, err)
}

func TestDinnerAmount(t *testing.T) {
	got, err := DinnerAmount("osaka-food-tour", 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(24000), got)

	_, err = DinnerAmount("osaka-food-tour", 7)
	assert.Error(t, err, "should reject groups over the tour's max size")

	_, err = DinnerAmount("no-such-tour", 2)
	assert.Error(t, err)
}

func TestDinnerAmountRespectsCatalogCaps(t *testing.T) {
	for _, tour := range Tours() {
		got, err := DinnerAmount(tour.ID, tour.MaxGroupSize)
		assert.NoError(t, err)
		assert.Equal(t, tour.PricePerPerson*int64(tour.MaxGroupSize), got)

		_, err = DinnerAmount(tour.ID, tour.MaxGroupSize+1)
		assert.Error(t, err)
	}
}

func TestTourCatalog(t *testing.T) {
	tours := Tours()
	assert.Len(t, tours, 6)

	osaka, ok := TourByID("osaka-food-tour")
	assert.True(t, ok)
	assert.Equal(t, "Osaka Food Tour", osaka.Name)
	assert.Equal(t, int64(8000), osaka.PricePerPerson)
	assert.Equal(t, 6, osaka.MaxGroupSize)
}
