package boot

import (
	"log"
	"tabiway/src/db"
	"tabiway/src/lib"
	"tabiway/src/models"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.UnifiedBooking{},
		&models.HireBookingDetail{},
		&models.AirportBookingDetail{},
		&models.DoctorBookingDetail{},
		&models.DinnerBookingDetail{},
		&models.TrackingEvent{},
		&models.Payment{},
		&models.Hotel{},
		&models.LegacyBooking{},
		&models.QRCode{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	sched.Start()
	log.Println("Jobs in queue:", len(sched.Jobs()))
}

// SeedHotels loads the partner hotel catalog used by the legacy porter flow.
// Inserts are skipped when rows already exist.
func SeedHotels() {
	gdb := db.GetDb()
	var count int64
	if err := gdb.Model(&models.Hotel{}).Count(&count).Error; err != nil {
		log.Printf("Could not count hotels: %s\n", err.Error())
		return
	}
	if count > 0 {
		return
	}
	hotels := []models.Hotel{
		{Name: "Hotel Granvia Osaka", Address: "3-1-1 Umeda, Kita-ku", Area: "Osaka"},
		{Name: "Kyoto Century Hotel", Address: "680 Higashishiokoji-cho", Area: "Kyoto"},
		{Name: "Park Hotel Tokyo", Address: "1-7-1 Higashi-Shimbashi", Area: "Tokyo"},
		{Name: "Hotel Nikko Kanazawa", Address: "2-15-1 Honmachi", Area: "Kanazawa"},
		{Name: "Oriental Hotel Kobe", Address: "25 Kyomachi, Chuo-ku", Area: "Kobe"},
	}
	if err := gdb.Create(&hotels).Error; err != nil {
		log.Printf("Could not seed hotels: %s\n", err.Error())
	}
}
