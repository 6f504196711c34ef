package boot

import (
	"context"
	"happyhomes/src/common"
	"happyhomes/src/db"
	"happyhomes/src/lib"
	"happyhomes/src/models"
	"log"
	"time"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, in migration order.
var Models = []any{
	&models.User{},
	&models.UserProfile{},
	&models.Facility{},
	&models.AvailableSlot{},
	&models.Booking{},
	&models.ResidentAccessCode{},
	&models.Visitor{},
}

func InitDb() *gorm.DB {
	db := db.GetDb()

	if err := db.AutoMigrate(Models...); err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	if err := common.SeedFacilities(); err != nil {
		log.Fatalf("error seeding facilities: %s", err.Error())
	}

	return db
}

// InitCache checks the verification code cache. The service keeps running without it.
func InitCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := lib.PingRedis(ctx); err != nil {
		log.Printf("Verification code cache unavailable: %s\n", err.Error())
		return
	}
	lib.GetCache()
	log.Println("Verification code cache ready")
}
