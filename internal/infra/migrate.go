package infra

import (
	"log"

	"herhzzz/internal/models/db_models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Order{},
		&db_models.UserMembership{},
		&db_models.AudioTrack{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	seedAudioCatalog(db)
}

// seedAudioCatalog inserts the reference track list on first boot. Names
// are stable identifiers the client requests playback by.
func seedAudioCatalog(db *gorm.DB) {
	tracks := []db_models.AudioTrack{
		{Name: "warm_rain", CyclePhase: "menstrual", AccessLevel: db_models.AccessLevelFree},
		{Name: "womb_embrace", CyclePhase: "menstrual", AccessLevel: db_models.AccessLevelPaid},
		{Name: "moonlight_stream", CyclePhase: "menstrual", AccessLevel: db_models.AccessLevelPaid},
		{Name: "forest_morning", CyclePhase: "follicular", AccessLevel: db_models.AccessLevelFree},
		{Name: "budding_energy", CyclePhase: "follicular", AccessLevel: db_models.AccessLevelPaid},
		{Name: "ocean_bloom", CyclePhase: "ovulation", AccessLevel: db_models.AccessLevelFree},
		{Name: "radiant_night", CyclePhase: "ovulation", AccessLevel: db_models.AccessLevelPaid},
		{Name: "soft_dusk", CyclePhase: "luteal", AccessLevel: db_models.AccessLevelFree},
		{Name: "slow_tide", CyclePhase: "luteal", AccessLevel: db_models.AccessLevelPaid},
		{Name: "deep_cocoon", CyclePhase: "luteal", AccessLevel: db_models.AccessLevelPaid},
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&tracks).Error
	if err != nil {
		log.Printf("Error seeding audio catalog: %v", err)
	}
}
