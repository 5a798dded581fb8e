package db_models

type AccessLevel string

const (
	AccessLevelFree AccessLevel = "free"
	AccessLevelPaid AccessLevel = "paid"
)

// AudioTrack is reference data: one row per ambient track, keyed by name,
// tagged with the cycle phase it is recommended for and its access tier.
type AudioTrack struct {
	BaseModel
	Name        string      `gorm:"uniqueIndex"`
	CyclePhase  string      `gorm:"size:32;index"` // menstrual | follicular | ovulation | luteal
	AccessLevel AccessLevel `gorm:"size:8;default:free"`
}
