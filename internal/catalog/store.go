package catalog

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// locationRecord is the persisted form of a Location. Rooms are never
// persisted; the catalog table exists so game content can be edited without
// a redeploy.
type locationRecord struct {
	ID    uint     `gorm:"primaryKey"`
	Name  string   `gorm:"uniqueIndex;not null"`
	Image string   `gorm:"not null"`
	Roles []string `gorm:"serializer:json;not null"`
}

func (locationRecord) TableName() string { return "locations" }

// Store loads the location catalog from Postgres.
type Store struct {
	db *gorm.DB
}

// OpenStore connects to the database and migrates the locations table.
func OpenStore(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	if err := db.AutoMigrate(&locationRecord{}); err != nil {
		return nil, fmt.Errorf("migrate locations: %w", err)
	}
	return &Store{db: db}, nil
}

// Load returns all locations, seeding the table from the embedded set the
// first time it is found empty.
func (s *Store) Load() ([]Location, error) {
	var records []locationRecord
	if err := s.db.Order("name").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load locations: %w", err)
	}
	if len(records) == 0 {
		defaults := Default()
		if err := s.Seed(defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	locs := make([]Location, 0, len(records))
	for _, rec := range records {
		locs = append(locs, Location{Name: rec.Name, Image: rec.Image, Roles: rec.Roles})
	}
	return locs, nil
}

// Seed inserts the given locations into the table.
func (s *Store) Seed(locs []Location) error {
	records := make([]locationRecord, 0, len(locs))
	for _, l := range locs {
		records = append(records, locationRecord{Name: l.Name, Image: l.Image, Roles: l.Roles})
	}
	if err := s.db.Create(&records).Error; err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}
	return nil
}
