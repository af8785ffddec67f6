package snapshots

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"thoth-hr/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRow represents the snapshots table
type SnapshotRow struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:100;not null"`
	Data      []byte    `gorm:"type:longblob;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SnapshotRow) TableName() string {
	return "snapshots"
}

// mysqlRepository persists the snapshot blob in a MySQL table via GORM
type mysqlRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a snapshot repository backed by MySQL.
// It migrates the snapshots table on construction.
func NewMySQLRepository(db *gorm.DB) (SnapshotRepository, error) {
	if err := db.AutoMigrate(&SnapshotRow{}); err != nil {
		return nil, err
	}
	return &mysqlRepository{db: db}, nil
}

// Load reads the snapshot row for the fixed store key
func (r *mysqlRepository) Load(ctx context.Context) (domain.Snapshot, error) {
	var row SnapshotRow
	err := r.db.WithContext(ctx).Where("name = ?", StoreKey).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Snapshot{}, domain.ErrSnapshotNotFound
		}
		return domain.Snapshot{}, err
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(row.Data, &snap); err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}

// Save upserts the snapshot row for the fixed store key
func (r *mysqlRepository) Save(ctx context.Context, snap domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	row := SnapshotRow{Name: StoreKey, Data: data}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row).Error
}
