package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"github.com/gstrauss42/life-tracker/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChangeStamp identifies a consistent version of a user's record set.
// Any insert, edit, or delete produces a different stamp, so cached
// aggregates keyed by it are invalidated on every write.
type ChangeStamp struct {
	RecordCount  int64
	LastModified time.Time
}

type DailyRecordRepository interface {
	// GetByDate returns the record for one date with food entries
	// preloaded, or ErrNotFound.
	GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyRecord, error)
	// ListByDateRange returns records in [from, to] ordered oldest
	// first, food entries preloaded in logged order.
	ListByDateRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.DailyRecord, error)
	// List returns records for cursor-paginated browsing, newest first.
	List(ctx context.Context, userID uuid.UUID, filter domain.DailyRecordFilter) ([]domain.DailyRecord, error)
	// Upsert creates the day's record or updates it in place.
	Upsert(ctx context.Context, record *domain.DailyRecord) error
	// AddFoodEntry appends an entry and touches the owning record.
	AddFoodEntry(ctx context.Context, entry *domain.FoodEntry) error
	// BulkClear deletes all records (and cascaded entries) for a user.
	BulkClear(ctx context.Context, userID uuid.UUID) error
	// Stamp returns the current change stamp for a user's record set.
	Stamp(ctx context.Context, userID uuid.UUID) (ChangeStamp, error)
}

type dailyRecordRepository struct {
	db *gorm.DB
}

func NewDailyRecordRepository(db *gorm.DB) DailyRecordRepository {
	return &dailyRecordRepository{db: db}
}

func (r *dailyRecordRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyRecord, error) {
	var record domain.DailyRecord
	err := r.db.WithContext(ctx).
		Preload("FoodEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("logged_at ASC")
		}).
		Where("user_id = ? AND date = ?", userID, date).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *dailyRecordRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.DailyRecord, error) {
	var records []domain.DailyRecord
	err := r.db.WithContext(ctx).
		Preload("FoodEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("logged_at ASC")
		}).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *dailyRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.DailyRecordFilter) ([]domain.DailyRecord, error) {
	query := r.db.WithContext(ctx).
		Preload("FoodEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("logged_at ASC")
		}).
		Where("user_id = ?", userID).
		Order("date DESC")

	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, domain.ErrInvalidCursor
		}
		// DESC order: records strictly before the cursor date, or
		// same date with a smaller id
		query = query.Where(
			"(date < ?) OR (date = ? AND id < ?)",
			cursor.Date, cursor.Date, cursor.ID,
		)
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.DailyRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *dailyRecordRepository) Upsert(ctx context.Context, record *domain.DailyRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"water_liters", "exercise_minutes", "sunlight_minutes",
				"sleep_hours", "social_minutes", "workout_type",
				"social_category", "notes", "updated_at",
			}),
		}).
		Create(record).Error
}

func (r *dailyRecordRepository) AddFoodEntry(ctx context.Context, entry *domain.FoodEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		// Touch the record so change stamps move on food writes too
		return tx.Model(&domain.DailyRecord{}).
			Where("id = ?", entry.RecordID).
			Update("updated_at", time.Now().UTC()).Error
	})
}

func (r *dailyRecordRepository) BulkClear(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.DailyRecord{}).Error
}

func (r *dailyRecordRepository) Stamp(ctx context.Context, userID uuid.UUID) (ChangeStamp, error) {
	var stamp ChangeStamp
	row := r.db.WithContext(ctx).
		Model(&domain.DailyRecord{}).
		Where("user_id = ?", userID).
		Select("COUNT(*) AS record_count, COALESCE(MAX(updated_at), 'epoch'::timestamptz) AS last_modified").
		Row()
	if err := row.Scan(&stamp.RecordCount, &stamp.LastModified); err != nil {
		return ChangeStamp{}, err
	}
	return stamp, nil
}
