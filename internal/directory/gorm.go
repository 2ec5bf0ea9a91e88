package directory

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/afrilink/platform_be/internal/models"
)

// GormRepository stores the directory in a SQL database.
type GormRepository struct {
	DB *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{DB: db}
}

// Connect opens a Postgres connection for the directory.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Migrate creates the users table and inserts seed users that are missing.
// Running it twice leaves the table unchanged.
func (r *GormRepository) Migrate(ctx context.Context, seed []models.User) error {
	if err := r.DB.WithContext(ctx).AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}

	for i := range seed {
		var count int64
		if err := r.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", seed[i].ID).Count(&count).Error; err != nil {
			return fmt.Errorf("seed lookup %s: %w", seed[i].ID, err)
		}
		if count > 0 {
			continue
		}
		u := seed[i]
		if err := r.DB.WithContext(ctx).Create(&u).Error; err != nil {
			return fmt.Errorf("seed %s: %w", seed[i].ID, err)
		}
	}
	return nil
}

func (r *GormRepository) Get(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(fmt.Sprintf("get %s", id), err)
	}
	return &u, nil
}

func (r *GormRepository) FindByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error) {
	var u models.User
	err := r.DB.WithContext(ctx).
		Where("email = ? AND role = ?", email, role).
		Order("created_at ASC").
		First(&u).Error
	if err != nil {
		return nil, notFound(fmt.Sprintf("find %s as %s", email, role), err)
	}
	return &u, nil
}

func (r *GormRepository) Insert(ctx context.Context, u *models.User) error {
	if err := r.DB.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("insert %s: %w", u.ID, err)
	}
	return nil
}

func (r *GormRepository) Update(ctx context.Context, u *models.User) error {
	res := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", u.ID).
		Select("name", "avatar", "bio", "location", "skills", "rating", "completed_jobs").
		Updates(u)
	if res.Error != nil {
		return fmt.Errorf("update %s: %w", u.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update %s: %w", u.ID, ErrNotFound)
	}
	return nil
}

func notFound(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
