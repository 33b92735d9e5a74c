package postgres

import (
	"context"
	"database/sql"
	"time"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/logger"
	"campreserv-backend/internal/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now().UTC()
	query := `INSERT INTO users (id, campground_id, email, name, password_hash, role, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.CampgroundID, user.Email, user.Name, user.PasswordHash, user.Role, user.CreatedAt)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, `WHERE email = $1`, email)
}

func (r *userRepository) getBy(ctx context.Context, where string, arg interface{}) (*domain.User, error) {
	logger.DatabaseCall("SELECT", "users", "where", where)
	user := &domain.User{}
	query := `SELECT id, campground_id, email, name, password_hash, role, created_at FROM users ` + where
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.CampgroundID, &user.Email, &user.Name, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}
