package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/models"
)

// userRepository is the SQL-backed implementation of [UserRepository]. The
// same code serves PostgreSQL and SQLite; the dialect differences live in the
// [DB] handle (placeholder format and error classification).
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
}

// FindByID implements [UserRepository].
func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	return r.findBy(ctx, "id", id)
}

// FindByEmail implements [UserRepository].
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findBy(ctx, "email", email)
}

func (r *userRepository) findBy(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.placeholder, column, value)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findBy").Str("by", column).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	favorites, err := r.selectFavorites(ctx, user.ID)
	if err != nil {
		return models.User{}, err
	}
	user.Favorites = favorites

	return user, nil
}

func (r *userRepository) selectFavorites(ctx context.Context, userID string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFavoritesQuery(r.db.placeholder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.selectFavorites").Str("user_id", userID).Msg("error querying favorites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	favorites := make([]string, 0)
	for rows.Next() {
		var itemID string
		if err := rows.Scan(&itemID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		favorites = append(favorites, itemID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return favorites, nil
}

// Save implements [UserRepository]. The user row and the full favorites list
// are written in one transaction: insert or update user, delete favorites,
// insert favorites. Updating a user whose row is gone fails with
// ErrUserNotFound, so a deleted account is never written back.
func (r *userRepository) Save(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.now().UTC()
	isNew := user.ID == ""
	if isNew {
		user.ID = r.ids.Generate()
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	user.Favorites = user.CloneFavorites()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Save").Msg("error beginning transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	buildUserQuery := buildUpdateUserQuery
	if isNew {
		buildUserQuery = buildInsertUserQuery
	}
	query, args, err := buildUserQuery(r.db.placeholder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.classify(err) == UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.Save").Str("user_id", user.ID).Msg("error writing user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if !isNew {
		affected, err := res.RowsAffected()
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return models.User{}, ErrUserNotFound
		}
	}

	query, args, err = buildDeleteFavoritesQuery(r.db.placeholder, user.ID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.Save").Str("user_id", user.ID).Msg("error clearing favorites")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(user.Favorites) > 0 {
		query, args, err = buildInsertFavoritesQuery(r.db.placeholder, user.ID, user.Favorites)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*userRepository.Save").Str("user_id", user.ID).Msg("error inserting favorites")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.Save").Str("user_id", user.ID).Msg("error committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, nil
}

// Delete implements [UserRepository].
func (r *userRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteFavoritesQuery(r.db.placeholder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Str("user_id", id).Msg("error deleting favorites")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err = buildDeleteUserQuery(r.db.placeholder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Str("user_id", id).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Str("user_id", id).Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
