package store

import (
	"time"

	"github.com/MKhiriev/go-identity/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable     = "users"
	favoritesTable = "user_favorites"
)

// userColumns is the scan order used by scanUser.
var userColumns = []string{"id", "email", "name", "password_hash", "created_at", "updated_at"}

// buildFindUserQuery selects one user row where column equals value.
func buildFindUserQuery(ph sq.PlaceholderFormat, column, value string) (string, []any, error) {
	return sq.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		PlaceholderFormat(ph).
		ToSql()
}

// buildSelectFavoritesQuery selects the user's favorites in insertion order.
func buildSelectFavoritesQuery(ph sq.PlaceholderFormat, userID string) (string, []any, error) {
	return sq.Select("item_id").
		From(favoritesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("position").
		PlaceholderFormat(ph).
		ToSql()
}

func buildInsertUserQuery(ph sq.PlaceholderFormat, user models.User) (string, []any, error) {
	return sq.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt.UTC(), user.UpdatedAt.UTC()).
		PlaceholderFormat(ph).
		ToSql()
}

// buildUpdateUserQuery rewrites every mutable column of an existing row.
// created_at is never touched.
func buildUpdateUserQuery(ph sq.PlaceholderFormat, user models.User) (string, []any, error) {
	return sq.Update(usersTable).
		Set("email", user.Email).
		Set("name", user.Name).
		Set("password_hash", user.PasswordHash).
		Set("updated_at", user.UpdatedAt.UTC()).
		Where(sq.Eq{"id": user.ID}).
		PlaceholderFormat(ph).
		ToSql()
}

func buildDeleteFavoritesQuery(ph sq.PlaceholderFormat, userID string) (string, []any, error) {
	return sq.Delete(favoritesTable).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(ph).
		ToSql()
}

// buildInsertFavoritesQuery inserts all favorites in one statement, keeping
// their order in the position column. Must not be called with an empty list.
func buildInsertFavoritesQuery(ph sq.PlaceholderFormat, userID string, favorites []string) (string, []any, error) {
	q := sq.Insert(favoritesTable).Columns("user_id", "position", "item_id")
	for i, itemID := range favorites {
		q = q.Values(userID, i, itemID)
	}
	return q.PlaceholderFormat(ph).ToSql()
}

func buildDeleteUserQuery(ph sq.PlaceholderFormat, userID string) (string, []any, error) {
	return sq.Delete(usersTable).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(ph).
		ToSql()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (models.User, error) {
	var user models.User
	var createdAt, updatedAt time.Time
	if err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &createdAt, &updatedAt); err != nil {
		return models.User{}, err
	}
	user.CreatedAt = createdAt.UTC()
	user.UpdatedAt = updatedAt.UTC()
	return user, nil
}
