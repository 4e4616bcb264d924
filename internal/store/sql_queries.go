package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-media-keeper/models"
)

// psql builds statements with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"id", "email", "name", "password_hash", "created_at"}

	mediaColumns = []string{
		"id", "user_id", "public_id", "secure_url", "format", "resource_type",
		"bytes", "width", "height", "original_name", "folder", "created_at",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(user.TableName()).
		Columns("email", "name", "password_hash").
		Values(user.Email, user.Name, user.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserQuery(where sq.Eq) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

func buildListUsersQuery() (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id ASC").
		ToSql()
}

// buildUpdateUserQuery sets only the non-nil fields of update.
// Callers must not pass an empty update.
func buildUpdateUserQuery(id int64, update models.UserUpdate) (string, []any, error) {
	set := make(map[string]any, 2)
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}

	return psql.Update(models.User{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildUpdatePasswordQuery(id int64, passwordHash string) (string, []any, error) {
	return psql.Update(models.User{}.TableName()).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteQuery(table string, id int64) (string, []any, error) {
	return psql.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCreateMediaQuery(media models.Media) (string, []any, error) {
	return psql.Insert(media.TableName()).
		Columns("user_id", "public_id", "secure_url", "format", "resource_type", "bytes", "width", "height", "original_name", "folder").
		Values(media.UserID, media.PublicID, media.SecureURL, media.Format, media.ResourceType, media.Bytes, media.Width, media.Height, media.OriginalName, media.Folder).
		Suffix(returning(mediaColumns)).
		ToSql()
}

func buildFindMediaQuery(id int64) (string, []any, error) {
	return psql.Select(mediaColumns...).
		From(models.Media{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListMediaByUserQuery(userID int64) (string, []any, error) {
	return psql.Select(mediaColumns...).
		From(models.Media{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}
