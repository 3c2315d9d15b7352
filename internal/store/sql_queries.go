package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/footy-tipping/models"
)

const (
	columnID           = "id"
	columnFirstName    = "first_name"
	columnLastName     = "last_name"
	columnUsername     = "username"
	columnPasswordHash = "password_hash"
)

var usersTable = models.User{}.TableName()

var userColumns = []string{columnID, columnFirstName, columnLastName, columnUsername, columnPasswordHash}

// buildCreateUser inserts every column but the id, which is returned.
func buildCreateUser(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(columnFirstName, columnLastName, columnUsername, columnPasswordHash).
		Values(user.FirstName, user.LastName, user.Username, user.PasswordHash).
		Suffix("RETURNING " + columnID).
		ToSql()
}

func buildFindUser(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildGetAllUsers(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy(columnID).
		ToSql()
}

func buildUpdateUser(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update(usersTable).
		SetMap(map[string]any{
			columnFirstName:    user.FirstName,
			columnLastName:     user.LastName,
			columnUsername:     user.Username,
			columnPasswordHash: user.PasswordHash,
		}).
		Where(sq.Eq{columnID: user.ID}).
		ToSql()
}

func buildDeleteUser(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{columnID: id}).
		ToSql()
}
