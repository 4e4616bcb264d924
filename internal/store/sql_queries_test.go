package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-media-keeper/models"
	"github.com/stretchr/testify/require"
)

func TestBuildCreateUserQuery(t *testing.T) {
	query, args, err := buildCreateUserQuery(models.User{Email: "neo@matrix.io", Name: "Neo", PasswordHash: "h"})

	require.NoError(t, err)
	require.Equal(t,
		"INSERT INTO users (email,name,password_hash) VALUES ($1,$2,$3) RETURNING id, email, name, password_hash, created_at",
		query)
	require.Equal(t, []any{"neo@matrix.io", "Neo", "h"}, args)
}

func TestBuildUpdateUserQuery(t *testing.T) {
	tests := []struct {
		name     string
		update   models.UserUpdate
		wantSet  string
		wantArgs []any
	}{
		{
			name:     "email only",
			update:   models.UserUpdate{Email: strPtr("a@b.io")},
			wantSet:  "SET email = $1 WHERE id = $2",
			wantArgs: []any{"a@b.io", int64(1)},
		},
		{
			name:     "both fields",
			update:   models.UserUpdate{Email: strPtr("a@b.io"), Name: strPtr("A")},
			wantSet:  "SET email = $1, name = $2 WHERE id = $3",
			wantArgs: []any{"a@b.io", "A", int64(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateUserQuery(1, tt.update)

			require.NoError(t, err)
			require.Contains(t, query, tt.wantSet)
			require.True(t, strings.HasSuffix(query, "RETURNING id, email, name, password_hash, created_at"))
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildUpdateUserQuery_EmptyUpdateFails(t *testing.T) {
	_, _, err := buildUpdateUserQuery(1, models.UserUpdate{})

	require.Error(t, err)
}

func TestBuildCreateMediaQuery(t *testing.T) {
	query, args, err := buildCreateMediaQuery(models.Media{UserID: 2, PublicID: "p", ResourceType: "image"})

	require.NoError(t, err)
	q := strings.ToLower(query)
	require.Contains(t, q, "insert into media")
	require.Contains(t, q, "$10")
	require.Contains(t, q, "returning id, user_id")
	require.Len(t, args, 10)
	require.Equal(t, int64(2), args[0])
}

func TestBuildListMediaByUserQuery(t *testing.T) {
	query, args, err := buildListMediaByUserQuery(5)

	require.NoError(t, err)
	require.Contains(t, query, "WHERE user_id = $1")
	require.True(t, strings.HasSuffix(query, "ORDER BY created_at DESC, id DESC"))
	require.Equal(t, []any{int64(5)}, args)
}

func TestBuildDeleteQuery(t *testing.T) {
	query, args, err := buildDeleteQuery("media", 3)

	require.NoError(t, err)
	require.Equal(t, "DELETE FROM media WHERE id = $1", query)
	require.Equal(t, []any{int64(3)}, args)
}
