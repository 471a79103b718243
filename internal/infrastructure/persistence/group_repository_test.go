package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/clinistock/backend/internal/domain/identity"
	"github.com/clinistock/backend/internal/domain/shared"
)

// newMockDB creates a gorm connection backed by a mocked SQL driver
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormGroupRepository_FindByID(t *testing.T) {
	t.Run("finds existing group", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormGroupRepository(db)

		groupID := uuid.Must(uuid.NewV7())
		actor := uuid.Must(uuid.NewV7())
		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "created_by", "name", "description"}).
			AddRow(groupID, now, now, actor, "Pharmacists", "Dispensing staff")

		mock.ExpectQuery(`SELECT \* FROM "group" WHERE id = \$1 AND "group"\."deleted_at" IS NULL ORDER BY .* LIMIT .*`).
			WithArgs(groupID, 1).
			WillReturnRows(rows)

		group, err := repo.FindByID(context.Background(), groupID)

		require.NoError(t, err)
		assert.Equal(t, groupID, group.ID)
		assert.Equal(t, "Pharmacists", group.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing group", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormGroupRepository(db)

		groupID := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(`SELECT \* FROM "group" WHERE id = \$1 AND "group"\."deleted_at" IS NULL ORDER BY .* LIMIT .*`).
			WithArgs(groupID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		group, err := repo.FindByID(context.Background(), groupID)

		assert.Nil(t, group)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormUserGroupRepository_FindByUser(t *testing.T) {
	t.Run("lists memberships of a user", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserGroupRepository(db)

		userID := uuid.Must(uuid.NewV7())
		groupID := uuid.Must(uuid.NewV7())
		actor := uuid.Must(uuid.NewV7())
		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "created_by", "user_id", "group_id"}).
			AddRow(uuid.Must(uuid.NewV7()), now, now, actor, userID, groupID)

		mock.ExpectQuery(`SELECT \* FROM "user_group" WHERE user_id = \$1 AND "user_group"\."deleted_at" IS NULL`).
			WithArgs(userID).
			WillReturnRows(rows)

		memberships, err := repo.FindByUser(context.Background(), userID)

		require.NoError(t, err)
		require.Len(t, memberships, 1)
		assert.Equal(t, groupID, memberships[0].GroupID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormGroupRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	groupRepo := NewGormGroupRepository(db)
	membershipRepo := NewGormUserGroupRepository(db)
	ctx := context.Background()
	actor := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())

	group, err := identity.NewGroup(actor, "Pharmacists", "Dispensing staff")
	require.NoError(t, err)
	require.NoError(t, groupRepo.Save(ctx, group))

	membership, err := identity.NewUserGroup(actor, userID, group)
	require.NoError(t, err)
	require.NoError(t, membershipRepo.Save(ctx, membership))

	require.NoError(t, groupRepo.Delete(ctx, group.ID, actor))

	t.Run("group and memberships are gone from default reads", func(t *testing.T) {
		_, err := groupRepo.FindByID(ctx, group.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		memberships, err := membershipRepo.FindByUser(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, memberships)
	})

	t.Run("audit read shows the deleted group", func(t *testing.T) {
		gone, err := groupRepo.FindByIDIncludingDeleted(ctx, group.ID)
		require.NoError(t, err)
		assert.True(t, gone.IsDeleted())
	})

	t.Run("deleting again is an invalid transition", func(t *testing.T) {
		err := groupRepo.Delete(ctx, group.ID, actor)
		assert.ErrorIs(t, err, shared.ErrInvalidStateTransition)
	})
}
