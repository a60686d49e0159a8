//go:build integration

package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"videogame-catalog/config"
	"videogame-catalog/database"
	"videogame-catalog/internal/domain/catalog"
	"videogame-catalog/internal/domain/library"
	"videogame-catalog/internal/errs"
	"videogame-catalog/internal/store"
)

func newPostgresFixture(t *testing.T, opts ...store.Option) *fixture {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("catalog"),
		postgres.WithUsername("catalog"),
		postgres.WithPassword("catalog"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(config.Database{Driver: "postgres", URL: dsn}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db))

	return &fixture{t: t, ctx: ctx, db: db, st: store.New(db, opts...)}
}

func TestPostgresConstraintClassification(t *testing.T) {
	f := newPostgresFixture(t)
	ana := f.user("ana")

	dup := ana
	dup.ID = 0
	dup.Email = "other@x.com"
	raw := f.db.Create(&dup).Error
	var pgErr *pgconn.PgError
	require.True(t, errors.As(raw, &pgErr))
	assert.Equal(t, "23505", pgErr.Code)
	v := errs.ClassifyConstraint(raw)
	assert.Equal(t, errs.UniqueViolation, v.Kind)
	assert.Equal(t, "idx_users_username", v.Constraint)

	err := f.st.CreateUser(f.ctx, &dup)
	require.True(t, errs.IsConflict(err))
	assert.Contains(t, err.Error(), "username")

	vg := f.videoGame("Hades")
	err = f.st.CreatePublication(f.ctx, &catalog.Publication{PlatformCode: "GHOST", VideoGameID: vg.ID})
	require.True(t, errs.IsNotFound(err))
	assert.Contains(t, err.Error(), "platform")

	f.platform("PC")
	pub := f.publication("PC", vg.ID)
	err = f.st.CreatePublication(f.ctx, &catalog.Publication{PlatformCode: "PC", VideoGameID: vg.ID})
	require.True(t, errs.IsConflict(err))
	assert.Contains(t, err.Error(), "platform_code, video_game_id")

	bad := 9
	err = f.st.CreateGame(f.ctx, &library.Game{UserID: ana.ID, PublicationID: pub.ID, ReviewRating: &bad})
	var apiErr *errs.ApiErr
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestPostgresCascadeAndRollback(t *testing.T) {
	boom := errors.New("boom")
	fail := false
	f := newPostgresFixture(t, store.WithStepHook(func(kind store.Kind, _ store.Key) error {
		if fail && kind == store.KindPublication {
			return boom
		}
		return nil
	}))
	ana, bob := f.user("ana"), f.user("bob")
	seedPlatform(f, "PS5", ana, bob)

	fail = true
	_, err := f.st.Delete(f.ctx, store.KindPlatform, store.Key{"code": "PS5"})
	require.ErrorIs(t, err, boom)
	assert.EqualValues(t, 4, f.count(&library.Game{}))
	assert.EqualValues(t, 2, f.count(&catalog.Publication{}))

	fail = false
	_, err = f.st.Patch(f.ctx, store.KindPlatform, store.Key{"code": "PS5"}, map[string]any{"code": "PS5-SLIM"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, f.count(&catalog.Publication{}, "platform_code = ?", "PS5-SLIM"))

	_, err = f.st.Delete(f.ctx, store.KindPlatform, store.Key{"code": "PS5-SLIM"})
	require.NoError(t, err)
	assert.Zero(t, f.count(&library.Game{}))
	assert.Zero(t, f.count(&catalog.Publication{}))
	assert.Zero(t, f.count(&catalog.Platform{}))
}
