package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atinroy/focusflow-backend/internal/adapter/postgres/testhelper"
	"github.com/atinroy/focusflow-backend/internal/adapter/postgres/user"
	"github.com/atinroy/focusflow-backend/internal/domain"
)

// newRepo is a test helper that sets up the DB and returns a ready Repo.
func newRepo(t *testing.T) (*user.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return user.New(pool), pool
}

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	in := &domain.User{
		ID:           uuid.New(),
		Email:        "new-" + suffix + "@example.com",
		Username:     "new-" + suffix,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvabcdefghijklmnopqrstuvabcdefghij",
	}

	got, err := repo.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Email != in.Email || got.Username != in.Username || got.PasswordHash != in.PasswordHash {
		t.Errorf("Create: got %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("Create: created_at not set")
	}
}

func TestRepo_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	existing := testhelper.SeedUser(t, pool)

	_, err := repo.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        existing.Email,
		Username:     "other-" + uuid.New().String()[:8],
		PasswordHash: "x",
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("Create duplicate email: got %v, want ErrAlreadyExists", err)
	}
}

func TestRepo_GetByEmail(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedUser(t, pool)

	got, err := repo.GetByEmail(ctx, seeded.Email)
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != seeded.ID {
		t.Fatalf("GetByEmail: got %s, want %s", got.ID, seeded.ID)
	}
}

func TestRepo_GetByEmail_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByEmail missing: got %v, want ErrNotFound", err)
	}
}

func TestRepo_GetByID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedUser(t, pool)

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != seeded.Email {
		t.Fatalf("GetByID: got %+v", got)
	}
}
