package todo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atinroy/focusflow-backend/internal/adapter/postgres/testhelper"
	"github.com/atinroy/focusflow-backend/internal/adapter/postgres/todo"
	"github.com/atinroy/focusflow-backend/internal/domain"
)

// newRepo is a test helper that sets up the DB and returns a ready Repo.
func newRepo(t *testing.T) (*todo.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return todo.New(pool), pool
}

func ptrBool(b bool) *bool    { return &b }
func ptrInt(i int) *int       { return &i }
func ptrStr(s string) *string { return &s }

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	tg := testhelper.SeedTag(t, pool, u.ID)

	in := &domain.Todo{
		ID:          uuid.New(),
		UserID:      u.ID,
		TagID:       &tg.ID,
		Title:       "write report",
		Description: ptrStr("quarterly numbers"),
		Priority:    ptrInt(2),
	}

	got, err := repo.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.Title != in.Title || got.TagID == nil || *got.TagID != tg.ID {
		t.Errorf("Create: got %+v", got)
	}
	if got.Completed {
		t.Error("Create: new todo must not be completed")
	}
	if got.Priority == nil || *got.Priority != 2 {
		t.Errorf("Create: priority = %v, want 2", got.Priority)
	}
}

func TestRepo_Create_UnknownTag(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	missing := uuid.New()

	_, err := repo.Create(ctx, &domain.Todo{
		ID:     uuid.New(),
		UserID: u.ID,
		TagID:  &missing,
		Title:  "dangling tag",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Create with unknown tag: got %v, want ErrNotFound", err)
	}
}

func TestRepo_List_Filters(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	tg := testhelper.SeedTag(t, pool, u.ID)

	tagged := testhelper.SeedTodo(t, pool, u.ID, &tg.ID)
	plain := testhelper.SeedTodo(t, pool, u.ID, nil)

	done := testhelper.SeedTodo(t, pool, u.ID, nil)
	done.Completed = true
	if _, err := repo.Update(ctx, &done); err != nil {
		t.Fatalf("Update to completed: %v", err)
	}

	all, err := repo.List(ctx, u.ID, domain.TodoFilter{})
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List all: got %d, want 3", len(all))
	}

	completed, err := repo.List(ctx, u.ID, domain.TodoFilter{Completed: ptrBool(true)})
	if err != nil {
		t.Fatalf("List completed: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != done.ID {
		t.Fatalf("List completed: got %d, want only %s", len(completed), done.ID)
	}

	byTag, err := repo.List(ctx, u.ID, domain.TodoFilter{TagID: &tg.ID})
	if err != nil {
		t.Fatalf("List by tag: %v", err)
	}
	if len(byTag) != 1 || byTag[0].ID != tagged.ID {
		t.Fatalf("List by tag: got %d, want only %s", len(byTag), tagged.ID)
	}

	_ = plain
}

func TestRepo_ListIncompleteByPriority(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)

	low := testhelper.SeedTodo(t, pool, u.ID, nil)
	low.Priority = ptrInt(5)
	if _, err := repo.Update(ctx, &low); err != nil {
		t.Fatalf("Update low: %v", err)
	}

	high := testhelper.SeedTodo(t, pool, u.ID, nil)
	high.Priority = ptrInt(1)
	if _, err := repo.Update(ctx, &high); err != nil {
		t.Fatalf("Update high: %v", err)
	}

	none := testhelper.SeedTodo(t, pool, u.ID, nil)

	done := testhelper.SeedTodo(t, pool, u.ID, nil)
	done.Completed = true
	done.Priority = ptrInt(0)
	if _, err := repo.Update(ctx, &done); err != nil {
		t.Fatalf("Update done: %v", err)
	}

	got, err := repo.ListIncompleteByPriority(ctx, u.ID)
	if err != nil {
		t.Fatalf("ListIncompleteByPriority: %v", err)
	}

	wantOrder := []uuid.UUID{high.ID, low.ID, none.ID}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d todos, want %d", len(got), len(wantOrder))
	}
	for i, td := range got {
		if td.ID != wantOrder[i] {
			t.Errorf("position %d: got %s, want %s", i, td.ID, wantOrder[i])
		}
	}
}

func TestRepo_CountByTagID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	tg := testhelper.SeedTag(t, pool, u.ID)

	testhelper.SeedTodo(t, pool, u.ID, &tg.ID)
	testhelper.SeedTodo(t, pool, u.ID, &tg.ID)
	testhelper.SeedTodo(t, pool, u.ID, nil)

	n, err := repo.CountByTagID(ctx, tg.ID)
	if err != nil {
		t.Fatalf("CountByTagID: %v", err)
	}
	if n != 2 {
		t.Fatalf("CountByTagID: got %d, want 2", n)
	}
}

func TestRepo_CountByUser(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)

	testhelper.SeedTodo(t, pool, u.ID, nil)
	done := testhelper.SeedTodo(t, pool, u.ID, nil)
	done.Completed = true
	if _, err := repo.Update(ctx, &done); err != nil {
		t.Fatalf("Update: %v", err)
	}

	total, completed, err := repo.CountByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("CountByUser: %v", err)
	}
	if total != 2 || completed != 1 {
		t.Fatalf("CountByUser: got total=%d completed=%d, want 2/1", total, completed)
	}
}

func TestRepo_Update_OtherUsersTodo(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)
	seeded := testhelper.SeedTodo(t, pool, owner.ID, nil)

	seeded.UserID = other.ID
	_, err := repo.Update(ctx, &seeded)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update foreign todo: got %v, want ErrNotFound", err)
	}
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	seeded := testhelper.SeedTodo(t, pool, u.ID, nil)

	if err := repo.Delete(ctx, u.ID, seeded.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err := repo.GetByID(ctx, seeded.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID after delete: got %v, want ErrNotFound", err)
	}
}
