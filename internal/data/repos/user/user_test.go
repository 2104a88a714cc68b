package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yungbote/conduit-backend/internal/data/repos/testutil"
	types "github.com/yungbote/conduit-backend/internal/domain"
	"github.com/yungbote/conduit-backend/internal/platform/dbctx"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	repo := NewUserRepo(db, testutil.Logger(t))

	created, err := repo.Create(dbc, []*types.User{
		{
			Username: "jake",
			Email:    "jake@jake.jake",
			Password: "pw",
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 || created[0].ID == uuid.Nil {
		t.Fatalf("Create: expected 1 user with id, got %+v", created)
	}

	gotByIDs, err := repo.GetByIDs(dbc, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(gotByIDs) != 1 || gotByIDs[0].ID != created[0].ID {
		t.Fatalf("GetByIDs: unexpected result: %+v", gotByIDs)
	}

	byName, err := repo.GetByUsername(dbc, "jake")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if byName == nil || byName.ID != created[0].ID {
		t.Fatalf("GetByUsername: unexpected result: %+v", byName)
	}

	missing, err := repo.GetByUsername(dbc, "nobody")
	if err != nil {
		t.Fatalf("GetByUsername (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByUsername (missing): expected nil, got %+v", missing)
	}

	exists, err := repo.EmailExists(dbc, "jake@jake.jake", uuid.Nil)
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if !exists {
		t.Fatalf("EmailExists: expected true")
	}

	exists, err = repo.EmailExists(dbc, "jake@jake.jake", created[0].ID)
	if err != nil {
		t.Fatalf("EmailExists (self): %v", err)
	}
	if exists {
		t.Fatalf("EmailExists (self): expected false when excluding own id")
	}

	if err := repo.UpdateFields(dbc, created[0].ID, map[string]interface{}{"bio": "I work at statefarm"}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	got, err := repo.GetByID(dbc, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Bio != "I work at statefarm" {
		t.Fatalf("GetByID: bio not updated: %+v", got)
	}
}

func TestUserRepoRejectsDuplicateUsername(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUserRepo(db, testutil.Logger(t))
	dbc := dbctx.Background(context.Background())

	if _, err := repo.Create(dbc, []*types.User{{Username: "dup", Email: "a@example.com", Password: "pw"}}); err != nil {
		t.Fatalf("Create first: %v", err)
	}
	if _, err := repo.Create(dbc, []*types.User{{Username: "dup", Email: "b@example.com", Password: "pw"}}); err == nil {
		t.Fatalf("Create duplicate: expected unique violation")
	}
}
