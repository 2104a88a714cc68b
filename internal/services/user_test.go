package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/yungbote/conduit-backend/internal/pkg/pointers"
	"github.com/yungbote/conduit-backend/internal/platform/apierr"
	"github.com/yungbote/conduit-backend/internal/platform/ctxutil"
)

func TestUserServiceUpdateMe(t *testing.T) {
	env := newTestEnv(t)
	jake := env.seedUser(t, "jake")
	env.seedUser(t, "anna")
	ctx := ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{UserID: jake.ID, Username: "jake"})

	_, err := env.userSv.UpdateMe(ctx, UpdateUserInput{Username: pointers.String("anna")})
	if ae, ok := apierr.As(err); !ok || ae.Status != http.StatusUnprocessableEntity {
		t.Fatalf("taken username: want 422 got=%v", err)
	}

	updated, err := env.userSv.UpdateMe(ctx, UpdateUserInput{
		Bio:      pointers.String("I work at statefarm"),
		Password: pointers.String("newpass"),
	})
	if err != nil {
		t.Fatalf("UpdateMe: %v", err)
	}
	if updated.Bio != "I work at statefarm" || updated.Username != "jake" {
		t.Fatalf("UpdateMe: %+v", updated)
	}
	if _, _, err := env.auth.LoginUser(context.Background(), jake.Email, "newpass"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestUserServiceRequiresIdentity(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.userSv.GetMe(context.Background())
	if ae, ok := apierr.As(err); !ok || ae.Status != http.StatusUnauthorized {
		t.Fatalf("GetMe anonymous: want 401 got=%v", err)
	}
}

func TestUserServiceGetProfile(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "jake")
	p, err := env.userSv.GetProfile(context.Background(), "jake")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p.Username != "jake" {
		t.Fatalf("GetProfile: got=%q", p.Username)
	}
	_, err = env.userSv.GetProfile(context.Background(), "ghost")
	if ae, ok := apierr.As(err); !ok || ae.Status != http.StatusNotFound {
		t.Fatalf("GetProfile missing: want 404 got=%v", err)
	}
}
