package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clipquiz/internal/domain"
	"clipquiz/internal/infra/file"
	"go.uber.org/zap"
)

func TestRegistryRegisterAndExists(t *testing.T) {
	registry, err := file.NewRegistry(filepath.Join(t.TempDir(), "users.csv"), zap.NewNop())
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	ctx := context.Background()

	if err := registry.Register(ctx, "alice"); err != nil {
		t.Fatalf("register: %v", err)
	}
	ok, err := registry.Exists(ctx, "alice")
	if err != nil || !ok {
		t.Fatalf("expected alice to exist, ok=%v err=%v", ok, err)
	}
	ok, err = registry.Exists(ctx, "bob")
	if err != nil || ok {
		t.Fatalf("expected bob to be absent, ok=%v err=%v", ok, err)
	}

	users, err := registry.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(users) != 1 || users[0].Username != "alice" {
		t.Fatalf("unexpected users: %+v", users)
	}
	if users[0].CreatedAt.IsZero() {
		t.Fatal("expected created_at to round-trip")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry, err := file.NewRegistry(filepath.Join(t.TempDir(), "users.csv"), zap.NewNop())
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	ctx := context.Background()

	if err := registry.Register(ctx, "alice"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(ctx, "alice"); !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestRegistryRejectsShortUsernames(t *testing.T) {
	registry, err := file.NewRegistry(filepath.Join(t.TempDir(), "users.csv"), zap.NewNop())
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if err := registry.Register(context.Background(), "al"); !errors.Is(err, domain.ErrInvalidUsername) {
		t.Fatalf("expected ErrInvalidUsername, got %v", err)
	}
}

func TestRegistryWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	if _, err := file.NewRegistry(path, zap.NewNop()); err != nil {
		t.Fatalf("new registry: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !strings.HasPrefix(string(data), "username,created_at") {
		t.Fatalf("expected header row, got %q", string(data))
	}
}
