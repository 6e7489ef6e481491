package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestEffectivePermissionCodes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	store := NewStore(db)

	mock.ExpectQuery("select distinct p.code.*from permissions p").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"code"}).
			AddRow("billing:invoice:read").
			AddRow("all:all:all"))

	codes, err := store.EffectivePermissionCodes(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("EffectivePermissionCodes: %v", err)
	}
	if len(codes) != 2 || codes[0] != "billing:invoice:read" || codes[1] != "all:all:all" {
		t.Fatalf("unexpected codes: %v", codes)
	}
}

func TestEffectivePermissionCodesNoGrants(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	store := NewStore(db)

	mock.ExpectQuery("select distinct p.code.*from permissions p").
		WithArgs("user-2").
		WillReturnRows(sqlmock.NewRows([]string{"code"}))

	codes, err := store.EffectivePermissionCodes(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("EffectivePermissionCodes: %v", err)
	}
	if len(codes) != 0 {
		t.Fatalf("expected no codes, got %v", codes)
	}
}

func TestEffectivePermissionCodesQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	store := NewStore(db)

	boom := errors.New("connection reset")
	mock.ExpectQuery("select distinct p.code.*from permissions p").
		WithArgs("user-3").
		WillReturnError(boom)

	_, err = store.EffectivePermissionCodes(context.Background(), "user-3")
	if !errors.Is(err, boom) {
		t.Fatalf("expected query error, got %v", err)
	}
}
