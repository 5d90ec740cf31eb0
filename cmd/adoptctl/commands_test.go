package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/huellitas/adoption-client/internal/infrastructure/api"
	"github.com/huellitas/adoption-client/internal/infrastructure/store"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "generic", err: errors.New("backend down"), want: 1},
		{name: "usage", err: usageErrorf("usage: pets list"), want: 2},
		{name: "wrapped usage", err: fmt.Errorf("pets: %w", usageErrorf("bad flags")), want: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCode(tc.err); got != tc.want {
				t.Fatalf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func newTestApp(t *testing.T, handler http.HandlerFunc) *appContext {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := api.New(srv.URL, store.NewMemoryStore(), zerolog.Nop())
	return &appContext{ctx: context.Background(), api: client}
}

func TestSubcommandMisuseReturnsUsageError(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})

	cases := []struct {
		name string
		run  func(*appContext, []string) error
		args []string
	}{
		{name: "pets no subcommand", run: runPets, args: nil},
		{name: "pets unknown subcommand", run: runPets, args: []string{"feed"}},
		{name: "pets bad flag", run: runPets, args: []string{"get", "-bogus"}},
		{name: "adoptions no subcommand", run: runAdoptions, args: nil},
		{name: "adoptions unknown subcommand", run: runAdoptions, args: []string{"cancel"}},
		{name: "users missing list", run: runUsers, args: nil},
		{name: "categories unknown subcommand", run: runCategories, args: []string{"rename"}},
		{name: "roles missing list", run: runRoles, args: []string{"get"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run(app, tc.args)
			var ue usageError
			if !errors.As(err, &ue) {
				t.Fatalf("err = %v, want usage error", err)
			}
			if exitCode(err) != 2 {
				t.Fatalf("exitCode = %d, want 2", exitCode(err))
			}
		})
	}
}

func TestPetsSubcommandAliases(t *testing.T) {
	for _, sub := range []string{"rm", "delete"} {
		t.Run(sub, func(t *testing.T) {
			var gotPath, gotMethod string
			app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath, gotMethod = r.URL.Path, r.Method
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{}`)
			})

			if err := runPets(app, []string{sub, "-id", "7"}); err != nil {
				t.Fatalf("runPets(%s) error: %v", sub, err)
			}
			if gotMethod != http.MethodDelete || gotPath != "/pets/7" {
				t.Fatalf("request = %s %s, want DELETE /pets/7", gotMethod, gotPath)
			}
		})
	}
}

func TestCategoriesCreateAlias(t *testing.T) {
	var gotPath, gotMethod string
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": 4, "nombre": "aves"}`)
	})

	if err := runCategories(app, []string{"create", "-nombre", "aves"}); err != nil {
		t.Fatalf("runCategories(create) error: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/categories" {
		t.Fatalf("request = %s %s, want POST /categories", gotMethod, gotPath)
	}
}
