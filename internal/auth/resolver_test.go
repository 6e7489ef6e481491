package auth

import (
	"context"
	"errors"
	"testing"
)

type fakeGraph struct {
	codes map[string][]string
	calls int
	fail  error
}

func (g *fakeGraph) EffectivePermissionCodes(_ context.Context, userID string) ([]string, error) {
	g.calls++
	if g.fail != nil {
		return nil, g.fail
	}
	return g.codes[userID], nil
}

type fakeCatalog struct {
	services map[string]Service
	perms    map[string][]Permission
}

func (c *fakeCatalog) ServiceByID(_ context.Context, id string) (Service, error) {
	svc, ok := c.services[id]
	if !ok {
		return Service{}, ErrNotFound
	}
	return svc, nil
}

func (c *fakeCatalog) UserPermissions(_ context.Context, userID string) ([]Permission, error) {
	return c.perms[userID], nil
}

func TestCandidateCodes(t *testing.T) {
	got := CandidateCodes("billing", "invoices", "read")
	want := []string{
		"billing:invoices:read",
		"billing:invoices:all",
		"billing:all:read",
		"billing:all:all",
		"all:invoices:read",
		"all:invoices:all",
		"all:all:read",
		"all:all:all",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidate %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestValidCode(t *testing.T) {
	valid := []string{"api:users:read", "all:all:all", "billing:invoices:write"}
	for _, code := range valid {
		if !ValidCode(code) {
			t.Fatalf("expected %q to be valid", code)
		}
	}
	invalid := []string{"", "api", "api:users", "api:users:read:extra", "api::read", ":users:read", "api:users:"}
	for _, code := range invalid {
		if ValidCode(code) {
			t.Fatalf("expected %q to be invalid", code)
		}
	}
}

func TestResolverAllowed(t *testing.T) {
	graph := &fakeGraph{codes: map[string][]string{
		"root":    {"all:all:all"},
		"clerk":   {"billing:invoices:read"},
		"mixed":   {"broken-code", "api:users", "api:users:read"},
		"norole":  nil,
		"reader":  {"all:all:read"},
		"svcwide": {"billing:all:all"},
	}}
	resolver, err := NewResolver(graph, nil)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	cases := []struct {
		name                    string
		user                    string
		service, entity, action string
		want                    bool
	}{
		{"full wildcard grants anything", "root", "api", "users", "delete", true},
		{"full wildcard grants billing too", "root", "billing", "invoices", "read", true},
		{"exact grant matches", "clerk", "billing", "invoices", "read", true},
		{"exact grant does not cover write", "clerk", "billing", "invoices", "write", false},
		{"exact grant does not cover other entity", "clerk", "billing", "payments", "read", false},
		{"held wildcard action matches", "svcwide", "billing", "payments", "purge", true},
		{"held wildcard action wrong service", "svcwide", "api", "payments", "purge", false},
		{"action wildcard across services", "reader", "api", "users", "read", true},
		{"action wildcard blocks writes", "reader", "api", "users", "write", false},
		{"malformed codes never match", "mixed", "api", "users", "write", false},
		{"well-formed code among malformed still matches", "mixed", "api", "users", "read", true},
		{"no roles means no access", "norole", "api", "users", "read", false},
		{"unknown user means no access", "ghost", "api", "users", "read", false},
	}

	for _, tc := range cases {
		got, err := resolver.Allowed(context.Background(), tc.user, tc.service, tc.entity, tc.action)
		if err != nil {
			t.Fatalf("%s: Allowed: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestResolverAllowedEmptyInputsFailClosed(t *testing.T) {
	graph := &fakeGraph{codes: map[string][]string{"root": {"all:all:all"}}}
	resolver, _ := NewResolver(graph, nil)

	for _, triple := range [][4]string{
		{"", "api", "users", "read"},
		{"root", "", "users", "read"},
		{"root", "api", "", "read"},
		{"root", "api", "users", ""},
	} {
		ok, err := resolver.Allowed(context.Background(), triple[0], triple[1], triple[2], triple[3])
		if err != nil {
			t.Fatalf("Allowed: %v", err)
		}
		if ok {
			t.Fatalf("empty input %v must deny", triple)
		}
	}
	if graph.calls != 0 {
		t.Fatalf("empty inputs must not reach the graph, saw %d calls", graph.calls)
	}
}

func TestResolverAllowedStoreFault(t *testing.T) {
	graph := &fakeGraph{fail: errors.New("db down")}
	resolver, _ := NewResolver(graph, nil)
	ok, err := resolver.Allowed(context.Background(), "u", "api", "users", "read")
	if ok {
		t.Fatalf("store fault must fail closed")
	}
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestEffectivePermissions(t *testing.T) {
	billingID := "svc-billing"
	otherID := "svc-other"
	catalog := &fakeCatalog{
		services: map[string]Service{
			billingID: {ID: billingID, Name: "billing"},
		},
		perms: map[string][]Permission{
			"u1": {
				{ID: "p1", ServiceID: &billingID, Code: "billing:invoices:read"},
				{ID: "p2", ServiceID: &otherID, Code: "other:things:read"},
				{ID: "p3", Code: "billing:payments:all"},
				{ID: "p4", Code: "all:all:read"},
				{ID: "p5", Code: "not-a-code"},
			},
		},
	}
	resolver, err := NewResolver(&fakeGraph{}, catalog)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	perms, err := resolver.EffectivePermissions(context.Background(), "u1", billingID)
	if err != nil {
		t.Fatalf("EffectivePermissions: %v", err)
	}
	ids := make(map[string]bool, len(perms))
	for _, p := range perms {
		ids[p.ID] = true
	}
	for _, want := range []string{"p1", "p3", "p4"} {
		if !ids[want] {
			t.Fatalf("expected %s in result, got %v", want, ids)
		}
	}
	if ids["p2"] || ids["p5"] {
		t.Fatalf("unexpected permissions in result: %v", ids)
	}
}

func TestEffectivePermissionsUnknownService(t *testing.T) {
	resolver, _ := NewResolver(&fakeGraph{}, &fakeCatalog{services: map[string]Service{}})
	perms, err := resolver.EffectivePermissions(context.Background(), "u1", "missing")
	if err != nil {
		t.Fatalf("unknown service must not error: %v", err)
	}
	if len(perms) != 0 {
		t.Fatalf("expected empty result, got %d", len(perms))
	}
}
