package entity

import "testing"

func TestPrincipal_ResolveRole(t *testing.T) {
	p := &Principal{
		UserID:     "user-1",
		GlobalRole: RolePublic,
		CourtRoles: map[string]Role{"court-a": RoleClerk},
	}

	if got := p.ResolveRole("court-a"); got != RoleClerk {
		t.Errorf("ResolveRole(court-a) = %s, want %s", got, RoleClerk)
	}
	if got := p.ResolveRole("court-b"); got != RolePublic {
		t.Errorf("ResolveRole(court-b) = %s, want %s (no grant)", got, RolePublic)
	}
}

func TestPrincipal_ResolveRole_GlobalAdminOverrides(t *testing.T) {
	p := &Principal{
		UserID:     "user-1",
		GlobalRole: RoleAdmin,
		CourtRoles: map[string]Role{"court-a": RolePublic},
	}

	if got := p.ResolveRole("court-a"); got != RoleAdmin {
		t.Errorf("ResolveRole should be overridden by global admin, got %s", got)
	}
	if got := p.ResolveRole("court-never-granted"); got != RoleAdmin {
		t.Errorf("global admin should resolve to admin everywhere, got %s", got)
	}
}
