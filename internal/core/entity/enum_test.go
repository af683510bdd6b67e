package entity

import "testing"

func TestRole_HasPermission(t *testing.T) {
	cases := []struct {
		have, need Role
		want       bool
	}{
		{RoleAdmin, RoleClerk, true},
		{RoleClerk, RoleJudge, true},
		{RoleJudge, RoleClerk, true},
		{RoleAttorney, RoleClerk, false},
		{RolePublic, RoleAttorney, false},
		{RoleAttorney, RolePublic, true},
		{RoleClerk, RoleClerk, true},
	}
	for _, c := range cases {
		if got := c.have.HasPermission(c.need); got != c.want {
			t.Errorf("%s.HasPermission(%s) = %v, want %v", c.have, c.need, got, c.want)
		}
	}
}

func TestRole_IsValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleClerk, RoleJudge, RoleAttorney, RolePublic} {
		if !r.IsValid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Role("BAILIFF").IsValid() {
		t.Error("unknown role should be invalid")
	}
}

func TestCaseType_IsValid(t *testing.T) {
	for _, ct := range []CaseType{CaseTypeCivil, CaseTypeCriminal, CaseTypeBankrupcy, CaseTypeAppeal, CaseTypeMagistrate} {
		if !ct.IsValid() {
			t.Errorf("%s should be valid", ct)
		}
	}
	if CaseType("TRAFFIC").IsValid() {
		t.Error("unknown case type should be invalid")
	}
}
