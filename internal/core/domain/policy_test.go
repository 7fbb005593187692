package domain

import "testing"

func TestAllowedAdmin(t *testing.T) {
	actions := []Action{
		ActionProfileRead, ActionProfileUpdate, ActionPasswordChange,
		ActionRoomRead, ActionRoomStats, ActionRoomCreate, ActionRoomUpdate, ActionRoomDelete,
		ActionPaymentRead, ActionPaymentCreate, ActionPaymentUpdate, ActionPaymentReport,
		ActionUserManage,
	}
	for _, a := range actions {
		if !Allowed(RoleAdmin, a) {
			t.Errorf("Allowed(admin, %q) = false, want true", a)
		}
	}
}

func TestAllowedPenyewa(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{ActionProfileRead, true},
		{ActionProfileUpdate, true},
		{ActionPasswordChange, true},
		{ActionRoomRead, true},
		{ActionRoomStats, true},
		{ActionPaymentRead, true},
		{ActionRoomCreate, false},
		{ActionRoomUpdate, false},
		{ActionRoomDelete, false},
		{ActionPaymentCreate, false},
		{ActionPaymentUpdate, false},
		{ActionPaymentReport, false},
		{ActionUserManage, false},
	}
	for _, tt := range tests {
		if got := Allowed(RolePenyewa, tt.action); got != tt.want {
			t.Errorf("Allowed(penyewa, %q) = %v, want %v", tt.action, got, tt.want)
		}
	}
}

// Unknown roles and unmapped actions are denied, never allowed by default.
func TestAllowedFailsClosed(t *testing.T) {
	if Allowed("", ActionRoomRead) {
		t.Error("empty role must be denied")
	}
	if Allowed("superuser", ActionRoomRead) {
		t.Error("unknown role must be denied")
	}
	if Allowed(RolePenyewa, Action("room:paint")) {
		t.Error("unmapped action must be denied for penyewa")
	}
}

func TestPrincipalIsAdmin(t *testing.T) {
	if !(Principal{UserID: "u1", Role: RoleAdmin}).IsAdmin() {
		t.Error("admin principal reported as non-admin")
	}
	if (Principal{UserID: "u2", Role: RolePenyewa}).IsAdmin() {
		t.Error("penyewa principal reported as admin")
	}
}
