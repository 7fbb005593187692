package domain

// Action names a capability-checked operation exposed by the core.
type Action string

const (
	ActionProfileRead    Action = "profile:read"
	ActionProfileUpdate  Action = "profile:update"
	ActionPasswordChange Action = "password:change"

	ActionRoomRead   Action = "room:read"
	ActionRoomStats  Action = "room:stats"
	ActionRoomCreate Action = "room:create"
	ActionRoomUpdate Action = "room:update"
	ActionRoomDelete Action = "room:delete"

	ActionPaymentRead   Action = "payment:read"
	ActionPaymentCreate Action = "payment:create"
	ActionPaymentUpdate Action = "payment:update"
	ActionPaymentReport Action = "payment:report"

	ActionUserManage Action = "user:manage"
)

// penyewaActions is the closed allow-set for the renter role. Reads of
// payments are additionally scoped to the caller's own rows by the ledger.
var penyewaActions = map[Action]struct{}{
	ActionProfileRead:    {},
	ActionProfileUpdate:  {},
	ActionPasswordChange: {},
	ActionRoomRead:       {},
	ActionRoomStats:      {},
	ActionPaymentRead:    {},
}

// Allowed is the central authorization decision: admin may do everything,
// penyewa only what the allow-set lists, and any unknown role or unmapped
// action is denied.
func Allowed(role string, action Action) bool {
	switch role {
	case RoleAdmin:
		return true
	case RolePenyewa:
		_, ok := penyewaActions[action]
		return ok
	}
	return false
}
