package authorization

// Action names a privileged operation on listings.
type Action string

const (
	// ActionManageAny edits, cancels, sells or deletes listings owned by others.
	ActionManageAny Action = "manage_any"
	// ActionAutoApprove makes newly created listings Approved immediately.
	ActionAutoApprove Action = "auto_approve"
	// ActionCreateRestricted creates EXPERIENCES and SERVICES listings.
	ActionCreateRestricted Action = "create_restricted"
	// ActionKeepApprovedOnEdit skips re-review when editing an Approved listing.
	ActionKeepApprovedOnEdit Action = "keep_approved_on_edit"
	// ActionModerate approves or rejects Pending listings.
	ActionModerate   Action = "moderate"
	ActionSetStatus  Action = "set_status"
	ActionSetPremium Action = "set_premium"
	// ActionViewAll sees every status in browse queries and dashboard stats.
	ActionViewAll Action = "view_all"
	// ActionPurgeUser deletes every listing of a user.
	ActionPurgeUser Action = "purge_user"
)

// ResourceListing is the single resource the policies are written for.
const ResourceListing = "listing"

// Checker answers role/action questions.
type Checker interface {
	Can(role UserRole, action Action) bool
}

var defaultGrants = map[Action][]UserRole{
	ActionManageAny:          {RoleAdmin, RoleModerator, RoleSupport},
	ActionAutoApprove:        {RoleAdmin, RoleModerator, RoleSupport},
	ActionCreateRestricted:   {RoleAdmin, RoleModerator, RoleSupport},
	ActionKeepApprovedOnEdit: {RoleAdmin, RoleModerator, RoleSupport},
	ActionViewAll:            {RoleAdmin, RoleModerator, RoleSupport},
	ActionModerate:           {RoleAdmin, RoleModerator},
	ActionSetStatus:          {RoleAdmin},
	ActionSetPremium:         {RoleAdmin},
	ActionPurgeUser:          {RoleAdmin},
}

// StaticPolicy is the built-in role matrix. It is used directly when no
// policy store is configured and seeds the casbin enforcer otherwise.
type StaticPolicy struct{}

func (StaticPolicy) Can(role UserRole, action Action) bool {
	for _, r := range defaultGrants[action] {
		if r == role {
			return true
		}
	}
	return false
}

// Grant is one role/action pair of the built-in matrix.
type Grant struct {
	Role   UserRole
	Action Action
}

// DefaultGrants returns the built-in matrix as a flat list.
func DefaultGrants() []Grant {
	var grants []Grant
	for action, roles := range defaultGrants {
		for _, role := range roles {
			grants = append(grants, Grant{Role: role, Action: action})
		}
	}
	return grants
}

// CanManage reports whether actor may mutate a resource owned by ownerID.
func CanManage(checker Checker, actor Actor, ownerID uint) bool {
	if actor.Owns(ownerID) {
		return true
	}
	return actor.IsAuthenticated() && checker.Can(actor.Role, ActionManageAny)
}
