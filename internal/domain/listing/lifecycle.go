package listing

import (
	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/errors"
)

// Lifecycle applies the moderation state machine together with the
// ownership and role rules that guard each transition.
type Lifecycle struct {
	policy authorization.Checker
}

func NewLifecycle(policy authorization.Checker) *Lifecycle {
	if policy == nil {
		policy = authorization.StaticPolicy{}
	}
	return &Lifecycle{policy: policy}
}

// Require fails with a forbidden error unless actor's role grants action.
func (lc *Lifecycle) Require(actor authorization.Actor, action authorization.Action) error {
	if !actor.IsAuthenticated() {
		return errors.NewUnauthorizedError("authentication required")
	}
	if !lc.policy.Can(actor.Role, action) {
		return errors.NewForbiddenError("insufficient permissions", string(action))
	}
	return nil
}

// Can reports whether actor's role grants action.
func (lc *Lifecycle) Can(actor authorization.Actor, action authorization.Action) bool {
	return actor.IsAuthenticated() && lc.policy.Can(actor.Role, action)
}

// AuthorizeManage allows the owner and staff with admin access.
func (lc *Lifecycle) AuthorizeManage(actor authorization.Actor, l *Listing, verb string) error {
	if !actor.IsAuthenticated() {
		return errors.NewUnauthorizedError("authentication required")
	}
	if !authorization.CanManage(lc.policy, actor, l.userID) {
		return errForbidden(verb)
	}
	return nil
}

// InitialStatus is Approved for trusted roles and Pending for everyone else.
func (lc *Lifecycle) InitialStatus(actor authorization.Actor) vo.ListingStatus {
	if lc.Can(actor, authorization.ActionAutoApprove) {
		return vo.StatusApproved
	}
	return vo.StatusPending
}

// Create builds a new listing owned by actor.
func (lc *Lifecycle) Create(actor authorization.Actor, fields Fields) (*Listing, error) {
	if !actor.IsAuthenticated() {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	fields.Normalize()
	if err := lc.checkFeatureType(actor, &fields); err != nil {
		return nil, err
	}
	return NewListing(actor.UserID, fields, lc.InitialStatus(actor))
}

// Edit replaces the listing content. An empty feature type keeps the current
// one. Approved listings edited by a non-privileged actor return to Pending.
func (lc *Lifecycle) Edit(actor authorization.Actor, l *Listing, fields Fields) (EditResult, error) {
	if err := lc.AuthorizeManage(actor, l, "edit"); err != nil {
		return EditResult{}, err
	}
	fields.Normalize()
	if fields.FeatureType == "" && l.featureType != "" {
		fields.FeatureType = l.featureType.String()
	}
	if fields.FeatureType != l.featureType.String() {
		if err := lc.checkFeatureType(actor, &fields); err != nil {
			return EditResult{}, err
		}
	}
	return l.ApplyEdit(fields, lc.Can(actor, authorization.ActionKeepApprovedOnEdit))
}

// Moderate resolves a Pending listing to Approved or Canceled.
func (lc *Lifecycle) Moderate(actor authorization.Actor, l *Listing, decision vo.ListingStatus) error {
	if err := lc.Require(actor, authorization.ActionModerate); err != nil {
		return err
	}
	if decision != vo.StatusApproved && decision != vo.StatusCanceled {
		return errors.NewInvalidStatusError("moderation decision must be Approved or Canceled", decision.String())
	}
	if !l.status.IsPending() {
		return errors.NewConflictError("only Pending listings can be moderated", l.status.String())
	}
	return l.ChangeStatus(decision)
}

// SetStatus applies an explicit status update. Only Approved, Pending and
// Canceled may be set this way.
func (lc *Lifecycle) SetStatus(actor authorization.Actor, l *Listing, raw string) error {
	if err := lc.Require(actor, authorization.ActionSetStatus); err != nil {
		return err
	}
	status, err := vo.NewSettableStatus(raw)
	if err != nil {
		return errors.NewInvalidStatusError("invalid status", err.Error())
	}
	return l.ChangeStatus(status)
}

func (lc *Lifecycle) Cancel(actor authorization.Actor, l *Listing) error {
	if err := lc.AuthorizeManage(actor, l, "cancel"); err != nil {
		return err
	}
	return l.Cancel()
}

func (lc *Lifecycle) MarkSold(actor authorization.Actor, l *Listing) error {
	if err := lc.AuthorizeManage(actor, l, "mark as sold"); err != nil {
		return err
	}
	return l.MarkSold()
}

func (lc *Lifecycle) SetPremium(actor authorization.Actor, l *Listing, premium bool) error {
	if err := lc.Require(actor, authorization.ActionSetPremium); err != nil {
		return err
	}
	l.SetPremium(premium)
	return nil
}

func (lc *Lifecycle) AuthorizeDelete(actor authorization.Actor, l *Listing) error {
	return lc.AuthorizeManage(actor, l, "delete")
}

// checkFeatureType expects normalized fields. An unknown feature type fails
// validation before any permission decision is made.
func (lc *Lifecycle) checkFeatureType(actor authorization.Actor, fields *Fields) error {
	ft, err := vo.NewFeatureType(fields.FeatureType)
	if err != nil {
		if verr := fields.Validate(); verr != nil {
			return verr
		}
		return errors.NewValidationError("Validation failed: featureType", err.Error())
	}
	if ft.IsRestricted() && !lc.Can(actor, authorization.ActionCreateRestricted) {
		return errors.NewForbiddenError("only staff can publish "+ft.String()+" listings", ft.String())
	}
	return nil
}
