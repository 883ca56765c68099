package listing

import (
	"fmt"

	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
	"github.com/estately-inc/estately/internal/shared/errors"
)

func errForbidden(action string) error {
	return errors.NewForbiddenError("not allowed to "+action+" this listing",
		"only the owner or staff may perform this action")
}

func errTransition(from, to vo.ListingStatus) error {
	current := from.String()
	if from.IsUnset() {
		current = "unset"
	}
	return errors.NewConflictError(
		fmt.Sprintf("listing status cannot change from %s to %s", current, to),
	)
}

// ErrNotFound builds the not-found error for a listing id or slug.
func ErrNotFound(ref any) error {
	return errors.NewNotFoundError("listing not found", fmt.Sprintf("%v", ref))
}
