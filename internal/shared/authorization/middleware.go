package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estately-inc/estately/internal/shared/constants"
	"github.com/estately-inc/estately/internal/shared/errors"
	"github.com/estately-inc/estately/internal/shared/utils"
)

// ActorFromContext builds the Actor set by the auth middleware; requests
// without credentials yield Anonymous.
func ActorFromContext(c *gin.Context) Actor {
	userID, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return Anonymous()
	}
	id, _ := userID.(uint)
	return NewActor(id, ParseUserRole(c.GetString(constants.ContextKeyUserRole)))
}

// RequireAction aborts with 403 unless the caller's role is granted action.
func RequireAction(checker Checker, action Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)
		if !actor.IsAuthenticated() {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
			c.Abort()
			return
		}
		if !checker.Can(actor.Role, action) {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.APIResponse{
				Success: false,
				Error: &utils.ErrorInfo{
					Type:    string(errors.ErrorTypeForbidden),
					Message: "insufficient permissions",
					Details: string(action),
				},
			})
			return
		}
		c.Next()
	}
}
