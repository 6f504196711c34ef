package controllers

import (
	"happyhomes/src/common"
	"happyhomes/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

func AccountsPendingVerification(ctx *gin.Context) (users []types.UserResponse, status int, err error) {
	pending, err := common.PendingVerifications()
	if err != nil {
		return nil, common.StatusCode(err), err
	}
	users = make([]types.UserResponse, 0, len(pending))
	for i := range pending {
		users = append(users, pending[i].Response())
	}
	return users, http.StatusOK, nil
}

// AccountsSetVerified approves or rejects the resident named in the uri.
func AccountsSetVerified(ctx *gin.Context, verified bool) (user *types.UserResponse, status int, err error) {
	var params types.SimpleRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		return nil, http.StatusBadRequest, err
	}
	u, err := common.SetUserVerified(ctx, params.ID, verified)
	if err != nil {
		return nil, common.StatusCode(err), err
	}
	res := u.Response()
	return &res, http.StatusOK, nil
}
