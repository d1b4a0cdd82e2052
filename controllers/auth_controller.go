package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-backend/dto"
	"rental-backend/services"
	"rental-backend/utils"
)

type AuthController struct {
	UserSvc *services.UserService
}

func NewAuthController(svc *services.UserService) *AuthController {
	return &AuthController{UserSvc: svc}
}

// Register creates a user account.
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := utils.BindStrictJSON(c, &req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := ac.UserSvc.Register(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, dto.NewUserResponse(user))
}

// Login verifies credentials and returns a token plus the user.
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := utils.BindStrictJSON(c, &req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := ac.UserSvc.Authenticate(req.UsernameOrEmail, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	})
}

// Me returns the authenticated principal.
func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	user, err := ac.UserSvc.GetByID(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, dto.NewUserResponse(user))
}
