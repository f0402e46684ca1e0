package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/commerce-backend/internal/usecase"
	"github.com/DRSN-tech/commerce-backend/pkg/e"
	"github.com/DRSN-tech/commerce-backend/pkg/logger"
)

type UserHandler struct {
	identityUC usecase.IdentityUC
	logger     logger.Logger
}

func NewUserHandler(identityUC usecase.IdentityUC, logger logger.Logger) *UserHandler {
	return &UserHandler{identityUC: identityUC, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (u *UserHandler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		u.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.Wrap(err.Error(), e.ErrStatusBadRequest))
		return
	}

	user, err := u.identityUC.Register(r.Context(), usecase.NewRegisterReq(req.Email, req.Password))
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, registerResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
	})
}

func (u *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		u.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.Wrap(err.Error(), e.ErrStatusBadRequest))
		return
	}

	res, err := u.identityUC.Login(r.Context(), usecase.NewLoginReq(req.Email, req.Password))
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   res.Token,
	})
}
