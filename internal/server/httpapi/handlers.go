package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/pkg/api"
)

func (s *Server) handleAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.AccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeAPIError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, err := s.accounts.Access(ctx, req.Email, req.Password)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	session, err := s.sessions.Create(ctx, identity, req.Remember)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, api.SessionResponse{
		Token:        session.AccessToken,
		RefreshToken: session.RefreshToken,
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeAPIError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := s.accounts.Create(ctx, req.Name, req.Email, req.Password, req.AcceptedTerms)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.logger.Info(ctx, "account registered", "account_id", account.ID)
	s.writeJSON(ctx, w, http.StatusCreated, api.MessageResponse{Message: "Account created"})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeAPIError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := s.sessions.Rotate(ctx, expiredAccessClaims(ctx), req.RefreshToken)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, api.SessionResponse{
		Token:        session.AccessToken,
		RefreshToken: session.RefreshToken,
	})
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeAPIError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	accountID, err := s.accounts.ResetPassword(ctx, req.Email)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, api.ResetPasswordResponse{AccountID: accountID})
}

func (s *Server) handleValidateCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ValidateCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeAPIError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.accounts.ValidateCode(ctx, req.AccountID, req.Code); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, api.MessageResponse{Message: "Code is valid"})
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeAPIError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.accounts.ChangePassword(ctx, req.AccountID, req.Password, req.Code); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, api.MessageResponse{Message: "Password changed"})
}

// writeError maps service sentinels onto HTTP statuses. Authorization
// failures stay opaque: the body never says which check failed.
func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		s.writeAPIError(ctx, w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		s.writeAPIError(ctx, w, http.StatusConflict, "email already registered")
	case errors.Is(err, common.ErrorNotFound):
		s.writeAPIError(ctx, w, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrorUnauthorized):
		s.writeAPIError(ctx, w, http.StatusUnauthorized, "unauthorized")
	default:
		s.logger.Error(ctx, "internal error", "error", err.Error())
		s.writeAPIError(ctx, w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) writeAPIError(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	s.writeJSON(ctx, w, status, api.ErrorResponse{Error: msg})
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(ctx, "failed to encode response", "error", err.Error())
	}
}
