package httpapi

import (
	"context"
	"net/http"

	"github.com/jhoicas/tienda-client/internal/application/dto"
	"github.com/jhoicas/tienda-client/internal/domain/entity"
)

// AuthAPI operaciones de autenticación del API remoto.
type AuthAPI struct {
	c *Client
}

// Login intercambia credenciales por identidad + token.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := a.c.do(ctx, http.MethodPost, "/login", dto.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register da de alta una cuenta. No devuelve token: el alta y el login están desacoplados.
func (a *AuthAPI) Register(ctx context.Context, req dto.RegisterRequest) (*entity.Identity, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out entity.Identity
	if err := a.c.do(ctx, http.MethodPost, "/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
