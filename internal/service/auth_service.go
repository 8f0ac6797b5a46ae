package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Servicio que consulta al microservicio externo de autenticación.
// El rol NUNCA se toma de lo que afirme el cliente: siempre sale de acá
// (o del perfil persistido), porque el rol client-side no es frontera de
// confianza.
type AuthService struct {
	authURL string
	client  *http.Client
}

type AuthUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"` // customer | staff | admin | superadmin
	Login   string `json:"login"`
	Enabled bool   `json:"enabled"`
}

// Jerarquía de roles: cada uno incluye a los anteriores.
var roleRank = map[string]int{
	"customer":   0,
	"staff":      1,
	"admin":      2,
	"superadmin": 3,
}

// Crea el servicio de autenticación contra la URL del microservicio.
func NewAuthService(authURL string) *AuthService {
	return &AuthService{
		authURL: authURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// RoleAtLeast indica si el rol del usuario alcanza el requerido.
func RoleAtLeast(userRole, required string) bool {
	ur, ok := roleRank[userRole]
	if !ok {
		return false
	}
	rr, ok := roleRank[required]
	if !ok {
		return false
	}
	return ur >= rr
}

// IsStaff: staff o superior.
func (a *AuthService) IsStaff(user *AuthUser) bool {
	return RoleAtLeast(user.Role, "staff")
}

// Valida el token consultando a /users/current del microservicio de auth.
func (a *AuthService) ValidateToken(token string) (*AuthUser, error) {
	req, err := http.NewRequest("GET", fmt.Sprintf("%s/users/current", a.authURL), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("invalid token")
	}

	var user AuthUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}

	if !user.Enabled {
		return nil, errors.New("user disabled")
	}

	return &user, nil
}
