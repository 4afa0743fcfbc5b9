package skillswap

import (
	"fmt"
	"net/http"

	"github.com/skillswap/skillswap-cli/internal/auth"
	"github.com/skillswap/skillswap-cli/internal/utils/api"
)

var (
	loginPath    = authAPI + "/login"
	registerPath = authAPI + "/register"
)

func providerPath(provider string) string {
	return fmt.Sprintf("%s/%s", authAPI, provider)
}

func providerCallbackPath(provider string) string {
	return fmt.Sprintf("%s/%s/callback", authAPI, provider)
}

// Credentials is the payload for a password login
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the payload for creating a new account
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the SkillSwap authentication response
type AuthResponse struct {
	Token string    `json:"token"`
	User  auth.User `json:"user"`
}

func (c *client) Login(creds Credentials) (AuthResponse, error) {
	return c.authRequest(loginPath, creds)
}

func (c *client) Register(req Registration) (AuthResponse, error) {
	return c.authRequest(registerPath, req)
}

func (c *client) authRequest(path string, payload interface{}) (AuthResponse, error) {
	res, resErr := c.doJSON(http.MethodPost, path, payload, api.RequestOptions{NoAuth: true})
	if resErr != nil {
		return AuthResponse{}, resErr
	}

	var authRes AuthResponse
	if err := decodeJSON(res, &authRes); err != nil {
		return AuthResponse{}, err
	}
	return authRes, nil
}

type authURLResponse struct {
	AuthURL string `json:"authUrl"`
}

// AuthURL fetches the provider's authorization URL from the backend
func (c *client) AuthURL(provider string) (string, error) {
	res, resErr := c.do(http.MethodGet, providerPath(provider), api.RequestOptions{})
	if resErr != nil {
		return "", resErr
	}

	var payload authURLResponse
	if err := decodeJSON(res, &payload); err != nil {
		return "", err
	}
	return payload.AuthURL, nil
}

type codePayload struct {
	Code string `json:"code"`
}

// ExchangeCode trades the provider's authorization code for a session
func (c *client) ExchangeCode(provider, code string) (AuthResponse, error) {
	res, resErr := c.doJSON(http.MethodPost, providerCallbackPath(provider), codePayload{code}, api.RequestOptions{NoAuth: true})
	if resErr != nil {
		return AuthResponse{}, resErr
	}

	var authRes AuthResponse
	if err := decodeJSON(res, &authRes); err != nil {
		return AuthResponse{}, err
	}
	return authRes, nil
}
