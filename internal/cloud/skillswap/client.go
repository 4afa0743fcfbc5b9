package skillswap

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/skillswap/skillswap-cli/internal/auth"
	"github.com/skillswap/skillswap-cli/internal/utils/api"
)

const (
	authAPI  = "/api/auth"
	usersAPI = "/api/users"

	requestOriginHeader = "X-SkillSwap-Request-Origin"
	cliHeaderValue      = "skillswap-cli"
)

// Client is a SkillSwap client
type Client interface {
	Login(creds Credentials) (AuthResponse, error)
	Register(req Registration) (AuthResponse, error)
	AuthURL(provider string) (string, error)
	ExchangeCode(provider, code string) (AuthResponse, error)

	Me() (auth.User, error)
	UpdateMe(update UserUpdate) (auth.User, error)
	Users() ([]auth.User, error)
	Leaderboard() ([]LeaderboardEntry, error)

	LinkGitHub(code string) error
	GitHubActivity() (Activity, error)
}

// NewClient creates a new SkillSwap client
func NewClient(baseURL string) Client {
	return &client{baseURL, noopAuth{}}
}

// NewAuthClient creates a new SkillSwap client capable of managing the user's session
func NewAuthClient(baseURL string, authService auth.Service) Client {
	return &client{baseURL, authService}
}

type client struct {
	baseURL     string
	authService auth.Service
}

func (c *client) doJSON(method, path string, payload interface{}, options api.RequestOptions) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	options.Body = bytes.NewReader(body)
	options.ContentType = api.MediaTypeJSON

	return c.do(method, path, options)
}

// do issues a single request: no retry, no backoff, no proactive token
// refresh. An auth rejection clears the stored session so subsequent
// commands prompt the user to log in again
func (c *client) do(method, path string, options api.RequestOptions) (*http.Response, error) {
	req, err := http.NewRequest(method, c.baseURL+path, options.Body)
	if err != nil {
		return nil, err
	}

	api.IncludeQuery(req, options.Query)

	req.Header.Set(requestOriginHeader, cliHeaderValue)

	if options.ContentType != "" {
		req.Header.Set(api.HeaderContentType, options.ContentType)
	}

	if token := c.authService.Session().AccessToken; token != "" && !options.NoAuth {
		req.Header.Set(api.HeaderAuthorization, "Bearer "+token)
	}

	client := &http.Client{}

	res, resErr := client.Do(req)
	if resErr != nil {
		return nil, resErr
	}

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return res, nil
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		c.authService.ClearSession()
		if err := c.authService.Save(); err != nil {
			return nil, ErrInvalidSession{}
		}
		return nil, ErrInvalidSession{}
	}

	return nil, parseResponseError(res)
}

func decodeJSON(res *http.Response, out interface{}) error {
	dec := json.NewDecoder(res.Body)
	defer res.Body.Close()

	return dec.Decode(out)
}

type noopAuth struct{}

func (na noopAuth) ClearSession() {}

func (na noopAuth) Save() error { return nil }

func (na noopAuth) Session() auth.Session { return auth.Session{} }

func (na noopAuth) SetSession(session auth.Session) {}

func (na noopAuth) User() auth.User { return auth.User{} }

func (na noopAuth) SetUser(user auth.User) {}
