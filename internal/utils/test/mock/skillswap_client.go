package mock

import (
	"github.com/skillswap/skillswap-cli/internal/auth"
	"github.com/skillswap/skillswap-cli/internal/cloud/skillswap"
)

// SkillSwapClient is a mocked SkillSwap client
type SkillSwapClient struct {
	skillswap.Client

	LoginFn          func(creds skillswap.Credentials) (skillswap.AuthResponse, error)
	RegisterFn       func(req skillswap.Registration) (skillswap.AuthResponse, error)
	AuthURLFn        func(provider string) (string, error)
	ExchangeCodeFn   func(provider, code string) (skillswap.AuthResponse, error)
	MeFn             func() (auth.User, error)
	UpdateMeFn       func(update skillswap.UserUpdate) (auth.User, error)
	UsersFn          func() ([]auth.User, error)
	LeaderboardFn    func() ([]skillswap.LeaderboardEntry, error)
	LinkGitHubFn     func(code string) error
	GitHubActivityFn func() (skillswap.Activity, error)
}

// Login calls the mocked Login implementation if provided,
// otherwise the call falls back to the underlying skillswap.Client implementation.
// NOTE: this may panic if the underlying skillswap.Client is left undefined
func (sc SkillSwapClient) Login(creds skillswap.Credentials) (skillswap.AuthResponse, error) {
	if sc.LoginFn != nil {
		return sc.LoginFn(creds)
	}
	return sc.Client.Login(creds)
}

// Register calls the mocked Register implementation if provided,
// otherwise the call falls back to the underlying skillswap.Client implementation.
// NOTE: this may panic if the underlying skillswap.Client is left undefined
func (sc SkillSwapClient) Register(req skillswap.Registration) (skillswap.AuthResponse, error) {
	if sc.RegisterFn != nil {
		return sc.RegisterFn(req)
	}
	return sc.Client.Register(req)
}

// AuthURL calls the mocked AuthURL implementation if provided,
// otherwise the call falls back to the underlying skillswap.Client implementation.
// NOTE: this may panic if the underlying skillswap.Client is left undefined
func (sc SkillSwapClient) AuthURL(provider string) (string, error) {
	if sc.AuthURLFn != nil {
		return sc.AuthURLFn(provider)
	}
	return sc.Client.AuthURL(provider)
}

// ExchangeCode calls the mocked ExchangeCode implementation if provided,
// otherwise the call falls back to the underlying skillswap.Client implementation.
// NOTE: this may panic if the underlying skillswap.Client is left undefined
func (sc SkillSwapClient) ExchangeCode(provider, code string) (skillswap.AuthResponse, error) {
	if sc.ExchangeCodeFn != nil {
		return sc.ExchangeCodeFn(provider, code)
	}
	return sc.Client.ExchangeCode(provider, code)
}

// Me calls the mocked Me implementation if provided,
// otherwise the call falls back to the underlying skillswap.Client implementation.
// NOTE: this may panic if the underlying skillswap.Client is left undefined
func (sc SkillSwapClient) Me() (auth.User, error) {
	if sc.MeFn != nil {
		return sc.MeFn()
	}
	return sc.Client.Me()
}

// UpdateMe calls the mocked UpdateMe implementation if provided,
// otherwise the call falls back to the underlying skillswap.Client implementation.
// NOTE: this may panic if the underlying skillswap.Client is left undefined
func (sc SkillSwapClient) UpdateMe(update skillswap.UserUpdate) (auth.User, error) {
	if sc.UpdateMeFn != nil {
		return sc.UpdateMeFn(update)
	}
	return sc.Client.UpdateMe(update)
}

// Users calls the mocked Users implementation if provided,
// otherwise the call falls back to the underlying skillswap.Client implementation.
// NOTE: this may panic if the underlying skillswap.Client is left undefined
func (sc SkillSwapClient) Users() ([]auth.User, error) {
	if sc.UsersFn != nil {
		return sc.UsersFn()
	}
	return sc.Client.Users()
}

// Leaderboard calls the mocked Leaderboard implementation if provided,
// otherwise the call falls back to the underlying skillswap.Client implementation.
// NOTE: this may panic if the underlying skillswap.Client is left undefined
func (sc SkillSwapClient) Leaderboard() ([]skillswap.LeaderboardEntry, error) {
	if sc.LeaderboardFn != nil {
		return sc.LeaderboardFn()
	}
	return sc.Client.Leaderboard()
}

// LinkGitHub calls the mocked LinkGitHub implementation if provided,
// otherwise the call falls back to the underlying skillswap.Client implementation.
// NOTE: this may panic if the underlying skillswap.Client is left undefined
func (sc SkillSwapClient) LinkGitHub(code string) error {
	if sc.LinkGitHubFn != nil {
		return sc.LinkGitHubFn(code)
	}
	return sc.Client.LinkGitHub(code)
}

// GitHubActivity calls the mocked GitHubActivity implementation if provided,
// otherwise the call falls back to the underlying skillswap.Client implementation.
// NOTE: this may panic if the underlying skillswap.Client is left undefined
func (sc SkillSwapClient) GitHubActivity() (skillswap.Activity, error) {
	if sc.GitHubActivityFn != nil {
		return sc.GitHubActivityFn()
	}
	return sc.Client.GitHubActivity()
}
