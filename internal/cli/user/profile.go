package user

import (
	"fmt"

	"github.com/skillswap/skillswap-cli/internal/auth"
	"github.com/skillswap/skillswap-cli/internal/telemetry"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	// ProfileType is the file type for profiles
	ProfileType = "yaml"

	envPrefix = "skillswap"

	defaultBaseURL = "https://api.skillswap.dev"
)

// set of supported CLI user profile flags
const (
	FlagProfile      = "profile"
	FlagProfileUsage = `Specify your profile (Default value: "default")`

	FlagBaseURL      = "base-url"
	FlagBaseURLUsage = "specify the base SkillSwap server URL"
)

// Profile is the CLI profile
type Profile struct {
	Flags
	Name string

	dir string
	fs  afero.Fs
}

// Flags are the CLI profile flags
type Flags struct {
	BaseURL       string
	TelemetryMode telemetry.Mode
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile
func NewProfile(name string) (*Profile, error) {
	dir, dirErr := HomeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %w", dirErr)
	}

	return &Profile{
		Name: name,
		dir:  dir,
		fs:   afero.NewOsFs(),
	}, nil
}

// Clear clears the specified CLI profile property
func (p Profile) Clear(name string) {
	p.Set(name, "")
}

// Set sets the specified CLI profile property
func (p Profile) Set(name string, value interface{}) {
	viper.Set(p.propertyKey(name), value)
}

// SetString sets the specified CLI profile property
func (p Profile) SetString(name, value string) {
	p.Set(name, value)
}

// GetString gets the specified CLI profile property
func (p Profile) GetString(name string) string {
	return viper.GetString(p.propertyKey(name))
}

func (p Profile) propertyKey(name string) string {
	return fmt.Sprintf("%s.%s", p.Name, name)
}

// Load loads the CLI profile
func (p Profile) Load() error {
	viper.SetConfigName(p.Name)
	viper.AddConfigPath(p.dir)
	viper.SetConfigPermissions(0600)
	viper.SetConfigType(ProfileType)

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil // proceed if profile doesn't exist
		}
		return fmt.Errorf("failed to load CLI profile: %s", err)
	}
	return nil
}

// Save saves the CLI profile
func (p *Profile) Save() error {
	exists, existsErr := afero.DirExists(p.fs, p.dir)
	if existsErr != nil {
		return fmt.Errorf("failed to save CLI profile: %s", existsErr)
	}

	if !exists {
		if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
			return fmt.Errorf("failed to save CLI profile: %s", err)
		}
	}

	if err := viper.WriteConfigAs(p.Path()); err != nil {
		return fmt.Errorf("failed to save CLI profile: %s", err)
	}
	return nil
}

// ResolveFlags resolves the user profile flags
func (p *Profile) ResolveFlags() error {
	if p.Flags.TelemetryMode == telemetry.ModeEmpty {
		p.Flags.TelemetryMode = p.TelemetryMode()
	}
	p.SetString(keyTelemetryMode, string(p.Flags.TelemetryMode))

	if p.Flags.BaseURL == "" {
		baseURL := p.BaseURL()
		if baseURL == "" {
			baseURL = defaultBaseURL
		}
		p.Flags.BaseURL = baseURL
	}
	p.SetBaseURL(p.Flags.BaseURL)

	return p.Save()
}

// Dir returns the CLI profile directory
func (p Profile) Dir() string {
	return p.dir
}

// Path returns the CLI profile filepath
func (p Profile) Path() string {
	return fmt.Sprintf("%s/%s.%s", p.dir, p.Name, ProfileType)
}

// set of supported CLI profile keys
const (
	keyAccessToken = "access_token"

	keyUserID         = "user_id"
	keyUsername       = "username"
	keyEmail          = "email"
	keyKarmaPoints    = "karma_points"
	keySkillsOffered  = "skills_offered"
	keySkillsNeeded   = "skills_needed"
	keySkillProgress  = "skill_progress"
	keyGitHubLinked   = "github_linked"
	keyGitHubUsername = "github_username"

	keyBaseURL       = "base_url"
	keyTelemetryMode = "telemetry_mode"
)

// TelemetryMode gets the CLI profile telemetry mode
func (p Profile) TelemetryMode() telemetry.Mode {
	return telemetry.Mode(p.GetString(keyTelemetryMode))
}

// Session gets the CLI profile session
func (p Profile) Session() auth.Session {
	return auth.Session{AccessToken: p.GetString(keyAccessToken)}
}

// SetSession sets the CLI profile session
func (p Profile) SetSession(session auth.Session) {
	p.SetString(keyAccessToken, session.AccessToken)
}

// ClearSession clears the CLI profile session along with the cached user record
func (p Profile) ClearSession() {
	p.Clear(keyAccessToken)
	p.clearUser()
}

// LoggedIn returns whether the CLI profile holds an active session credential.
// This is the single authentication predicate; commands must not track their own
func (p Profile) LoggedIn() bool {
	return p.Session().AccessToken != ""
}

// User gets the CLI profile's cached user record
func (p Profile) User() auth.User {
	return auth.User{
		ID:             p.GetString(keyUserID),
		Username:       p.GetString(keyUsername),
		Email:          p.GetString(keyEmail),
		KarmaPoints:    viper.GetInt(p.propertyKey(keyKarmaPoints)),
		SkillsOffered:  viper.GetStringSlice(p.propertyKey(keySkillsOffered)),
		SkillsNeeded:   viper.GetStringSlice(p.propertyKey(keySkillsNeeded)),
		SkillProgress:  toIntMap(viper.GetStringMap(p.propertyKey(keySkillProgress))),
		GitHubLinked:   viper.GetBool(p.propertyKey(keyGitHubLinked)),
		GitHubUsername: p.GetString(keyGitHubUsername),
	}
}

// SetUser sets the CLI profile's cached user record
func (p Profile) SetUser(user auth.User) {
	p.SetString(keyUserID, user.ID)
	p.SetString(keyUsername, user.Username)
	p.SetString(keyEmail, user.Email)
	p.Set(keyKarmaPoints, user.KarmaPoints)
	p.Set(keySkillsOffered, user.SkillsOffered)
	p.Set(keySkillsNeeded, user.SkillsNeeded)
	p.Set(keySkillProgress, fromIntMap(user.SkillProgress))
	p.Set(keyGitHubLinked, user.GitHubLinked)
	p.SetString(keyGitHubUsername, user.GitHubUsername)
}

func (p Profile) clearUser() {
	p.Clear(keyUserID)
	p.Clear(keyUsername)
	p.Clear(keyEmail)
	p.Set(keyKarmaPoints, 0)
	p.Set(keySkillsOffered, nil)
	p.Set(keySkillsNeeded, nil)
	p.Set(keySkillProgress, nil)
	p.Set(keyGitHubLinked, false)
	p.Clear(keyGitHubUsername)
}

// BaseURL gets the CLI profile SkillSwap base url
func (p Profile) BaseURL() string {
	return p.GetString(keyBaseURL)
}

// SetBaseURL sets the CLI profile SkillSwap base url
func (p Profile) SetBaseURL(baseURL string) {
	p.SetString(keyBaseURL, baseURL)
}

// viper only reads maps back as map[string]interface{}
func fromIntMap(in map[string]int) map[string]interface{} {
	if in == nil {
		return nil
	}

	out := make(map[string]interface{}, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

// viper round-trips numeric map values through YAML as interface{}
func toIntMap(in map[string]interface{}) map[string]int {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]int, len(in))
	for key, value := range in {
		switch v := value.(type) {
		case int:
			out[key] = v
		case int64:
			out[key] = int(v)
		case float64:
			out[key] = int(v)
		}
	}
	return out
}
