package login

const (
	flagEmail      = "email"
	flagEmailShort = "u"
	flagEmailUsage = "specify the email address to log in with"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "specify the password to log in with"

	flagProvider      = "with-provider"
	flagProviderUsage = `log in through a social identity provider (e.g. "google")`

	flagAuthTimeout      = "auth-timeout"
	flagAuthTimeoutUsage = "specify how long to wait for browser authorization before giving up"
)
