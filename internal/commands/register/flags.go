package register

const (
	flagUsername      = "username"
	flagUsernameUsage = "specify the username for the new account"

	flagEmail      = "email"
	flagEmailShort = "u"
	flagEmailUsage = "specify the email address for the new account"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "specify the password for the new account"
)
