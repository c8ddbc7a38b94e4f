package config

// Config holds all configuration for the application.
type Config struct {
	DBName       string
	Port         string
	CoursesDir   string
	DefaultStake int
	Slack        SlackConfig
	Turso        TursoConfig
	ProjectID    string
}

type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}

// Enabled reports whether notifications can be posted.
func (c SlackConfig) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
