package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_NAME", "hogballs.db")
	t.Setenv("PORT", "8080")
	t.Setenv("DEFAULT_STAKE", "2")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "")
	t.Setenv("GCP_PROJECT", "")

	cfg := Load()
	assert.Equal(t, "hogballs.db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2, cfg.DefaultStake)
	assert.False(t, cfg.Slack.Enabled(), "a channel is required to post")
	assert.Empty(t, cfg.ProjectID)
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "valid", value: "4", want: 4},
		{name: "empty", value: "", want: 1},
		{name: "not a number", value: "two", want: 1},
		{name: "zero", value: "0", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOGBALLS_TEST_INT", tt.value)
			assert.Equal(t, tt.want, getInt("HOGBALLS_TEST_INT", 1))
		})
	}
}
