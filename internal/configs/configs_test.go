package configs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)

	cfg, err := LoadConfig()
	req.NoError(err)

	req.Equal("development", cfg.Environment)
	req.Equal(8080, cfg.Port)
	req.Equal("announcement.txt", cfg.AnnouncementPath)
	req.Equal(0.2, cfg.RegisterRate)
	req.Equal(5, cfg.RegisterBurst)
	req.Equal(0.05, cfg.CreateRate)
	req.Equal(2, cfg.CreateBurst)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	req := require.New(t)

	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://chat.example.com,https://admin.example.com")
	t.Setenv("ANNOUNCEMENT_PATH", "/srv/pollchat/announcement.txt")

	cfg, err := LoadConfig()
	req.NoError(err)

	req.Equal("production", cfg.Environment)
	req.Equal(9090, cfg.Port)
	req.Equal([]string{"https://chat.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
	req.Equal("/srv/pollchat/announcement.txt", cfg.AnnouncementPath)
}

func TestLoadConfig_RejectsPrivilegedPort(t *testing.T) {
	req := require.New(t)

	t.Setenv("PORT", "80")

	_, err := LoadConfig()
	req.Error(err)
}

func TestLoadConfig_RejectsInvalidPort(t *testing.T) {
	req := require.New(t)

	t.Setenv("PORT", "not-a-number")

	_, err := LoadConfig()
	req.Error(err)
}
