package handler

import (
	"pollchat/internal/app/announce"
	"pollchat/internal/app/chat"
	"pollchat/internal/configs"
)

type AppDeps struct {
	Coordinator  *chat.Coordinator
	Announcement *announce.Reader
	Config       *configs.AppConfig
}
