package service

import (
	"github.com/jankohoener/asknow/internal/adapter"
	"github.com/jankohoener/asknow/internal/config"
	"github.com/jankohoener/asknow/internal/logger"
	"github.com/jankohoener/asknow/internal/store"
)

type Services struct {
	AnswerService  AnswerService
	AuthService    AuthService
	HistoryService HistoryService
}

func NewServices(storages *store.Storages, linker adapter.EntityLinker, fetcher adapter.SummaryFetcher, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AnswerService:  NewAnswerService(linker, fetcher, logger),
		AuthService:    NewAuthService(storages.UserRepository, storages.UserStorage, cfg.App, logger),
		HistoryService: NewHistoryService(storages.QuestionStorage, logger),
	}
}
