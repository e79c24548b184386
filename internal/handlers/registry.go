package handlers

import (
	"github.com/Xae97/TaskFundi/internal/services"
	"github.com/Xae97/TaskFundi/internal/validator"
)

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler   *AuthHandler
	UserHandler   *UserHandler
	JobHandler    *JobHandler
	SearchHandler *SearchHandler
	ChatHandler   *ChatHandler
}

// NewAppHandlers wires the handlers against the service container.
func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		AuthHandler:   NewAuthHandler(base, sc.AuthService),
		UserHandler:   NewUserHandler(base, sc.UserService),
		JobHandler:    NewJobHandler(base, sc.JobService),
		SearchHandler: NewSearchHandler(base, sc.SearchService),
		ChatHandler:   NewChatHandler(base, sc.ChatService),
	}
}
