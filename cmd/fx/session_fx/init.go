package sessionfx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"caelio/internal/infra"
	"caelio/internal/repositories"
	"caelio/internal/services"
)

var Module = fx.Provide(
	provideSessionRepo, provideSessionService)

// provideSessionRepo picks redis when REDIS_URL is set, otherwise sessions
// live in process memory and die with the process.
func provideSessionRepo() repositories.SessionRepositoryInterface {
	if os.Getenv("REDIS_URL") != "" {
		return repositories.NewRedisSessionRepository(infra.InitRedis())
	}
	log.Println("REDIS_URL not set, using in-memory quiz session store")
	return repositories.NewMemorySessionRepository()
}

func provideSessionService(
	sessionRepo repositories.SessionRepositoryInterface,
	personalityService services.PersonalityServiceInterface,
	matcherService services.MatcherServiceInterface,
) services.SessionServiceInterface {
	return services.NewSessionService(sessionRepo, personalityService, matcherService)
}
