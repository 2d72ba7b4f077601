package quizfx

import (
	"go.uber.org/fx"

	"caelio/internal/repositories"
	"caelio/internal/services"
)

var Module = fx.Provide(
	providePersonalityService, provideMatcherService)

func providePersonalityService() services.PersonalityServiceInterface {
	return services.NewPersonalityService()
}

func provideMatcherService(
	bookRepo repositories.BookRepositoryInterface,
	personalityService services.PersonalityServiceInterface,
) services.MatcherServiceInterface {
	return services.NewMatcherService(bookRepo, personalityService)
}
