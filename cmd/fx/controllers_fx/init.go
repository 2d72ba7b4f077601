package controllers_fx

import (
	"go.uber.org/fx"

	"caelio/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewMetaController),
	fx.Provide(controllers.NewQuestionsController),
	fx.Provide(controllers.NewPersonalityController),
	fx.Provide(controllers.NewRecommendationController),
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewBooksController))
