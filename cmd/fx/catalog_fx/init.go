package catalogfx

import (
	"go.uber.org/fx"

	"caelio/internal/repositories"
)

var Module = fx.Provide(provideBookRepo)

func provideBookRepo() repositories.BookRepositoryInterface {
	return repositories.NewCSVBookRepository()
}
