package router

import (
	"github.com/rizkyamp/go-store-api/internal/application"
	"github.com/rizkyamp/go-store-api/internal/container"
	pginfra "github.com/rizkyamp/go-store-api/internal/infrastructure/postgres"
	handlers "github.com/rizkyamp/go-store-api/internal/interface/http"
	"github.com/rizkyamp/go-store-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and registers them with the router registry. Repositories and services
// are constructed here once and handed down by reference.
func InitModules(r *Registry) {
	jwt := container.GetJWT()
	bl := container.GetBlacklist()
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	productRepo := pginfra.NewProductRepository(container.GetPGPool())

	userSvc := application.NewUserService(userRepo, jwt, bl, logger)
	productSvc := application.NewProductService(productRepo, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(userSvc, logger), jwt, bl))
	r.Add(modules.NewProductModule(handlers.NewProductHandler(productSvc, logger), jwt, bl))
}
