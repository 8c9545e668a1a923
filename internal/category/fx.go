package category

import (
	"github.com/smallbiznis/stride/internal/category/repository"
	"github.com/smallbiznis/stride/internal/category/service"
	"go.uber.org/fx"
)

var Module = fx.Module("category.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
