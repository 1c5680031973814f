package cmd

import (
	httpin "github.com/lcnogueira/plataforma-sabia/internal/adapters/in/http"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/userrepo"
	"github.com/lcnogueira/plataforma-sabia/internal/core/application/usecases/commands"
	"github.com/lcnogueira/plataforma-sabia/internal/core/application/usecases/queries"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/access"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	evaluator  *services.AccessEvaluator
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		evaluator:  services.NewAccessEvaluator(access.DefaultPolicy()),
	}
}

func (c *CompositionRoot) technologyOrderUoWFactory() commands.TechnologyOrderUoWFactory {
	return FuncTechnologyOrderUoWFactory(func() commands.TechnologyOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) serviceOrderUoWFactory() commands.ServiceOrderUoWFactory {
	return FuncServiceOrderUoWFactory(func() commands.ServiceOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reviewUoWFactory() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateTechnologyOrderCommandHandler() commands.CreateTechnologyOrderCommandHandler {
	return commands.NewCreateTechnologyOrderCommandHandler(c.technologyOrderUoWFactory())
}

func (c *CompositionRoot) CreateCloseTechnologyOrderCommandHandler() commands.CloseTechnologyOrderCommandHandler {
	return commands.NewCloseTechnologyOrderCommandHandler(c.technologyOrderUoWFactory(), c.evaluator)
}

func (c *CompositionRoot) CreateCancelTechnologyOrderCommandHandler() commands.CancelTechnologyOrderCommandHandler {
	return commands.NewCancelTechnologyOrderCommandHandler(c.technologyOrderUoWFactory(), c.evaluator)
}

func (c *CompositionRoot) CreateCheckoutServiceOrdersCommandHandler() commands.CheckoutServiceOrdersCommandHandler {
	return commands.NewCheckoutServiceOrdersCommandHandler(c.serviceOrderUoWFactory())
}

func (c *CompositionRoot) CreatePerformServiceOrderCommandHandler() commands.PerformServiceOrderCommandHandler {
	return commands.NewPerformServiceOrderCommandHandler(c.serviceOrderUoWFactory(), c.evaluator)
}

func (c *CompositionRoot) CreateUpdateServiceOrderCommandHandler() commands.UpdateServiceOrderCommandHandler {
	return commands.NewUpdateServiceOrderCommandHandler(c.serviceOrderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteServiceOrderCommandHandler() commands.DeleteServiceOrderCommandHandler {
	return commands.NewDeleteServiceOrderCommandHandler(c.serviceOrderUoWFactory())
}

func (c *CompositionRoot) CreateCreateReviewCommandHandler() commands.CreateReviewCommandHandler {
	return commands.NewCreateReviewCommandHandler(c.reviewUoWFactory())
}

func (c *CompositionRoot) CreateUpdateReviewCommandHandler() commands.UpdateReviewCommandHandler {
	return commands.NewUpdateReviewCommandHandler(c.reviewUoWFactory())
}

func (c *CompositionRoot) CreateDeleteReviewCommandHandler() commands.DeleteReviewCommandHandler {
	return commands.NewDeleteReviewCommandHandler(c.reviewUoWFactory())
}

func (c *CompositionRoot) CreateListTechnologyOrdersQueryHandler() queries.ListTechnologyOrdersQueryHandler {
	return queries.NewListTechnologyOrdersQueryHandler(c.gormDB, c.evaluator)
}

func (c *CompositionRoot) CreateGetTechnologyOrderQueryHandler() queries.GetTechnologyOrderQueryHandler {
	return queries.NewGetTechnologyOrderQueryHandler(c.gormDB, c.evaluator)
}

func (c *CompositionRoot) CreateListServiceOrdersQueryHandler() queries.ListServiceOrdersQueryHandler {
	return queries.NewListServiceOrdersQueryHandler(c.gormDB, c.evaluator)
}

func (c *CompositionRoot) CreateListReviewsQueryHandler() queries.ListReviewsQueryHandler {
	return queries.NewListReviewsQueryHandler(c.gormDB, c.evaluator)
}

// CreateServerHandlers assembles the full handler set the HTTP server routes
// to.
func (c *CompositionRoot) CreateServerHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateTechnologyOrder: c.CreateCreateTechnologyOrderCommandHandler(),
		CloseTechnologyOrder:  c.CreateCloseTechnologyOrderCommandHandler(),
		CancelTechnologyOrder: c.CreateCancelTechnologyOrderCommandHandler(),
		CheckoutServiceOrders: c.CreateCheckoutServiceOrdersCommandHandler(),
		PerformServiceOrder:   c.CreatePerformServiceOrderCommandHandler(),
		UpdateServiceOrder:    c.CreateUpdateServiceOrderCommandHandler(),
		DeleteServiceOrder:    c.CreateDeleteServiceOrderCommandHandler(),
		CreateReview:          c.CreateCreateReviewCommandHandler(),
		UpdateReview:          c.CreateUpdateReviewCommandHandler(),
		DeleteReview:          c.CreateDeleteReviewCommandHandler(),

		ListTechnologyOrders: c.CreateListTechnologyOrdersQueryHandler(),
		GetTechnologyOrder:   c.CreateGetTechnologyOrderQueryHandler(),
		ListServiceOrders:    c.CreateListServiceOrdersQueryHandler(),
		ListReviews:          c.CreateListReviewsQueryHandler(),
	}
}

// CreateAuthMiddleware builds the JWT middleware backed by the user store.
func (c *CompositionRoot) CreateAuthMiddleware(config Config) *httpin.AuthMiddleware {
	return httpin.NewAuthMiddleware([]byte(config.JWTSecret), userrepo.NewGormRepository(c.gormDB))
}

type FuncTechnologyOrderUoWFactory func() commands.TechnologyOrderUoW

func (f FuncTechnologyOrderUoWFactory) Create() commands.TechnologyOrderUoW {
	return f()
}

type FuncServiceOrderUoWFactory func() commands.ServiceOrderUoW

func (f FuncServiceOrderUoWFactory) Create() commands.ServiceOrderUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
