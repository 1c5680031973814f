package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/reviewrepo"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/servicerepo"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/serviceorderrepo"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/technologyorderrepo"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/technologyrepo"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/userrepo"
	"github.com/lcnogueira/plataforma-sabia/internal/core/application/usecases/queries"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/access"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/technology"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/techorder"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/user"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/services"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueryHandlersTestSuite exercises the read side against a real database so
// the scoping WHERE clauses are tested as SQL, not as mocks.
type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	evaluator *services.AccessEvaluator

	admin    *user.User
	buyer    *user.User
	owner    *user.User
	stranger *user.User

	techOne kernel.UUID
	techTwo kernel.UUID

	orderOnTechOneByBuyer    kernel.UUID
	orderOnTechOneByStranger kernel.UUID
	orderOnTechTwoByBuyer    kernel.UUID

	serviceByOwner kernel.UUID

	serviceOrderByBuyer    kernel.UUID
	serviceOrderByStranger kernel.UUID

	reviewByBuyer kernel.UUID

	baseTime time.Time
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&technologyrepo.TechnologyDTO{},
		&technologyrepo.TechnologyUserDTO{},
		&technologyorderrepo.OrderDTO{},
		&servicerepo.ServiceDTO{},
		&serviceorderrepo.ServiceOrderDTO{},
		&reviewrepo.ReviewDTO{},
	)
	suite.Require().NoError(err)

	suite.evaluator = services.NewAccessEvaluator(access.DefaultPolicy())

	suite.admin = suite.newUser("admin@plataforma.com", "Carla Souza", user.RoleAdmin)
	suite.buyer = suite.newUser("buyer@example.com", "Pedro Alves", user.RoleDefaultUser)
	suite.owner = suite.newUser("owner@example.com", "Maria Costa", user.RoleResearcher)
	suite.stranger = suite.newUser("stranger@example.com", "Joao Silva", user.RoleDefaultUser)

	suite.baseTime = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE users, technologies, technology_users, technology_orders, services, service_orders, service_order_reviews CASCADE",
	).Error
	suite.Require().NoError(err)

	suite.seed()
}

func (suite *QueryHandlersTestSuite) newUser(email, name, role string) *user.User {
	u, err := user.RestoreUser(kernel.NewUUID(), email, name, role)
	suite.Require().NoError(err)
	return u
}

// seed builds two technologies (one per owner), three technology orders,
// one service with two orders, and one review.
func (suite *QueryHandlersTestSuite) seed() {
	for _, u := range []*user.User{suite.admin, suite.buyer, suite.owner, suite.stranger} {
		err := suite.db.Create(&userrepo.UserDTO{
			ID:       u.ID().Bytes(),
			Email:    u.Email(),
			FullName: u.FullName(),
			Role:     u.Role(),
		}).Error
		suite.Require().NoError(err)
	}

	suite.techOne = kernel.NewUUID()
	suite.techTwo = kernel.NewUUID()

	technologies := []technologyrepo.TechnologyDTO{
		{
			ID:     suite.techOne.Bytes(),
			Title:  "Solar water heater",
			Status: int(technology.StatusPublished),
			Users: []technologyrepo.TechnologyUserDTO{
				{TechnologyID: suite.techOne.Bytes(), UserID: suite.owner.ID().Bytes(), Role: string(technology.RoleOwner)},
			},
		},
		{
			ID:     suite.techTwo.Bytes(),
			Title:  "Drip irrigation controller",
			Status: int(technology.StatusPublished),
			Users: []technologyrepo.TechnologyUserDTO{
				{TechnologyID: suite.techTwo.Bytes(), UserID: suite.stranger.ID().Bytes(), Role: string(technology.RoleOwner)},
			},
		},
	}
	for i := range technologies {
		err := suite.db.Create(&technologies[i]).Error
		suite.Require().NoError(err)
	}

	suite.orderOnTechOneByBuyer = kernel.NewUUID()
	suite.orderOnTechOneByStranger = kernel.NewUUID()
	suite.orderOnTechTwoByBuyer = kernel.NewUUID()

	orders := []technologyorderrepo.OrderDTO{
		{
			ID:           suite.orderOnTechOneByBuyer.Bytes(),
			TechnologyID: suite.techOne.Bytes(),
			UserID:       suite.buyer.ID().Bytes(),
			Quantity:     2,
			Use:          int(techorder.UseEnterprise),
			Funding:      int(techorder.FundingWants),
			Comment:      "pilot deployment",
			Status:       int(techorder.Open),
			CreatedAt:    suite.baseTime,
		},
		{
			ID:           suite.orderOnTechOneByStranger.Bytes(),
			TechnologyID: suite.techOne.Bytes(),
			UserID:       suite.stranger.ID().Bytes(),
			Quantity:     1,
			Use:          int(techorder.UsePrivate),
			Funding:      int(techorder.FundingNotNeeded),
			Status:       int(techorder.Open),
			CreatedAt:    suite.baseTime.Add(24 * time.Hour),
		},
		{
			ID:           suite.orderOnTechTwoByBuyer.Bytes(),
			TechnologyID: suite.techTwo.Bytes(),
			UserID:       suite.buyer.ID().Bytes(),
			Quantity:     5,
			Use:          int(techorder.UseEnterprise),
			Funding:      int(techorder.FundingHas),
			Status:       int(techorder.Closed),
			UnitValue:    120.5,
			CreatedAt:    suite.baseTime.Add(48 * time.Hour),
		},
	}
	for i := range orders {
		err := suite.db.Create(&orders[i]).Error
		suite.Require().NoError(err)
	}

	suite.serviceByOwner = kernel.NewUUID()
	err := suite.db.Create(&servicerepo.ServiceDTO{
		ID:            suite.serviceByOwner.Bytes(),
		Name:          "Soil analysis",
		ResponsibleID: suite.owner.ID().Bytes(),
	}).Error
	suite.Require().NoError(err)

	suite.serviceOrderByBuyer = kernel.NewUUID()
	suite.serviceOrderByStranger = kernel.NewUUID()

	serviceOrders := []serviceorderrepo.ServiceOrderDTO{
		{
			ID:        suite.serviceOrderByBuyer.Bytes(),
			ServiceID: suite.serviceByOwner.Bytes(),
			UserID:    suite.buyer.ID().Bytes(),
			Quantity:  3,
			Comment:   "northern plot",
			Status:    int(serviceorder.Requested),
			CreatedAt: suite.baseTime,
		},
		{
			ID:        suite.serviceOrderByStranger.Bytes(),
			ServiceID: suite.serviceByOwner.Bytes(),
			UserID:    suite.stranger.ID().Bytes(),
			Quantity:  1,
			Status:    int(serviceorder.Performed),
			CreatedAt: suite.baseTime.Add(24 * time.Hour),
		},
	}
	for i := range serviceOrders {
		err = suite.db.Create(&serviceOrders[i]).Error
		suite.Require().NoError(err)
	}

	suite.reviewByBuyer = kernel.NewUUID()
	err = suite.db.Create(&reviewrepo.ReviewDTO{
		ID:             suite.reviewByBuyer.Bytes(),
		ServiceOrderID: suite.serviceOrderByBuyer.Bytes(),
		UserID:         suite.buyer.ID().Bytes(),
		Content:        "great service",
		Rating:         5,
		Positive:       `["fast","thorough"]`,
		Negative:       `[]`,
	}).Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) listTechnologyOrders(
	requester *user.User,
	filter queries.ListTechnologyOrdersFilter,
	page queries.Page,
) queries.ListTechnologyOrdersResponse {
	query, err := queries.NewListTechnologyOrdersQuery(requester, filter, page)
	suite.Require().NoError(err)

	handler := queries.NewListTechnologyOrdersQueryHandler(suite.db, suite.evaluator)
	response, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	return response
}

func (suite *QueryHandlersTestSuite) orderIDs(response queries.ListTechnologyOrdersResponse) []string {
	ids := make([]string, 0, len(response.Orders))
	for _, row := range response.Orders {
		ids = append(ids, row.ID.String())
	}
	return ids
}

func (suite *QueryHandlersTestSuite) TestListTechnologyOrders_BuyerView() {
	response := suite.listTechnologyOrders(
		suite.buyer,
		queries.ListTechnologyOrdersFilter{FromCurrentUser: true},
		queries.NewPage(1, 10),
	)

	suite.Equal(int64(2), response.Total)
	suite.ElementsMatch(
		[]string{suite.orderOnTechOneByBuyer.String(), suite.orderOnTechTwoByBuyer.String()},
		suite.orderIDs(response),
	)
}

func (suite *QueryHandlersTestSuite) TestListTechnologyOrders_SellerSeesOrdersOnOwnedTechnologies() {
	response := suite.listTechnologyOrders(
		suite.owner,
		queries.ListTechnologyOrdersFilter{},
		queries.NewPage(1, 10),
	)

	suite.Equal(int64(2), response.Total)
	suite.ElementsMatch(
		[]string{suite.orderOnTechOneByBuyer.String(), suite.orderOnTechOneByStranger.String()},
		suite.orderIDs(response),
	)
	suite.Equal("Solar water heater", response.Orders[0].TechnologyTitle)
}

func (suite *QueryHandlersTestSuite) TestListTechnologyOrders_AdminSeesEverything() {
	response := suite.listTechnologyOrders(
		suite.admin,
		queries.ListTechnologyOrdersFilter{},
		queries.NewPage(1, 10),
	)

	suite.Equal(int64(3), response.Total)
	suite.Len(response.Orders, 3)
}

func (suite *QueryHandlersTestSuite) TestListTechnologyOrders_StatusFilter() {
	response := suite.listTechnologyOrders(
		suite.admin,
		queries.ListTechnologyOrdersFilter{Statuses: []techorder.Status{techorder.Closed}},
		queries.NewPage(1, 10),
	)

	suite.Equal(int64(1), response.Total)
	suite.Require().Len(response.Orders, 1)
	suite.Equal(suite.orderOnTechTwoByBuyer.String(), response.Orders[0].ID.String())
	suite.Equal(techorder.Closed.String(), response.Orders[0].Status)
	suite.InDelta(120.5, response.Orders[0].UnitValue, 0.001)
}

func (suite *QueryHandlersTestSuite) TestListTechnologyOrders_BuyerAndUnitValueFilters() {
	buyerID := suite.buyer.ID()
	unitValue := 120.5

	response := suite.listTechnologyOrders(
		suite.admin,
		queries.ListTechnologyOrdersFilter{BuyerID: &buyerID, UnitValue: &unitValue},
		queries.NewPage(1, 10),
	)

	suite.Equal(int64(1), response.Total)
	suite.Require().Len(response.Orders, 1)
	suite.Equal(suite.orderOnTechTwoByBuyer.String(), response.Orders[0].ID.String())
}

func (suite *QueryHandlersTestSuite) TestListTechnologyOrders_DateRange() {
	from := suite.baseTime.Add(12 * time.Hour)
	to := suite.baseTime.Add(36 * time.Hour)

	response := suite.listTechnologyOrders(
		suite.admin,
		queries.ListTechnologyOrdersFilter{DateFrom: &from, DateTo: &to},
		queries.NewPage(1, 10),
	)

	suite.Equal(int64(1), response.Total)
	suite.Require().Len(response.Orders, 1)
	suite.Equal(suite.orderOnTechOneByStranger.String(), response.Orders[0].ID.String())
}

func (suite *QueryHandlersTestSuite) TestListTechnologyOrders_Pagination() {
	response := suite.listTechnologyOrders(
		suite.admin,
		queries.ListTechnologyOrdersFilter{OrderBy: "created_at", Order: queries.SortDesc},
		queries.NewPage(2, 2),
	)

	suite.Equal(int64(3), response.Total)
	suite.Require().Len(response.Orders, 1)
	suite.Equal(suite.orderOnTechOneByBuyer.String(), response.Orders[0].ID.String())
}

func (suite *QueryHandlersTestSuite) TestGetTechnologyOrder_BuyerSeesOwnOrder() {
	query, err := queries.NewGetTechnologyOrderQuery(suite.orderOnTechOneByBuyer, suite.buyer)
	suite.Require().NoError(err)

	handler := queries.NewGetTechnologyOrderQueryHandler(suite.db, suite.evaluator)
	row, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(suite.orderOnTechOneByBuyer.String(), row.ID.String())
	suite.Equal("Solar water heater", row.TechnologyTitle)
	suite.Equal(techorder.Open.String(), row.Status)
	suite.Equal("pilot deployment", row.Comment)
}

func (suite *QueryHandlersTestSuite) TestGetTechnologyOrder_OwnerSeesOrderOnOwnedTechnology() {
	query, err := queries.NewGetTechnologyOrderQuery(suite.orderOnTechOneByStranger, suite.owner)
	suite.Require().NoError(err)

	handler := queries.NewGetTechnologyOrderQueryHandler(suite.db, suite.evaluator)
	row, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(suite.orderOnTechOneByStranger.String(), row.ID.String())
}

func (suite *QueryHandlersTestSuite) TestGetTechnologyOrder_OutOfScopeLooksMissing() {
	query, err := queries.NewGetTechnologyOrderQuery(suite.orderOnTechOneByBuyer, suite.stranger)
	suite.Require().NoError(err)

	handler := queries.NewGetTechnologyOrderQueryHandler(suite.db, suite.evaluator)
	_, err = handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestListServiceOrders_RequesterView() {
	query, err := queries.NewListServiceOrdersQuery(
		suite.buyer,
		queries.ListServiceOrdersFilter{FromCurrentUser: true},
		queries.NewPage(1, 10),
	)
	suite.Require().NoError(err)

	handler := queries.NewListServiceOrdersQueryHandler(suite.db, suite.evaluator)
	response, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(1), response.Total)
	suite.Require().Len(response.Orders, 1)
	suite.Equal(suite.serviceOrderByBuyer.String(), response.Orders[0].ID.String())
	suite.Equal("Soil analysis", response.Orders[0].ServiceName)
	suite.Equal(serviceorder.Requested.String(), response.Orders[0].Status)
}

func (suite *QueryHandlersTestSuite) TestListServiceOrders_ResponsibleSeesOrdersOnOwnServices() {
	query, err := queries.NewListServiceOrdersQuery(
		suite.owner,
		queries.ListServiceOrdersFilter{},
		queries.NewPage(1, 10),
	)
	suite.Require().NoError(err)

	handler := queries.NewListServiceOrdersQueryHandler(suite.db, suite.evaluator)
	response, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(2), response.Total)
}

func (suite *QueryHandlersTestSuite) TestListServiceOrders_AdminSeesEverything() {
	query, err := queries.NewListServiceOrdersQuery(
		suite.admin,
		queries.ListServiceOrdersFilter{},
		queries.NewPage(1, 10),
	)
	suite.Require().NoError(err)

	handler := queries.NewListServiceOrdersQueryHandler(suite.db, suite.evaluator)
	response, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(2), response.Total)
}

func (suite *QueryHandlersTestSuite) TestListReviews_ResponsibleSeesReviewsOnTheirServices() {
	query, err := queries.NewListReviewsQuery(
		suite.owner,
		queries.ListReviewsFilter{},
		queries.NewPage(1, 10),
	)
	suite.Require().NoError(err)

	handler := queries.NewListReviewsQueryHandler(suite.db, suite.evaluator)
	response, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(1), response.Total)
	suite.Require().Len(response.Reviews, 1)

	review := response.Reviews[0]
	suite.Equal(suite.reviewByBuyer.String(), review.ID.String())
	suite.Equal(suite.buyer.ID().String(), review.ReviewerID.String())
	suite.Equal("Pedro Alves", review.ReviewerName)
	suite.Equal("great service", review.Content)
	suite.Equal(5, review.Rating)
	suite.Equal([]string{"fast", "thorough"}, review.Positive)
	suite.Empty(review.Negative)
}

func (suite *QueryHandlersTestSuite) TestListReviews_EmptyForRequesterWithoutServices() {
	query, err := queries.NewListReviewsQuery(
		suite.stranger,
		queries.ListReviewsFilter{},
		queries.NewPage(1, 10),
	)
	suite.Require().NoError(err)

	handler := queries.NewListReviewsQueryHandler(suite.db, suite.evaluator)
	response, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(0), response.Total)
	suite.Empty(response.Reviews)
}

func (suite *QueryHandlersTestSuite) TestListReviews_AdminSeesAllReviews() {
	query, err := queries.NewListReviewsQuery(
		suite.admin,
		queries.ListReviewsFilter{},
		queries.NewPage(1, 10),
	)
	suite.Require().NoError(err)

	handler := queries.NewListReviewsQueryHandler(suite.db, suite.evaluator)
	response, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(1), response.Total)
}

func (suite *QueryHandlersTestSuite) TestListReviews_FiltersByServiceOrder() {
	query, err := queries.NewListReviewsQuery(
		suite.owner,
		queries.ListReviewsFilter{ServiceOrderID: &suite.serviceOrderByStranger},
		queries.NewPage(1, 10),
	)
	suite.Require().NoError(err)

	handler := queries.NewListReviewsQueryHandler(suite.db, suite.evaluator)
	response, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(0), response.Total)
	suite.Empty(response.Reviews)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
