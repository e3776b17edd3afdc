package meal

import (
	"net/http"

	"innkeep/infras/otel"
	"innkeep/internal/domains/meal/model"
	"innkeep/internal/domains/meal/model/dto"
	"innkeep/internal/domains/meal/service"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/validator"
	"innkeep/transport/http/middleware"
	"innkeep/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Meal
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Meal, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/meals", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMeals)
		routerGroup.Get("/{id}", handler.GetMealByID)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.middleware.Auth)
			adminGroup.Use(handler.middleware.RequireRole(constant.RoleAdmin))

			adminGroup.Post("/", handler.CreateMeal)
			adminGroup.Patch("/{id}", handler.UpdateMeal)
			adminGroup.Delete("/{id}", handler.DeleteMeal)
		})
	})
}

// CreateMeal handles the creation of a new meal plan.
// @Summary Create a new meal plan
// @Description Create a new meal plan with the provided details.
// @Tags Meal
// @Accept json
// @Produce json
// @Param request body dto.CreateMealRequest true "Create Meal Request"
// @Success 201 {object} response.Message "Meal created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meals [post]
// @Security BearerAuth
func (handler *Handler) CreateMeal(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMeal")
	defer scope.End()

	req := dto.CreateMealRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create meal")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Meal created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Meal created successfully")
}

// GetMeals retrieves all meal plans based on query parameters.
// @Summary Get all meal plans
// @Description Retrieve all meal plans with optional filtering and pagination.
// @Tags Meal
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} dto.GetMealsResponse "List of meal plans"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meals [get]
func (handler *Handler) GetMeals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMeals")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	meals, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get meals")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meals retrieved successfully")

	response.WithJSON(w, http.StatusOK, meals)
}

// GetMealByID retrieves a meal plan by its ID.
// @Summary Get a meal plan by ID
// @Description Retrieve a meal plan by its unique identifier.
// @Tags Meal
// @Accept json
// @Produce json
// @Param id path string true "Meal ID"
// @Success 200 {object} dto.MealResponse "Meal details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meals/{id} [get]
func (handler *Handler) GetMealByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMealByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	meal, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get meal by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meal retrieved successfully")

	response.WithJSON(w, http.StatusOK, meal)
}

// UpdateMeal updates an existing meal plan by its ID.
// @Summary Update a meal plan by ID
// @Description Update the details of an existing meal plan.
// @Tags Meal
// @Accept json
// @Produce json
// @Param id path string true "Meal ID"
// @Param request body dto.UpdateMealRequest true "Update Meal Request"
// @Success 200 {object} response.Message "Meal updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meals/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMeal")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMealRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update meal")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Meal updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Meal updated successfully")
}

// DeleteMeal deletes a meal plan by its ID.
// @Summary Delete a meal plan by ID
// @Description Delete a meal plan using its unique identifier.
// @Tags Meal
// @Accept json
// @Produce json
// @Param id path string true "Meal ID"
// @Success 200 {object} response.Message "Meal deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meals/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMeal")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete meal")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Meal deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Meal deleted successfully")
}
