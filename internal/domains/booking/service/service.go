package service

import (
	"context"
	"fmt"
	"time"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/model/dto"
	"innkeep/internal/domains/booking/pricing"
	"innkeep/internal/domains/booking/repository"
	"innkeep/internal/domains/booking/roster"
	"innkeep/internal/domains/booking/rules"
	guestModel "innkeep/internal/domains/guest/model"
	guestRepo "innkeep/internal/domains/guest/repository"
	mealModel "innkeep/internal/domains/meal/model"
	mealRepo "innkeep/internal/domains/meal/repository"
	paymentModel "innkeep/internal/domains/payment/model"
	paymentRepo "innkeep/internal/domains/payment/repository"
	"innkeep/internal/domains/payment/reconcile"
	roomModel "innkeep/internal/domains/room/model"
	roomRepo "innkeep/internal/domains/room/repository"
	"innkeep/internal/events"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetMyBookings(ctx context.Context) (dto.GetMyBookingsResponse, error)
	Receipt(ctx context.Context, id string) (dto.ReceiptResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Booking
	roomRepo    roomRepo.Room
	guestRepo   guestRepo.Guest
	mealRepo    mealRepo.Meal
	paymentRepo paymentRepo.Payment
	calculator  *pricing.Calculator
	publisher   events.Publisher
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	guestRepo guestRepo.Guest,
	mealRepo mealRepo.Meal,
	paymentRepo paymentRepo.Payment,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	vatRate, err := decimal.NewFromString(cfg.Hotel.VATRate)
	if err != nil {
		log.Warn().Str("rate", cfg.Hotel.VATRate).Msg("invalid VAT rate configured, using default")

		vatRate = pricing.DefaultVATRate
	}

	return &serviceImpl{
		repo:        repo,
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
		mealRepo:    mealRepo,
		paymentRepo: paymentRepo,
		calculator:  pricing.NewCalculator(vatRate),
		publisher:   publisher,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	startDate, endDate, err := parseStayDates(req.StartDate, req.EndDate)
	if err != nil {
		return res, err
	}

	room, err := s.getRoom(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	mealPrices, err := s.getMealPrices(ctx, req.MealIDs)
	if err != nil {
		return res, err
	}

	nights := int(endDate.Sub(startDate).Hours() / 24)
	res.Nights = nights
	res.Quote = s.calculator.Quote(room.PricePerNight, mealPrices, nights, req.NumRooms)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	startDate, endDate, err := parseStayDates(req.StartDate, req.EndDate)
	if err != nil {
		return res, err
	}

	room, err := s.getRoom(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	if !room.IsAvailable {
		return res, failure.BadRequestFromString("room is not open for booking") // nolint:wrapcheck
	}

	// Capacity scales with the number of rooms booked.
	if err = rules.ValidateCapacity(
		room.CapacityAdults*req.NumRooms,
		room.CapacityChildren*req.NumRooms,
		req.NumAdults,
		req.NumChildren,
	); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	mealPrices, err := s.getMealPrices(ctx, req.MealIDs)
	if err != nil {
		return res, err
	}

	overlapFilter := overlapFilter(req.RoomID, startDate, endDate, constant.Empty)

	conflict, err := s.repo.Exist(ctx, overlapFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking conflicts")

		return res, fmt.Errorf("failed to check booking conflicts: %w", err)
	}

	if conflict {
		return res, failure.ConflictFromError(&rules.RoomUnavailableError{ // nolint:wrapcheck
			RoomID:    req.RoomID,
			StartDate: startDate,
			EndDate:   endDate,
		})
	}

	nights := int(endDate.Sub(startDate).Hours() / 24)
	quote := s.calculator.Quote(room.PricePerNight, mealPrices, nights, req.NumRooms)

	booking := req.ToModel(userID, startDate, endDate, quote.GrandTotal)

	primary, err := s.primaryGuest(ctx, userID, req.IncludeSelf)
	if err != nil {
		return res, err
	}

	adults := make([]roster.AdultGuest, len(req.Adults))
	for i, adult := range req.Adults {
		adults[i] = adult.ToRosterGuest()
	}

	children := make([]roster.ChildGuest, len(req.Children))
	for i, child := range req.Children {
		children[i] = child.ToRosterGuest()
	}

	guestRoster, err := roster.Build(booking.ID, userID, req.NumAdults, req.NumChildren, primary, adults, children)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.createInTx(ctx, booking, guestRoster, req.MealIDs, overlapFilter, userID); err != nil {
		return res, err
	}

	s.publisher.BookingCreated(ctx, events.BookingCreated{
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		UserID:     booking.UserID,
		StartDate:  booking.StartDate.Format(constant.DateOnlyFormat),
		EndDate:    booking.EndDate.Format(constant.DateOnlyFormat),
		TotalPrice: booking.TotalPrice,
		CreatedAt:  booking.CreatedAt,
	})

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	res.Booking.FromModel(booking)
	res.Quote = quote

	return res, nil
}

// createInTx persists the booking, its roster, and its meal preferences in
// one serializable transaction, re-verifying availability against the
// transaction snapshot first.
func (s *serviceImpl) createInTx(ctx context.Context, booking model.Booking, guestRoster roster.Roster, mealIDs []string, overlapFilter gDto.FilterGroup, userID string) (err error) {
	tx, err := s.repo.BeginSerializableTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin booking transaction")

		return fmt.Errorf("failed to begin booking transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	conflict, err := s.repo.ExistTx(ctx, tx, overlapFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to re-check booking conflicts")

		return fmt.Errorf("failed to re-check booking conflicts: %w", err)
	}

	if conflict {
		return failure.ConflictFromError(&rules.RoomUnavailableError{ // nolint:wrapcheck
			RoomID:    booking.RoomID,
			StartDate: booking.StartDate,
			EndDate:   booking.EndDate,
		})
	}

	if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return fmt.Errorf("failed to create booking: %w", err)
	}

	for _, guest := range guestRoster.NewGuests {
		if err = s.guestRepo.InsertTx(ctx, tx, guest); err != nil {
			log.Error().Err(err).Msg("failed to create roster guest")

			return fmt.Errorf("failed to create roster guest: %w", err)
		}
	}

	links := make([]model.BookingGuest, 0, len(guestRoster.Members))
	for _, member := range guestRoster.Members {
		links = append(links, model.BookingGuest{
			ID:        uuid.NewString(),
			BookingID: booking.ID,
			GuestID:   member.GuestID,
			IsChild:   member.IsChild,
			Metadata:  stampMetadata(userID),
		})
	}

	if len(links) > 0 {
		if err = s.repo.InsertGuestLinksTx(ctx, tx, links); err != nil {
			log.Error().Err(err).Msg("failed to link roster guests")

			return fmt.Errorf("failed to link roster guests: %w", err)
		}
	}

	if len(mealIDs) > 0 {
		prefs := make([]model.MealPreference, 0, len(mealIDs))
		for _, mealID := range mealIDs {
			prefs = append(prefs, model.MealPreference{
				ID:        uuid.NewString(),
				BookingID: booking.ID,
				MealID:    mealID,
				Selected:  true,
				Metadata:  stampMetadata(userID),
			})
		}

		if err = s.repo.InsertMealPrefsTx(ctx, tx, prefs); err != nil {
			log.Error().Err(err).Msg("failed to save meal preferences")

			return fmt.Errorf("failed to save meal preferences: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit booking")

		return fmt.Errorf("failed to commit booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetMyBookings(ctx context.Context) (res dto.GetMyBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMyBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldStartDate, SortDir: gDto.SortDirDesc}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get user bookings")

		return res, fmt.Errorf("failed to get user bookings: %w", err)
	}

	res.Bookings = make([]dto.MyBookingResponse, len(bookings))

	for i, booking := range bookings {
		payments, err := s.bookingPayments(ctx, booking.ID)
		if err != nil {
			return res, err
		}

		res.Bookings[i].Booking.FromModel(booking)
		res.Bookings[i].Payment = reconcile.Reconcile(booking.TotalPrice, payments, reconcile.PolicyAll)
	}

	return res, nil
}

// Receipt is only issued once every completed payment covers the booking in
// full.
func (s *serviceImpl) Receipt(ctx context.Context, id string) (res dto.ReceiptResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Receipt")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	payments, err := s.bookingPayments(ctx, booking.ID)
	if err != nil {
		return res, err
	}

	summary := reconcile.Reconcile(booking.TotalPrice, payments, reconcile.PolicyCompletedOnly)
	if summary.Status != reconcile.StatusPaid {
		return res, failure.BadRequestFromString("booking is not fully paid") // nolint:wrapcheck
	}

	room, err := s.getRoom(ctx, booking.RoomID)
	if err != nil {
		return res, err
	}

	prefs, err := s.repo.GetMealPrefs(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get meal preferences")

		return res, fmt.Errorf("failed to get meal preferences: %w", err)
	}

	mealIDs := make([]string, len(prefs))
	for i, pref := range prefs {
		mealIDs[i] = pref.MealID
	}

	meals, err := s.getMeals(ctx, mealIDs)
	if err != nil {
		return res, err
	}

	nights := booking.Nights()
	multiplier := decimal.NewFromInt(int64(nights)).Mul(decimal.NewFromInt(int64(booking.NumRooms)))

	mealPrices := make([]decimal.Decimal, len(meals))

	res.Lines = append(res.Lines, dto.ReceiptLine{
		Description: fmt.Sprintf("%s, %d night(s) x %d room(s)", room.RoomType, nights, booking.NumRooms),
		Amount:      room.PricePerNight.Mul(multiplier).Round(2),
	})

	for i, meal := range meals {
		mealPrices[i] = meal.Price

		res.Lines = append(res.Lines, dto.ReceiptLine{
			Description: fmt.Sprintf("%s, %d night(s) x %d room(s)", meal.Name, nights, booking.NumRooms),
			Amount:      meal.Price.Mul(multiplier).Round(2),
		})
	}

	quote := s.calculator.Quote(room.PricePerNight, mealPrices, nights, booking.NumRooms)

	res.BookingID = booking.ID
	res.IssuedAt = timezone.Now().Format(constant.DateFormat)
	res.VAT = quote.VAT
	res.GrandTotal = quote.GrandTotal
	res.TotalPaid = summary.TotalPaid

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	roomID := booking.RoomID
	if req.RoomID != constant.Empty {
		roomID = req.RoomID
	}

	startDate := booking.StartDate
	endDate := booking.EndDate

	if req.StartDate != constant.Empty {
		if startDate, err = timezone.ParseDate(req.StartDate); err != nil {
			return failure.BadRequestFromString("start_date must be a valid date") // nolint:wrapcheck
		}
	}

	if req.EndDate != constant.Empty {
		if endDate, err = timezone.ParseDate(req.EndDate); err != nil {
			return failure.BadRequestFromString("end_date must be a valid date") // nolint:wrapcheck
		}
	}

	numAdults := booking.NumAdults
	if req.NumAdults != nil {
		numAdults = *req.NumAdults
	}

	numChildren := booking.NumChildren
	if req.NumChildren != nil {
		numChildren = *req.NumChildren
	}

	numRooms := booking.NumRooms
	if req.NumRooms != nil {
		numRooms = *req.NumRooms
	}

	if err = rules.ValidateDateRange(startDate, endDate); err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	room, err := s.getRoom(ctx, roomID)
	if err != nil {
		return err
	}

	if err = rules.ValidateCapacity(
		room.CapacityAdults*numRooms,
		room.CapacityChildren*numRooms,
		numAdults,
		numChildren,
	); err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	conflict, err := s.repo.Exist(ctx, overlapFilter(roomID, startDate, endDate, booking.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking conflicts")

		return fmt.Errorf("failed to check booking conflicts: %w", err)
	}

	if conflict {
		return failure.ConflictFromError(&rules.RoomUnavailableError{ // nolint:wrapcheck
			RoomID:    roomID,
			StartDate: startDate,
			EndDate:   endDate,
		})
	}

	updatedFields := map[string]any{
		model.FieldRoomID:        roomID,
		model.FieldStartDate:     startDate,
		model.FieldEndDate:       endDate,
		model.FieldNumAdults:     numAdults,
		model.FieldNumChildren:   numChildren,
		model.FieldNumRooms:      numRooms,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if req.Status != constant.Empty {
		updatedFields[model.FieldStatus] = req.Status
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) getRoom(ctx context.Context, id string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(id, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) getMeals(ctx context.Context, mealIDs []string) ([]mealModel.Meal, error) {
	if len(mealIDs) == 0 {
		return nil, nil
	}

	meals, err := s.mealRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Table:    mealModel.TableName,
				Field:    mealModel.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    mealIDs,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get meals")

		return nil, fmt.Errorf("failed to get meals: %w", err)
	}

	if len(meals) != len(mealIDs) {
		return nil, failure.BadRequestFromString("one or more meals do not exist") // nolint:wrapcheck
	}

	return meals, nil
}

func (s *serviceImpl) getMealPrices(ctx context.Context, mealIDs []string) ([]decimal.Decimal, error) {
	meals, err := s.getMeals(ctx, mealIDs)
	if err != nil {
		return nil, err
	}

	prices := make([]decimal.Decimal, len(meals))
	for i, meal := range meals {
		prices[i] = meal.Price
	}

	return prices, nil
}

func (s *serviceImpl) primaryGuest(ctx context.Context, userID string, includeSelf bool) (*guestModel.Guest, error) {
	if !includeSelf {
		return nil, nil
	}

	guest, err := s.guestRepo.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Table:    guestModel.TableName,
				Field:    guestModel.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest profile")

		return nil, fmt.Errorf("failed to get guest profile: %w", err)
	}

	if guest.ID == constant.Empty {
		return nil, failure.BadRequestFromString("no guest profile found for this account") // nolint:wrapcheck
	}

	return &guest, nil
}

func (s *serviceImpl) bookingPayments(ctx context.Context, bookingID string) ([]paymentModel.Payment, error) {
	payments, err := s.paymentRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Table:    paymentModel.TableName,
				Field:    paymentModel.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking payments")

		return nil, fmt.Errorf("failed to get booking payments: %w", err)
	}

	return payments, nil
}

// overlapFilter matches bookings on the room whose half-open date range
// intersects [startDate, endDate). Bookings are counted regardless of
// status; a cancelled stay still blocks the dates until it is deleted.
func overlapFilter(roomID string, startDate, endDate time.Time, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Table:    model.TableName,
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
		},
		gDto.Filter{
			Table:    model.TableName,
			Field:    model.FieldStartDate,
			ArgName:  "overlap_end",
			Operator: gDto.FilterOperatorLess,
			Value:    endDate,
		},
		gDto.Filter{
			Table:    model.TableName,
			Field:    model.FieldEndDate,
			ArgName:  "overlap_start",
			Operator: gDto.FilterOperatorGreater,
			Value:    startDate,
		},
	}

	if excludeID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Table:    model.TableName,
			Field:    model.FieldID,
			ArgName:  "exclude_id",
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeID,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

func parseStayDates(start, end string) (time.Time, time.Time, error) {
	startDate, err := timezone.ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("start_date must be a valid date") // nolint:wrapcheck
	}

	endDate, err := timezone.ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("end_date must be a valid date") // nolint:wrapcheck
	}

	if err := rules.ValidateDateRange(startDate, endDate); err != nil {
		return time.Time{}, time.Time{}, failure.BadRequest(err) // nolint:wrapcheck
	}

	return startDate, endDate, nil
}

func stampMetadata(user string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}
}
