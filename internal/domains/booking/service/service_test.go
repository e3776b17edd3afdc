package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	bookingMocks "innkeep/internal/domains/booking/mocks"
	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/model/dto"
	"innkeep/internal/domains/booking/service"
	guestMocks "innkeep/internal/domains/guest/mocks"
	guestModel "innkeep/internal/domains/guest/model"
	mealMocks "innkeep/internal/domains/meal/mocks"
	mealModel "innkeep/internal/domains/meal/model"
	paymentMocks "innkeep/internal/domains/payment/mocks"
	paymentModel "innkeep/internal/domains/payment/model"
	"innkeep/internal/domains/payment/reconcile"
	roomMocks "innkeep/internal/domains/room/mocks"
	roomModel "innkeep/internal/domains/room/model"
	eventMocks "innkeep/internal/events/mocks"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"
)

type bookingMockSet struct {
	repo      *bookingMocks.MockBooking
	roomRepo  *roomMocks.MockRoom
	guestRepo *guestMocks.MockGuest
	mealRepo  *mealMocks.MockMeal
	payRepo   *paymentMocks.MockPayment
	publisher *eventMocks.MockPublisher
	cache     *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	set := bookingMockSet{
		repo:      bookingMocks.NewMockBooking(ctrl),
		roomRepo:  roomMocks.NewMockRoom(ctrl),
		guestRepo: guestMocks.NewMockGuest(ctrl),
		mealRepo:  mealMocks.NewMockMeal(ctrl),
		payRepo:   paymentMocks.NewMockPayment(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Hotel.VATRate = "0.18"

	svc := service.New(
		set.repo,
		set.roomRepo,
		set.guestRepo,
		set.mealRepo,
		set.payRepo,
		set.publisher,
		cfg,
		set.cache,
		mocks.NewOtel(),
	)

	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, set
}

func testRoom() roomModel.Room {
	return roomModel.Room{
		ID:               "room-id-123",
		RoomNumber:       "101",
		RoomType:         "Deluxe",
		BedType:          roomModel.BedTypeDouble,
		CapacityAdults:   2,
		CapacityChildren: 1,
		PricePerNight:    decimal.RequireFromString("100.00"),
		IsAvailable:      true,
	}
}

func testMeal() mealModel.Meal {
	return mealModel.Meal{
		ID:    "meal-id-123",
		Name:  "Breakfast",
		Price: decimal.RequireFromString("10.00"),
	}
}

func authedCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
}

func TestBookingService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	tests := []struct {
		name      string
		req       dto.QuoteRequest
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.QuoteResponse)
	}{
		{
			name: "two nights with breakfast",
			req: dto.QuoteRequest{
				RoomID:    "room-id-123",
				StartDate: "2026-09-10",
				EndDate:   "2026-09-12",
				NumRooms:  1,
				MealIDs:   []string{"meal-id-123"},
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom(), nil)

				set.mealRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]mealModel.Meal{testMeal()}, nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.QuoteResponse) {
				assert.Equal(t, 2, res.Nights)
				assert.True(t, res.RoomTotal.Equal(decimal.RequireFromString("200.00")))
				assert.True(t, res.MealTotal.Equal(decimal.RequireFromString("20.00")))
				assert.True(t, res.VAT.Equal(decimal.RequireFromString("39.60")))
				assert.True(t, res.GrandTotal.Equal(decimal.RequireFromString("259.60")))
			},
		},
		{
			name: "end date not after start date",
			req: dto.QuoteRequest{
				RoomID:    "room-id-123",
				StartDate: "2026-09-12",
				EndDate:   "2026-09-12",
				NumRooms:  1,
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "malformed start date",
			req: dto.QuoteRequest{
				RoomID:    "room-id-123",
				StartDate: "not-a-date",
				EndDate:   "2026-09-12",
				NumRooms:  1,
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "room not found",
			req: dto.QuoteRequest{
				RoomID:    "missing-room",
				StartDate: "2026-09-10",
				EndDate:   "2026-09-12",
				NumRooms:  1,
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "unknown meal rejected",
			req: dto.QuoteRequest{
				RoomID:    "room-id-123",
				StartDate: "2026-09-10",
				EndDate:   "2026-09-12",
				NumRooms:  1,
				MealIDs:   []string{"meal-id-123", "missing-meal"},
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom(), nil)

				set.mealRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]mealModel.Meal{testMeal()}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Quote(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)

				if tt.check != nil {
					tt.check(t, res)
				}
			}
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	baseReq := func() dto.CreateBookingRequest {
		return dto.CreateBookingRequest{
			RoomID:      "room-id-123",
			StartDate:   "2026-09-10",
			EndDate:     "2026-09-12",
			NumAdults:   2,
			NumChildren: 0,
			NumRooms:    1,
			IncludeSelf: true,
		}
	}

	tests := []struct {
		name      string
		req       func() dto.CreateBookingRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "room closed for booking",
			req:  baseReq,
			setupMock: func() {
				room := testRoom()
				room.IsAvailable = false

				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantCode: 400,
		},
		{
			name: "party exceeds room capacity",
			req: func() dto.CreateBookingRequest {
				req := baseReq()
				req.NumAdults = 5

				return req
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom(), nil)
			},
			wantCode: 400,
		},
		{
			name: "capacity scales with the room count",
			req: func() dto.CreateBookingRequest {
				req := baseReq()
				req.NumAdults = 4
				req.NumRooms = 2

				return req
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom(), nil)

				set.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				set.guestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{}, nil)
			},
			wantCode: 400,
		},
		{
			name: "overlapping booking on the room",
			req:  baseReq,
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom(), nil)

				set.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantCode: 409,
		},
		{
			name: "no guest profile for account",
			req:  baseReq,
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom(), nil)

				set.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				set.guestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{}, nil)
			},
			wantCode: 400,
		},
		{
			name: "child slots without child rows",
			req: func() dto.CreateBookingRequest {
				req := baseReq()
				req.NumChildren = 1
				req.Adults = []dto.AdultGuestRequest{
					{FirstName: "Bob", LastName: "Smith", Email: "bob@example.com"},
				}

				return req
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom(), nil)

				set.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				set.guestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{ID: "guest-id-123", FirstName: "Alice", LastName: "Smith"}, nil)
			},
			wantCode: 400,
		},
		{
			name: "conflict check failure",
			req:  baseReq,
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom(), nil)

				set.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Create(authedCtx(), tt.req())

			assert.Error(t, err)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestBookingService_GetMyBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	startDate, _ := timezone.ParseDate("2026-09-10")
	endDate, _ := timezone.ParseDate("2026-09-12")

	booking := model.Booking{
		ID:         "booking-id-123",
		RoomID:     "room-id-123",
		UserID:     "user-id-123",
		StartDate:  startDate,
		EndDate:    endDate,
		NumAdults:  2,
		NumRooms:   1,
		Status:     model.StatusPending,
		TotalPrice: decimal.RequireFromString("259.60"),
	}

	t.Run("pending payments count toward the balance", func(t *testing.T) {
		set.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{booking}, nil)

		set.payRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]paymentModel.Payment{
				{
					ID:        "payment-id-123",
					BookingID: "booking-id-123",
					Amount:    decimal.RequireFromString("259.60"),
					Status:    paymentModel.StatusPending,
				},
			}, nil)

		res, err := svc.GetMyBookings(authedCtx())

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, reconcile.StatusPaid, res.Bookings[0].Payment.Status)
		assert.True(t, res.Bookings[0].Payment.Balance.IsZero())
	})

	t.Run("no payments leaves the booking unpaid", func(t *testing.T) {
		set.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{booking}, nil)

		set.payRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]paymentModel.Payment{}, nil)

		res, err := svc.GetMyBookings(authedCtx())

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, reconcile.StatusUnpaid, res.Bookings[0].Payment.Status)
		assert.True(t, res.Bookings[0].Payment.Balance.Equal(booking.TotalPrice))
	})

	t.Run("repository error", func(t *testing.T) {
		set.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetMyBookings(authedCtx())

		assert.Error(t, err)
	})
}

func TestBookingService_Receipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	startDate, _ := timezone.ParseDate("2026-09-10")
	endDate, _ := timezone.ParseDate("2026-09-12")

	booking := model.Booking{
		ID:         "booking-id-123",
		RoomID:     "room-id-123",
		UserID:     "user-id-123",
		StartDate:  startDate,
		EndDate:    endDate,
		NumAdults:  2,
		NumRooms:   1,
		Status:     model.StatusConfirmed,
		TotalPrice: decimal.RequireFromString("259.60"),
	}

	t.Run("fully paid booking gets an itemized receipt", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		set.payRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]paymentModel.Payment{
				{
					ID:        "payment-id-123",
					BookingID: "booking-id-123",
					Amount:    decimal.RequireFromString("259.60"),
					Status:    paymentModel.StatusCompleted,
				},
			}, nil)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testRoom(), nil)

		set.repo.EXPECT().
			GetMealPrefs(gomock.Any(), "booking-id-123").
			Return([]model.MealPreference{
				{ID: "pref-id-123", BookingID: "booking-id-123", MealID: "meal-id-123"},
			}, nil)

		set.mealRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]mealModel.Meal{testMeal()}, nil)

		res, err := svc.Receipt(context.Background(), "booking-id-123")

		assert.NoError(t, err)
		assert.Equal(t, "booking-id-123", res.BookingID)
		assert.Len(t, res.Lines, 2)
		assert.Equal(t, "Deluxe, 2 night(s) x 1 room(s)", res.Lines[0].Description)
		assert.True(t, res.Lines[0].Amount.Equal(decimal.RequireFromString("200.00")))
		assert.Equal(t, "Breakfast, 2 night(s) x 1 room(s)", res.Lines[1].Description)
		assert.True(t, res.Lines[1].Amount.Equal(decimal.RequireFromString("20.00")))
		assert.True(t, res.VAT.Equal(decimal.RequireFromString("39.60")))
		assert.True(t, res.GrandTotal.Equal(decimal.RequireFromString("259.60")))
		assert.True(t, res.TotalPaid.Equal(decimal.RequireFromString("259.60")))
	})

	t.Run("pending payments do not qualify", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		set.payRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]paymentModel.Payment{
				{
					ID:        "payment-id-123",
					BookingID: "booking-id-123",
					Amount:    decimal.RequireFromString("259.60"),
					Status:    paymentModel.StatusPending,
				},
			}, nil)

		_, err := svc.Receipt(context.Background(), "booking-id-123")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("partial payment does not qualify", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		set.payRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]paymentModel.Payment{
				{
					ID:        "payment-id-123",
					BookingID: "booking-id-123",
					Amount:    decimal.RequireFromString("100.00"),
					Status:    paymentModel.StatusCompleted,
				},
			}, nil)

		_, err := svc.Receipt(context.Background(), "booking-id-123")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("booking not found", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Receipt(context.Background(), "missing-booking")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	startDate, _ := timezone.ParseDate("2026-09-10")
	endDate, _ := timezone.ParseDate("2026-09-12")

	booking := model.Booking{
		ID:          "booking-id-123",
		RoomID:      "room-id-123",
		UserID:      "user-id-123",
		StartDate:   startDate,
		EndDate:     endDate,
		NumAdults:   2,
		NumChildren: 0,
		NumRooms:    1,
		Status:      model.StatusPending,
	}

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "confirm booking",
			req:  dto.UpdateBookingRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom(), nil)

				set.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusConfirmed, fields[model.FieldStatus])
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "reschedule the stay",
			req:  dto.UpdateBookingRequest{StartDate: "2026-09-15", EndDate: "2026-09-17"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom(), nil)

				set.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "move the booking to another room",
			req:  dto.UpdateBookingRequest{RoomID: "room-id-456"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				room := testRoom()
				room.ID = "room-id-456"

				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				set.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, "room-id-456", fields[model.FieldRoomID])
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "occupancy beyond the room capacity",
			req:  dto.UpdateBookingRequest{NumAdults: intPtr(5)},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom(), nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "extra room lifts the capacity ceiling",
			req:  dto.UpdateBookingRequest{NumAdults: intPtr(4), NumRooms: intPtr(2)},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom(), nil)

				set.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, 4, fields[model.FieldNumAdults])
						assert.Equal(t, 2, fields[model.FieldNumRooms])
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "malformed start date",
			req:  dto.UpdateBookingRequest{StartDate: "not-a-date"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: true,
		},
		{
			name: "target room does not exist",
			req:  dto.UpdateBookingRequest{RoomID: "missing-room"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "new dates collide with another booking",
			req:  dto.UpdateBookingRequest{StartDate: "2026-09-15", EndDate: "2026-09-17"},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoom(), nil)

				set.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "booking not found",
			req:  dto.UpdateBookingRequest{Status: model.StatusCancelled},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(authedCtx(), tt.req, "booking-id-123")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func intPtr(value int) *int {
	return &value
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func() {
				set.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				set.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				set.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "booking-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
