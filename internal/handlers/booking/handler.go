package booking

import (
	"net/http"

	"phoenix/infras/otel"
	"phoenix/internal/domains/booking/model"
	"phoenix/internal/domains/booking/model/dto"
	"phoenix/internal/domains/booking/service"
	hotelModel "phoenix/internal/domains/hotel/model"
	hotelService "phoenix/internal/domains/hotel/service"
	paymentModel "phoenix/internal/domains/payment/model"
	paymentService "phoenix/internal/domains/payment/service"
	"phoenix/internal/handlers/pages"
	"phoenix/internal/state"
	"phoenix/shared/constant"
	gDto "phoenix/shared/dto"
	"phoenix/shared/validator"
	"phoenix/transport/http/middleware"
	"phoenix/transport/http/render"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var bookingStatuses = []string{
	model.StatusPending,
	model.StatusConfirmed,
	model.StatusCheckedIn,
	model.StatusCheckedOut,
	model.StatusCancelled,
}

type Handler struct {
	service  service.Booking
	hotels   hotelService.Hotel
	payments paymentService.Payment
	kit      *pages.Kit
	guard    *middleware.Guard
	otel     otel.Otel
}

func New(service service.Booking, hotels hotelService.Hotel, payments paymentService.Payment, kit *pages.Kit, guard *middleware.Guard, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		hotels:   hotels,
		payments: payments,
		kit:      kit,
		guard:    guard,
		otel:     otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(handler.guard.RequirePage(constant.RoleCustomer))
		r.Get("/customer", handler.CustomerDashboard)
		r.Get("/customer/bookings", handler.MyBookingsPage)
		r.Get("/customer/bookings/new", handler.NewBookingPage)
		r.Post("/customer/bookings", handler.Create)
		r.Post("/customer/bookings/{id}/cancel", handler.CustomerCancel)
	})

	r.Group(func(r chi.Router) {
		r.Use(handler.guard.RequirePage())
		r.Get("/bookings/{id}", handler.DetailPage)
	})

	r.Group(func(r chi.Router) {
		r.Use(handler.guard.RequirePage(constant.RoleStaff, constant.RoleAdmin))
		r.Get("/staff", handler.StaffDashboard)
		r.Get("/staff/bookings", handler.StaffBookingsPage)
		r.Post("/staff/bookings/{id}/confirm", handler.Confirm)
		r.Post("/staff/bookings/{id}/cancel", handler.StaffCancel)
	})

	r.Group(func(r chi.Router) {
		r.Use(handler.guard.RequirePage(constant.RoleAdmin))
		r.Get("/admin/bookings", handler.AdminBookingsPage)
	})
}

type customerDashboardData struct {
	Bookings   []model.Booking
	Upcoming   int
	Completed  int
	TotalSpent float64
}

func (handler *Handler) CustomerDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CustomerDashboard")
	defer scope.End()

	res, err := handler.service.My(ctx, gDto.QueryParams{Page: 1, Limit: 5})
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteHome)

		return
	}

	handler.kit.Apply(ctx, state.BookingsLoaded{Bookings: res.Bookings})

	summary := model.Summarize(res.Bookings)

	handler.kit.Render(w, r, http.StatusOK, "customer_dashboard", "My dashboard", customerDashboardData{
		Bookings:   res.Bookings,
		Upcoming:   summary.Pending + summary.Confirmed,
		Completed:  summary.CheckedOut,
		TotalSpent: summary.Revenue,
	})
}

type bookingsData struct {
	Bookings   []model.Booking
	Status     string
	Statuses   []string
	Pagination render.Pagination
}

func (handler *Handler) MyBookingsPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MyBookingsPage")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.My(ctx, params)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteCustomerHome)

		return
	}

	handler.kit.Apply(ctx, state.BookingsLoaded{Bookings: res.Bookings})

	// The backend's my-bookings endpoint has no status param; narrowing an
	// already-loaded list is a pure client-side filter.
	status := r.URL.Query().Get("status")

	handler.kit.Render(w, r, http.StatusOK, "customer_bookings", "My bookings", bookingsData{
		Bookings:   model.FilterByStatus(res.Bookings, status),
		Status:     status,
		Statuses:   bookingStatuses,
		Pagination: render.NewPagination(params.Page, res.TotalPage, constant.RouteMyBookings, r.URL.Query()),
	})
}

type newBookingData struct {
	Room     hotelModel.Room
	CheckIn  string
	CheckOut string
	Guests   int
}

func (handler *Handler) NewBookingPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".NewBookingPage")
	defer scope.End()

	roomID := r.URL.Query().Get("room")
	if roomID == "" {
		http.Redirect(w, r, constant.RouteHotels, http.StatusFound)

		return
	}

	room, err := handler.hotels.Room(ctx, roomID)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteHotels)

		return
	}

	data := newBookingData{Room: room, Guests: 2}
	data.CheckIn = r.URL.Query().Get("check_in")
	data.CheckOut = r.URL.Query().Get("check_out")

	handler.kit.Render(w, r, http.StatusOK, "booking_new", "Book a room", data)
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Create")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.kit.FlashAndRedirect(w, r, state.NotificationError, "Could not read the form.", constant.RouteHotels)

		return
	}

	req := dto.CreateBookingRequest{}
	if err := validator.ValidateForm(r.PostForm, &req); err != nil {
		scope.TraceError(err)

		handler.kit.FlashAndRedirect(w, r, state.NotificationError, err.Error(),
			"/customer/bookings/new?room="+req.Room+"&hotel="+req.Hotel)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, "/customer/bookings/new?room="+req.Room+"&hotel="+req.Hotel)

		return
	}

	handler.kit.Apply(ctx, state.BookingAdded{Booking: booking})

	scope.AddEvent("booking created")

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess,
		"Booking created. Complete the payment to secure it.", "/bookings/"+booking.ID)
}

type detailData struct {
	Booking  model.Booking
	Payments []paymentModel.Payment
}

func (handler *Handler) DetailPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DetailPage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteHome)

		return
	}

	data := detailData{Booking: booking}

	payments, err := handler.payments.ForBooking(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to load payments for booking")
	} else {
		data.Payments = payments
	}

	handler.kit.Render(w, r, http.StatusOK, "booking_detail", "Booking at "+booking.HotelName, data)
}

func (handler *Handler) CustomerCancel(w http.ResponseWriter, r *http.Request) {
	handler.cancel(w, r, constant.RouteMyBookings)
}

func (handler *Handler) StaffCancel(w http.ResponseWriter, r *http.Request) {
	handler.cancel(w, r, constant.RouteStaffBookings)
}

// cancel removes the booking optimistically from the session cache only
// after the backend accepted the cancellation.
func (handler *Handler) cancel(w http.ResponseWriter, r *http.Request, backTo string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, backTo)

		return
	}

	handler.kit.Apply(ctx, state.BookingRemoved{ID: id})

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess, "Booking cancelled.", backTo)
}

type staffDashboardData struct {
	Summary  model.DeskSummary
	Bookings []model.Booking
}

func (handler *Handler) StaffDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StaffDashboard")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteHome)

		return
	}

	recent, err := handler.service.List(ctx, gDto.QueryParams{Page: 1, Limit: 10}, "")
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load recent bookings")
	}

	handler.kit.Render(w, r, http.StatusOK, "staff_dashboard", "Front desk", staffDashboardData{
		Summary:  summary,
		Bookings: recent.Bookings,
	})
}

func (handler *Handler) StaffBookingsPage(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, "staff_bookings", constant.RouteStaffBookings)
}

func (handler *Handler) AdminBookingsPage(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, "admin_bookings", "/admin/bookings")
}

func (handler *Handler) list(w http.ResponseWriter, r *http.Request, template, base string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListBookings")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	status := r.URL.Query().Get("status")

	res, err := handler.service.List(ctx, params, status)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteHome)

		return
	}

	handler.kit.Render(w, r, http.StatusOK, template, "Bookings", bookingsData{
		Bookings:   res.Bookings,
		Status:     status,
		Statuses:   bookingStatuses,
		Pagination: render.NewPagination(params.Page, res.TotalPage, base, r.URL.Query()),
	})
}

func (handler *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Confirm")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Confirm(ctx, id)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteStaffBookings)

		return
	}

	handler.kit.Apply(ctx, state.BookingUpdated{Booking: booking})

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess,
		"Booking for "+booking.UserEmail+" confirmed.", constant.RouteStaffBookings)
}
