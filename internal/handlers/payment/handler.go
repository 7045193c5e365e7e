package payment

import (
	"net/http"

	"phoenix/infras/otel"
	bookingModel "phoenix/internal/domains/booking/model"
	bookingService "phoenix/internal/domains/booking/service"
	"phoenix/internal/domains/payment/model"
	"phoenix/internal/domains/payment/model/dto"
	"phoenix/internal/domains/payment/service"
	"phoenix/internal/handlers/pages"
	"phoenix/internal/state"
	"phoenix/shared/constant"
	gDto "phoenix/shared/dto"
	"phoenix/shared/validator"
	"phoenix/transport/http/middleware"
	"phoenix/transport/http/render"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service  service.Payment
	bookings bookingService.Booking
	kit      *pages.Kit
	guard    *middleware.Guard
	otel     otel.Otel
}

func New(service service.Payment, bookings bookingService.Booking, kit *pages.Kit, guard *middleware.Guard, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		bookings: bookings,
		kit:      kit,
		guard:    guard,
		otel:     otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(handler.guard.RequirePage(constant.RoleCustomer))
		r.Get("/customer/payments/new", handler.NewPaymentPage)
		r.Post("/customer/payments", handler.Create)
	})

	r.Group(func(r chi.Router) {
		r.Use(handler.guard.RequirePage(constant.RoleAdmin))
		r.Get("/admin/payments", handler.AdminListPage)
	})
}

type newPaymentData struct {
	Booking bookingModel.Booking
	Methods []string
}

func (handler *Handler) NewPaymentPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".NewPaymentPage")
	defer scope.End()

	bookingID := r.URL.Query().Get("booking")
	if bookingID == "" {
		http.Redirect(w, r, constant.RouteMyBookings, http.StatusFound)

		return
	}

	booking, err := handler.bookings.Get(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteMyBookings)

		return
	}

	if booking.Status != bookingModel.StatusPending {
		handler.kit.FlashAndRedirect(w, r, state.NotificationInfo,
			"This booking does not need a payment.", "/bookings/"+booking.ID)

		return
	}

	handler.kit.Render(w, r, http.StatusOK, "payment_new", "Payment", newPaymentData{
		Booking: booking,
		Methods: constant.PaymentMethods,
	})
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Create")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.kit.FlashAndRedirect(w, r, state.NotificationError, "Could not read the form.", constant.RouteMyBookings)

		return
	}

	bookingID := r.PostFormValue("booking")
	backTo := "/customer/payments/new?booking=" + bookingID

	var (
		payment model.Payment
		err     error
	)

	// M-Pesa goes through the STK push endpoint, everything else through
	// the plain payment one.
	if r.PostFormValue("payment_method") == "mpesa" {
		req := dto.MpesaPaymentRequest{}
		if err = validator.ValidateForm(r.PostForm, &req); err != nil {
			scope.TraceError(err)

			handler.kit.FlashAndRedirect(w, r, state.NotificationError, err.Error(), backTo)

			return
		}

		payment, err = handler.service.Mpesa(ctx, req)
	} else {
		req := dto.CreatePaymentRequest{}
		if err = validator.ValidateForm(r.PostForm, &req); err != nil {
			scope.TraceError(err)

			handler.kit.FlashAndRedirect(w, r, state.NotificationError, err.Error(), backTo)

			return
		}

		payment, err = handler.service.Create(ctx, req)
	}

	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, backTo)

		return
	}

	scope.AddEvent("payment accepted")

	message := "Payment received. Your booking is confirmed."
	if payment.Status == model.StatusPending {
		message = "Payment started. Check your phone to approve it."
	}

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess, message, "/bookings/"+bookingID)
}

type listData struct {
	Payments   []model.Payment
	Pagination render.Pagination
}

func (handler *Handler) AdminListPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminListPage")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.List(ctx, params)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteAdminHome)

		return
	}

	handler.kit.Render(w, r, http.StatusOK, "admin_payments", "Payments", listData{
		Payments:   res.Payments,
		Pagination: render.NewPagination(params.Page, res.TotalPage, "/admin/payments", r.URL.Query()),
	})
}
