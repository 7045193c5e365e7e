package review

import (
	"net/http"

	"phoenix/infras/otel"
	hotelModel "phoenix/internal/domains/hotel/model"
	hotelService "phoenix/internal/domains/hotel/service"
	"phoenix/internal/domains/review/model"
	"phoenix/internal/domains/review/model/dto"
	"phoenix/internal/domains/review/service"
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
	service service.Review
	hotels  hotelService.Hotel
	kit     *pages.Kit
	guard   *middleware.Guard
	otel    otel.Otel
}

func New(service service.Review, hotels hotelService.Hotel, kit *pages.Kit, guard *middleware.Guard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		hotels:  hotels,
		kit:     kit,
		guard:   guard,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(handler.guard.RequirePage(constant.RoleCustomer))
		r.Get("/customer/reviews/new", handler.NewReviewPage)
		r.Post("/customer/reviews", handler.Create)
	})

	r.Route("/admin/reviews", func(r chi.Router) {
		r.Use(handler.guard.RequirePage(constant.RoleAdmin))
		r.Get("/", handler.AdminListPage)
		r.Post("/{id}/approve", handler.Approve)
		r.Post("/{id}/delete", handler.Delete)
	})
}

type newReviewData struct {
	Hotel hotelModel.Hotel
}

func (handler *Handler) NewReviewPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".NewReviewPage")
	defer scope.End()

	hotelID := r.URL.Query().Get("hotel")
	if hotelID == "" {
		http.Redirect(w, r, constant.RouteHotels, http.StatusFound)

		return
	}

	hotel, err := handler.hotels.Get(ctx, hotelID)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteHotels)

		return
	}

	handler.kit.Render(w, r, http.StatusOK, "review_new", "Review "+hotel.Name, newReviewData{Hotel: hotel})
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Create")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.kit.FlashAndRedirect(w, r, state.NotificationError, "Could not read the form.", constant.RouteHotels)

		return
	}

	req := dto.CreateReviewRequest{}
	if err := validator.ValidateForm(r.PostForm, &req); err != nil {
		scope.TraceError(err)

		handler.kit.FlashAndRedirect(w, r, state.NotificationError, err.Error(),
			"/customer/reviews/new?hotel="+r.PostFormValue("hotel"))

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, "/customer/reviews/new?hotel="+req.Hotel)

		return
	}

	scope.AddEvent("review submitted")

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess,
		"Thanks! Your review will appear once it is approved.", "/hotels/"+req.Hotel)
}

type listData struct {
	Reviews    []model.Review
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

	handler.kit.Render(w, r, http.StatusOK, "admin_reviews", "Reviews", listData{
		Reviews:    res.Reviews,
		Pagination: render.NewPagination(params.Page, res.TotalPage, "/admin/reviews", r.URL.Query()),
	})
}

func (handler *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Approve")
	defer scope.End()

	review, err := handler.service.Approve(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, "/admin/reviews")

		return
	}

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess,
		"Review of "+review.HotelName+" approved.", "/admin/reviews")
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Delete")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, "/admin/reviews")

		return
	}

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess, "Review deleted.", "/admin/reviews")
}
