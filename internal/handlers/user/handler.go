package user

import (
	"net/http"

	"phoenix/config"
	"phoenix/infras/otel"
	authDto "phoenix/internal/domains/auth/model/dto"
	authService "phoenix/internal/domains/auth/service"
	"phoenix/internal/domains/user/model"
	"phoenix/internal/domains/user/model/dto"
	"phoenix/internal/domains/user/service"
	"phoenix/internal/handlers/pages"
	"phoenix/internal/state"
	"phoenix/shared/constant"
	gDto "phoenix/shared/dto"
	"phoenix/shared/validator"
	"phoenix/transport/http/middleware"
	"phoenix/transport/http/render"

	"github.com/go-chi/chi/v5"
)

var roles = []string{constant.RoleCustomer, constant.RoleStaff, constant.RoleAdmin}

type Handler struct {
	service service.User
	auth    authService.Auth
	cfg     *config.Config
	kit     *pages.Kit
	guard   *middleware.Guard
	otel    otel.Otel
}

func New(service service.User, auth authService.Auth, cfg *config.Config, kit *pages.Kit, guard *middleware.Guard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		cfg:     cfg,
		kit:     kit,
		guard:   guard,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(handler.guard.RequirePage(constant.RoleStaff, constant.RoleAdmin))
		r.Get("/staff/users", handler.GuestListPage)
		r.Post("/staff/users/register", handler.RegisterGuest)
	})

	r.Group(func(r chi.Router) {
		r.Use(handler.guard.RequirePage(constant.RoleAdmin))
		r.Get("/admin", handler.AdminDashboard)
		r.Get("/admin/settings", handler.SettingsPage)

		r.Route("/admin/users", func(r chi.Router) {
			r.Get("/", handler.ListPage)
			r.Post("/register", handler.RegisterStaff)
			r.Post("/{id}/role", handler.ChangeRole)
			r.Post("/{id}/toggle", handler.ToggleActive)
			r.Post("/{id}/delete", handler.Delete)
		})
	})
}

type dashboardData struct {
	Stats model.DashboardStats
}

func (handler *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminDashboard")
	defer scope.End()

	stats, err := handler.service.DashboardStats(ctx)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteHome)

		return
	}

	handler.kit.Render(w, r, http.StatusOK, "admin_dashboard", "Admin", dashboardData{Stats: stats})
}

type listData struct {
	Users      []model.User
	Role       string
	Roles      []string
	Pagination render.Pagination
}

func (handler *Handler) ListPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListPage")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	role := r.URL.Query().Get("role")

	res, err := handler.service.List(ctx, params, role)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteAdminHome)

		return
	}

	handler.kit.Render(w, r, http.StatusOK, "admin_users", "Users", listData{
		Users:      res.Users,
		Role:       role,
		Roles:      roles,
		Pagination: render.NewPagination(params.Page, res.TotalPage, "/admin/users", r.URL.Query()),
	})
}

type guestListData struct {
	Users      []model.User
	Search     string
	Pagination render.Pagination
}

// GuestListPage is the front-desk view of the guest register: customer
// accounts only, no role or activation controls.
func (handler *Handler) GuestListPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GuestListPage")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	search := r.URL.Query().Get("q")

	res, err := handler.service.List(ctx, params, constant.RoleCustomer)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteStaffHome)

		return
	}

	handler.kit.Render(w, r, http.StatusOK, "staff_users", "Guests", guestListData{
		Users:      model.FilterBySearch(res.Users, search),
		Search:     search,
		Pagination: render.NewPagination(params.Page, res.TotalPage, constant.RouteStaffUsers, r.URL.Query()),
	})
}

// RegisterGuest opens a customer account from the front desk; the guest
// verifies their email on their own device afterwards.
func (handler *Handler) RegisterGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterGuest")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.kit.FlashAndRedirect(w, r, state.NotificationError, "Could not read the form.", constant.RouteStaffUsers)

		return
	}

	req := authDto.RegisterRequest{}
	if err := validator.ValidateForm(r.PostForm, &req); err != nil {
		scope.TraceError(err)

		handler.kit.FlashAndRedirect(w, r, state.NotificationError, err.Error(), constant.RouteStaffUsers)

		return
	}

	res, err := handler.auth.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteStaffUsers)

		return
	}

	scope.AddEvent("guest account created")

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess,
		"Account for "+res.Email+" created. A verification code is on its way.", constant.RouteStaffUsers)
}

func (handler *Handler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangeRole")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.kit.FlashAndRedirect(w, r, state.NotificationError, "Could not read the form.", "/admin/users")

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateUserRequest{Role: r.PostFormValue("role")}

	user, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, "/admin/users")

		return
	}

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess,
		user.Email+" is now a "+user.Role+".", "/admin/users")
}

// ToggleActive flips the activation flag. The current value comes from a
// fresh read so two admins racing on the same row still converge.
func (handler *Handler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleActive")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	user, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, "/admin/users")

		return
	}

	active := !user.IsActive
	req := dto.UpdateUserRequest{IsActive: &active}

	user, err = handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, "/admin/users")

		return
	}

	message := user.Email + " deactivated."
	if user.IsActive {
		message = user.Email + " activated."
	}

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess, message, "/admin/users")
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Delete")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, "/admin/users")

		return
	}

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess, "User deleted.", "/admin/users")
}

// RegisterStaff creates privileged accounts, which the public register
// form never does.
func (handler *Handler) RegisterStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterStaff")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.kit.FlashAndRedirect(w, r, state.NotificationError, "Could not read the form.", constant.RouteAdminSettings)

		return
	}

	req := authDto.RegisterRequest{}
	if err := validator.ValidateForm(r.PostForm, &req); err != nil {
		scope.TraceError(err)

		handler.kit.FlashAndRedirect(w, r, state.NotificationError, err.Error(), constant.RouteAdminSettings)

		return
	}

	var (
		res authDto.RegisterResponse
		err error
	)

	if r.PostFormValue("role") == constant.RoleAdmin {
		res, err = handler.auth.RegisterAdmin(ctx, req)
	} else {
		res, err = handler.auth.RegisterStaff(ctx, req)
	}

	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteAdminSettings)

		return
	}

	scope.AddEvent("privileged account created")

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess,
		"Account for "+res.Email+" created.", constant.RouteAdminSettings)
}

type settingsData struct {
	Env          string
	BackendURL   string
	SessionStore string
}

func (handler *Handler) SettingsPage(w http.ResponseWriter, r *http.Request) {
	handler.kit.Render(w, r, http.StatusOK, "admin_settings", "Settings", settingsData{
		Env:          handler.cfg.Server.Env,
		BackendURL:   handler.cfg.Backend.BaseURL,
		SessionStore: handler.cfg.Session.Store,
	})
}
