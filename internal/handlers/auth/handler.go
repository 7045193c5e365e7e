package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"phoenix/infras/otel"
	"phoenix/internal/domains/auth/model/dto"
	"phoenix/internal/domains/auth/service"
	userModel "phoenix/internal/domains/user/model"
	"phoenix/internal/handlers/pages"
	"phoenix/internal/state"
	"phoenix/shared/constant"
	"phoenix/shared/timezone"
	"phoenix/shared/validator"
	"phoenix/transport/http/middleware"
	"phoenix/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	kit     *pages.Kit
	guard   *middleware.Guard
	otel    otel.Otel
}

func New(service service.Auth, kit *pages.Kit, guard *middleware.Guard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		kit:     kit,
		guard:   guard,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Get("/login", handler.LoginPage)
		r.Post("/login", handler.Login)
		r.Get("/register", handler.RegisterPage)
		r.Post("/register", handler.Register)
		r.Get("/verify-email", handler.VerifyEmailPage)
		r.Post("/verify-email", handler.VerifyEmail)
		r.Post("/resend-otp", handler.ResendOTP)
		r.Post("/logout", handler.Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(handler.guard.RequirePage())
		r.Get("/profile", handler.ProfilePage)
		r.Post("/profile", handler.UpdateProfile)
	})
}

// APIRouter mounts the JSON endpoints for the verification widgets.
func (handler *Handler) APIRouter(r chi.Router) {
	r.Post("/auth/resend-otp", handler.ResendOTPAPI)
}

type loginData struct {
	Email string
}

func (handler *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, snapshot, ok := handler.kit.Snapshot(r.Context()); ok && snapshot.SignedIn() {
		http.Redirect(w, r, handler.kit.HomeRoute(snapshot.Role()), http.StatusFound)

		return
	}

	handler.kit.Render(w, r, http.StatusOK, "login", "Sign in", loginData{})
}

// Login exchanges credentials for a backend token and opens a fresh
// session for the returned role.
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.kit.FlashAndRedirect(w, r, state.NotificationError, "Could not read the form.", constant.RouteLogin)

		return
	}

	req := dto.LoginRequest{}
	if err := validator.ValidateForm(r.PostForm, &req); err != nil {
		scope.TraceError(err)

		handler.kit.FlashAndRedirect(w, r, state.NotificationError, err.Error(), constant.RouteLogin)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("login rejected")

		handler.kit.FlashAndRedirect(w, r, state.NotificationError, "Invalid email or password.", constant.RouteLogin)

		return
	}

	// Privilege changed: always a brand-new session ID.
	if id, _, ok := handler.kit.Snapshot(ctx); ok {
		handler.kit.Sessions().Destroy(ctx, w, id)
	}

	snapshot := state.Apply(state.Snapshot{}, state.LoggedIn{User: res.User, Token: res.Token})
	snapshot = state.Apply(snapshot, state.NotificationPushed{
		Notification: state.Notification{Level: state.NotificationSuccess, Message: "Welcome back, " + res.User.FirstName + "!"},
	})

	if _, err := handler.kit.Sessions().Start(ctx, w, snapshot); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start session")

		handler.kit.Error(w, http.StatusInternalServerError, "Could not start your session. Please try again.")

		return
	}

	scope.AddEvent("user signed in")

	http.Redirect(w, r, handler.kit.HomeRoute(res.User.Role), http.StatusFound)
}

type registerData struct {
	Form dto.RegisterRequest
}

func (handler *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	handler.kit.Render(w, r, http.StatusOK, "register", "Create an account", registerData{})
}

func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.kit.FlashAndRedirect(w, r, state.NotificationError, "Could not read the form.", constant.RouteRegister)

		return
	}

	req := dto.RegisterRequest{}
	if err := validator.ValidateForm(r.PostForm, &req); err != nil {
		scope.TraceError(err)

		handler.kit.FlashAndRedirect(w, r, state.NotificationError, err.Error(), constant.RouteRegister)

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("registration rejected")

		handler.kit.FlashAndRedirect(w, r, state.NotificationError, err.Error(), constant.RouteRegister)

		return
	}

	handler.startVerification(ctx, w, res.Email)

	scope.AddEvent("user registered")

	http.Redirect(w, r, constant.RouteVerifyEmail, http.StatusFound)
}

// startVerification records the pending OTP flow, resend gated for the
// next minute.
func (handler *Handler) startVerification(ctx context.Context, w http.ResponseWriter, email string) {
	action := state.VerifyEmailStarted{
		Email:       email,
		ResendAfter: timezone.Now().Add(constant.ResendCooldown),
	}

	if id, snapshot, ok := handler.kit.Snapshot(ctx); ok {
		if err := handler.kit.Sessions().Update(ctx, id, state.Apply(snapshot, action)); err != nil {
			log.Error().Err(err).Msg("failed to record verification state")
		}

		return
	}

	if _, err := handler.kit.Sessions().Start(ctx, w, state.Apply(state.Snapshot{}, action)); err != nil {
		log.Error().Err(err).Msg("failed to start verification session")
	}
}

type verifyEmailData struct {
	Email       string
	ResendAfter int
}

func (handler *Handler) VerifyEmailPage(w http.ResponseWriter, r *http.Request) {
	data := verifyEmailData{Email: r.URL.Query().Get("email")}

	if _, snapshot, ok := handler.kit.Snapshot(r.Context()); ok && snapshot.VerifyEmail.Email != "" {
		data.Email = snapshot.VerifyEmail.Email

		if wait := time.Until(snapshot.VerifyEmail.ResendAfter); wait > 0 {
			data.ResendAfter = int(wait.Seconds())
		}
	}

	if data.Email == "" {
		http.Redirect(w, r, constant.RouteRegister, http.StatusFound)

		return
	}

	handler.kit.Render(w, r, http.StatusOK, "verify_email", "Verify your email", data)
}

// VerifyEmail assembles the six digit inputs into one code. Only a
// complete code reaches the backend; a rejected one sends the visitor
// back to six fresh empty fields.
func (handler *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyEmail")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.kit.FlashAndRedirect(w, r, state.NotificationError, "Could not read the form.", constant.RouteVerifyEmail)

		return
	}

	otp, complete := assembleOTP(r)
	if !complete {
		handler.kit.FlashAndRedirect(w, r, state.NotificationError,
			"Enter the complete 6-digit code.", constant.RouteVerifyEmail)

		return
	}

	req := dto.VerifyEmailRequest{Email: r.PostFormValue("email"), OTP: otp}

	if err := handler.service.VerifyEmail(ctx, req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("email verification rejected")

		handler.kit.FlashAndRedirect(w, r, state.NotificationError,
			"That code didn't match. Try again.", constant.RouteVerifyEmail)

		return
	}

	scope.AddEvent("email verified")

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess,
		"Email verified. You can sign in now.", constant.RouteLogin)
}

// assembleOTP joins digit1..digit6. complete is false unless every input
// holds exactly one character.
func assembleOTP(r *http.Request) (string, bool) {
	var sb strings.Builder

	for i := 1; i <= constant.OTPLength; i++ {
		digit := r.PostFormValue(fmt.Sprintf("digit%d", i))
		if len(digit) != 1 {
			return "", false
		}

		sb.WriteString(digit)
	}

	return sb.String(), true
}

func (handler *Handler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResendOTP")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.kit.FlashAndRedirect(w, r, state.NotificationError, "Could not read the form.", constant.RouteVerifyEmail)

		return
	}

	if err := handler.resend(ctx, w, r.PostFormValue("email")); err != nil {
		scope.TraceError(err)

		handler.kit.FlashAndRedirect(w, r, state.NotificationError, err.Error(), constant.RouteVerifyEmail)

		return
	}

	handler.kit.FlashAndRedirect(w, r, state.NotificationInfo,
		"A new code is on its way.", constant.RouteVerifyEmail)
}

// ResendOTPAPI is the JSON variant driving the countdown widget.
// @Summary Resend the verification code
// @Description Sends a fresh OTP to the pending email, throttled to once a minute.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ResendOTPRequest true "Resend Request"
// @Success 200 {object} response.Message "Code resent"
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Router /api/v1/auth/resend-otp [post]
func (handler *Handler) ResendOTPAPI(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResendOTPAPI")
	defer scope.End()

	req := dto.ResendOTPRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.resend(ctx, w, req.Email); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Code resent")
}

// resend enforces the cooldown before touching the backend.
func (handler *Handler) resend(ctx context.Context, w http.ResponseWriter, email string) error {
	if _, snapshot, ok := handler.kit.Snapshot(ctx); ok {
		if wait := time.Until(snapshot.VerifyEmail.ResendAfter); wait > 0 {
			return fmt.Errorf("wait %d seconds before requesting another code", int(wait.Seconds())+1)
		}

		if email == "" {
			email = snapshot.VerifyEmail.Email
		}
	}

	if err := handler.service.ResendOTP(ctx, dto.ResendOTPRequest{Email: email}); err != nil {
		return err
	}

	handler.startVerification(ctx, w, email)

	return nil
}

func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if id, _, ok := handler.kit.Snapshot(ctx); ok {
		handler.kit.Sessions().Destroy(ctx, w, id)
	}

	http.Redirect(w, r, constant.RouteLogin, http.StatusFound)
}

type profileData struct {
	User userModel.User
}

func (handler *Handler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProfilePage")
	defer scope.End()

	user, err := handler.service.Profile(ctx)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteHome)

		return
	}

	handler.kit.Render(w, r, http.StatusOK, "profile", "My profile", profileData{User: user})
}

func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.kit.FlashAndRedirect(w, r, state.NotificationError, "Could not read the form.", "/profile")

		return
	}

	req := dto.UpdateProfileRequest{}
	if err := validator.ValidateForm(r.PostForm, &req); err != nil {
		scope.TraceError(err)

		handler.kit.FlashAndRedirect(w, r, state.NotificationError, err.Error(), "/profile")

		return
	}

	user, err := handler.service.UpdateProfile(ctx, req)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, "/profile")

		return
	}

	// Keep the stored account record in step with the backend.
	if id, snapshot, ok := handler.kit.Snapshot(ctx); ok {
		refreshed := state.Apply(snapshot, state.LoggedIn{User: user, Token: snapshot.Token})
		if err := handler.kit.Sessions().Update(ctx, id, refreshed); err != nil {
			log.Error().Err(err).Msg("failed to refresh stored profile")
		}
	}

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess, "Profile updated.", "/profile")
}
