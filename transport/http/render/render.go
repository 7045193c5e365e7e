package render

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"phoenix/config"
	bookingModel "phoenix/internal/domains/booking/model"
	hotelModel "phoenix/internal/domains/hotel/model"
	paymentModel "phoenix/internal/domains/payment/model"
	userModel "phoenix/internal/domains/user/model"
	"phoenix/internal/state"
	"phoenix/navigation"
	"phoenix/shared/constant"

	"github.com/rs/zerolog/log"
)

//go:embed templates
var templateFS embed.FS

// Page is the envelope every template receives. Data carries the
// page-specific payload.
type Page struct {
	Title         string
	AppName       string
	User          *userModel.User
	Nav           []navigation.Item
	Notifications []state.Notification
	Data          any
}

type Renderer struct {
	cfg   *config.Config
	pages map[string]*template.Template
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"statusBadge":  bookingModel.StatusBadge,
		"paymentBadge": paymentModel.StatusBadge,
		"roomBadge":    hotelModel.RoomStatusBadge,
		"fullName":     userModel.User.FullName,
		"title": func(s string) string {
			return strings.Title(strings.ReplaceAll(s, "_", " ")) //nolint:staticcheck
		},
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i + 1
			}

			return out
		},
		"currency": func(amount float64) string {
			return fmt.Sprintf("$%.2f", amount)
		},
	}
}

// New parses every page template against the shared layout and partials.
// Parsing happens once at startup so a broken template fails the boot,
// not a request.
func New(cfg *config.Config) (*Renderer, error) {
	pageFiles, err := fs.Glob(templateFS, "templates/pages/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("globbing page templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageFiles))

	for _, pageFile := range pageFiles {
		name := strings.TrimSuffix(path.Base(pageFile), ".gohtml")

		tmpl, err := template.New("layout.gohtml").
			Funcs(funcMap()).
			ParseFS(templateFS, "templates/layout.gohtml", "templates/partials/*.gohtml", pageFile)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}

		pages[name] = tmpl
	}

	return &Renderer{cfg: cfg, pages: pages}, nil
}

// Render writes a full page. An unknown template name is a programming
// error and renders the error page instead.
func (r *Renderer) Render(w http.ResponseWriter, code int, name string, page Page) {
	tmpl, ok := r.pages[name]
	if !ok {
		log.Error().Str("template", name).Msg("unknown page template")

		r.Error(w, http.StatusInternalServerError, "Something went wrong rendering this page.")

		return
	}

	if page.AppName == "" {
		page.AppName = r.cfg.App.Name
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(code)

	if err := tmpl.ExecuteTemplate(w, "layout.gohtml", page); err != nil {
		// Headers are gone at this point; log and leave the partial body.
		log.Error().Err(err).Str("template", name).Msg("failed to execute template")
	}
}

// Error renders the standalone error page.
func (r *Renderer) Error(w http.ResponseWriter, code int, message string) {
	tmpl, ok := r.pages["error"]
	if !ok {
		http.Error(w, message, code)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(code)

	page := Page{Title: "Error", AppName: r.cfg.App.Name, Data: message}

	if err := tmpl.ExecuteTemplate(w, "layout.gohtml", page); err != nil {
		log.Error().Err(err).Msg("failed to execute error template")
	}
}
