package hotel

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"phoenix/infras/otel"
	"phoenix/internal/domains/hotel/model"
	"phoenix/internal/domains/hotel/model/dto"
	"phoenix/internal/domains/hotel/service"
	reviewModel "phoenix/internal/domains/review/model"
	reviewService "phoenix/internal/domains/review/service"
	"phoenix/internal/handlers/pages"
	"phoenix/internal/state"
	"phoenix/shared/constant"
	gDto "phoenix/shared/dto"
	"phoenix/shared/validator"
	"phoenix/transport/http/middleware"
	"phoenix/transport/http/render"
	"phoenix/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var roomStatuses = []string{
	model.RoomStatusAvailable,
	model.RoomStatusOccupied,
	model.RoomStatusMaintenance,
	model.RoomStatusCleaning,
}

type Handler struct {
	service service.Hotel
	reviews reviewService.Review
	kit     *pages.Kit
	guard   *middleware.Guard
	otel    otel.Otel
}

func New(service service.Hotel, reviews reviewService.Review, kit *pages.Kit, guard *middleware.Guard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		reviews: reviews,
		kit:     kit,
		guard:   guard,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/", handler.HomePage)
	r.Get("/hotels", handler.ListPage)
	r.Get("/hotels/{id}", handler.DetailPage)
	r.Get("/rooms/{id}", handler.RoomPage)

	r.Group(func(r chi.Router) {
		r.Use(handler.guard.RequirePage(constant.RoleStaff, constant.RoleAdmin))
		r.Get("/staff/rooms", handler.StaffRoomsPage)
		r.Post("/staff/rooms/{id}/status", handler.UpdateRoomStatus)
	})

	r.Route("/admin/hotels", func(r chi.Router) {
		r.Use(handler.guard.RequirePage(constant.RoleAdmin))
		r.Get("/", handler.AdminListPage)
		r.Get("/new", handler.AdminNewPage)
		r.Post("/", handler.Create)
		r.Get("/{id}/edit", handler.AdminEditPage)
		r.Post("/{id}", handler.Update)
		r.Post("/{id}/delete", handler.Delete)
	})
}

// APIRouter mounts the JSON availability endpoint for the search widget.
func (handler *Handler) APIRouter(r chi.Router) {
	r.Post("/availability", handler.AvailabilityAPI)
}

type homeData struct {
	Hotels []model.Hotel
}

func (handler *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HomePage")
	defer scope.End()

	params := gDto.QueryParams{Page: 1, Limit: 6}

	res, err := handler.service.List(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load featured hotels")

		// The home page still renders without the carousel.
		handler.kit.Render(w, r, http.StatusOK, "home", "", homeData{})

		return
	}

	handler.kit.Render(w, r, http.StatusOK, "home", "", homeData{Hotels: res.Hotels})
}

type listData struct {
	Hotels       []model.Hotel
	Filter       model.Filter
	MinRatingRaw string
	Amenities    []string
	Pagination   render.Pagination
}

// ListPage fetches a backend page and narrows it client-side with the
// pure filter, mirroring how the browse page filters an already-loaded
// list.
func (handler *Handler) ListPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListPage")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.List(ctx, params)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteHome)

		return
	}

	query := r.URL.Query()
	minRatingRaw := query.Get("min_rating")
	minRating, _ := strconv.ParseFloat(minRatingRaw, 64)

	filter := model.Filter{
		Search:    query.Get("search"),
		City:      query.Get("city"),
		MinRating: minRating,
		Amenity:   query.Get("amenity"),
	}

	handler.kit.Apply(ctx, state.HotelsLoaded{Hotels: res.Hotels})

	handler.kit.Render(w, r, http.StatusOK, "hotels", "Hotels", listData{
		Hotels:       model.FilterHotels(res.Hotels, filter),
		Filter:       filter,
		MinRatingRaw: minRatingRaw,
		Amenities:    constant.HotelAmenities,
		Pagination:   render.NewPagination(params.Page, res.TotalPage, "/hotels", r.URL.Query()),
	})
}

type detailData struct {
	Hotel         model.Hotel
	Rooms         []model.Room
	Reviews       []reviewModel.Review
	AverageRating float64
	CheckIn       string
	CheckOut      string
	Guests        int
}

func (handler *Handler) DetailPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DetailPage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	hotel, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteHotels)

		return
	}

	data := detailData{Hotel: hotel, Guests: 2}

	query := r.URL.Query()
	data.CheckIn = query.Get("check_in")
	data.CheckOut = query.Get("check_out")

	if guests, convErr := strconv.Atoi(query.Get("guests")); convErr == nil && guests > 0 {
		data.Guests = guests
	}

	if data.CheckIn != "" && data.CheckOut != "" {
		// An availability search replaces the full room list with the free ones.
		availability, availErr := handler.service.Availability(ctx, dto.AvailabilityRequest{
			Hotel:    id,
			CheckIn:  data.CheckIn,
			CheckOut: data.CheckOut,
			Guests:   data.Guests,
		})
		if availErr != nil {
			scope.TraceError(availErr)

			handler.kit.Flash(ctx, w, state.NotificationError, availErr.Error())
		} else {
			data.Rooms = availability.AvailableRooms
		}
	} else {
		rooms, roomsErr := handler.service.Rooms(ctx, gDto.QueryParams{Page: 1, Limit: 50}, id)
		if roomsErr != nil {
			scope.TraceError(roomsErr)
			log.Error().Err(roomsErr).Str("hotel", id).Msg("failed to load rooms")
		} else {
			data.Rooms = rooms.Rooms
		}
	}

	reviews, reviewErr := handler.reviews.ForHotel(ctx, id)
	if reviewErr != nil {
		log.Error().Err(reviewErr).Str("hotel", id).Msg("failed to load reviews")
	} else {
		data.Reviews = reviews
		data.AverageRating = reviewModel.AverageRating(reviews)
	}

	handler.kit.Render(w, r, http.StatusOK, "hotel_detail", hotel.Name, data)
}

type roomData struct {
	Room model.Room
}

func (handler *Handler) RoomPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RoomPage")
	defer scope.End()

	room, err := handler.service.Room(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteHotels)

		return
	}

	handler.kit.Render(w, r, http.StatusOK, "room_detail", "Room "+room.RoomNumber, roomData{Room: room})
}

type staffRoomsData struct {
	Rooms      []model.Room
	Hotels     []model.Hotel
	HotelID    string
	Statuses   []string
	Pagination render.Pagination
}

func (handler *Handler) StaffRoomsPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StaffRoomsPage")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	hotelID := r.URL.Query().Get("hotel")

	rooms, err := handler.service.Rooms(ctx, params, hotelID)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, constant.RouteStaffHome)

		return
	}

	hotels, err := handler.service.List(ctx, gDto.QueryParams{Page: 1, Limit: 100})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load hotels for the room filter")
	}

	handler.kit.Render(w, r, http.StatusOK, "staff_rooms", "Rooms", staffRoomsData{
		Rooms:      rooms.Rooms,
		Hotels:     hotels.Hotels,
		HotelID:    hotelID,
		Statuses:   roomStatuses,
		Pagination: render.NewPagination(params.Page, rooms.TotalPage, "/staff/rooms", r.URL.Query()),
	})
}

func (handler *Handler) UpdateRoomStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomStatus")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.kit.FlashAndRedirect(w, r, state.NotificationError, "Could not read the form.", "/staff/rooms")

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateRoomStatusRequest{Status: r.PostFormValue("status")}

	room, err := handler.service.UpdateRoomStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, "/staff/rooms")

		return
	}

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess,
		"Room "+room.RoomNumber+" is now "+room.Status+".", "/staff/rooms")
}

type adminListData struct {
	Hotels     []model.Hotel
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

	handler.kit.Apply(ctx, state.HotelsLoaded{Hotels: res.Hotels})

	handler.kit.Render(w, r, http.StatusOK, "admin_hotels", "Hotels", adminListData{
		Hotels:     res.Hotels,
		Pagination: render.NewPagination(params.Page, res.TotalPage, "/admin/hotels", r.URL.Query()),
	})
}

type hotelFormData struct {
	Form           dto.CreateHotelRequest
	Hotel          *model.Hotel
	Action         string
	AmenityOptions []string
}

func (handler *Handler) AdminNewPage(w http.ResponseWriter, r *http.Request) {
	handler.kit.Render(w, r, http.StatusOK, "admin_hotel_form", "Add hotel", hotelFormData{
		Action:         "/admin/hotels",
		AmenityOptions: constant.HotelAmenities,
	})
}

func (handler *Handler) AdminEditPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminEditPage")
	defer scope.End()

	hotel, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, "/admin/hotels")

		return
	}

	handler.kit.Render(w, r, http.StatusOK, "admin_hotel_form", "Edit "+hotel.Name, hotelFormData{
		Form: dto.CreateHotelRequest{
			Name:        hotel.Name,
			Description: hotel.Description,
			Address:     hotel.Address,
			City:        hotel.City,
			Country:     hotel.Country,
			StarRating:  hotel.StarRating,
			Amenities:   hotel.Amenities,
		},
		Hotel:          &hotel,
		Action:         "/admin/hotels/" + hotel.ID,
		AmenityOptions: constant.HotelAmenities,
	})
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Create")
	defer scope.End()

	file, header, err := formImage(r)
	if err != nil {
		handler.kit.FlashAndRedirect(w, r, state.NotificationError, err.Error(), "/admin/hotels/new")

		return
	}

	req := dto.CreateHotelRequest{}
	if err := validator.ValidateForm(r.PostForm, &req); err != nil {
		scope.TraceError(err)

		handler.kit.FlashAndRedirect(w, r, state.NotificationError, err.Error(), "/admin/hotels/new")

		return
	}

	hotel, err := handler.service.Create(ctx, req, file, header)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, "/admin/hotels/new")

		return
	}

	handler.kit.Apply(ctx, state.HotelAdded{Hotel: hotel})

	scope.AddEvent("hotel created")

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess, hotel.Name+" created.", "/admin/hotels")
}

func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Update")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	file, header, err := formImage(r)
	if err != nil {
		handler.kit.FlashAndRedirect(w, r, state.NotificationError, err.Error(), "/admin/hotels/"+id+"/edit")

		return
	}

	req := dto.UpdateHotelRequest{}
	if err := validator.ValidateForm(r.PostForm, &req); err != nil {
		scope.TraceError(err)

		handler.kit.FlashAndRedirect(w, r, state.NotificationError, err.Error(), "/admin/hotels/"+id+"/edit")

		return
	}

	// Unchecked checkboxes never reach the form payload.
	isActive := r.PostFormValue("is_active") == "true"
	req.IsActive = &isActive

	hotel, err := handler.service.Update(ctx, id, req, file, header)
	if err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, "/admin/hotels/"+id+"/edit")

		return
	}

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess, hotel.Name+" updated.", "/admin/hotels")
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Delete")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)

		handler.kit.Fail(w, r, err, "/admin/hotels")

		return
	}

	handler.kit.Apply(ctx, state.HotelRemoved{ID: id})

	handler.kit.FlashAndRedirect(w, r, state.NotificationSuccess, "Hotel deleted.", "/admin/hotels")
}

// AvailabilityAPI checks free rooms for a stay.
// @Summary Search room availability
// @Description Validates the stay locally, then asks the backend which rooms are free.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.AvailabilityRequest true "Availability Request"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/v1/availability [post]
func (handler *Handler) AvailabilityAPI(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AvailabilityAPI")
	defer scope.End()

	req := dto.AvailabilityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Availability(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// formImage pulls the optional upload out of a multipart form. A missing
// file is not an error.
func formImage(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return nil, nil, errors.New("could not read the form")
	}

	file, header, err := r.FormFile(constant.FormFile)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}

		return nil, nil, errors.New("could not read the uploaded image")
	}

	return file, header, nil
}
