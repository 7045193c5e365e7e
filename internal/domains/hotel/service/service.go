package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"phoenix/config"
	"phoenix/infras/otel"
	"phoenix/infras/s3"
	"phoenix/internal/domains/hotel/client"
	"phoenix/internal/domains/hotel/model"
	"phoenix/internal/domains/hotel/model/dto"
	"phoenix/shared"
	"phoenix/shared/cache"
	"phoenix/shared/constant"
	gDto "phoenix/shared/dto"
	"phoenix/shared/failure"
	"phoenix/shared/validator"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotel     = "hotels:get"
	cacheGetAllHotels = "hotels:get_all"
	cacheRoomTypes    = "hotels:room_types"

	imageDirectory = "hotels"
)

type Hotel interface {
	List(ctx context.Context, params gDto.QueryParams) (dto.HotelsResponse, error)
	Get(ctx context.Context, id string) (model.Hotel, error)
	Create(ctx context.Context, req dto.CreateHotelRequest, file multipart.File, header *multipart.FileHeader) (model.Hotel, error)
	Update(ctx context.Context, id string, req dto.UpdateHotelRequest, file multipart.File, header *multipart.FileHeader) (model.Hotel, error)
	Delete(ctx context.Context, id string) error
	RoomTypes(ctx context.Context) ([]model.RoomType, error)
	Rooms(ctx context.Context, params gDto.QueryParams, hotelID string) (dto.RoomsResponse, error)
	Room(ctx context.Context, id string) (model.Room, error)
	UpdateRoomStatus(ctx context.Context, roomID string, req dto.UpdateRoomStatusRequest) (model.Room, error)
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	hotelClient client.Hotel
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	s3          s3.S3
}

func New(hotelClient client.Hotel, cfg *config.Config, cache cache.RedisCache, ot otel.Otel, s3Service s3.S3) Hotel {
	return &serviceImpl{
		hotelClient: hotelClient,
		cfg:         cfg,
		cache:       cache,
		otel:        ot,
		s3:          s3Service,
	}
}

// List serves the public hotel catalog, cache-aside per page. The cached
// copy only ever changes after a successful backend call.
func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.HotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListHotels")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHotels, params)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotels")

		return res, nil
	}

	page, err := s.hotelClient.List(ctx, params.Values())
	if err != nil {
		log.Error().Err(err).Msg("failed to list hotels")

		return res, err
	}

	res.FromPage(page.Results, page.Count, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotels to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Hotel, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHotel, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	res, err = s.hotelClient.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get hotel")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest, file multipart.File, header *multipart.FileHeader) (res model.Hotel, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if file != nil && header != nil {
		imageURL, uploadErr := s.s3.UploadFile(ctx, imageDirectory, file, header, uuid.NewString())
		if uploadErr != nil {
			log.Error().Err(uploadErr).Msg("failed to upload hotel image")

			return res, fmt.Errorf("failed to upload hotel image: %w", uploadErr)
		}

		req.ImageURL = imageURL
	}

	res, err = s.hotelClient.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotels)
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateHotelRequest, file multipart.File, header *multipart.FileHeader) (res model.Hotel, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if file != nil && header != nil {
		imageURL, uploadErr := s.s3.UploadFile(ctx, imageDirectory, file, header, uuid.NewString())
		if uploadErr != nil {
			log.Error().Err(uploadErr).Msg("failed to upload hotel image")

			return res, fmt.Errorf("failed to upload hotel image: %w", uploadErr)
		}

		req.ImageURL = imageURL
	}

	res, err = s.hotelClient.Update(ctx, id, req)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update hotel")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHotel, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotels)
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.hotelClient.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete hotel")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHotel, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotels)
	}()

	return nil
}

func (s *serviceImpl) RoomTypes(ctx context.Context) (res []model.RoomType, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomTypes")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheRoomTypes, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.hotelClient.RoomTypes(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheRoomTypes, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return res, nil
}

// Rooms is staff-facing and uncached: room statuses move too fast for a
// stale list to be useful.
func (s *serviceImpl) Rooms(ctx context.Context, params gDto.QueryParams, hotelID string) (res dto.RoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := params.Values()
	if hotelID != "" {
		query.Set("hotel", hotelID)
	}

	page, err := s.hotelClient.Rooms(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms")

		return res, err
	}

	res.FromPage(page.Results, page.Count, params.Limit)

	return res, nil
}

func (s *serviceImpl) Room(ctx context.Context, id string) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.hotelClient.Room(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get room")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) UpdateRoomStatus(ctx context.Context, roomID string, req dto.UpdateRoomStatusRequest) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoomStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	res, err = s.hotelClient.UpdateRoomStatus(ctx, roomID, req)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to update room status")

		return res, err
	}

	return res, nil
}

// checkStay bounds the requested range the same way the booking form does:
// at least one night, at most thirty, check-out after check-in.
func checkStay(checkIn, checkOut string) error {
	in, err := time.Parse(time.DateOnly, checkIn)
	if err != nil {
		return failure.BadRequestFromString("check-in date is not valid")
	}

	out, err := time.Parse(time.DateOnly, checkOut)
	if err != nil {
		return failure.BadRequestFromString("check-out date is not valid")
	}

	nights := int(out.Sub(in).Hours() / 24)
	if nights < constant.MinBookingDays {
		return failure.BadRequestFromString("check-out must be after check-in")
	}

	if nights > constant.MaxBookingDays {
		return failure.BadRequestFromString("stays are limited to 30 nights")
	}

	return nil
}

func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if err = checkStay(req.CheckIn, req.CheckOut); err != nil {
		return res, err
	}

	res, err = s.hotelClient.Availability(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("hotel", req.Hotel).Msg("availability check failed")

		return res, err
	}

	return res, nil
}
