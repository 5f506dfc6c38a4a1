package services

import (
	"context"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"tripify/internal/infra"
	"tripify/internal/models/db_models"
	"tripify/internal/models/request_models"
	"tripify/internal/models/response_models"
	"tripify/internal/repositories"
	"tripify/pkg/utils"
)

type ItineraryServiceInterface interface {
	CreateTrip(ctx context.Context, userId uuid.UUID, request request_models.CreateItineraryTripRequest) (*response_models.ItineraryTripResponse, error)
	ListMyTrips(ctx context.Context, userId uuid.UUID) ([]response_models.ItineraryTripResponse, error)
	GetTrip(ctx context.Context, tripId, userId uuid.UUID) (*response_models.ItineraryTripResponse, error)
	UpdateTrip(ctx context.Context, tripId, userId uuid.UUID, request request_models.UpdateItineraryTripRequest) (*response_models.ItineraryTripResponse, error)
	DeleteTrip(ctx context.Context, tripId, userId uuid.UUID) error
	JoinTrip(ctx context.Context, userId uuid.UUID, request request_models.JoinItineraryTripRequest) (*response_models.ItineraryTripResponse, error)

	CreateDay(ctx context.Context, tripId, userId uuid.UUID, request request_models.CreateDayRequest) (*response_models.ItineraryDayResponse, error)
	ListDays(ctx context.Context, tripId, userId uuid.UUID) ([]response_models.ItineraryDayResponse, error)
	UpdateDay(ctx context.Context, dayId, userId uuid.UUID, request request_models.UpdateDayRequest) (*response_models.ItineraryDayResponse, error)
	DeleteDay(ctx context.Context, dayId, userId uuid.UUID) error

	CreateActivity(ctx context.Context, dayId, userId uuid.UUID, request request_models.CreateActivityRequest) (*response_models.ItineraryActivityResponse, error)
	ListActivities(ctx context.Context, dayId, userId uuid.UUID) ([]response_models.ItineraryActivityResponse, error)
	UpdateActivity(ctx context.Context, activityId, userId uuid.UUID, request request_models.UpdateActivityRequest) (*response_models.ItineraryActivityResponse, error)
	DeleteActivity(ctx context.Context, activityId, userId uuid.UUID) error
	UploadActivityPhoto(ctx context.Context, activityId, userId uuid.UUID, content io.Reader, filename, contentType string) (*response_models.ItineraryActivityResponse, error)

	CreatePackingItem(ctx context.Context, tripId, userId uuid.UUID, request request_models.CreatePackingItemRequest) (*response_models.ItineraryPackingItemResponse, error)
	ListPackingItems(ctx context.Context, tripId, userId uuid.UUID) ([]response_models.ItineraryPackingItemResponse, error)
	TogglePackingItem(ctx context.Context, itemId, userId uuid.UUID) (*response_models.ItineraryPackingItemResponse, error)
	DeletePackingItem(ctx context.Context, itemId, userId uuid.UUID) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	membership    MembershipService
	storage       StorageService
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	membership MembershipService,
	storage StorageService) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		membership:    membership,
		storage:       storage,
	}
}

// parseDate accepts YYYY-MM-DD with dashes or slashes.
func parseDate(value string) (time.Time, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), "/", "-")
	return time.Parse(time.DateOnly, normalized)
}

func toItineraryTripResponse(trip *db_models.ItineraryTrip) *response_models.ItineraryTripResponse {
	resp := &response_models.ItineraryTripResponse{
		ID:            trip.ID.String(),
		Name:          trip.Name,
		Destination:   trip.Destination,
		StartDate:     trip.StartDate.Format(time.DateOnly),
		EndDate:       trip.EndDate.Format(time.DateOnly),
		Description:   trip.Description,
		CoverImageURL: trip.CoverImageURL,
		JoinCode:      trip.JoinCode,
		CreatedBy:     trip.CreatedBy.String(),
		CreatedAt:     trip.CreatedAt,
	}
	for _, m := range trip.Members {
		resp.Members = append(resp.Members, response_models.TripMemberResponse{
			UserID:   m.UserID.String(),
			Name:     m.User.Name,
			Email:    m.User.Email,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt,
		})
	}
	return resp
}

func toDayResponse(day *db_models.ItineraryDay) *response_models.ItineraryDayResponse {
	resp := &response_models.ItineraryDayResponse{
		ID:        day.ID.String(),
		TripID:    day.TripID.String(),
		DayNumber: day.DayNumber,
		Date:      day.Date.Format(time.DateOnly),
		Title:     day.Title,
		Notes:     day.Notes,
	}
	for i := range day.Activities {
		resp.Activities = append(resp.Activities, *toActivityResponse(&day.Activities[i]))
	}
	return resp
}

func toActivityResponse(activity *db_models.ItineraryActivity) *response_models.ItineraryActivityResponse {
	resp := &response_models.ItineraryActivityResponse{
		ID:           activity.ID.String(),
		DayID:        activity.DayID.String(),
		Title:        activity.Title,
		Description:  activity.Description,
		ActivityType: activity.ActivityType,
		StartTime:    activity.StartTime,
		EndTime:      activity.EndTime,
		Duration:     activity.Duration,
		Location:     activity.Location,
		LocationLat:  activity.LocationLat,
		LocationLng:  activity.LocationLng,
		MapsLink:     activity.MapsLink,
		Cost:         activity.Cost,
		Currency:     activity.Currency,
		BookingURL:   activity.BookingURL,
		Notes:        activity.Notes,
		ImageURL:     activity.ImageURL,
		OrderIndex:   activity.OrderIndex,
		IsCompleted:  activity.IsCompleted,
	}
	if activity.AssignedTo != nil {
		resp.AssignedTo = activity.AssignedTo.String()
	}
	return resp
}

func toPackingItemResponse(item *db_models.ItineraryPackingItem) *response_models.ItineraryPackingItemResponse {
	return &response_models.ItineraryPackingItemResponse{
		ID:       item.ID.String(),
		TripID:   item.TripID.String(),
		Item:     item.Item,
		Category: item.Category,
		IsPacked: item.IsPacked,
		Quantity: item.Quantity,
		Notes:    item.Notes,
		AddedBy:  item.AddedBy.String(),
	}
}

func (s *ItineraryService) CreateTrip(ctx context.Context, userId uuid.UUID, request request_models.CreateItineraryTripRequest) (*response_models.ItineraryTripResponse, error) {
	startDate, err := parseDate(request.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidDate
	}
	endDate, err := parseDate(request.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidDate
	}

	trip := &db_models.ItineraryTrip{
		Name:          request.Name,
		Destination:   request.Destination,
		StartDate:     startDate,
		EndDate:       endDate,
		Description:   request.Description,
		CoverImageURL: request.CoverImageURL,
		CreatedBy:     userId,
	}

	for attempt := 0; attempt < joinCodeMaxAttempts; attempt++ {
		trip.ID = uuid.Nil
		trip.JoinCode = utils.GenerateJoinCode()

		err := s.itineraryRepo.CreateTrip(ctx, trip)
		if err == nil {
			created, err := s.itineraryRepo.FindTripByID(ctx, trip.ID)
			if err != nil || created == nil {
				return nil, utils.ErrDatabaseError
			}
			return toItineraryTripResponse(created), nil
		}
		if infra.IsUniqueViolation(err) {
			log.Printf("Join code %s collided, regenerating", trip.JoinCode)
			continue
		}
		return nil, utils.ErrDatabaseError
	}

	return nil, utils.ErrJoinCodeExhausted
}

func (s *ItineraryService) ListMyTrips(ctx context.Context, userId uuid.UUID) ([]response_models.ItineraryTripResponse, error) {
	trips, err := s.itineraryRepo.ListTripsByUserID(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ItineraryTripResponse, 0, len(trips))
	for i := range trips {
		responses = append(responses, *toItineraryTripResponse(&trips[i]))
	}
	return responses, nil
}

func (s *ItineraryService) GetTrip(ctx context.Context, tripId, userId uuid.UUID) (*response_models.ItineraryTripResponse, error) {
	if _, err := s.membership.RequireItineraryMember(ctx, tripId, userId); err != nil {
		return nil, err
	}

	trip, err := s.itineraryRepo.FindTripByID(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return toItineraryTripResponse(trip), nil
}

func (s *ItineraryService) UpdateTrip(ctx context.Context, tripId, userId uuid.UUID, request request_models.UpdateItineraryTripRequest) (*response_models.ItineraryTripResponse, error) {
	if _, err := s.membership.RequireItineraryRole(ctx, tripId, userId, db_models.ItineraryRoleEditor); err != nil {
		return nil, err
	}

	trip, err := s.itineraryRepo.FindTripByID(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	if request.Name != nil {
		trip.Name = *request.Name
	}
	if request.Destination != nil {
		trip.Destination = *request.Destination
	}
	if request.StartDate != nil {
		startDate, err := parseDate(*request.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidDate
		}
		trip.StartDate = startDate
	}
	if request.EndDate != nil {
		endDate, err := parseDate(*request.EndDate)
		if err != nil {
			return nil, utils.ErrInvalidDate
		}
		trip.EndDate = endDate
	}
	if request.Description != nil {
		trip.Description = *request.Description
	}
	if request.CoverImageURL != nil {
		trip.CoverImageURL = *request.CoverImageURL
	}

	if err := s.itineraryRepo.UpdateTrip(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toItineraryTripResponse(trip), nil
}

func (s *ItineraryService) DeleteTrip(ctx context.Context, tripId, userId uuid.UUID) error {
	member, err := s.membership.RequireItineraryMember(ctx, tripId, userId)
	if err != nil {
		return err
	}
	// Owner only; editors cannot delete the trip they can otherwise edit.
	if member.Role != db_models.ItineraryRoleOwner {
		return utils.ErrInsufficientRole
	}

	if err := s.itineraryRepo.DeleteTrip(ctx, tripId); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) JoinTrip(ctx context.Context, userId uuid.UUID, request request_models.JoinItineraryTripRequest) (*response_models.ItineraryTripResponse, error) {
	trip, err := s.membership.JoinItineraryTripByCode(ctx, request.JoinCode, userId)
	if err != nil {
		return nil, err
	}
	return toItineraryTripResponse(trip), nil
}

func (s *ItineraryService) CreateDay(ctx context.Context, tripId, userId uuid.UUID, request request_models.CreateDayRequest) (*response_models.ItineraryDayResponse, error) {
	if _, err := s.membership.RequireItineraryRole(ctx, tripId, userId, db_models.ItineraryRoleEditor); err != nil {
		return nil, err
	}

	date, err := parseDate(request.Date)
	if err != nil {
		return nil, utils.ErrInvalidDate
	}

	day := &db_models.ItineraryDay{
		TripID:    tripId,
		DayNumber: request.DayNumber,
		Date:      date,
		Title:     request.Title,
		Notes:     request.Notes,
	}
	if err := s.itineraryRepo.CreateDay(ctx, day); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toDayResponse(day), nil
}

func (s *ItineraryService) ListDays(ctx context.Context, tripId, userId uuid.UUID) ([]response_models.ItineraryDayResponse, error) {
	if _, err := s.membership.RequireItineraryMember(ctx, tripId, userId); err != nil {
		return nil, err
	}

	days, err := s.itineraryRepo.ListDaysByTrip(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ItineraryDayResponse, 0, len(days))
	for i := range days {
		responses = append(responses, *toDayResponse(&days[i]))
	}
	return responses, nil
}

func (s *ItineraryService) findDayForEdit(ctx context.Context, dayId, userId uuid.UUID) (*db_models.ItineraryDay, error) {
	day, err := s.itineraryRepo.FindDayByID(ctx, dayId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if day == nil {
		return nil, utils.ErrDayNotFound
	}
	if _, err := s.membership.RequireItineraryRole(ctx, day.TripID, userId, db_models.ItineraryRoleEditor); err != nil {
		return nil, err
	}
	return day, nil
}

func (s *ItineraryService) UpdateDay(ctx context.Context, dayId, userId uuid.UUID, request request_models.UpdateDayRequest) (*response_models.ItineraryDayResponse, error) {
	day, err := s.findDayForEdit(ctx, dayId, userId)
	if err != nil {
		return nil, err
	}

	if request.Date != nil {
		date, err := parseDate(*request.Date)
		if err != nil {
			return nil, utils.ErrInvalidDate
		}
		day.Date = date
	}
	if request.Title != nil {
		day.Title = *request.Title
	}
	if request.Notes != nil {
		day.Notes = *request.Notes
	}

	if err := s.itineraryRepo.UpdateDay(ctx, day); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toDayResponse(day), nil
}

func (s *ItineraryService) DeleteDay(ctx context.Context, dayId, userId uuid.UUID) error {
	if _, err := s.findDayForEdit(ctx, dayId, userId); err != nil {
		return err
	}
	if err := s.itineraryRepo.DeleteDay(ctx, dayId); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) CreateActivity(ctx context.Context, dayId, userId uuid.UUID, request request_models.CreateActivityRequest) (*response_models.ItineraryActivityResponse, error) {
	day, err := s.findDayForEdit(ctx, dayId, userId)
	if err != nil {
		return nil, err
	}

	activity := &db_models.ItineraryActivity{
		DayID:        day.ID,
		Title:        request.Title,
		Description:  request.Description,
		ActivityType: request.ActivityType,
		StartTime:    request.StartTime,
		EndTime:      request.EndTime,
		Duration:     request.Duration,
		Location:     request.Location,
		LocationLat:  request.LocationLat,
		LocationLng:  request.LocationLng,
		MapsLink:     request.MapsLink,
		Cost:         request.Cost,
		Currency:     request.Currency,
		BookingURL:   request.BookingURL,
		Notes:        request.Notes,
		AssignedTo:   request.AssignedTo,
		OrderIndex:   request.OrderIndex,
		CreatedBy:    userId,
	}
	if activity.Currency == "" {
		activity.Currency = "USD"
	}

	if err := s.itineraryRepo.CreateActivity(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toActivityResponse(activity), nil
}

func (s *ItineraryService) ListActivities(ctx context.Context, dayId, userId uuid.UUID) ([]response_models.ItineraryActivityResponse, error) {
	day, err := s.itineraryRepo.FindDayByID(ctx, dayId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if day == nil {
		return nil, utils.ErrDayNotFound
	}
	if _, err := s.membership.RequireItineraryMember(ctx, day.TripID, userId); err != nil {
		return nil, err
	}

	activities, err := s.itineraryRepo.ListActivitiesByDay(ctx, dayId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ItineraryActivityResponse, 0, len(activities))
	for i := range activities {
		responses = append(responses, *toActivityResponse(&activities[i]))
	}
	return responses, nil
}

func (s *ItineraryService) findActivityForEdit(ctx context.Context, activityId, userId uuid.UUID) (*db_models.ItineraryActivity, error) {
	activity, err := s.itineraryRepo.FindActivityByID(ctx, activityId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	day, err := s.itineraryRepo.FindDayByID(ctx, activity.DayID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if day == nil {
		return nil, utils.ErrDayNotFound
	}
	if _, err := s.membership.RequireItineraryRole(ctx, day.TripID, userId, db_models.ItineraryRoleEditor); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ItineraryService) UpdateActivity(ctx context.Context, activityId, userId uuid.UUID, request request_models.UpdateActivityRequest) (*response_models.ItineraryActivityResponse, error) {
	activity, err := s.findActivityForEdit(ctx, activityId, userId)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		activity.Title = *request.Title
	}
	if request.Description != nil {
		activity.Description = *request.Description
	}
	if request.ActivityType != nil {
		activity.ActivityType = *request.ActivityType
	}
	if request.StartTime != nil {
		activity.StartTime = request.StartTime
	}
	if request.EndTime != nil {
		activity.EndTime = request.EndTime
	}
	if request.Duration != nil {
		activity.Duration = request.Duration
	}
	if request.Location != nil {
		activity.Location = *request.Location
	}
	if request.LocationLat != nil {
		activity.LocationLat = request.LocationLat
	}
	if request.LocationLng != nil {
		activity.LocationLng = request.LocationLng
	}
	if request.MapsLink != nil {
		activity.MapsLink = *request.MapsLink
	}
	if request.Cost != nil {
		activity.Cost = request.Cost
	}
	if request.Currency != nil {
		activity.Currency = *request.Currency
	}
	if request.BookingURL != nil {
		activity.BookingURL = *request.BookingURL
	}
	if request.Notes != nil {
		activity.Notes = *request.Notes
	}
	if request.AssignedTo != nil {
		activity.AssignedTo = request.AssignedTo
	}
	if request.OrderIndex != nil {
		activity.OrderIndex = *request.OrderIndex
	}
	if request.IsCompleted != nil {
		activity.IsCompleted = *request.IsCompleted
	}

	if err := s.itineraryRepo.UpdateActivity(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toActivityResponse(activity), nil
}

func (s *ItineraryService) DeleteActivity(ctx context.Context, activityId, userId uuid.UUID) error {
	activity, err := s.findActivityForEdit(ctx, activityId, userId)
	if err != nil {
		return err
	}

	if err := s.itineraryRepo.DeleteActivity(ctx, activityId); err != nil {
		return utils.ErrDatabaseError
	}

	if path := blobPathFromURL(activity.ImageURL); path != "" {
		if err := s.storage.Delete(ctx, path); err != nil {
			log.Printf("Error deleting activity photo %s: %v", path, err)
		}
	}
	return nil
}

var allowedActivityPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

func (s *ItineraryService) UploadActivityPhoto(ctx context.Context, activityId, userId uuid.UUID, content io.Reader, filename, contentType string) (*response_models.ItineraryActivityResponse, error) {
	activity, err := s.findActivityForEdit(ctx, activityId, userId)
	if err != nil {
		return nil, err
	}

	if !allowedActivityPhotoTypes[contentType] {
		return nil, utils.ErrUnsupportedMime
	}

	if path := blobPathFromURL(activity.ImageURL); path != "" {
		if err := s.storage.Delete(ctx, path); err != nil {
			log.Printf("Error deleting old activity photo %s: %v", path, err)
		}
	}

	_, publicURL, err := s.storage.Upload(ctx, content, userId.String(), "", filename, contentType)
	if err != nil {
		return nil, utils.ErrStorageUpload
	}

	activity.ImageURL = publicURL
	if err := s.itineraryRepo.UpdateActivity(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toActivityResponse(activity), nil
}

// blobPathFromURL recovers the bucket-relative path from a public URL.
// Returns "" for URLs not under storage.googleapis.com.
func blobPathFromURL(url string) string {
	const host = "storage.googleapis.com/"
	idx := strings.Index(url, host)
	if idx < 0 {
		return ""
	}
	rest := url[idx+len(host):]
	// Strip the leading bucket segment.
	slash := strings.Index(rest, "/")
	if slash < 0 {
		return ""
	}
	return rest[slash+1:]
}

func (s *ItineraryService) CreatePackingItem(ctx context.Context, tripId, userId uuid.UUID, request request_models.CreatePackingItemRequest) (*response_models.ItineraryPackingItemResponse, error) {
	if _, err := s.membership.RequireItineraryRole(ctx, tripId, userId, db_models.ItineraryRoleEditor); err != nil {
		return nil, err
	}

	item := &db_models.ItineraryPackingItem{
		TripID:   tripId,
		Item:     request.Item,
		Category: request.Category,
		Quantity: request.Quantity,
		Notes:    request.Notes,
		AddedBy:  userId,
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	if err := s.itineraryRepo.CreatePackingItem(ctx, item); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toPackingItemResponse(item), nil
}

func (s *ItineraryService) ListPackingItems(ctx context.Context, tripId, userId uuid.UUID) ([]response_models.ItineraryPackingItemResponse, error) {
	if _, err := s.membership.RequireItineraryMember(ctx, tripId, userId); err != nil {
		return nil, err
	}

	items, err := s.itineraryRepo.ListPackingItemsByTrip(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ItineraryPackingItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *toPackingItemResponse(&items[i]))
	}
	return responses, nil
}

func (s *ItineraryService) TogglePackingItem(ctx context.Context, itemId, userId uuid.UUID) (*response_models.ItineraryPackingItemResponse, error) {
	item, err := s.itineraryRepo.FindPackingItemByID(ctx, itemId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrPackingItemNotFound
	}
	// Any member may tick items off; editing the list itself needs editor.
	if _, err := s.membership.RequireItineraryMember(ctx, item.TripID, userId); err != nil {
		return nil, err
	}

	item.IsPacked = !item.IsPacked
	if err := s.itineraryRepo.UpdatePackingItem(ctx, item); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toPackingItemResponse(item), nil
}

func (s *ItineraryService) DeletePackingItem(ctx context.Context, itemId, userId uuid.UUID) error {
	item, err := s.itineraryRepo.FindPackingItemByID(ctx, itemId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if item == nil {
		return utils.ErrPackingItemNotFound
	}
	if _, err := s.membership.RequireItineraryRole(ctx, item.TripID, userId, db_models.ItineraryRoleEditor); err != nil {
		return err
	}

	if err := s.itineraryRepo.DeletePackingItem(ctx, itemId); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
