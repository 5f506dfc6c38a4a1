package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"
	"tripify/internal/models/db_models"
	"tripify/internal/repositories"
)

// In-memory repository fakes. Only the methods a test exercises are
// implemented; the embedded interface panics on anything else, which is
// exactly what we want from an unexpected call.

func memberKey(tripId, userId uuid.UUID) string {
	return tripId.String() + "|" + userId.String()
}

type fakeTripRepo struct {
	repositories.TripRepository

	trips   map[uuid.UUID]*db_models.Trip
	members map[string]*db_models.TripMember

	// createErrs is consumed one error per Create call; nil means success.
	createErrs   []error
	addMemberErr error
	addMemberN   int
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{
		trips:   map[uuid.UUID]*db_models.Trip{},
		members: map[string]*db_models.TripMember{},
	}
}

func (f *fakeTripRepo) Create(ctx context.Context, trip *db_models.Trip) error {
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	copied := *trip
	f.trips[trip.ID] = &copied
	f.members[memberKey(trip.ID, trip.CreatedBy)] = &db_models.TripMember{
		TripID: trip.ID,
		UserID: trip.CreatedBy,
		Role:   db_models.TripRoleAdmin,
	}
	return nil
}

func (f *fakeTripRepo) FindByID(ctx context.Context, tripId uuid.UUID) (*db_models.Trip, error) {
	return f.trips[tripId], nil
}

func (f *fakeTripRepo) FindByJoinCode(ctx context.Context, code string) (*db_models.Trip, error) {
	for _, trip := range f.trips {
		if trip.JoinCode == code {
			return trip, nil
		}
	}
	return nil, nil
}

func (f *fakeTripRepo) FindMember(ctx context.Context, tripId, userId uuid.UUID) (*db_models.TripMember, error) {
	return f.members[memberKey(tripId, userId)], nil
}

func (f *fakeTripRepo) AddMember(ctx context.Context, member *db_models.TripMember) error {
	f.addMemberN++
	if f.addMemberErr != nil {
		return f.addMemberErr
	}
	f.members[memberKey(member.TripID, member.UserID)] = member
	return nil
}

func (f *fakeTripRepo) UpdateCoverPhoto(ctx context.Context, tripId uuid.UUID, url string) error {
	if trip, ok := f.trips[tripId]; ok {
		trip.CoverPhotoURL = url
	}
	return nil
}

func (f *fakeTripRepo) Delete(ctx context.Context, tripId uuid.UUID) error {
	delete(f.trips, tripId)
	return nil
}

type fakeExpenseTripRepo struct {
	repositories.ExpenseTripRepository

	trips   map[uuid.UUID]*db_models.ExpenseTrip
	members map[string]*db_models.ExpenseTripMember
}

func newFakeExpenseTripRepo() *fakeExpenseTripRepo {
	return &fakeExpenseTripRepo{
		trips:   map[uuid.UUID]*db_models.ExpenseTrip{},
		members: map[string]*db_models.ExpenseTripMember{},
	}
}

func (f *fakeExpenseTripRepo) Create(ctx context.Context, trip *db_models.ExpenseTrip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	copied := *trip
	f.trips[trip.ID] = &copied
	f.members[memberKey(trip.ID, trip.CreatedBy)] = &db_models.ExpenseTripMember{
		TripID: trip.ID,
		UserID: trip.CreatedBy,
		Role:   db_models.TripRoleAdmin,
	}
	return nil
}

func (f *fakeExpenseTripRepo) FindByID(ctx context.Context, tripId uuid.UUID) (*db_models.ExpenseTrip, error) {
	return f.trips[tripId], nil
}

func (f *fakeExpenseTripRepo) FindMember(ctx context.Context, tripId, userId uuid.UUID) (*db_models.ExpenseTripMember, error) {
	return f.members[memberKey(tripId, userId)], nil
}

func (f *fakeExpenseTripRepo) Delete(ctx context.Context, tripId uuid.UUID) error {
	delete(f.trips, tripId)
	return nil
}

type fakeExpenseRepo struct {
	repositories.ExpenseRepository

	expenses map[uuid.UUID]*db_models.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: map[uuid.UUID]*db_models.Expense{}}
}

func (f *fakeExpenseRepo) Create(ctx context.Context, expense *db_models.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	copied := *expense
	f.expenses[expense.ID] = &copied
	return nil
}

func (f *fakeExpenseRepo) FindByID(ctx context.Context, expenseId uuid.UUID) (*db_models.Expense, error) {
	return f.expenses[expenseId], nil
}

func (f *fakeExpenseRepo) ListByTrip(ctx context.Context, tripId uuid.UUID) ([]db_models.Expense, error) {
	var out []db_models.Expense
	for _, exp := range f.expenses {
		if exp.TripID == tripId {
			out = append(out, *exp)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) Update(ctx context.Context, expense *db_models.Expense) error {
	copied := *expense
	f.expenses[expense.ID] = &copied
	return nil
}

func (f *fakeExpenseRepo) Delete(ctx context.Context, expenseId uuid.UUID) error {
	delete(f.expenses, expenseId)
	return nil
}

type fakeItineraryRepo struct {
	repositories.ItineraryRepository

	trips   map[uuid.UUID]*db_models.ItineraryTrip
	members map[string]*db_models.ItineraryTripMember

	addMemberErr error
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{
		trips:   map[uuid.UUID]*db_models.ItineraryTrip{},
		members: map[string]*db_models.ItineraryTripMember{},
	}
}

func (f *fakeItineraryRepo) CreateTrip(ctx context.Context, trip *db_models.ItineraryTrip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	copied := *trip
	f.trips[trip.ID] = &copied
	f.members[memberKey(trip.ID, trip.CreatedBy)] = &db_models.ItineraryTripMember{
		TripID: trip.ID,
		UserID: trip.CreatedBy,
		Role:   db_models.ItineraryRoleOwner,
	}
	return nil
}

func (f *fakeItineraryRepo) FindTripByID(ctx context.Context, tripId uuid.UUID) (*db_models.ItineraryTrip, error) {
	return f.trips[tripId], nil
}

func (f *fakeItineraryRepo) UpdateTrip(ctx context.Context, trip *db_models.ItineraryTrip) error {
	copied := *trip
	f.trips[trip.ID] = &copied
	return nil
}

func (f *fakeItineraryRepo) DeleteTrip(ctx context.Context, tripId uuid.UUID) error {
	delete(f.trips, tripId)
	return nil
}

func (f *fakeItineraryRepo) FindTripByJoinCode(ctx context.Context, code string) (*db_models.ItineraryTrip, error) {
	for _, trip := range f.trips {
		if trip.JoinCode == code {
			return trip, nil
		}
	}
	return nil, nil
}

func (f *fakeItineraryRepo) FindMember(ctx context.Context, tripId, userId uuid.UUID) (*db_models.ItineraryTripMember, error) {
	return f.members[memberKey(tripId, userId)], nil
}

func (f *fakeItineraryRepo) AddMember(ctx context.Context, member *db_models.ItineraryTripMember) error {
	if f.addMemberErr != nil {
		return f.addMemberErr
	}
	f.members[memberKey(member.TripID, member.UserID)] = member
	return nil
}

type fakeMediaRepo struct {
	repositories.MediaRepository

	media map[uuid.UUID]*db_models.Media
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{media: map[uuid.UUID]*db_models.Media{}}
}

func (f *fakeMediaRepo) Create(ctx context.Context, media *db_models.Media) error {
	if media.ID == uuid.Nil {
		media.ID = uuid.New()
	}
	copied := *media
	f.media[media.ID] = &copied
	return nil
}

func (f *fakeMediaRepo) FindByID(ctx context.Context, mediaId uuid.UUID) (*db_models.Media, error) {
	return f.media[mediaId], nil
}

func (f *fakeMediaRepo) ListByTripPaged(ctx context.Context, tripId uuid.UUID, offset, limit int) ([]db_models.Media, int64, error) {
	all := f.tripMedia(tripId)
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (f *fakeMediaRepo) ListByTrip(ctx context.Context, tripId uuid.UUID) ([]db_models.Media, error) {
	return f.tripMedia(tripId), nil
}

// tripMedia returns a trip's media newest first, matching the real
// repository's ordering.
func (f *fakeMediaRepo) tripMedia(tripId uuid.UUID) []db_models.Media {
	var out []db_models.Media
	for _, m := range f.media {
		if m.TripID != nil && *m.TripID == tripId {
			out = append(out, *m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

func (f *fakeMediaRepo) ListPersonal(ctx context.Context, userId uuid.UUID) ([]db_models.Media, error) {
	var out []db_models.Media
	for _, m := range f.media {
		if m.UserID == userId && m.TripID == nil {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMediaRepo) ListFavorites(ctx context.Context, userId uuid.UUID) ([]db_models.Media, error) {
	var out []db_models.Media
	for _, m := range f.media {
		if m.UserID == userId && m.IsFavorite {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMediaRepo) Update(ctx context.Context, media *db_models.Media) error {
	copied := *media
	f.media[media.ID] = &copied
	return nil
}

func (f *fakeMediaRepo) Delete(ctx context.Context, mediaId uuid.UUID) error {
	delete(f.media, mediaId)
	return nil
}

type fakeUserRepo struct {
	repositories.UserRepository

	users     map[string]*db_models.User // keyed by id string
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*db_models.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *db_models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	f.users[user.ID.String()] = &copied
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, userId string) (*db_models.User, error) {
	return f.users[userId], nil
}

func (f *fakeUserRepo) ExistsByID(ctx context.Context, userId string) (bool, error) {
	_, ok := f.users[userId]
	return ok, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *db_models.User) error {
	copied := *user
	f.users[user.ID.String()] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, userId string) error {
	delete(f.users, userId)
	return nil
}

// fakeStorage records calls and serves canned content.
type fakeStorage struct {
	uploads   []string
	deletes   []string
	uploadErr error
}

func (f *fakeStorage) Upload(ctx context.Context, content io.Reader, userId string, tripId string, filename string, contentType string) (string, string, error) {
	if f.uploadErr != nil {
		return "", "", f.uploadErr
	}
	folder := "personal"
	if tripId != "" {
		folder = "trip_" + tripId
	}
	path := fmt.Sprintf("users/user_%s/trips/%s/%s", userId, folder, filename)
	f.uploads = append(f.uploads, path)
	return path, "https://storage.googleapis.com/test-bucket/" + path, nil
}

func (f *fakeStorage) Delete(ctx context.Context, gcsPath string) error {
	f.deletes = append(f.deletes, gcsPath)
	return nil
}

func (f *fakeStorage) Download(ctx context.Context, gcsPath string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("file-bytes")), nil
}

func (f *fakeStorage) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	f.deletes = append(f.deletes, prefix)
	return 0, nil
}

func (f *fakeStorage) UserPrefix(userId string) string {
	return "users/user_" + userId + "/"
}

func (f *fakeStorage) TripPrefix(userId string, tripId string) string {
	return "users/user_" + userId + "/trips/trip_" + tripId + "/"
}
