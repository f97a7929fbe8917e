package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"fyyur-backend/internal/models"
	"fyyur-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVenueService struct {
	detail       *models.VenueDetail
	record       *models.Venue
	deleted      *models.Venue
	createErr    error
	updateErr    error
	deleteErr    error
	getErr       error
	createdName  string
	createdGenre []string
}

func (s *stubVenueService) ListVenues(context.Context) ([]models.VenueArea, error) {
	return []models.VenueArea{}, nil
}

func (s *stubVenueService) SearchVenues(_ context.Context, term string) (*models.SearchResults, error) {
	return &models.SearchResults{Count: 0, Data: []models.SearchResult{}}, nil
}

func (s *stubVenueService) GetVenue(context.Context, uint) (*models.VenueDetail, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.detail, nil
}

func (s *stubVenueService) GetVenueRecord(context.Context, uint) (*models.Venue, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.record, nil
}

func (s *stubVenueService) CreateVenue(_ context.Context, venue *models.Venue, genres []string) error {
	if s.createErr != nil {
		return s.createErr
	}
	venue.ID = 7
	s.createdName = venue.Name
	s.createdGenre = genres
	return nil
}

func (s *stubVenueService) UpdateVenue(_ context.Context, _ uint, _ *models.Venue, _ []string) error {
	return s.updateErr
}

func (s *stubVenueService) DeleteVenue(context.Context, uint) (*models.Venue, error) {
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	return s.deleted, nil
}

type stubShowService struct {
	createErr error
	created   *models.Show
}

func (s *stubShowService) ListShows(context.Context) ([]models.ShowListItem, error) {
	return []models.ShowListItem{}, nil
}

func (s *stubShowService) CreateShow(_ context.Context, show *models.Show) error {
	if s.createErr != nil {
		return s.createErr
	}
	show.ID = 3
	s.created = show
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newVenueApp(svc *stubVenueService) *fiber.App {
	app := fiber.New()
	h := NewVenueHandler(svc, quietLogger())

	venues := app.Group("/venues")
	venues.Get("/", h.ListVenues)
	venues.Post("/search", h.SearchVenues)
	venues.Get("/create", h.CreateVenueForm)
	venues.Post("/create", h.CreateVenueSubmission)
	venues.Get("/:id", h.ShowVenue)
	venues.Delete("/:id", h.DeleteVenue)
	venues.Get("/:id/edit", h.EditVenueForm)
	venues.Post("/:id/edit", h.EditVenueSubmission)
	return app
}

func newShowApp(svc *stubShowService) *fiber.App {
	app := fiber.New()
	h := NewShowHandler(svc, quietLogger())

	shows := app.Group("/shows")
	shows.Get("/", h.ListShows)
	shows.Get("/create", h.CreateShowForm)
	shows.Post("/create", h.CreateShowSubmission)
	return app
}

type envelope struct {
	Status  string                 `json:"status"`
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestShowVenueNotFound(t *testing.T) {
	app := newVenueApp(&stubVenueService{getErr: repository.ErrNotFound})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/venues/42", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "Venue not found", env.Message)
}

func TestShowVenueRejectsNonNumericID(t *testing.T) {
	app := newVenueApp(&stubVenueService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/venues/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateVenueSubmissionSuccess(t *testing.T) {
	svc := &stubVenueService{}
	app := newVenueApp(svc)

	values := url.Values{}
	values.Set("name", "The Spot")
	values.Set("city", "SF")
	values.Set("state", "CA")
	values.Set("address", "1 Main St")
	values.Add("genres", "Jazz")
	values.Add("genres", "Pop")

	resp, err := app.Test(formRequest("/venues/create", values))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Venue The Spot was successfully listed!", env.Message)
	assert.Equal(t, "/", env.Data["url"])
	assert.Equal(t, float64(7), env.Data["id"])
	assert.Equal(t, []string{"Jazz", "Pop"}, svc.createdGenre)
}

func TestCreateVenueSubmissionValidationFailure(t *testing.T) {
	app := newVenueApp(&stubVenueService{})

	values := url.Values{}
	values.Set("city", "SF")
	values.Set("state", "CA")
	values.Set("address", "1 Main St")

	resp, err := app.Test(formRequest("/venues/create", values))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Equal(t, "/venues/create", env.Data["url"])

	fieldErrors, ok := env.Data["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fieldErrors, "name")
}

func TestCreateVenueSubmissionPersistenceFailure(t *testing.T) {
	app := newVenueApp(&stubVenueService{createErr: assert.AnError})

	values := url.Values{}
	values.Set("name", "The Spot")
	values.Set("city", "SF")
	values.Set("state", "CA")
	values.Set("address", "1 Main St")

	resp, err := app.Test(formRequest("/venues/create", values))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "An error occurred. Venue The Spot could not be listed.", env.Message)
}

func TestEditVenueSubmissionSuccess(t *testing.T) {
	app := newVenueApp(&stubVenueService{})

	values := url.Values{}
	values.Set("name", "The Spot")
	values.Set("city", "Oakland")
	values.Set("state", "CA")
	values.Set("address", "2 Main St")

	resp, err := app.Test(formRequest("/venues/5/edit", values))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "The Venue The Spot has been successfully updated!", env.Message)
	assert.Equal(t, "/venues/5", env.Data["url"])
}

func TestEditVenueSubmissionUpdateFailure(t *testing.T) {
	app := newVenueApp(&stubVenueService{updateErr: assert.AnError})

	values := url.Values{}
	values.Set("name", "The Spot")
	values.Set("city", "Oakland")
	values.Set("state", "CA")
	values.Set("address", "2 Main St")

	resp, err := app.Test(formRequest("/venues/5/edit", values))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "An error has occured and update failed", env.Message)
}

func TestDeleteVenueReturnsBareDeletedPayload(t *testing.T) {
	app := newVenueApp(&stubVenueService{deleted: &models.Venue{ID: 9, Name: "The Spot"}})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/venues/9", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, true, payload["deleted"])
	assert.Equal(t, "/venues", payload["url"])
}

func TestCreateShowSubmissionSuccess(t *testing.T) {
	svc := &stubShowService{}
	app := newShowApp(svc)

	values := url.Values{}
	values.Set("artist_id", "1")
	values.Set("venue_id", "2")
	values.Set("start_time", "2026-09-15 20:00:00")

	resp, err := app.Test(formRequest("/shows/create", values))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Show was successfully listed!", env.Message)
	assert.Equal(t, "/shows", env.Data["url"])
	require.NotNil(t, svc.created)
	assert.Equal(t, uint(1), svc.created.ArtistID)
	assert.Equal(t, 2026, svc.created.StartTime.Year())
}

func TestCreateShowSubmissionBadTimestamp(t *testing.T) {
	app := newShowApp(&stubShowService{})

	values := url.Values{}
	values.Set("artist_id", "1")
	values.Set("venue_id", "2")
	values.Set("start_time", "next tuesday")

	resp, err := app.Test(formRequest("/shows/create", values))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "An error occurred. Show could not be listed.", env.Message)
}

func TestCreateShowSubmissionRequiresIDs(t *testing.T) {
	app := newShowApp(&stubShowService{})

	values := url.Values{}
	values.Set("start_time", "2026-09-15 20:00:00")

	resp, err := app.Test(formRequest("/shows/create", values))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	fieldErrors, ok := env.Data["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fieldErrors, "artist_id")
	assert.Contains(t, fieldErrors, "venue_id")
}
