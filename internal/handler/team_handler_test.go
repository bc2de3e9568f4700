package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Dodga010/KP/internal/models"
	"github.com/Dodga010/KP/internal/service"
	"github.com/Dodga010/KP/pkg/response"
)

type fakeTeamSource struct {
	rows []models.TeamGameRow
}

func (f *fakeTeamSource) GetGameRows() ([]models.TeamGameRow, error) {
	return f.rows, nil
}

func newTeamRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	source := &fakeTeamSource{rows: []models.TeamGameRow{
		{TeamName: "Lions", Stats: map[string]float64{models.StatPoints: 90}},
		{TeamName: "Tigers", Stats: map[string]float64{models.StatPoints: 70}},
	}}
	h := NewTeamHandler(service.NewTeamService(source))

	r := gin.New()
	r.GET("/teams/aggregates", h.GetAggregates)
	r.GET("/teams/head-to-head", h.GetHeadToHead)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	var body response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return w, body
}

func TestGetAggregatesEndpoint(t *testing.T) {
	r := newTeamRouter()

	w, body := doRequest(t, r, "/teams/aggregates")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body.Code != 0 {
		t.Fatalf("expected success envelope, got %+v", body)
	}
}

func TestHeadToHeadEndpoint(t *testing.T) {
	r := newTeamRouter()

	w, _ := doRequest(t, r, "/teams/head-to-head?team1=Lions&team2=Tigers")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestHeadToHeadIdenticalTeams(t *testing.T) {
	r := newTeamRouter()

	w, _ := doRequest(t, r, "/teams/head-to-head?team1=Lions&team2=Lions")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for identical teams, got %d", w.Code)
	}
}

func TestHeadToHeadUnknownTeam(t *testing.T) {
	r := newTeamRouter()

	w, _ := doRequest(t, r, "/teams/head-to-head?team1=Lions&team2=Bears")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown team, got %d", w.Code)
	}
}
