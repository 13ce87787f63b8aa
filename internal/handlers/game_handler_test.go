package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

func decodeList(t *testing.T, recorder *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var list []map[string]interface{}
	if err := json.NewDecoder(recorder.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode list response: %v", err)
	}
	return list
}

func TestListGamesEndpoint(t *testing.T) {
	mux := newTestMux(t)

	recorder := doRequest(t, mux, "GET", "/api/games", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	games := decodeList(t, recorder)
	if len(games) == 0 {
		t.Fatal("expected seeded games in the catalog")
	}
	for _, game := range games {
		if game["title"] == "" {
			t.Errorf("game missing title: %v", game)
		}
	}
}

func TestCreateAndGetGameEndpoint(t *testing.T) {
	mux := newTestMux(t)

	payload := `{
		"title": "Fracciones Locas",
		"description": "Suma y resta de fracciones",
		"icon": "🍕",
		"color": "#FF5733",
		"difficulty": "Medio",
		"category": "Aritmética"
	}`

	recorder := doRequest(t, mux, "POST", "/api/games", payload)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	created := decodeBody(t, recorder)
	if created["title"] != "Fracciones Locas" {
		t.Errorf("created title = %v", created["title"])
	}

	id, ok := created["id"].(float64)
	if !ok || id == 0 {
		t.Fatalf("created game has no id: %v", created)
	}

	got := doRequest(t, mux, "GET", "/api/games/"+strconv.Itoa(int(id)), "")
	if got.Code != http.StatusOK {
		t.Fatalf("expected status 200 fetching created game, got %d", got.Code)
	}
}

func TestCreateGameValidation(t *testing.T) {
	mux := newTestMux(t)

	recorder := doRequest(t, mux, "POST", "/api/games", `{"title": "Sin Nada"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", recorder.Code)
	}

	body := decodeBody(t, recorder)
	if body["error"] != "Faltan datos requeridos" {
		t.Errorf("error = %v, want Faltan datos requeridos", body["error"])
	}
}

func TestGetGameNotFound(t *testing.T) {
	mux := newTestMux(t)

	recorder := doRequest(t, mux, "GET", "/api/games/9999", "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", recorder.Code)
	}

	bad := doRequest(t, mux, "GET", "/api/games/not-a-number", "")
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for non-numeric id, got %d", bad.Code)
	}
}

func TestDeleteGameHidesFromCatalog(t *testing.T) {
	mux := newTestMux(t)

	recorder := doRequest(t, mux, "DELETE", "/api/games/1", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	games := decodeList(t, doRequest(t, mux, "GET", "/api/games", ""))
	for _, game := range games {
		if game["id"] == float64(1) {
			t.Errorf("soft-deleted game still listed: %v", game)
		}
	}
}

func TestRecordPlayIncrementsPlayers(t *testing.T) {
	mux := newTestMux(t)

	first := doRequest(t, mux, "POST", "/api/games/1/play", "")
	if first.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", first.Code)
	}

	second := doRequest(t, mux, "POST", "/api/games/1/play", "")
	body := decodeBody(t, second)
	if body["players"] != float64(2) {
		t.Errorf("players after two plays = %v, want 2", body["players"])
	}
}
