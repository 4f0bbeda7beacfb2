package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	game_constants "Camaleon/constants/game"
	"Camaleon/middleware"
	"Camaleon/routes"
	"Camaleon/services/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the real routes against an in-memory store and no
// Redis, which the handlers tolerate (broadcast becomes a no-op).
func newTestServer() (*gin.Engine, store.Store) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	s := store.NewMemoryStore(0)
	routes.SetupRoutes(router, s, nil)
	return router, s
}

func guestToken(t *testing.T, playerID, name string) string {
	t.Helper()
	token, err := middleware.IssueGuestToken(playerID, name)
	require.NoError(t, err)
	return token
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createRoom(t *testing.T, router *gin.Engine, token, topic, mode string) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/auth/rooms", token,
		gin.H{"topic": topic, "mode": mode})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	code, _ := decodeBody(t, w)["code"].(string)
	require.NotEmpty(t, code)
	return code
}

func TestGuestEndpoint(t *testing.T) {
	router, _ := newTestServer()

	w := doJSON(router, http.MethodPost, "/guest", "", gin.H{"name": "Lucia"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["player_id"])
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "Lucia", body["name"])

	w = doJSON(router, http.MethodPost, "/guest", "", gin.H{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/guest", "", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthRequired(t *testing.T) {
	router, _ := newTestServer()

	w := doJSON(router, http.MethodPost, "/auth/rooms", "",
		gin.H{"topic": "animals", "mode": game_constants.ModeImpostor})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/auth/rooms", "not-a-token",
		gin.H{"topic": "animals", "mode": game_constants.ModeImpostor})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateRoomValidation(t *testing.T) {
	router, _ := newTestServer()
	token := guestToken(t, "host-1", "Host")

	w := doJSON(router, http.MethodPost, "/auth/rooms", token, gin.H{"topic": "animals"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/auth/rooms", token,
		gin.H{"topic": "animals", "mode": "battle-royale"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/auth/rooms", token,
		gin.H{"topic": "quantum-physics", "mode": game_constants.ModeImpostor})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAndGetRoom(t *testing.T) {
	router, _ := newTestServer()
	token := guestToken(t, "host-1", "Host")

	code := createRoom(t, router, token, "animals", game_constants.ModeImpostor)

	w := doJSON(router, http.MethodGet, "/auth/rooms/"+code, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "host-1", body["host_id"])
	assert.Equal(t, "waiting", body["state"])
	assert.Equal(t, false, body["private"])
	assert.Len(t, body["players"], 1)

	w = doJSON(router, http.MethodGet, "/auth/rooms/ZZZZZZ", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJoinRoom(t *testing.T) {
	router, _ := newTestServer()
	hostToken := guestToken(t, "host-1", "Host")
	code := createRoom(t, router, hostToken, "food", game_constants.ModeSimilar)

	joinToken := guestToken(t, "player-2", "Marta")
	w := doJSON(router, http.MethodPost, "/auth/rooms/join", joinToken, gin.H{"code": code})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["players"], 2)

	// duplicate display name, case-insensitive
	dupToken := guestToken(t, "player-3", "marta")
	w = doJSON(router, http.MethodPost, "/auth/rooms/join", dupToken, gin.H{"code": code})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// joining twice is a no-op
	w = doJSON(router, http.MethodPost, "/auth/rooms/join", joinToken, gin.H{"code": code})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["players"], 2)

	w = doJSON(router, http.MethodPost, "/auth/rooms/join", joinToken, gin.H{"code": "ZZZZZZ"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPrivateRoomPasscode(t *testing.T) {
	router, _ := newTestServer()
	hostToken := guestToken(t, "host-1", "Host")

	w := doJSON(router, http.MethodPost, "/auth/rooms", hostToken,
		gin.H{"topic": "places", "mode": game_constants.ModeSimilar, "passcode": "1234"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	code := body["code"].(string)
	assert.Equal(t, true, body["private"])

	joinToken := guestToken(t, "player-2", "Marta")
	w = doJSON(router, http.MethodPost, "/auth/rooms/join", joinToken, gin.H{"code": code})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/auth/rooms/join", joinToken,
		gin.H{"code": code, "passcode": "wrong"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/auth/rooms/join", joinToken,
		gin.H{"code": code, "passcode": "1234"})
	assert.Equal(t, http.StatusOK, w.Code)

	// members re-join without re-sending the passcode
	w = doJSON(router, http.MethodPost, "/auth/rooms/join", joinToken, gin.H{"code": code})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLeaveRoom(t *testing.T) {
	router, _ := newTestServer()
	hostToken := guestToken(t, "host-1", "Host")
	code := createRoom(t, router, hostToken, "animals", game_constants.ModeSimilar)

	joinToken := guestToken(t, "player-2", "Marta")
	w := doJSON(router, http.MethodPost, "/auth/rooms/join", joinToken, gin.H{"code": code})
	require.Equal(t, http.StatusOK, w.Code)

	// host leaves, hosting passes to the remaining player
	w = doJSON(router, http.MethodPost, "/auth/rooms/leave", hostToken, gin.H{"code": code})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/auth/rooms/"+code, joinToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "player-2", decodeBody(t, w)["host_id"])

	// leaving a room you're not in
	w = doJSON(router, http.MethodPost, "/auth/rooms/leave", hostToken, gin.H{"code": code})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// last player out closes the room
	w = doJSON(router, http.MethodPost, "/auth/rooms/leave", joinToken, gin.H{"code": code})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, http.MethodGet, "/auth/rooms/"+code, joinToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTransferHost(t *testing.T) {
	router, _ := newTestServer()
	hostToken := guestToken(t, "host-1", "Host")
	code := createRoom(t, router, hostToken, "animals", game_constants.ModeSimilar)

	joinToken := guestToken(t, "player-2", "Marta")
	w := doJSON(router, http.MethodPost, "/auth/rooms/join", joinToken, gin.H{"code": code})
	require.Equal(t, http.StatusOK, w.Code)

	// only the host can transfer
	w = doJSON(router, http.MethodPost, "/auth/rooms/transfer-host", joinToken,
		gin.H{"code": code, "new_host_id": "player-2"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/auth/rooms/transfer-host", hostToken,
		gin.H{"code": code, "new_host_id": "player-2"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "player-2", decodeBody(t, w)["host_id"])
}

func TestStartGameGating(t *testing.T) {
	router, _ := newTestServer()
	hostToken := guestToken(t, "host-1", "Host")
	code := createRoom(t, router, hostToken, "sports", game_constants.ModeImpostor)

	joinToken := guestToken(t, "player-2", "Marta")
	w := doJSON(router, http.MethodPost, "/auth/rooms/join", joinToken, gin.H{"code": code})
	require.Equal(t, http.StatusOK, w.Code)

	// not enough players for impostor mode
	for _, tok := range []string{hostToken, joinToken} {
		w = doJSON(router, http.MethodPost, "/auth/rooms/ready", tok,
			gin.H{"code": code, "ready": true})
		require.Equal(t, http.StatusOK, w.Code)
	}
	w = doJSON(router, http.MethodPost, "/auth/rooms/start", hostToken, gin.H{"code": code})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	thirdToken := guestToken(t, "player-3", "Pablo")
	w = doJSON(router, http.MethodPost, "/auth/rooms/join", thirdToken, gin.H{"code": code})
	require.Equal(t, http.StatusOK, w.Code)

	// everyone must be ready
	w = doJSON(router, http.MethodPost, "/auth/rooms/start", hostToken, gin.H{"code": code})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(router, http.MethodPost, "/auth/rooms/ready", thirdToken,
		gin.H{"code": code, "ready": true})
	require.Equal(t, http.StatusOK, w.Code)

	// only the host starts
	w = doJSON(router, http.MethodPost, "/auth/rooms/start", joinToken, gin.H{"code": code})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/auth/rooms/start", hostToken, gin.H{"code": code})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "playing", decodeBody(t, w)["state"])
}

func TestWordsStayHiddenWhilePlaying(t *testing.T) {
	router, s := newTestServer()
	tokens := startImpostorGame(t, router)
	code := roomCodeOf(t, s)

	w := doJSON(router, http.MethodGet, "/auth/rooms/"+code, tokens["host-1"], nil)
	require.Equal(t, http.StatusOK, w.Code)
	players := decodeBody(t, w)["players"].([]interface{})
	for _, raw := range players {
		p := raw.(map[string]interface{})
		if p["id"] == "host-1" {
			assert.NotEmpty(t, p["word"], "viewer sees their own word")
		} else {
			_, leaked := p["word"]
			assert.False(t, leaked, "other players' words must stay hidden")
		}
	}

	// spin order kinds are per-viewer too
	w = doJSON(router, http.MethodGet, "/auth/rooms/"+code+"/game-state", tokens["host-1"], nil)
	require.Equal(t, http.StatusOK, w.Code)
	order := decodeBody(t, w)["spin_order"].([]interface{})
	require.Len(t, order, 3)
	for _, raw := range order {
		e := raw.(map[string]interface{})
		_, hasKind := e["kind"]
		assert.Equal(t, e["player_id"] == "host-1", hasKind)
	}
}

func TestVotingFlow(t *testing.T) {
	router, s := newTestServer()
	tokens := startImpostorGame(t, router)
	code := roomCodeOf(t, s)

	// voting has to be opened by the host first
	w := doJSON(router, http.MethodPost, "/auth/rooms/vote", tokens["host-1"],
		gin.H{"code": code, "target_id": "player-2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/auth/rooms/begin-voting", tokens["player-2"],
		gin.H{"code": code})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/auth/rooms/begin-voting", tokens["host-1"],
		gin.H{"code": code})
	require.Equal(t, http.StatusOK, w.Code)

	// self-votes are rejected
	w = doJSON(router, http.MethodPost, "/auth/rooms/vote", tokens["host-1"],
		gin.H{"code": code, "target_id": "host-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	room, err := s.Get(context.Background(), code)
	require.NoError(t, err)
	impostor := ""
	for _, p := range room.Players {
		if p.WordKind == game_constants.WordKindImpostor {
			impostor = p.ID
		}
	}
	require.NotEmpty(t, impostor)

	// everyone piles on the impostor; the impostor votes someone else
	var last *httptest.ResponseRecorder
	for id, tok := range tokens {
		target := impostor
		if id == impostor {
			for other := range tokens {
				if other != impostor {
					target = other
					break
				}
			}
		}
		last = doJSON(router, http.MethodPost, "/auth/rooms/vote", tok,
			gin.H{"code": code, "target_id": target})
		require.Equal(t, http.StatusOK, last.Code, last.Body.String())
	}

	body := decodeBody(t, last)
	assert.Equal(t, true, body["resolved"])
	assert.Equal(t, impostor, body["eliminated"])
	assert.Equal(t, true, body["game_over"])
	assert.Equal(t, "crew", body["winner"])

	// finished rooms reveal everything
	w = doJSON(router, http.MethodGet, "/auth/rooms/"+code, tokens["player-2"], nil)
	require.Equal(t, http.StatusOK, w.Code)
	finished := decodeBody(t, w)
	assert.Equal(t, "finished", finished["state"])
	assert.NotEmpty(t, finished["secret_word"])
	for _, raw := range finished["players"].([]interface{}) {
		p := raw.(map[string]interface{})
		assert.Contains(t, p, "word")
	}
}

func TestEmote(t *testing.T) {
	router, _ := newTestServer()
	hostToken := guestToken(t, "host-1", "Host")
	code := createRoom(t, router, hostToken, "objects", game_constants.ModeSimilar)

	w := doJSON(router, http.MethodPost, "/auth/rooms/emote", hostToken,
		gin.H{"code": code, "emote": "🎉"})
	assert.Equal(t, http.StatusOK, w.Code)

	strangerToken := guestToken(t, "stranger", "Ana")
	w = doJSON(router, http.MethodPost, "/auth/rooms/emote", strangerToken,
		gin.H{"code": code, "emote": "🎉"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRooms(t *testing.T) {
	router, _ := newTestServer()
	token := guestToken(t, "host-1", "Host")

	createRoom(t, router, token, "animals", game_constants.ModeSimilar)

	w := doJSON(router, http.MethodGet, "/auth/rooms", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, float64(1), list[0]["player_count"])
}

func TestRoomQR(t *testing.T) {
	router, _ := newTestServer()
	token := guestToken(t, "host-1", "Host")
	code := createRoom(t, router, token, "animals", game_constants.ModeSimilar)

	w := doJSON(router, http.MethodGet, "/rooms/"+code+"/qr", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())

	w = doJSON(router, http.MethodGet, "/rooms/ZZZZZZ/qr", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// startImpostorGame creates a 3-player impostor game and starts it,
// returning each player's token keyed by player id.
func startImpostorGame(t *testing.T, router *gin.Engine) map[string]string {
	t.Helper()
	tokens := map[string]string{
		"host-1":   guestToken(t, "host-1", "Host"),
		"player-2": guestToken(t, "player-2", "Marta"),
		"player-3": guestToken(t, "player-3", "Pablo"),
	}

	code := createRoom(t, router, tokens["host-1"], "animals", game_constants.ModeImpostor)
	for _, id := range []string{"player-2", "player-3"} {
		w := doJSON(router, http.MethodPost, "/auth/rooms/join", tokens[id], gin.H{"code": code})
		require.Equal(t, http.StatusOK, w.Code)
	}
	for _, tok := range tokens {
		w := doJSON(router, http.MethodPost, "/auth/rooms/ready", tok,
			gin.H{"code": code, "ready": true})
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := doJSON(router, http.MethodPost, "/auth/rooms/start", tokens["host-1"], gin.H{"code": code})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return tokens
}

// roomCodeOf fetches the only room in the store
func roomCodeOf(t *testing.T, s store.Store) string {
	t.Helper()
	rooms, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	return rooms[0].Code
}
