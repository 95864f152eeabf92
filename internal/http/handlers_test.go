package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Light-Brands/local-ide-sub000/internal/workspace"
)

func newTestRouter() (*gin.Engine, *workspace.Manager) {
	gin.SetMode(gin.TestMode)
	ws := workspace.NewManager(workspace.Options{HomePort: 3000})
	h := NewHandlers(ws, nil)

	r := gin.New()
	r.GET("/state", h.State)
	r.GET("/state/legacy", h.LegacyState)
	r.POST("/panes/:pane/toggle", h.TogglePane)
	r.PUT("/panes/order", h.ReorderPanes)
	r.POST("/chats", h.CreateChat)
	r.DELETE("/chats/:id", h.DeleteChat)
	r.POST("/ports/select", h.SelectPort)
	return r, ws
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTogglePaneReportsCapFlag(t *testing.T) {
	r, _ := newTestRouter()

	w := do(t, r, "POST", "/panes/terminal/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Toggled    bool `json:"toggled"`
		CapReached bool `json:"cap_reached"`
	}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Toggled)
	assert.False(t, resp.CapReached)
}

func TestTogglePaneUnknownName(t *testing.T) {
	r, _ := newTestRouter()
	w := do(t, r, "POST", "/panes/mailbox/toggle", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReorderRejectsPartialSet(t *testing.T) {
	r, _ := newTestRouter()
	w := do(t, r, "PUT", "/panes/order", `{"order":["editor","chat"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMissingChatIs404(t *testing.T) {
	r, _ := newTestRouter()
	w := do(t, r, "DELETE", "/chats/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSelectUnknownPortIs404(t *testing.T) {
	r, _ := newTestRouter()
	w := do(t, r, "POST", "/ports/select", `{"port":9999}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStateIncludesHomePort(t *testing.T) {
	r, _ := newTestRouter()
	w := do(t, r, "GET", "/state", "")
	require.Equal(t, http.StatusOK, w.Code)

	var view workspace.StateView
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Ports, 1)
	assert.Equal(t, 3000, view.Ports[0].Port)
}
