package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Light-Brands/local-ide-sub000/internal/persist"
	"github.com/Light-Brands/local-ide-sub000/internal/types"
	"github.com/Light-Brands/local-ide-sub000/internal/workspace"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	ws    *workspace.Manager
	store persist.Store
}

// NewHandlers creates a new handler set.
func NewHandlers(ws *workspace.Manager, store persist.Store) *Handlers {
	return &Handlers{ws: ws, store: store}
}

// Root handles the liveness check.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Workspace Engine (Go)",
		"version": "0.2.0",
	})
}

// Health reports engine state counts.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"hydrated": h.ws.Hydrated(),
		"sessions": len(h.ws.Chats()),
		"tabs":     len(h.ws.Tabs()),
		"ports":    len(h.ws.Ports()),
	})
}

// State returns the full read model.
func (h *Handlers) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.ws.View())
}

// LegacyState returns the pre-rework layout shape.
func (h *Handlers) LegacyState(c *gin.Context) {
	c.JSON(http.StatusOK, h.ws.LegacyLayout())
}

func parsePaneParam(c *gin.Context) (types.PaneID, bool) {
	id, ok := types.ParsePane(c.Param("pane"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown pane: " + c.Param("pane")})
	}
	return id, ok
}

// TogglePane flips pane visibility. A toggle rejected by the cap is not an
// error; the response carries the cap flag for UI feedback.
func (h *Handlers) TogglePane(c *gin.Context) {
	id, ok := parsePaneParam(c)
	if !ok {
		return
	}

	toggled := h.ws.TogglePane(id)
	c.JSON(http.StatusOK, gin.H{
		"toggled":     toggled,
		"cap_reached": h.ws.PaneCapReached(),
	})
}

// ReorderPanes replaces the pane order.
func (h *Handlers) ReorderPanes(c *gin.Context) {
	var req struct {
		Order []string `json:"order" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids := make([]types.PaneID, 0, len(req.Order))
	for _, name := range req.Order {
		id, ok := types.ParsePane(name)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown pane: " + name})
			return
		}
		ids = append(ids, id)
	}

	if err := h.ws.ReorderPanes(ids); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": req.Order})
}

// SetPaneWidth stores a desktop resize hint.
func (h *Handlers) SetPaneWidth(c *gin.Context) {
	id, ok := parsePaneParam(c)
	if !ok {
		return
	}

	var req struct {
		Width int `json:"width" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.ws.SetPaneWidth(id, req.Width)
	c.JSON(http.StatusOK, gin.H{"pane": id.String(), "width": req.Width})
}

// RegisterContainer claims a pane for a rendering container.
func (h *Handlers) RegisterContainer(c *gin.Context) {
	id, ok := parsePaneParam(c)
	if !ok {
		return
	}

	var req struct {
		ContainerID string `json:"container_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.ws.RegisterContainer(id, req.ContainerID)
	c.JSON(http.StatusOK, gin.H{"pane": id.String(), "target": h.ws.ResolvePane(id)})
}

// UnregisterContainer releases a pane claim.
func (h *Handlers) UnregisterContainer(c *gin.Context) {
	id, ok := parsePaneParam(c)
	if !ok {
		return
	}

	var req struct {
		ContainerID string `json:"container_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.ws.UnregisterContainer(id, req.ContainerID)
	c.JSON(http.StatusOK, gin.H{"pane": id.String(), "target": h.ws.ResolvePane(id)})
}

// ResolvePane reports where a pane's content renders right now.
func (h *Handlers) ResolvePane(c *gin.Context) {
	id, ok := parsePaneParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"pane": id.String(), "target": h.ws.ResolvePane(id)})
}

// ListChats returns all chat sessions.
func (h *Handlers) ListChats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sessions": h.ws.Chats(),
		"active":   h.ws.ActiveChatID(),
	})
}

// CreateChat starts a new chat session.
func (h *Handlers) CreateChat(c *gin.Context) {
	c.JSON(http.StatusCreated, h.ws.CreateChat())
}

// DeleteChat removes a session. Local removal is immediate; remote teardown
// is dispatched in the background.
func (h *Handlers) DeleteChat(c *gin.Context) {
	id := c.Param("id")
	if !h.ws.DeleteChat(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id, "active": h.ws.ActiveChatID()})
}

// ActivateChat points the active-session pointer.
func (h *Handlers) ActivateChat(c *gin.Context) {
	id := c.Param("id")
	if !h.ws.ActivateChat(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": id})
}

// AppendChatMessage adds to a session transcript.
func (h *Handlers) AppendChatMessage(c *gin.Context) {
	var msg types.ChatMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg.Role == "" || msg.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role and content are required"})
		return
	}

	id := c.Param("id")
	if !h.ws.AppendChatMessage(id, msg) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": id})
}

// RenameChat sets a session display name.
func (h *Handlers) RenameChat(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	if !h.ws.RenameChat(id, req.Name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": id, "name": req.Name})
}

// ListTabs returns all terminal tabs in index order.
func (h *Handlers) ListTabs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tabs":   h.ws.Tabs(),
		"active": h.ws.ActiveTabID(),
	})
}

// OpenTab opens a terminal tab at an explicit index.
func (h *Handlers) OpenTab(c *gin.Context) {
	var req struct {
		BackendID string `json:"backend_id"`
		Index     int    `json:"index"`
		Name      string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.ws.OpenTab(req.BackendID, req.Index, req.Name))
}

// CloseTab removes a tab and any port it started.
func (h *Handlers) CloseTab(c *gin.Context) {
	id := c.Param("id")
	if !h.ws.CloseTab(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "tab not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"closed": id, "active": h.ws.ActiveTabID()})
}

// ActivateTab points the active-tab pointer.
func (h *Handlers) ActivateTab(c *gin.Context) {
	id := c.Param("id")
	if !h.ws.ActivateTab(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "tab not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": id})
}

// SetTabMeta records the workspace/branch a tab is attached to.
func (h *Handlers) SetTabMeta(c *gin.Context) {
	var req struct {
		Workspace string `json:"workspace"`
		Branch    string `json:"branch"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	if !h.ws.SetTabMeta(id, req.Workspace, req.Branch) {
		c.JSON(http.StatusNotFound, gin.H{"error": "tab not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tab": id})
}

// ListPorts returns the port registry.
func (h *Handlers) ListPorts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ports":    h.ws.Ports(),
		"selected": h.ws.SelectedPort(),
	})
}

// SelectPort chooses the previewed port.
func (h *Handlers) SelectPort(c *gin.Context) {
	var req struct {
		Port int `json:"port" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.ws.SelectPort(req.Port) {
		c.JSON(http.StatusNotFound, gin.H{"error": "port not in registry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": req.Port})
}

// StartPort records an explicit start event from the terminal subsystem.
func (h *Handlers) StartPort(c *gin.Context) {
	var req struct {
		Port  int     `json:"port" binding:"required"`
		Label string  `json:"label"`
		TabID *string `json:"tab_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ws.MarkPortStarted(req.Port, req.Label, req.TabID)
	c.JSON(http.StatusOK, gin.H{"port": req.Port})
}

// StopPort removes an explicitly started port.
func (h *Handlers) StopPort(c *gin.Context) {
	var req struct {
		Port int `json:"port" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ws.ClearPortStarted(req.Port)
	c.JSON(http.StatusOK, gin.H{"port": req.Port})
}

// MobileState returns the mobile surface state.
func (h *Handlers) MobileState(c *gin.Context) {
	c.JSON(http.StatusOK, h.ws.MobileState())
}

// MobileSwipe applies a drag gesture along one axis.
func (h *Handlers) MobileSwipe(c *gin.Context) {
	var req struct {
		Axis     string  `json:"axis" binding:"required"`
		Distance float64 `json:"distance"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Axis {
	case "vertical":
		h.ws.MobileSwipeVertical(req.Distance)
	case "horizontal":
		h.ws.MobileSwipeHorizontal(req.Distance)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "axis must be vertical or horizontal"})
		return
	}
	c.JSON(http.StatusOK, h.ws.MobileState())
}

// MobileDoubleTap toggles the secondary zone fullscreen/half.
func (h *Handlers) MobileDoubleTap(c *gin.Context) {
	h.ws.MobileDoubleTap()
	c.JSON(http.StatusOK, h.ws.MobileState())
}

// MobileStep raises or lowers the secondary zone one tier.
func (h *Handlers) MobileStep(c *gin.Context) {
	var req struct {
		Direction string `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Direction {
	case "up":
		h.ws.MobileStep(true)
	case "down":
		h.ws.MobileStep(false)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be up or down"})
		return
	}
	c.JSON(http.StatusOK, h.ws.MobileState())
}

// MobileSetView jumps to a primary view.
func (h *Handlers) MobileSetView(c *gin.Context) {
	var req struct {
		View string `json:"view" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ws.MobileSetView(types.PrimaryView(req.View))
	c.JSON(http.StatusOK, h.ws.MobileState())
}

// MobileFocusTab focuses a secondary-zone tab.
func (h *Handlers) MobileFocusTab(c *gin.Context) {
	var req struct {
		Tab string `json:"tab" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ws.MobileFocusTab(types.SheetTab(req.Tab))
	c.JSON(http.StatusOK, h.ws.MobileState())
}

// ObserveProject records the active project identity. A switch between two
// non-empty projects wipes ephemeral state.
func (h *Handlers) ObserveProject(c *gin.Context) {
	var req struct {
		Owner string `json:"owner"`
		Repo  string `json:"repo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wiped := h.ws.ObserveProject(req.Owner, req.Repo)
	c.JSON(http.StatusOK, gin.H{
		"project": h.ws.Project(),
		"wiped":   wiped,
	})
}

// ResetProject wipes ephemeral project state explicitly.
func (h *Handlers) ResetProject(c *gin.Context) {
	h.ws.ResetProjectState()
	c.JSON(http.StatusOK, gin.H{"reset": true})
}

// OpenFile adds a file to the open set.
func (h *Handlers) OpenFile(c *gin.Context) {
	var req struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ws.OpenEditorFile(req.Path)
	c.JSON(http.StatusOK, gin.H{"path": req.Path})
}

// CloseFile drops a file from the open set.
func (h *Handlers) CloseFile(c *gin.Context) {
	var req struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ws.CloseEditorFile(req.Path)
	c.JSON(http.StatusOK, gin.H{"path": req.Path})
}

// MarkFileDirty flags unsaved editor changes.
func (h *Handlers) MarkFileDirty(c *gin.Context) {
	var req struct {
		Path  string `json:"path" binding:"required"`
		Dirty bool   `json:"dirty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ws.MarkFileDirty(req.Path, req.Dirty)
	c.JSON(http.StatusOK, gin.H{"path": req.Path, "dirty": req.Dirty})
}

// RecordQuery appends to the database query history.
func (h *Handlers) RecordQuery(c *gin.Context) {
	var req struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ws.RecordQuery(req.Query)
	c.JSON(http.StatusOK, gin.H{"recorded": true})
}

// GetSettings returns user preferences.
func (h *Handlers) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.ws.Settings())
}

// UpdateSettings replaces user preferences.
func (h *Handlers) UpdateSettings(c *gin.Context) {
	var s types.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ws.UpdateSettings(s)
	c.JSON(http.StatusOK, s)
}

// CompleteOnboarding records onboarding completion.
func (h *Handlers) CompleteOnboarding(c *gin.Context) {
	h.ws.SetOnboardingDone(true)
	c.JSON(http.StatusOK, gin.H{"onboarding_done": true})
}

// GetIntegrations returns the connection records from the last background
// status fetch.
func (h *Handlers) GetIntegrations(c *gin.Context) {
	c.JSON(http.StatusOK, h.ws.Integrations())
}

// SelectDeployTarget records the chosen deployment target.
func (h *Handlers) SelectDeployTarget(c *gin.Context) {
	var req struct {
		Target string `json:"target" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ws.SelectDeployTarget(req.Target)
	c.JSON(http.StatusOK, gin.H{"target": req.Target})
}

// SaveSnapshot writes the durable subset to storage.
func (h *Handlers) SaveSnapshot(c *gin.Context) {
	snap := h.ws.Snapshot()
	if err := h.store.Save(snap); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved_at": snap.SavedAt, "version": snap.Version})
}

// RestoreSnapshot re-hydrates from storage on demand.
func (h *Handlers) RestoreSnapshot(c *gin.Context) {
	snap, found, err := h.store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if found {
		h.ws.Hydrate(snap)
	} else {
		h.ws.Hydrate(nil)
	}
	c.JSON(http.StatusOK, gin.H{"restored": found})
}
