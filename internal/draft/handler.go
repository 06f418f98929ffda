package draft

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/tomcat65/philly-wings-sub000/internal/allocation"
	"github.com/tomcat65/philly-wings-sub000/internal/distribution"
)

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	h := &Handler{service: service, hub: hub}
	if hub != nil {
		service.SetNotifier(hub.Broadcast)
	}
	return h
}

func (h *Handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, ErrDraftNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

//
// --------------------------------------------------
// POST /drafts
// --------------------------------------------------
//

func (h *Handler) Create(c *gin.Context) {
	var details *EventDetails
	if c.Request.ContentLength > 0 {
		details = &EventDetails{}
		if err := c.ShouldBindJSON(details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	id, snap := h.service.Start(details)
	c.JSON(http.StatusCreated, gin.H{"draftId": id, "draft": snap})
}

//
// --------------------------------------------------
// GET /drafts/:id
// --------------------------------------------------
//

func (h *Handler) Get(c *gin.Context) {
	snap, err := h.service.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": snap})
}

//
// --------------------------------------------------
// DELETE /drafts/:id
// --------------------------------------------------
//

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.StartOver(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "draft discarded"})
}

//
// --------------------------------------------------
// PUT /drafts/:id/event-details
// --------------------------------------------------
//

func (h *Handler) SetEventDetails(c *gin.Context) {
	var details EventDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snap, err := h.service.SetEventDetails(c.Param("id"), details)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": snap})
}

//
// --------------------------------------------------
// POST /drafts/:id/distribution  (wizard preference)
// --------------------------------------------------
//

func (h *Handler) ApplyPreference(c *gin.Context) {
	var req struct {
		Preference string `json:"preference"`
		GuestCount int    `json:"guestCount"`
		TotalWings int    `json:"totalWings"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.ApplyPreference(
		c.Param("id"),
		req.Preference,
		req.GuestCount,
		req.TotalWings,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if !result.Valid {
		// The caller must pick a bigger package or another
		// preference; the draft was not touched.
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

//
// --------------------------------------------------
// PUT /drafts/:id/distribution  (manual counts)
// --------------------------------------------------
//

func (h *Handler) SetDistribution(c *gin.Context) {
	var dist distribution.WingDistribution
	if err := c.ShouldBindJSON(&dist); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snap, err := h.service.SetDistribution(c.Param("id"), dist)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": snap})
}

//
// --------------------------------------------------
// PUT /drafts/:id/sauces
// --------------------------------------------------
//

func (h *Handler) SelectSauces(c *gin.Context) {
	var req struct {
		SauceIDs []string `json:"sauceIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snap, err := h.service.SelectSauces(c.Request.Context(), c.Param("id"), req.SauceIDs)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": snap})
}

//
// --------------------------------------------------
// POST /drafts/:id/preset
// --------------------------------------------------
//

func (h *Handler) ApplyPreset(c *gin.Context) {
	var req struct {
		Preset string `json:"preset"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snap, err := h.service.ApplyAllocationPreset(c.Param("id"), allocation.Preset(req.Preset))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": snap})
}

//
// --------------------------------------------------
// POST /drafts/:id/assignments/reset
// --------------------------------------------------
//

func (h *Handler) ResetAssignments(c *gin.Context) {
	snap, err := h.service.ResetAssignments(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": snap})
}

//
// --------------------------------------------------
// PATCH /drafts/:id/assignments
// --------------------------------------------------
//

func (h *Handler) EditAssignment(c *gin.Context) {
	var req struct {
		WingType          string  `json:"wingType"`
		SauceID           string  `json:"sauceId"`
		WingCount         *int    `json:"wingCount"`
		ApplicationMethod *string `json:"applicationMethod"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snap, err := h.service.EditAssignment(c.Param("id"), AssignmentEdit{
		WingType:          distribution.WingType(req.WingType),
		SauceID:           req.SauceID,
		WingCount:         req.WingCount,
		ApplicationMethod: req.ApplicationMethod,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": snap})
}

//
// --------------------------------------------------
// GET /drafts/:id/summary
// --------------------------------------------------
//

func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

//
// --------------------------------------------------
// GET /drafts/:id/ws
// --------------------------------------------------
//

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) Watch(c *gin.Context) {
	id := c.Param("id")

	snap, err := h.service.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Add(id, conn)

	// Current state first, then live updates from the hub.
	if msg, err := json.Marshal(snap); err == nil {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.hub.Remove(id, conn)
			return
		}
	}

	go func() {
		defer h.hub.Remove(id, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
