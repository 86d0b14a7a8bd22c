package handlers

import (
	"errors"
	"net/http"

	"farmsync/internal/middleware"
	"farmsync/internal/redis"
	"farmsync/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RecordHandler struct {
	recordService services.RecordService
	farmService   services.FarmService
}

func NewRecordHandler(recordService services.RecordService, farmService services.FarmService) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
		farmService:   farmService,
	}
}

// listScope resolves which farm a listing applies to. Workers always see
// their own farm; owners pass farm_id and must own it. Writes the error
// response itself on failure.
func (h *RecordHandler) listScope(c *gin.Context) (string, bool) {
	session := middleware.SessionFrom(c)
	if session.Kind == redis.KindWorker {
		return session.FarmID, true
	}

	farmID := c.Query("farm_id")
	if farmID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "farm_id is required"})
		return "", false
	}

	farm, err := h.farmService.GetFarm(farmID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "farm not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return "", false
	}
	if farm.OwnerID != session.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return "", false
	}
	return farmID, true
}

func listFilter(c *gin.Context) services.ListFilter {
	return services.ListFilter{
		WorkerID: c.Query("worker_id"),
		From:     c.Query("from"),
		To:       c.Query("to"),
	}
}

func (h *RecordHandler) CreateEggProduction(c *gin.Context) {
	var req services.EggProductionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session := middleware.SessionFrom(c)
	rec, err := h.recordService.RecordEggProduction(session.ID, session.FarmID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"record": rec})
}

func (h *RecordHandler) ListEggProduction(c *gin.Context) {
	farmID, ok := h.listScope(c)
	if !ok {
		return
	}
	recs, err := h.recordService.ListEggProduction(farmID, listFilter(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": recs})
}

func (h *RecordHandler) CreateFeedUsage(c *gin.Context) {
	var req services.FeedUsageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session := middleware.SessionFrom(c)
	rec, err := h.recordService.RecordFeedUsage(session.ID, session.FarmID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"record": rec})
}

func (h *RecordHandler) ListFeedUsage(c *gin.Context) {
	farmID, ok := h.listScope(c)
	if !ok {
		return
	}
	recs, err := h.recordService.ListFeedUsage(farmID, listFilter(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": recs})
}

func (h *RecordHandler) CreateMortality(c *gin.Context) {
	var req services.MortalityInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session := middleware.SessionFrom(c)
	rec, err := h.recordService.RecordMortality(session.ID, session.FarmID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"record": rec})
}

func (h *RecordHandler) ListMortality(c *gin.Context) {
	farmID, ok := h.listScope(c)
	if !ok {
		return
	}
	recs, err := h.recordService.ListMortality(farmID, listFilter(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": recs})
}

func (h *RecordHandler) CreateVaccination(c *gin.Context) {
	var req services.VaccinationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session := middleware.SessionFrom(c)
	rec, err := h.recordService.RecordVaccination(session.ID, session.FarmID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"record": rec})
}

func (h *RecordHandler) ListVaccination(c *gin.Context) {
	farmID, ok := h.listScope(c)
	if !ok {
		return
	}
	recs, err := h.recordService.ListVaccination(farmID, listFilter(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": recs})
}

func (h *RecordHandler) CreateDailyNote(c *gin.Context) {
	var req services.DailyNoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session := middleware.SessionFrom(c)
	rec, err := h.recordService.RecordDailyNote(session.ID, session.FarmID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"record": rec})
}

func (h *RecordHandler) ListDailyNotes(c *gin.Context) {
	farmID, ok := h.listScope(c)
	if !ok {
		return
	}
	recs, err := h.recordService.ListDailyNotes(farmID, listFilter(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": recs})
}
