package handlers

import (
	"errors"
	"net/http"

	"farmsync/internal/middleware"
	"farmsync/internal/services"
	"farmsync/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WorkerHandler struct {
	workerService services.WorkerService
	farmService   services.FarmService
}

func NewWorkerHandler(workerService services.WorkerService, farmService services.FarmService) *WorkerHandler {
	return &WorkerHandler{
		workerService: workerService,
		farmService:   farmService,
	}
}

// ownedFarm resolves the :id farm parameter and checks it belongs to the
// signed-in owner. Writes the error response itself on failure.
func (h *WorkerHandler) ownedFarm(c *gin.Context, farmID string) bool {
	session := middleware.SessionFrom(c)
	farm, err := h.farmService.GetFarm(farmID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "farm not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return false
	}
	if farm.OwnerID != session.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return false
	}
	return true
}

func (h *WorkerHandler) ListByFarm(c *gin.Context) {
	farmID := c.Param("id")
	if !h.ownedFarm(c, farmID) {
		return
	}

	workers, err := h.workerService.ListWorkers(farmID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"workers": workers})
}

// Create registers a worker and returns the generated credentials. The
// plaintext password appears only in this response; it must be saved by the
// caller because it is not retrievable afterwards.
func (h *WorkerHandler) Create(c *gin.Context) {
	farmID := c.Param("id")
	if !h.ownedFarm(c, farmID) {
		return
	}

	var req validation.WorkerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session := middleware.SessionFrom(c)
	worker, creds, err := h.workerService.CreateWorker(farmID, session.ID, req)
	if err != nil {
		validationError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"worker":      worker,
		"credentials": creds,
	})
}

func (h *WorkerHandler) Update(c *gin.Context) {
	worker, err := h.workerService.GetWorker(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "worker not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !h.ownedFarm(c, worker.FarmID) {
		return
	}

	var req validation.WorkerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.workerService.UpdateWorker(worker.ID, req)
	if err != nil {
		validationError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"worker": updated})
}

func (h *WorkerHandler) Delete(c *gin.Context) {
	worker, err := h.workerService.GetWorker(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "worker not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !h.ownedFarm(c, worker.FarmID) {
		return
	}

	if err := h.workerService.DeleteWorker(worker.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Dashboard serves the signed-in worker their profile, farm and coworkers.
func (h *WorkerHandler) Dashboard(c *gin.Context) {
	session := middleware.SessionFrom(c)
	dashboard, err := h.workerService.Dashboard(session.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "worker profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
