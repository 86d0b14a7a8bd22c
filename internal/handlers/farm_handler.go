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

type FarmHandler struct {
	farmService services.FarmService
}

func NewFarmHandler(farmService services.FarmService) *FarmHandler {
	return &FarmHandler{farmService: farmService}
}

func (h *FarmHandler) List(c *gin.Context) {
	session := middleware.SessionFrom(c)
	farms, err := h.farmService.ListFarms(session.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"farms": farms})
}

func (h *FarmHandler) Create(c *gin.Context) {
	var req validation.FarmInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session := middleware.SessionFrom(c)
	farm, err := h.farmService.CreateFarm(session.ID, req)
	if err != nil {
		validationError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"farm": farm})
}

func (h *FarmHandler) Get(c *gin.Context) {
	session := middleware.SessionFrom(c)
	farm, err := h.farmService.GetFarm(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "farm not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if farm.OwnerID != session.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"farm": farm})
}

func (h *FarmHandler) Update(c *gin.Context) {
	var req validation.FarmInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session := middleware.SessionFrom(c)
	farm, err := h.farmService.UpdateFarm(c.Param("id"), session.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "farm not found"})
		case errors.Is(err, services.ErrNotFarmOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			validationError(c, err, http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"farm": farm})
}

// Delete deactivates the farm; the row itself is retained.
func (h *FarmHandler) Delete(c *gin.Context) {
	session := middleware.SessionFrom(c)
	if err := h.farmService.DeactivateFarm(c.Param("id"), session.ID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "farm not found"})
		case errors.Is(err, services.ErrNotFarmOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
