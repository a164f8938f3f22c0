package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	referenceRepo "petclinic/database/repository/reference"
	"petclinic/utils"
)

// ReferenceHandler serves the read-only directory data the wizard's
// selectable fields draw from.
type ReferenceHandler struct {
	Repo referenceRepo.ReferenceRepository
}

// NewReferenceHandler wires a handler to the reference repository.
func NewReferenceHandler(repo referenceRepo.ReferenceRepository) *ReferenceHandler {
	return &ReferenceHandler{Repo: repo}
}

// ListDoctors returns the active doctors.
func (h *ReferenceHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Repo.ListDoctors(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get doctors", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// ListServices returns the bookable service offerings.
func (h *ReferenceHandler) ListServices(c *gin.Context) {
	services, err := h.Repo.ListServices(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListAnimalCategories returns the selectable pet categories.
func (h *ReferenceHandler) ListAnimalCategories(c *gin.Context) {
	categories, err := h.Repo.ListAnimalCategories(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get animal categories", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
