package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/availability"
	"doctorsportal/services/catalog"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	Availability availability.AvailabilityService
	Catalog      catalog.CatalogService
	DateLayout   string
}

func NewAvailabilityHandler(avail availability.AvailabilityService, catalogSvc catalog.CatalogService, dateLayout string) *AvailabilityHandler {
	return &AvailabilityHandler{Availability: avail, Catalog: catalogSvc, DateLayout: dateLayout}
}

// GetServiceOptions handles GET /appointmentServicesOptions?date=.
// Every offering is returned with only the slots still free on that date.
func (h *AvailabilityHandler) GetServiceOptions(c *gin.Context) {
	date, err := utils.ValidateDate(c.Query("date"), h.DateLayout)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}
	options, err := h.Availability.ComputeAvailability(c.Request.Context(), date)
	if err != nil {
		getLogger(c).Error("availability computation failed", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load available services", err.Error())
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetSpecialities handles GET /appointmentSpeciality.
func (h *AvailabilityHandler) GetSpecialities(c *gin.Context) {
	names, err := h.Catalog.ListSpecialities(c.Request.Context())
	if err != nil {
		getLogger(c).Error("speciality listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load specialities", err.Error())
		return
	}
	c.JSON(http.StatusOK, names)
}

// AddServiceOffering handles POST /appointmentServices.
func (h *AvailabilityHandler) AddServiceOffering(c *gin.Context) {
	var offering models.ServiceOffering
	if err := c.ShouldBindJSON(&offering); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service offering", err.Error())
		return
	}
	res, err := h.Catalog.AddOffering(c.Request.Context(), offering)
	if err != nil {
		if errors.Is(err, catalog.ErrDuplicateService) {
			utils.JSONError(c, http.StatusConflict, err.Error(), offering.Name)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, res)
}
