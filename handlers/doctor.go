package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	DoctorService doctor.DoctorService
}

func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{DoctorService: svc}
}

func (h *DoctorHandler) AddDoctorHandler(c *gin.Context) {
	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid doctor", err.Error())
		return
	}
	res, err := h.DoctorService.AddDoctor(c.Request.Context(), d)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.DoctorService.ListDoctors(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load doctors", err.Error())
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	id := c.Param("id")
	res, err := h.DoctorService.DeleteDoctor(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, doctor.ErrInvalidDoctorID) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}
