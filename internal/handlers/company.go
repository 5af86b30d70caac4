package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spread/internal/middleware"
	"spread/internal/models"
	"spread/internal/services"
	"spread/internal/utils"
)

type CompanyHandler struct {
	facade *services.Facade
}

func NewCompanyHandler(f *services.Facade) *CompanyHandler {
	return &CompanyHandler{facade: f}
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var in services.CompanyInput
	if !bindJSON(c, &in) {
		return
	}
	company, err := h.facade.CreateCompany(c.Request.Context(), middleware.ActorID(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	company, err := h.facade.GetCompany(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// Apply submits the actor's resume as a job application.
func (h *CompanyHandler) Apply(c *gin.Context) {
	var in struct {
		ResumeID uint `json:"resume_id"`
	}
	if !bindJSON(c, &in) {
		return
	}
	companyID := utils.StringToUint(c.Param("id"))
	changed, err := h.facade.ApplyForJob(c.Request.Context(), middleware.ActorID(c), companyID, in.ResumeID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

func (h *CompanyHandler) Withdraw(c *gin.Context) {
	var in struct {
		ResumeID uint `json:"resume_id"`
	}
	if !bindJSON(c, &in) {
		return
	}
	companyID := utils.StringToUint(c.Param("id"))
	changed, err := h.facade.WithdrawApplication(c.Request.Context(), middleware.ActorID(c), companyID, in.ResumeID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

func (h *CompanyHandler) Hire(c *gin.Context) {
	var in struct {
		ResumeID uint `json:"resume_id"`
	}
	if !bindJSON(c, &in) {
		return
	}
	companyID := utils.StringToUint(c.Param("id"))
	err := h.facade.Hire(c.Request.Context(), middleware.ActorID(c), companyID, in.ResumeID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hired": true})
}

func (h *CompanyHandler) UpsertInventory(c *gin.Context) {
	var in models.InventoryLine
	if !bindJSON(c, &in) {
		return
	}
	companyID := utils.StringToUint(c.Param("id"))
	company, err := h.facade.UpsertInventoryLine(c.Request.Context(), middleware.ActorID(c), companyID, c.Param("list"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) RemoveInventory(c *gin.Context) {
	companyID := utils.StringToUint(c.Param("id"))
	company, err := h.facade.RemoveInventoryLine(c.Request.Context(), middleware.ActorID(c), companyID, c.Param("list"), c.Param("itemRef"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}
