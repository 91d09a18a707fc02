package admin

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/celebra-rh/assessment-gateway/internal/apiclient"
	"github.com/celebra-rh/assessment-gateway/internal/controller"
	"github.com/celebra-rh/assessment-gateway/internal/dto"
	"github.com/celebra-rh/assessment-gateway/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DashboardController backs the recruiter dashboard: link generation,
// the paginated result listing, report download, usage metrics and the
// resume review helper.
type DashboardController struct {
	adminSvc  service.AdminService
	linkSvc   service.LinkService
	resumeSvc service.ResumeService
}

func NewDashboardController(adminSvc service.AdminService, linkSvc service.LinkService, resumeSvc service.ResumeService) *DashboardController {
	return &DashboardController{adminSvc: adminSvc, linkSvc: linkSvc, resumeSvc: resumeSvc}
}

// CreateLink godoc
// @Summary Generate a shareable test link
// @Description With test_name set, the link is bound to that participant name upfront; without it, the participant fills their info on first access. copy=true also places the URL on the system clipboard, degrading to copied=false when no clipboard is available.
// @Tags admin
// @Accept json
// @Produce json
// @Param test_type path string true "Test type" Enums(disc, love-languages)
// @Param link body dto.CreateLinkRequest true "Link options"
// @Success 201 {object} dto.GeneratedLinkResponse
// @Failure 400 {object} dto.ErrorResponse "Blank test name"
// @Router /admin/{test_type}/links [post]
func (ctrl *DashboardController) CreateLink(c *gin.Context) {
	testType, ok := controller.BindTestType(c)
	if !ok {
		return
	}
	var req dto.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateLinkRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var (
		resp *dto.GeneratedLinkResponse
		err  error
	)
	if req.TestName != nil {
		resp, err = ctrl.linkSvc.CreateWithParticipant(c.Request.Context(), testType, *req.TestName, req.Copy)
	} else {
		resp, err = ctrl.linkSvc.CreateDeferred(c.Request.Context(), testType, req.Copy)
	}
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListResults godoc
// @Summary Paginated result listing
// @Description Pagination and filtering are delegated to the upstream service. A response that arrives after a newer query was issued for the same test type is discarded with 409.
// @Tags admin
// @Produce json
// @Param test_type path string true "Test type" Enums(disc, love-languages)
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size" default(10)
// @Param name query string false "Name filter"
// @Param profile query string false "Profile filter"
// @Success 200 {object} dto.ResultListResponse
// @Failure 409 {object} dto.ErrorResponse "Superseded by a newer query"
// @Router /admin/{test_type}/results [get]
func (ctrl *DashboardController) ListResults(c *gin.Context) {
	testType, ok := controller.BindTestType(c)
	if !ok {
		return
	}
	query := apiclient.ListQuery{
		Name:    c.Query("name"),
		Profile: c.Query("profile"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		query.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		query.PageSize = limit
	}

	resp, err := ctrl.adminSvc.ListResults(c.Request.Context(), testType, query)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DownloadReport godoc
// @Summary Download a result report PDF
// @Tags admin
// @Produce application/pdf
// @Param test_type path string true "Test type" Enums(disc, love-languages)
// @Param result_id path string true "Result id"
// @Param name query string false "Participant name used in the file name"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /admin/{test_type}/results/{result_id}/report [get]
func (ctrl *DashboardController) DownloadReport(c *gin.Context) {
	testType, ok := controller.BindTestType(c)
	if !ok {
		return
	}
	data, filename, err := ctrl.adminSvc.DownloadReport(c.Request.Context(), testType, c.Param("result_id"), c.Query("name"))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// Metrics godoc
// @Summary Dashboard usage metrics
// @Tags admin
// @Produce json
// @Success 200 {object} dto.MetricsResponse
// @Router /admin/metrics [get]
func (ctrl *DashboardController) Metrics(c *gin.Context) {
	resp, err := ctrl.adminSvc.Metrics(c.Request.Context())
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EnhanceResume godoc
// @Summary Resume review
// @Description Accepts a PDF or DOCX resume and returns an AI-written rewrite suggestion and evaluation.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume file (PDF or DOCX, max 5MB)"
// @Success 200 {object} dto.ResumeEnhanceResponse
// @Failure 400 {object} dto.ErrorResponse "Unsupported file type or file too large"
// @Failure 503 {object} dto.ErrorResponse "Review service not configured"
// @Router /admin/resume/enhance [post]
func (ctrl *DashboardController) EnhanceResume(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read resume upload")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "resume file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "could not open uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "could not read uploaded file"})
		return
	}

	resp, err := ctrl.resumeSvc.Enhance(c.Request.Context(), fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
