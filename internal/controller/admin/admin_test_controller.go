package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Compass/internal/dto"
	"github.com/lshigami/Compass/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	adminTestService service.AdminTestService
}

func NewAdminTestController(adminTestService service.AdminTestService) *AdminTestController {
	return &AdminTestController{adminTestService: adminTestService}
}

// CreateTest godoc
// @Summary (Admin) Create a new complete test
// @Description Admin creates a test with its full question list. Question and option IDs are client-supplied UUIDs; the test ID is generated.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param test_data body dto.TestCreateDTO true "Test creation data including all questions and options"
// @Success 201 {object} dto.TestDetailDTO "Test created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data (unknown question type, duplicate display order, missing fields)"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateTest: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	testResp, err := c.adminTestService.CreateTest(req)
	if err != nil {
		log.Error().Err(err).Str("testName", req.TestName).Msg("Admin CreateTest: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create test", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, testResp)
}
