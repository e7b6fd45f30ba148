package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Compass/internal/dto"
	"github.com/lshigami/Compass/internal/service"
	"github.com/rs/zerolog/log"
)

type AssessmentController struct {
	assessmentService service.AssessmentService
}

func NewAssessmentController(assessmentService service.AssessmentService) *AssessmentController {
	return &AssessmentController{assessmentService: assessmentService}
}

// ListTests godoc
// @Summary (User) List all available tests
// @Description Get a list of tests with question counts. Optional filters by test type and name substring.
// @Tags User - Tests
// @Produce json
// @Param test_type query string false "Filter by test type (general, missions)"
// @Param name query string false "Filter by test name substring"
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *AssessmentController) ListTests(ctx *gin.Context) {
	testType := ctx.Query("test_type")
	nameFilter := ctx.Query("name")

	tests, err := c.assessmentService.ListTests(testType, nameFilter)
	if err != nil {
		log.Error().Err(err).Msg("User ListTests: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve tests", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary (User) Get details of a specific test
// @Description Get full details of a test, including its questions in display order with their options.
// @Tags User - Tests
// @Produce json
// @Param test_id path string true "Test ID (UUID)"
// @Success 200 {object} dto.TestDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id} [get]
func (c *AssessmentController) GetTestDetails(ctx *gin.Context) {
	testID := ctx.Param("test_id")

	testDetails, err := c.assessmentService.GetTestDetails(testID)
	if err != nil {
		log.Warn().Err(err).Str("testID", testID).Msg("User GetTestDetails: Test not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, testDetails)
}
