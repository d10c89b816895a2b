package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/financeira-app/gf_backend/internal/apperrors"
	"github.com/financeira-app/gf_backend/internal/core/domain"
	portssvc "github.com/financeira-app/gf_backend/internal/core/ports/services"
	"github.com/financeira-app/gf_backend/internal/dto"
	"github.com/financeira-app/gf_backend/internal/handlers"
	"github.com/financeira-app/gf_backend/internal/middleware"
	"github.com/financeira-app/gf_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Test Suite ---
type CategoryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCategoryService
	jwtSecret   string
	userID      string
	token       string
}

func (suite *CategoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockCategoryService)
	suite.jwtSecret = "test-secret"
	suite.userID = uuid.NewString()

	token, err := utils.GenerateJWT(suite.userID, suite.jwtSecret, time.Hour, "gf-backend")
	suite.Require().NoError(err)
	suite.token = token

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	h := handlers.NewCategoryHandler(suite.mockService)
	categories := suite.router.Group("/api/v1/categories")
	categories.GET("/:id", h.GetCategory)
	categories.GET("", h.ListCategories)
}

func (suite *CategoryHandlerTestSuite) doRequest(path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CategoryHandlerTestSuite) TestGetCategory_Success() {
	categoryID := uuid.NewString()
	category := &domain.Category{
		CategoryID:  categoryID,
		UserID:      suite.userID,
		Name:        "Mercado",
		Description: "Compras do mês",
	}
	suite.mockService.On("GetCategoryByID", mock.Anything, suite.userID, categoryID).Return(category, nil).Once()

	w := suite.doRequest("/api/v1/categories/" + categoryID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CategoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(categoryID, resp.CategoryID)
	suite.Equal("Mercado", resp.Name)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestGetCategory_NotFound() {
	categoryID := uuid.NewString()
	suite.mockService.On("GetCategoryByID", mock.Anything, suite.userID, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest("/api/v1/categories/" + categoryID)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestGetCategory_Forbidden() {
	categoryID := uuid.NewString()
	suite.mockService.On("GetCategoryByID", mock.Anything, suite.userID, categoryID).Return(nil, apperrors.ErrForbidden).Once()

	w := suite.doRequest("/api/v1/categories/" + categoryID)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestListCategories_Success() {
	categories := []domain.Category{
		{CategoryID: uuid.NewString(), UserID: suite.userID, Name: "Mercado"},
		{CategoryID: uuid.NewString(), UserID: suite.userID, Name: "Transporte"},
	}
	suite.mockService.On("ListCategories", mock.Anything, suite.userID).Return(categories, nil).Once()

	w := suite.doRequest("/api/v1/categories")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.CategoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("Mercado", resp[0].Name)
}

func TestCategoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}
