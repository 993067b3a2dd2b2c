//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"washdesk/internal/domain/user"
	"washdesk/internal/handler/api"
	resdto "washdesk/internal/handler/dto/response"
	"washdesk/internal/usecase/commands"
	"washdesk/tests/common/builder"
	"washdesk/tests/common/httptest"
	"washdesk/tests/common/testutil"
	commandsmock "washdesk/tests/mock/commands"
	queriesmock "washdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	b := builder.NewUserBuilder()
	reqBody := b.BuildRegisterRequestDTO()

	s.Run("success: returns 201 Created with the new account", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.ID, response.ID)
		s.Equal(b.Email, response.Email)
		s.Equal(string(user.RoleStaff), response.Role)
	})

	s.Run("error: 409 when the email is taken", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(nil, commands.ErrEmailAlreadyUsed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "short password", mutate: testutil.Field("password", "short")},
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "unknown role", mutate: testutil.Field("role", "owner")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(http.StatusBadRequest, rec.Code, "body: %s", rec.Body.String())
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	b := builder.NewUserBuilder()
	reqBody := b.BuildLoginRequestDTO()

	s.Run("success: returns a bearer token", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{UserID: b.ID, AccessToken: "token-123"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.ID, response.UserID)
		s.Equal("token-123", response.AccessToken)
		s.Equal("Bearer", response.TokenType)
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid credentials")
	})

	s.Run("error: 401 for an inactive account", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(nil, commands.ErrUserInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid credentials")
	})

	s.Run("login attempt for an unknown user is indistinguishable", func() {
		unknown := builder.NewUserBuilder().With(func(u *builder.UserBuilder) {
			u.ID = uuid.New()
			u.Email = "ghost@example.com"
		}).BuildLoginRequestDTO()

		s.mockCommands.EXPECT().Login(gomock.Any(), unknown).
			Return(nil, commands.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, unknown, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid credentials")
	})
}
