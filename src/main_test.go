package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"tabiway/src/db"
	"tabiway/src/middlewares"
	"tabiway/src/types"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TestSuite struct {
	suite.Suite
	DB         *gorm.DB
	Mock       *sqlmock.Sqlmock
	AdminToken *string
	GuestToken *string
}

func NewMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	return gormDB, mock
}

func (s *TestSuite) SetupSuite() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("bookabledate", bookableDateValidatorFunc)
	}

	d, mock := NewMockDB()
	db.NewDB(d)
	s.DB = d
	s.Mock = &mock

	admin, err := generateJWT("ops@tabiway.example", uuid.NewString(), "admin")
	if err != nil {
		log.Fatalf("Error generating JWT token: %s\n", err.Error())
		return
	}
	s.AdminToken = &admin

	guest, err := generateJWT("guest@example.com", uuid.NewString(), "customer")
	if err != nil {
		log.Fatalf("Error generating JWT token: %s\n", err.Error())
		return
	}
	s.GuestToken = &guest
}

func (s *TestSuite) TearDownSuite() {
	inner, err := s.DB.DB()
	if err != nil {
		log.Printf("Error accessing inner db instance: %s\n", err.Error())
		return
	}
	inner.Close()
}

func (s *TestSuite) TestAdminRoutes() {
	router := setupRouter()
	authorized := apiv1Group(router)
	authorized.Use(middlewares.AuthMiddleware, middlewares.AdminOnly)
	adminHandlers(authorized)

	s.Run("Should reject requests without a token", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/admin/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 401, w.Code)
	})

	s.Run("Should reject tokens without the admin role", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/admin/bookings", nil)
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *s.GuestToken))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 403, w.Code)
	})

	s.Run("Should return the filtered list with a summary", func() {
		mock := *s.Mock
		mock.ExpectQuery(`SELECT (.+) FROM "unified_bookings"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "booking_number"}))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/admin/bookings?status=pending&date_range=week", nil)
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *s.AdminToken))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)

		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		sjson := string(rbytes)
		assert.Equal(s.T(), int64(0), gjson.Get(sjson, "count").Int())
		assert.True(s.T(), gjson.Get(sjson, "summary").Exists())
	})
}

func (s *TestSuite) TestBookingValidation() {
	router := setupRouter()
	open := apiv1Group(router)
	bookingHandlers(open)

	s.Run("Should return a 400 error for an empty body", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader("{}"))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)

		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		errMsg := gjson.Get(string(rbytes), "error").String()
		assert.NotEmpty(s.T(), errMsg)
	})

	s.Run("Should return a 400 error for an unknown service type", func() {
		jbody := map[string]any{
			"service_type": "helicopter",
			"customer": map[string]any{
				"name":  "Test User",
				"email": "someone@example.com",
				"phone": "+81-90-0000-0000",
			},
			"booking_data": map[string]any{},
		}
		sbody, _ := json.Marshal(&jbody)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)

		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		errMsg := gjson.Get(string(rbytes), "error").String()
		assert.Contains(s.T(), errMsg, "service type")
	})

	s.Run("Should reject a scheduled datetime in the past", func() {
		jbody := map[string]any{
			"service_type": string(types.SERVICE_PORTER),
			"customer": map[string]any{
				"name":  "Test User",
				"email": "someone@example.com",
				"phone": "+81-90-0000-0000",
			},
			"booking_data":       map[string]any{},
			"scheduled_datetime": "2020-01-01 09:00:00 +09:00",
		}
		sbody, _ := json.Marshal(&jbody)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})
}

func (s *TestSuite) TestLegacyPorterCreate() {
	router := setupRouter()
	open := apiv1Group(router)
	porterHandlers(open)

	mock := *s.Mock
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectQuery(`INSERT INTO "qr_codes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	jbody := map[string]any{
		"customer_name":  "Test User",
		"customer_email": "someone@example.com",
		"customer_phone": "+81-90-0000-0000",
		"pickup_hotel":   1,
		"dropoff_hotel":  2,
		"luggage_type":   "standard",
		"luggage_count":  2,
		"pickup_date":    "2026-10-01",
	}
	sbody, _ := json.Marshal(&jbody)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/legacy/bookings", strings.NewReader(string(sbody)))
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 201, w.Code)

	rbytes, err := io.ReadAll(w.Body)
	assert.Nil(s.T(), err)
	number := gjson.Get(string(rbytes), "data.booking_number").String()
	assert.True(s.T(), strings.HasPrefix(number, "POR"), "unexpected booking number %q", number)
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Unsetenv("MAINTENANCE_MODE")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	apiv1Group(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestRequestDeadline() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	apiv1.Use(requestTimeoutMiddleware)
	apiv1.GET("/deadline", func(ctx *gin.Context) {
		_, ok := ctx.Request.Context().Deadline()
		ctx.JSON(http.StatusOK, gin.H{"deadline": ok})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/deadline", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
	rbytes, err := io.ReadAll(w.Body)
	assert.Nil(s.T(), err)
	assert.True(s.T(), gjson.Get(string(rbytes), "deadline").Bool())
}

func (s *TestSuite) TestToursRoute() {
	router := setupRouter()
	publicRoutes(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/tours", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)

	rbytes, err := io.ReadAll(w.Body)
	assert.Nil(s.T(), err)
	sjson := string(rbytes)
	assert.Equal(s.T(), int64(6), gjson.Get(sjson, "count").Int())
	assert.NotEmpty(s.T(), gjson.Get(sjson, "data.0.id").String())
}

func (s *TestSuite) TestTrackingLookup() {
	router := setupRouter()
	publicRoutes(router)

	mock := *s.Mock
	mock.ExpectQuery(`SELECT (.+) FROM "unified_bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_number"}))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/track/POR00000000001", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 404, w.Code)
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
