package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contacts-manager/backend/database"
	"contacts-manager/backend/models"
	"contacts-manager/backend/repositories"
	"contacts-manager/backend/services"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const password = "Str0ng#Pass"

type HandlersSuite struct {
	suite.Suite
	app *fiber.App
	h   *Handler
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersSuite))
}

func (s *HandlersSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(":memory:")), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(database.Migrate(db))
	s.T().Cleanup(func() { sqlDB.Close() })

	tokens := services.NewTokenService("handler-test-secret-123", time.Hour, services.NewMemoryRevocationList())
	s.h = NewHandler(db, nil,
		services.NewPersonService(repositories.NewPersonsRepository(db), repositories.NewCountriesRepository(db)),
		services.NewCountriesService(repositories.NewCountriesRepository(db)),
		services.NewAccountService(repositories.NewUsersRepository(db), tokens),
		tokens,
	)
	s.app = fiber.New()
	SetupRoutes(s.app, s.h)
}

func (s *HandlersSuite) do(method, path string, body any, token string) (*http.Response, []byte) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, raw
}

func (s *HandlersSuite) register(email string, admin bool) string {
	req := fiber.Map{
		"email":            email,
		"person_name":      "Test User",
		"phone":            "555 0100",
		"password":         password,
		"confirm_password": password,
	}
	if admin {
		req["user_type"] = "Admin"
	}
	resp, body := s.do(http.MethodPost, "/api/account/register", req, "")
	s.Require().Equal(http.StatusCreated, resp.StatusCode, string(body))

	var res services.LoginResult
	s.Require().NoError(json.Unmarshal(body, &res))
	return res.Token
}

func (s *HandlersSuite) addCountry(token, name string) uint {
	resp, body := s.do(http.MethodPost, "/api/countries", fiber.Map{"name": name}, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, string(body))
	var c models.CountryResponse
	s.Require().NoError(json.Unmarshal(body, &c))
	return c.ID
}

func (s *HandlersSuite) addPerson(token, name string, countryID uint) models.PersonResponse {
	resp, body := s.do(http.MethodPost, "/api/persons", fiber.Map{
		"name":          name,
		"email":         name + "@example.com",
		"date_of_birth": "1990-04-12",
		"country_id":    countryID,
	}, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, string(body))
	var p models.PersonResponse
	s.Require().NoError(json.Unmarshal(body, &p))
	return p
}

func (s *HandlersSuite) TestAuthRequired() {
	resp, _ := s.do(http.MethodGet, "/api/persons", nil, "")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.do(http.MethodGet, "/api/persons", nil, "garbage")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *HandlersSuite) TestRegisterLoginLogout() {
	s.register("jane@example.com", false)

	resp, body := s.do(http.MethodPost, "/api/account/register", fiber.Map{
		"email": "jane@example.com", "person_name": "Jane", "phone": "5550100",
		"password": password, "confirm_password": password,
	}, "")
	s.Equal(http.StatusConflict, resp.StatusCode, string(body))

	resp, body = s.do(http.MethodGet, "/api/account/unique-email?email=jane@example.com", nil, "")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`{"available":false}`, string(body))

	resp, _ = s.do(http.MethodPost, "/api/account/login", fiber.Map{"email": "jane@example.com", "password": "Wrong#Pass1"}, "")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp, body = s.do(http.MethodPost, "/api/account/login", fiber.Map{"email": "jane@example.com", "password": password}, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
	var res services.LoginResult
	s.Require().NoError(json.Unmarshal(body, &res))

	resp, _ = s.do(http.MethodPost, "/api/account/logout", nil, res.Token)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, _ = s.do(http.MethodGet, "/api/persons", nil, res.Token)
	s.Equal(http.StatusUnauthorized, resp.StatusCode, "revoked token is rejected")
}

func (s *HandlersSuite) TestLockedAccountIsForbidden() {
	s.register("jane@example.com", false)
	for i := 0; i < 5; i++ {
		s.do(http.MethodPost, "/api/account/login", fiber.Map{"email": "jane@example.com", "password": "Wrong#Pass1"}, "")
	}
	resp, _ := s.do(http.MethodPost, "/api/account/login", fiber.Map{"email": "jane@example.com", "password": password}, "")
	s.Equal(http.StatusForbidden, resp.StatusCode)
}

func (s *HandlersSuite) TestPersonsCRUDAndQuery() {
	token := s.register("jane@example.com", false)
	usa := s.addCountry(token, "USA")
	japan := s.addCountry(token, "Japan")

	bob := s.addPerson(token, "Bob", usa)
	s.addPerson(token, "Alice", japan)
	s.Equal("USA", bob.Country)

	s.Run("list sorted desc", func() {
		resp, body := s.do(http.MethodGet, "/api/persons?sortBy=PersonName&sortOrder=DESC", nil, token)
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		var out struct {
			Count   int                     `json:"count"`
			Persons []models.PersonResponse `json:"persons"`
		}
		s.Require().NoError(json.Unmarshal(body, &out))
		s.Equal(2, out.Count)
		s.Equal("Bob", out.Persons[0].Name)
	})

	s.Run("search", func() {
		resp, body := s.do(http.MethodGet, "/api/persons?searchBy=Country&searchString=jap", nil, token)
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		s.Contains(string(body), `"count":1`)
		s.Contains(string(body), "Alice")
	})

	s.Run("unknown field is a bad request", func() {
		resp, _ := s.do(http.MethodGet, "/api/persons?sortBy=Salary", nil, token)
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		resp, _ = s.do(http.MethodGet, "/api/persons?searchBy=Salary&searchString=x", nil, token)
		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})

	s.Run("validation error", func() {
		resp, body := s.do(http.MethodPost, "/api/persons", fiber.Map{"email": "x@example.com"}, token)
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.JSONEq(`{"error":"Person Name can't be blank"}`, string(body))
	})

	s.Run("unknown country is a bad request", func() {
		resp, body := s.do(http.MethodPost, "/api/persons", fiber.Map{
			"name": "Nomad", "email": "nomad@example.com", "country_id": 999,
		}, token)
		s.Equal(http.StatusBadRequest, resp.StatusCode, string(body))
		s.JSONEq(`{"error":"Country 999 does not exist"}`, string(body))

		resp, _ = s.do(http.MethodPut, "/api/persons/"+itoa(bob.ID), fiber.Map{
			"name": "Bob", "email": "bob@example.com", "country_id": 999,
		}, token)
		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})

	s.Run("update", func() {
		resp, body := s.do(http.MethodPut, "/api/persons/"+itoa(bob.ID), fiber.Map{
			"name": "Robert", "email": "robert@example.com", "phone": "555 0199",
			"date_of_birth": "1980-02-02", "country_id": japan,
		}, token)
		s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
		var p models.PersonResponse
		s.Require().NoError(json.Unmarshal(body, &p))
		s.Equal("Robert", p.Name)
		s.Equal("555 0199", p.Phone)
		s.Equal("Japan", p.Country)
	})

	s.Run("other users see nothing", func() {
		other := s.register("mallory@example.com", false)
		resp, _ := s.do(http.MethodGet, "/api/persons/"+itoa(bob.ID), nil, other)
		s.Equal(http.StatusNotFound, resp.StatusCode)
		resp, _ = s.do(http.MethodDelete, "/api/persons/"+itoa(bob.ID), nil, other)
		s.Equal(http.StatusNotFound, resp.StatusCode)
		resp, _ = s.do(http.MethodPut, "/api/persons/"+itoa(bob.ID), fiber.Map{"name": "X", "email": "x@example.com"}, other)
		s.Equal(http.StatusNotFound, resp.StatusCode)
	})

	s.Run("delete", func() {
		resp, _ := s.do(http.MethodDelete, "/api/persons/"+itoa(bob.ID), nil, token)
		s.Equal(http.StatusOK, resp.StatusCode)
		resp, _ = s.do(http.MethodGet, "/api/persons/"+itoa(bob.ID), nil, token)
		s.Equal(http.StatusNotFound, resp.StatusCode)
	})

	s.Run("bad id", func() {
		resp, _ := s.do(http.MethodGet, "/api/persons/abc", nil, token)
		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})
}

func (s *HandlersSuite) TestExports() {
	token := s.register("jane@example.com", false)
	s.addPerson(token, "Alice", s.addCountry(token, "Norway"))

	cases := []struct {
		path, filename, contentType string
	}{
		{"/api/persons/export/csv", "People.csv", "text/csv; charset=utf-8"},
		{"/api/persons/export/excel", "People.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"/api/persons/export/pdf", "People.pdf", "application/pdf"},
	}
	for _, tc := range cases {
		resp, body := s.do(http.MethodGet, tc.path, nil, token)
		s.Require().Equal(http.StatusOK, resp.StatusCode, tc.path)
		s.Equal(`attachment; filename="`+tc.filename+`"`, resp.Header.Get(fiber.HeaderContentDisposition))
		s.Equal(tc.contentType, resp.Header.Get(fiber.HeaderContentType))
		s.NotEmpty(body)
	}
}

func (s *HandlersSuite) TestCountries() {
	token := s.register("jane@example.com", false)
	id := s.addCountry(token, "USA")

	resp, _ := s.do(http.MethodPost, "/api/countries", fiber.Map{"name": "USA"}, token)
	s.Equal(http.StatusConflict, resp.StatusCode)

	resp, _ = s.do(http.MethodPost, "/api/countries", fiber.Map{}, token)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, body := s.do(http.MethodGet, "/api/countries/"+itoa(id), nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`{"id":`+itoa(id)+`,"name":"USA"}`, string(body))

	resp, _ = s.do(http.MethodGet, "/api/countries/999", nil, token)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *HandlersSuite) upload(token, filename string, content []byte) (*http.Response, []byte) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	s.Require().NoError(err)
	_, err = part.Write(content)
	s.Require().NoError(err)
	s.Require().NoError(w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/countries/upload", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, raw
}

func (s *HandlersSuite) TestUploadCountries() {
	token := s.register("jane@example.com", false)

	f := excelize.NewFile()
	s.Require().NoError(f.SetSheetName("Sheet1", services.CountriesSheet))
	s.Require().NoError(f.SetSheetCol(services.CountriesSheet, "A1", &[]any{"Country", "India", "Chile"}))
	var wb bytes.Buffer
	_, err := f.WriteTo(&wb)
	s.Require().NoError(err)
	f.Close()

	resp, body := s.upload(token, "countries.xlsx", wb.Bytes())
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
	s.Contains(string(body), `"inserted":2`)

	resp, _ = s.upload(token, "countries.csv", []byte("India\n"))
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.upload(token, "empty.xlsx", nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.upload(token, "broken.xlsx", []byte("not a zip"))
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlersSuite) TestAdminRoutes() {
	user := s.register("jane@example.com", false)
	admin := s.register("boss@example.com", true)

	resp, _ := s.do(http.MethodGet, "/api/admin/users", nil, user)
	s.Equal(http.StatusForbidden, resp.StatusCode)

	resp, body := s.do(http.MethodGet, "/api/admin/users", nil, admin)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var users []models.UserSummary
	s.Require().NoError(json.Unmarshal(body, &users))
	s.Len(users, 2)

	resp, body = s.do(http.MethodGet, "/api/admin/events", nil, admin)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(body), "User registered: boss@example.com")
}

func (s *HandlersSuite) TestHealth() {
	resp, body := s.do(http.MethodGet, "/api/health", nil, "")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(body), `"database":"ok"`)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrNullArgument, http.StatusBadRequest},
		{&services.ValidationError{Message: "bad"}, http.StatusBadRequest},
		{services.ErrUnknownField, http.StatusBadRequest},
		{services.ErrDuplicateName, http.StatusConflict},
		{services.ErrEmailTaken, http.StatusConflict},
		{services.ErrNotFound, http.StatusNotFound},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{services.ErrAccountLocked, http.StatusForbidden},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestEventLogKeepsNewestFirst(t *testing.T) {
	log := NewEventLog(2)
	log.Add(EventInfo, "one")
	log.Add(EventInfo, "two")
	log.Add(EventWarning, "three")

	events := log.List()
	require.Len(t, events, 2)
	assert.Equal(t, "three", events[0].Message)
	assert.Equal(t, "two", events[1].Message)
}

func itoa(id uint) string {
	raw, _ := json.Marshal(id)
	return string(raw)
}
