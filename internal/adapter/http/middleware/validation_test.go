package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoParams reports the path and query values the handler observed.
func echoParams(names ...string) echo.HandlerFunc {
	return func(c echo.Context) error {
		seen := map[string]string{}
		for _, name := range names {
			if v := c.Param(name); v != "" {
				seen["path."+name] = v
			}
			if v := c.QueryParam(name); v != "" {
				seen["query."+name] = v
			}
		}
		return c.JSON(http.StatusOK, seen)
	}
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestValidateRequiredParams(t *testing.T) {
	e := echo.New()
	e.GET("/fares", echoParams(), RequireQueryParams("from", "to", "startDate"))
	e.GET("/airports/:code", echoParams(), RequirePathParams("code"))

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantMsg    string
	}{
		{"all present", "/fares?from=DUB&to=STN&startDate=2024-06-15", http.StatusOK, ""},
		{"one missing", "/fares?from=DUB&startDate=2024-06-15", http.StatusBadRequest, "The following parameters are required: to"},
		{"empty counts as missing", "/fares?from=&to=STN", http.StatusBadRequest, "The following parameters are required: from, startDate"},
		{"none present", "/fares", http.StatusBadRequest, "The following parameters are required: from, to, startDate"},
		{"path param present", "/airports/DUB", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				body := decodeBody(t, rec)
				assert.Equal(t, "Missing required parameters", body["error"])
				assert.Equal(t, tt.wantMsg, body["message"])
			}
		})
	}
}

func TestValidateIATAParams(t *testing.T) {
	e := echo.New()
	e.GET("/airports/:code", echoParams("code"), ValidateIATAParams("code"))
	e.GET("/airports/:from/routes/:to", echoParams("from", "to"), ValidateIATAParams("from", "to"))
	e.GET("/fares", echoParams("from", "to"), ValidateIATAParams("from", "to"))

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantMsg    string
		wantSeen   map[string]string
	}{
		{
			name:       "uppercase path code",
			target:     "/airports/DUB",
			wantStatus: http.StatusOK,
			wantSeen:   map[string]string{"path.code": "DUB"},
		},
		{
			name:       "lowercase path code is normalised",
			target:     "/airports/dub",
			wantStatus: http.StatusOK,
			wantSeen:   map[string]string{"path.code": "DUB"},
		},
		{
			name:       "percent-encoded path code is decoded",
			target:     "/airports/D%55B",
			wantStatus: http.StatusOK,
			wantSeen:   map[string]string{"path.code": "DUB"},
		},
		{
			name:       "percent-encoded lowercase route codes",
			target:     "/airports/d%75b/routes/%73tn",
			wantStatus: http.StatusOK,
			wantSeen:   map[string]string{"path.from": "DUB", "path.to": "STN"},
		},
		{
			name:       "encoded slash is not a letter",
			target:     "/airports/D%2FB",
			wantStatus: http.StatusBadRequest,
			wantMsg:    "All IATA codes must be exactly 3 characters: code",
		},
		{
			name:       "lowercase query codes are normalised",
			target:     "/fares?from=dub&to=sTn",
			wantStatus: http.StatusOK,
			wantSeen:   map[string]string{"query.from": "DUB", "query.to": "STN"},
		},
		{
			name:       "absent query codes are skipped",
			target:     "/fares?from=DUB",
			wantStatus: http.StatusOK,
			wantSeen:   map[string]string{"query.from": "DUB"},
		},
		{
			name:       "too long",
			target:     "/airports/DUBL",
			wantStatus: http.StatusBadRequest,
			wantMsg:    "All IATA codes must be exactly 3 characters: code",
		},
		{
			name:       "digits",
			target:     "/airports/D1B",
			wantStatus: http.StatusBadRequest,
			wantMsg:    "All IATA codes must be exactly 3 characters: code",
		},
		{
			name:       "both path codes invalid",
			target:     "/airports/DU/routes/STNX",
			wantStatus: http.StatusBadRequest,
			wantMsg:    "All IATA codes must be exactly 3 characters: from, to",
		},
		{
			name:       "one query code invalid",
			target:     "/fares?from=DUB&to=ST",
			wantStatus: http.StatusBadRequest,
			wantMsg:    "All IATA codes must be exactly 3 characters: to",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decodeBody(t, rec)
			if tt.wantMsg != "" {
				assert.Equal(t, "Invalid IATA codes", body["error"])
				assert.Equal(t, tt.wantMsg, body["message"])
				return
			}
			assert.Equal(t, tt.wantSeen, body)
		})
	}
}

func TestValidateDateParams(t *testing.T) {
	e := echo.New()
	e.GET("/flights", echoParams(), ValidateDateParams("dateOut", "dateIn"))

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantMsg    string
	}{
		{"valid dates", "/flights?dateOut=2024-06-15&dateIn=2024-06-20", http.StatusOK, ""},
		{"absent dates are skipped", "/flights", http.StatusOK, ""},
		{"leap day", "/flights?dateOut=2024-02-29", http.StatusOK, ""},
		{"not a leap year", "/flights?dateOut=2023-02-29", http.StatusBadRequest, "Dates must be in YYYY-MM-DD format: dateOut"},
		{"wrong layout", "/flights?dateOut=15-06-2024", http.StatusBadRequest, "Dates must be in YYYY-MM-DD format: dateOut"},
		{"both invalid", "/flights?dateOut=2024-13-01&dateIn=tomorrow", http.StatusBadRequest, "Dates must be in YYYY-MM-DD format: dateOut, dateIn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				body := decodeBody(t, rec)
				assert.Equal(t, "Invalid date format", body["error"])
				assert.Equal(t, tt.wantMsg, body["message"])
			}
		})
	}
}

func TestValidateDateRange(t *testing.T) {
	e := echo.New()
	e.GET("/range", echoParams(), DateRange())

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{"ordered", "/range?startDate=2024-06-01&endDate=2024-06-30", http.StatusOK},
		{"same day", "/range?startDate=2024-06-01&endDate=2024-06-01", http.StatusOK},
		{"inverted", "/range?startDate=2024-07-01&endDate=2024-06-01", http.StatusBadRequest},
		{"end missing", "/range?startDate=2024-07-01", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusBadRequest {
				body := decodeBody(t, rec)
				assert.Equal(t, "Invalid date range", body["error"])
				assert.Equal(t, "Start date must be before or equal to end date", body["message"])
			}
		})
	}
}

func TestValidationChainOrder(t *testing.T) {
	e := echo.New()
	e.GET("/fares/daily-range", echoParams(),
		RequireQueryParams("from", "to", "startDate", "endDate"),
		ValidateIATAParams("from", "to"),
		ValidateDateParams("startDate", "endDate"),
		DateRange(),
	)

	tests := []struct {
		name      string
		target    string
		wantError string
	}{
		{"missing wins over bad code", "/fares/daily-range?from=XX&to=STN&startDate=bad", "Missing required parameters"},
		{"bad code wins over bad date", "/fares/daily-range?from=XX&to=STN&startDate=bad&endDate=2024-06-01", "Invalid IATA codes"},
		{"bad date wins over range", "/fares/daily-range?from=DUB&to=STN&startDate=bad&endDate=2024-06-01", "Invalid date format"},
		{"range last", "/fares/daily-range?from=DUB&to=STN&startDate=2024-07-01&endDate=2024-06-01", "Invalid date range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantError, decodeBody(t, rec)["error"])
		})
	}
}
