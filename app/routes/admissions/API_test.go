package admissions

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devasathya74/pmsrbl/app/config"
	"github.com/devasathya74/pmsrbl/app/store"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.AppConfig = &config.Config{
		Store:    store.NewMemoryStore(),
		Blob:     store.NewMemoryBlobStore(),
		Accounts: store.NewMemoryAccounts(),
	}
	app := fiber.New()
	SetupAdmissionsRoutes(app)
	return app
}

func jsonRequest(method, path string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func validApplication() map[string]string {
	return map[string]string{
		"student_name": "Aarav Sharma",
		"dob":          "2015-06-12",
		"class":        "5",
		"father_name":  "Rajesh Sharma",
		"mother_name":  "Priya Sharma",
		"mobile":       "9876543210",
		"address":      "12 Station Road",
	}
}

func TestSubmitAndTrackAdmission(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admissions/", validApplication()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	code, _ := body["registrationNumber"].(string)
	assert.Regexp(t, `^PMS-\d{5}$`, code)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/admissions/"+code, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "Aarav Sharma", body["student_name"])
}

func TestSubmitAdmissionMissingFields(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admissions/", map[string]string{
		"student_name": "Aarav Sharma",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTrackUnknownCode(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/admissions/PMS-00000", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReviewDecisionConflict(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admissions/", validApplication()))
	require.NoError(t, err)
	code := decodeBody(t, resp)["registrationNumber"].(string)

	resp, err = app.Test(jsonRequest(http.MethodPut, "/api/admissions/"+code+"/status", map[string]string{"status": "approved"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// the decision is final; a second one is a conflict, not an overwrite
	resp, err = app.Test(jsonRequest(http.MethodPut, "/api/admissions/"+code+"/status", map[string]string{"status": "rejected"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPut, "/api/admissions/"+code+"/status", map[string]string{"status": "pending"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListAdmissionsStatusFilter(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admissions/", validApplication()))
	require.NoError(t, err)
	code := decodeBody(t, resp)["registrationNumber"].(string)

	second := validApplication()
	second["student_name"] = "Meera Patel"
	_, err = app.Test(jsonRequest(http.MethodPost, "/api/admissions/", second))
	require.NoError(t, err)

	resp, err = app.Test(jsonRequest(http.MethodPut, "/api/admissions/"+code+"/status", map[string]string{"status": "rejected"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/admissions/?status=pending", nil))
	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["count"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/admissions/", nil))
	require.NoError(t, err)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(2), body["count"])
}
