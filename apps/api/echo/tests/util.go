package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"

	. "github.com/Eringobraugh/inf80057-assistant-backend/apps/api/echo"
	"github.com/Eringobraugh/inf80057-assistant-backend/core"
	"github.com/Eringobraugh/inf80057-assistant-backend/core/tutor"
	"github.com/Eringobraugh/inf80057-assistant-backend/tests"
)

const allowedOrigin = "https://eringobraugh.github.io"

func testConfig() *core.Config {
	conf := &core.Config{Env: "TEST", TestMode: true, AppName: "assistant-backend", Build: "0.1.0"}
	conf.Server.AllowedOrigins = []string{allowedOrigin}
	conf.Server.DisableReqLogs = true
	return conf
}

func setup(t *testing.T, svc tutor.ServiceInterface) (*Server, *testutil.Logger) {
	t.Helper()

	logger := testutil.NewLogger()
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)

	return NewServer(ServerDeps{
		Conf:       testConfig(),
		Logger:     logger,
		TutorSvc:   svc,
		Validate:   validate,
		Translator: translator,
	}), logger
}

type httpErr struct {
	Detail interface{} `json:"detail"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()

	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
