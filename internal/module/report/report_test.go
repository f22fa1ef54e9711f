package report

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"ngo-admin-system/config"
	"ngo-admin-system/internal/global/httpclient"
	"ngo-admin-system/internal/global/response"
	"ngo-admin-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	httpclient.Init()
	(&ModuleReport{}).Init()
	os.Exit(m.Run())
}

func withAIServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Get()
	old := cfg.AI
	cfg.AI = config.AI{BaseURL: srv.URL, APIKey: "test-key", Model: "test-model"}
	t.Cleanup(func() { cfg.AI = old })
}

func TestGenerateProjectReport(t *testing.T) {
	withAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{{Message: chatMessage{Role: "assistant", Content: "Generated report text."}}},
		})
	})

	resp := test.DoRequest(t, GenerateProjectReport, GenerateReportReq{
		ProjectDescription: "Clean water for rural communities",
		CurrentProgress:    "75% of wells completed",
		FutureObjectives:   "Expand to 3 more villages",
	})
	test.NoError(t, resp)

	var data struct {
		Report string `json:"report"`
	}
	test.DecodeData(t, resp, &data)
	require.Equal(t, "Generated report text.", data.Report)
}

func TestGenerateProjectReportUpstreamFailure(t *testing.T) {
	withAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	resp := test.DoRequest(t, GenerateProjectReport, GenerateReportReq{
		ProjectDescription: "x", CurrentProgress: "y", FutureObjectives: "z",
	})
	test.ErrorEqual(t, response.ErrGeneration, resp)
}

func TestGenerateProjectReportEmptyChoices(t *testing.T) {
	withAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse{})
	})

	resp := test.DoRequest(t, GenerateProjectReport, GenerateReportReq{
		ProjectDescription: "x", CurrentProgress: "y", FutureObjectives: "z",
	})
	test.ErrorEqual(t, response.ErrGeneration, resp)
}

func TestGenerateProjectReportMissingFields(t *testing.T) {
	resp := test.DoRequest(t, GenerateProjectReport, GenerateReportReq{ProjectDescription: "only one"})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}
