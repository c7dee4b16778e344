package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ncl-services/ncl-backend-go/internal/domain/attendance"
	"github.com/ncl-services/ncl-backend-go/internal/domain/auth"
	"github.com/ncl-services/ncl-backend-go/internal/domain/job"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"already active", attendance.ErrAlreadyActive, http.StatusConflict, "CONFLICT"},
		{"wrapped no active", fmt.Errorf("check out: %w", attendance.ErrNoActiveAttendance), http.StatusConflict, "CONFLICT"},
		{"proxy active", attendance.ErrProxyActive, http.StatusConflict, "CONFLICT"},
		{"card mismatch", attendance.ErrCardMismatch, http.StatusConflict, "CONFLICT"},
		{"unknown card", attendance.ErrUnknownCard, http.StatusNotFound, "NOT_FOUND"},
		{"unknown job", attendance.ErrUnknownJob, http.StatusNotFound, "NOT_FOUND"},
		{"job not found", job.ErrJobNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"validation", validator.ValidationErrors{{Field: "card_code", Message: "card_code is required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.wantStatus, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, c.wantCode, body.Error.Code)
		})
	}
}
