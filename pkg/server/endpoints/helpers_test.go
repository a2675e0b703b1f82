package endpoints

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/JurmiThinley/jobtrackr/pkg/server/middleware"
)

// requestWithIdentity builds a request carrying an authenticated user id,
// as the bearer middleware would have set it
func requestWithIdentity(method, target, body string, userID int64) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func withMuxVars(req *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(req, vars)
}

func int64String(id int64) string {
	return strconv.FormatInt(id, 10)
}
