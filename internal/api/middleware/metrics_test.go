package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RoomBooking/pkg/metrics"
)

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry("roombooking", reg)

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m, "roombooking"))
	r.HandleFunc("/api/v1/rooms/{roomId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/"+[]string{"a", "b"}[i], nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	count, err := testutil.GatherAndCount(reg)
	assert.NoError(t, err)
	assert.Greater(t, count, 0)

	families, err := reg.Gather()
	assert.NoError(t, err)
	var found bool
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetValue() == "/api/v1/rooms/{roomId}" {
					found = true
				}
			}
		}
	}
	assert.True(t, found, "path label should be the route template")
}

func TestRecover(t *testing.T) {
	h := Recover(nopLogger{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
