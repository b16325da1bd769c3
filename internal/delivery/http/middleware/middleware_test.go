package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"maareeye-hospital/pkg/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORSMiddleware(t *testing.T) {
	Convey("Given an open CORS policy", t, func() {
		handler := NewCORSMiddleware([]string{"*"}).Handle(okHandler)

		Convey("When a preflight request arrives", func() {
			req := httptest.NewRequest(http.MethodOptions, "/hospital/", nil)
			req.Header.Set("Origin", "https://app.example")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			Convey("Then it is answered directly with the CORS headers", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
				So(w.Header().Get("Access-Control-Allow-Methods"), ShouldContainSubstring, "PATCH")
			})
		})
	})

	Convey("Given a restricted CORS policy", t, func() {
		handler := NewCORSMiddleware([]string{"https://app.example"}).Handle(okHandler)

		Convey("Then a listed origin is echoed back", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", "https://app.example")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "https://app.example")
		})

		Convey("And an unknown origin gets no allow header", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", "https://evil.example")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldBeEmpty)
			So(w.Code, ShouldEqual, http.StatusOK)
		})
	})
}

func TestHostMiddleware(t *testing.T) {
	serve := func(hosts []string, host string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = host
		w := httptest.NewRecorder()
		NewHostMiddleware(hosts).Handle(okHandler).ServeHTTP(w, req)
		return w.Code
	}

	Convey("A wildcard accepts any host", t, func() {
		So(serve([]string{"*"}, "anything:8000"), ShouldEqual, http.StatusOK)
	})

	Convey("An explicit list only accepts listed hosts", t, func() {
		hosts := []string{"api.maareeye.so", "LOCALHOST"}

		So(serve(hosts, "api.maareeye.so"), ShouldEqual, http.StatusOK)
		So(serve(hosts, "localhost:8000"), ShouldEqual, http.StatusOK)
		So(serve(hosts, "evil.example"), ShouldEqual, http.StatusBadRequest)
	})

	Convey("A leading dot matches the domain and its subdomains", t, func() {
		hosts := []string{".maareeye.so"}

		So(serve(hosts, "maareeye.so"), ShouldEqual, http.StatusOK)
		So(serve(hosts, "api.maareeye.so"), ShouldEqual, http.StatusOK)
		So(serve(hosts, "notmaareeye.so"), ShouldEqual, http.StatusBadRequest)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	Convey("Given the logging middleware", t, func() {
		var seen string
		handler := NewLoggingMiddleware(log).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = GetRequestIDFromContext(r.Context())
			w.WriteHeader(http.StatusTeapot)
		}))

		Convey("When the client sends a request id", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, "abc-123")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			Convey("Then it is reused and echoed", func() {
				So(seen, ShouldEqual, "abc-123")
				So(w.Header().Get(RequestIDHeader), ShouldEqual, "abc-123")
				So(w.Code, ShouldEqual, http.StatusTeapot)
			})
		})

		Convey("When no request id is sent", func() {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			Convey("Then one is generated", func() {
				So(seen, ShouldNotBeEmpty)
				So(w.Header().Get(RequestIDHeader), ShouldEqual, seen)
			})
		})
	})
}

func TestMetricsMiddleware(t *testing.T) {
	Convey("Given a router instrumented with the metrics middleware", t, func() {
		manager := metrics.NewManager()
		router := mux.NewRouter()
		router.Use(NewMetricsMiddleware(manager).Handle)
		router.HandleFunc("/hospital/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}).Methods(http.MethodGet)

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/hospital/7", nil))
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/hospital/8", nil))

		Convey("Then requests are counted per route template", func() {
			count, err := testutil.GatherAndCount(manager.Registry(), "maareeye_api_http_requests_total")
			So(err, ShouldBeNil)
			So(count, ShouldEqual, 1)
		})
	})
}
