package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"txledger/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		w    *httptest.ResponseRecorder
		req  *http.Request
		seen string
		next http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/transactions", nil)
		seen = ""
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(middleware.RequestIDKey).(string)
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("should generate an id when none is sent", func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(seen).NotTo(BeEmpty())
			Expect(w.Header().Get("X-Request-ID")).To(Equal(seen))
		})

		It("should reuse the caller's id", func() {
			req.Header.Set("X-Request-ID", "abc-123")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(seen).To(Equal("abc-123"))
		})
	})

	Describe("Logging", func() {
		It("should log the request with its status", func() {
			core, logs := observer.New(zapcore.DebugLevel)
			logger := zap.New(core).Sugar()

			hdlr := middleware.NewLoggingMiddleware(logger).Logging(next)
			hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
			hdlr.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTeapot))
			Expect(logs.Len()).To(Equal(1))
			entry := logs.All()[0]
			Expect(entry.Level).To(Equal(zapcore.WarnLevel))
			Expect(entry.ContextMap()).To(HaveKeyWithValue("status", int64(http.StatusTeapot)))
			Expect(entry.ContextMap()).To(HaveKeyWithValue("path", "/transactions"))
			Expect(entry.ContextMap()).To(HaveKeyWithValue("request_id", seen))
		})
	})

	Describe("Recovery", func() {
		It("should answer 500 when the handler panics", func() {
			panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic("boom")
			})

			middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Recovery(panicking).ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
