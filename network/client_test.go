package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("Given a test server", t, func() {
		var gotAgent, gotAccept string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAgent = r.Header.Get("User-Agent")
			gotAccept = r.Header.Get("Accept")
			if r.URL.Path == "/missing" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		Convey("Requests carry the user agent and accept header", func() {
			resp, err := Get(context.Background(), server.URL, "application/json")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(gotAgent, ShouldEqual, UserAgent())
			So(gotAccept, ShouldEqual, "application/json")
		})

		Convey("Non-200 responses are errors", func() {
			resp, err := Get(context.Background(), server.URL+"/missing", "")
			So(resp, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "404")
		})
	})
}
