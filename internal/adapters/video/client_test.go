package video_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/courtcast/internal/adapters/video"
	. "github.com/smartystreets/goconvey/convey"
)

const searchJSON = `{
	"items": [
		{"id": {"kind": "youtube#video", "videoId": "abc123"}},
		{"id": {"kind": "youtube#video", "videoId": "def456"}},
		{"id": {"kind": "youtube#channel"}},
		{"id": {"kind": "youtube#video", "videoId": "ghi789"}}
	]
}`

func TestClientSearch(t *testing.T) {
	Convey("Given a video search provider", t, func() {
		Convey("When the provider returns ranked results", func() {
			var gotPath, gotQuery string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotQuery = r.URL.RawQuery
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(searchJSON))
			}))
			defer srv.Close()

			client := video.NewClient("test-key", video.WithBaseURL(srv.URL), video.WithMaxResults(5))
			ids, err := client.Search(context.Background(), "Nikola Jokic Denver Nuggets highlights")

			Convey("Then ids come back in rank order, non-video items skipped", func() {
				So(err, ShouldBeNil)
				So(ids, ShouldResemble, []string{"abc123", "def456", "ghi789"})
			})

			Convey("And the request carries the query, cap, and key", func() {
				So(gotPath, ShouldEqual, "/search")
				So(gotQuery, ShouldContainSubstring, "maxResults=5")
				So(gotQuery, ShouldContainSubstring, "key=test-key")
				So(gotQuery, ShouldContainSubstring, "type=video")
				So(gotQuery, ShouldContainSubstring, "q=Nikola+Jokic+Denver+Nuggets+highlights")
			})
		})

		Convey("When the provider returns an empty list", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"items": []}`))
			}))
			defer srv.Close()

			client := video.NewClient("test-key", video.WithBaseURL(srv.URL))
			ids, err := client.Search(context.Background(), "nothing findable")

			Convey("Then it succeeds with no candidates", func() {
				So(err, ShouldBeNil)
				So(ids, ShouldBeEmpty)
			})
		})

		Convey("When the provider returns a non-200 status", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":{"code":403,"message":"quotaExceeded"}}`, http.StatusForbidden)
			}))
			defer srv.Close()

			client := video.NewClient("test-key", video.WithBaseURL(srv.URL))
			_, err := client.Search(context.Background(), "anything")

			Convey("Then it fails with ErrSearch", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, video.ErrSearch), ShouldBeTrue)
			})
		})

		Convey("When the provider returns malformed JSON", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"items": [`))
			}))
			defer srv.Close()

			client := video.NewClient("test-key", video.WithBaseURL(srv.URL))
			_, err := client.Search(context.Background(), "anything")

			Convey("Then it fails with ErrSearch", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, video.ErrSearch), ShouldBeTrue)
			})
		})
	})
}
