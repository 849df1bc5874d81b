package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notification model", t, func() {
		m := &Model{}

		Convey("A notification is shown and schedules its own clearing", func() {
			cmd := m.Update(Notify("rebuilt")())
			So(cmd, ShouldNotBeNil)
			So(m.Current(), ShouldEqual, "rebuilt")
			So(m.View("main\nlast"), ShouldStartWith, "main\nlast  ")
			So(m.View("main\nlast"), ShouldContainSubstring, "rebuilt")
		})

		Convey("Only the matching timer clears it", func() {
			m.Update(NotificationMsg("first"))
			stale := ClearNotificationMsg{}
			m.Update(stale)
			So(m.Current(), ShouldEqual, "first")

			m.Update(ClearNotificationMsg{at: m.notifiedAt})
			So(m.Current(), ShouldBeEmpty)
		})

		Convey("Without a notification the view is unchanged", func() {
			So(m.View("content"), ShouldEqual, "content")
		})
	})
}
