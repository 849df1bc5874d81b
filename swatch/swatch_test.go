package swatch

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tintscan/tintscan/color"
)

func TestCache(t *testing.T) {
	Convey("Given a cache of capacity 3", t, func() {
		c := NewCache[string, int](3)
		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		Convey("Overflow evicts the single oldest entry", func() {
			c.Put("d", 4)
			So(c.Len(), ShouldEqual, 3)
			So(c.Keys(), ShouldResemble, []string{"b", "c", "d"})

			_, ok := c.Get("a")
			So(ok, ShouldBeFalse)
		})

		Convey("A hit moves the entry to the newest position", func() {
			v, ok := c.Get("a")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 1)
			So(c.Keys(), ShouldResemble, []string{"b", "c", "a"})

			c.Put("d", 4)
			So(c.Keys(), ShouldResemble, []string{"c", "a", "d"})
		})

		Convey("Overwriting a key refreshes it without evicting", func() {
			c.Put("a", 10)
			So(c.Len(), ShouldEqual, 3)
			So(c.Keys(), ShouldResemble, []string{"b", "c", "a"})

			v, _ := c.Get("a")
			So(v, ShouldEqual, 10)
		})

		Convey("GetOrPut only renders on a miss", func() {
			calls := 0
			render := func() int {
				calls++
				return 42
			}

			So(c.GetOrPut("b", render), ShouldEqual, 2)
			So(c.GetOrPut("e", render), ShouldEqual, 42)
			So(c.GetOrPut("e", render), ShouldEqual, 42)
			So(calls, ShouldEqual, 1)
			So(c.Keys(), ShouldResemble, []string{"c", "b", "e"})
		})
	})

	Convey("A non-positive capacity still holds one entry", t, func() {
		c := NewCache[int, int](0)
		c.Put(1, 1)
		c.Put(2, 2)
		So(c.Keys(), ShouldResemble, []int{2})
	})
}

func TestRenderer(t *testing.T) {
	Convey("Given a renderer", t, func() {
		r := New(2, 3)
		red := color.Parse("239 68 68").MustGet()

		Convey("Rendered swatches are cached by color", func() {
			first := r.Block(red)
			So(first, ShouldNotBeEmpty)
			So(r.Block(color.Parse(" 239 68 68 / 1").MustGet()), ShouldEqual, first)
			So(r.Cached(), ShouldEqual, 1)
		})

		Convey("Chips carry the hex code", func() {
			So(r.Chip(red), ShouldContainSubstring, "#ef4444")
		})

		Convey("The cache stays bounded", func() {
			for i := 0; i < 10; i++ {
				r.Block(color.FromRGB(i, i, i).MustGet())
			}
			So(r.Cached(), ShouldEqual, 2)
		})
	})
}
