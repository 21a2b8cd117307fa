package filesystem

import (
	"io"
	"os"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAPI(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Switches backends", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")

			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("GacheFs writes through the active backend", t, func() {
		SetMemMapFs()

		var fs GacheFs
		So(fs.MkdirAll("/store", os.ModePerm), ShouldBeNil)

		f, err := fs.OpenFile("/store/presets.json", os.O_CREATE|os.O_RDWR, 0o644)
		So(err, ShouldBeNil)
		lo.Must(io.WriteString(f, "{}"))
		So(f.Close(), ShouldBeNil)

		So(string(lo.Must(API().ReadFile("/store/presets.json"))), ShouldEqual, "{}")
	})
}
