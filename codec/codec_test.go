package codec

import (
	"errors"
	"testing"

	"github.com/anisan-cli/anidb/mask"
	"github.com/anisan-cli/anidb/response"
	"github.com/anisan-cli/anidb/route"
	. "github.com/smartystreets/goconvey/convey"
)

type show struct {
	ID    int
	Title string
	Tags  []string
}

var (
	showTable = mask.NewTable("show", 1,
		mask.Field{Bit: 7, ID: "id", Type: mask.Int},
		mask.Field{Bit: 5, ID: "title", Type: mask.String},
		mask.Field{Bit: 4, ID: "tags", Type: mask.List},
	)
	otherTable = mask.NewTable("other", 1,
		mask.Field{Bit: 0, ID: "x", Type: mask.Int},
	)

	showKind = Kind[*show]{
		Name:   "show",
		Code:   response.CodeAnime,
		Tables: []*mask.Table{showTable},
		Build: func(v route.Values) *show {
			return &show{
				ID:    v.Int("id").OrEmpty(),
				Title: v.String("title").OrEmpty(),
				Tags:  v.List("tags").OrEmpty(),
			}
		},
	}
)

func TestDecode(t *testing.T) {
	Convey("Given a reply with several lines", t, func() {
		payload := []byte("230 ANIME\n1|Lain|cyberpunk,psychological\nx|Bebop|space\n3|Haibane|")
		result, err := Decode(payload, showKind, showTable.All())
		So(err, ShouldBeNil)
		So(result.Lines, ShouldHaveLength, 3)

		Convey("A failing line does not affect its siblings", func() {
			So(result.Lines[0].Err, ShouldBeNil)
			So(result.Lines[0].Record.Title, ShouldEqual, "Lain")
			So(result.Lines[0].Record.Tags, ShouldResemble, []string{"cyberpunk", "psychological"})

			var typeErr *route.FieldTypeError
			So(errors.As(result.Lines[1].Err, &typeErr), ShouldBeTrue)
			So(typeErr.Field, ShouldEqual, "id")
			So(result.Lines[1].Record, ShouldBeNil)

			So(result.Lines[2].Err, ShouldBeNil)
			So(result.Lines[2].Record.ID, ShouldEqual, 3)
			So(result.Lines[2].Record.Tags, ShouldBeEmpty)
		})

		Convey("Records keeps the good lines and reports the bad ones", func() {
			records, err := result.Records()
			So(records, ShouldHaveLength, 2)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldStartWith, "line 2:")
			So(errors.As(err, new(*route.FieldTypeError)), ShouldBeTrue)
		})
	})

	Convey("The tag and status are carried over", t, func() {
		result, err := Decode([]byte("q7 230 ANIME\n1|Lain|"), showKind, showTable.All())
		So(err, ShouldBeNil)
		So(result.Tag, ShouldEqual, "q7")
		So(result.Code, ShouldEqual, response.CodeAnime)
		So(result.Name, ShouldEqual, "ANIME")
	})

	Convey("A status that does not carry the kind is malformed", t, func() {
		_, err := Decode([]byte("220 FILE\n1|Lain|"), showKind, showTable.All())
		So(errors.As(err, new(*response.MalformedResponseError)), ShouldBeTrue)
	})

	Convey("A bare error status is a StatusError", t, func() {
		_, err := Decode([]byte("555 BANNED\nleech"), showKind, showTable.All())
		So(errors.As(err, new(*response.MalformedResponseError)), ShouldBeTrue)

		_, err = Decode([]byte("598 UNKNOWN COMMAND"), showKind, showTable.All())
		var status *response.StatusError
		So(errors.As(err, &status), ShouldBeTrue)
		So(status.Code, ShouldEqual, 598)
	})

	Convey("A non-error status without data is an empty result", t, func() {
		result, err := Decode([]byte("330 NO SUCH ANIME"), showKind, showTable.All())
		So(err, ShouldBeNil)
		So(result.Lines, ShouldBeEmpty)

		records, err := result.Records()
		So(err, ShouldBeNil)
		So(records, ShouldBeEmpty)
	})

	Convey("Masks must match the kind", t, func() {
		_, err := Decode([]byte("230 ANIME\n1"), showKind)
		So(errors.Is(err, ErrMaskMismatch), ShouldBeTrue)

		_, err = Decode([]byte("230 ANIME\n1"), showKind, otherTable.All())
		So(errors.Is(err, ErrMaskMismatch), ShouldBeTrue)

		_, err = Decode([]byte("230 ANIME\n1"), showKind, mask.Mask{})
		So(errors.Is(err, ErrMaskMismatch), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "untyped")
	})

	Convey("Payload errors fail the whole call", t, func() {
		_, err := DecodeWith(Options{Charset: "utf-8"}, []byte("230 ANIME\n\xff"), showKind, showTable.All())
		So(errors.As(err, new(*response.EncodingError)), ShouldBeTrue)
	})

	Convey("Reserved bits do not shift the values", t, func() {
		m := showTable.FromUint(0xff)
		So(m.Reserved(), ShouldEqual, uint64(0x4f))

		result, err := Decode([]byte("230 ANIME\n2|Texhnolyze|dark"), showKind, m)
		So(err, ShouldBeNil)
		So(result.Lines[0].Record.Title, ShouldEqual, "Texhnolyze")
	})
}
