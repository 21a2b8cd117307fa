package response

import (
	"bytes"
	"errors"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

const crest = "230 ANIME\n1|1999-1999|TV Series|Space,Future|Seikai no Monshou|星界の紋章|Crest of the Stars||13"

func compress(payload []byte) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0, 0})
	w := lo.Must(flate.NewWriter(&buf, flate.BestCompression))
	lo.Must(w.Write(payload))
	lo.Must0(w.Close())
	return buf.Bytes()
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Splits the header from the data lines", func() {
			r, err := Parse([]byte(crest), "")
			So(err, ShouldBeNil)
			So(r.Code, ShouldEqual, CodeAnime)
			So(r.Name, ShouldEqual, "ANIME")
			So(r.Tag, ShouldBeEmpty)
			So(r.IsError(), ShouldBeFalse)
			So(r.Header(), ShouldEqual, "230 ANIME")
			So(r.Lines, ShouldHaveLength, 1)
			So(r.Lines[0], ShouldHaveLength, 9)
			So(r.Lines[0][5], ShouldEqual, "星界の紋章")
			So(r.Lines[0][7], ShouldEqual, "")
		})

		Convey("Keeps empty values at the end of a line", func() {
			r, err := Parse([]byte("230 ANIME\n1||"), "")
			So(err, ShouldBeNil)
			So(r.Lines[0], ShouldResemble, []string{"1", "", ""})
		})

		Convey("Tolerates CRLF and a trailing terminator", func() {
			r, err := Parse([]byte("230 ANIME\r\n1|2\r\n3|4\r\n"), "utf-8")
			So(err, ShouldBeNil)
			So(r.Lines, ShouldResemble, [][]string{{"1", "2"}, {"3", "4"}})
		})

		Convey("Skips blank lines after the header", func() {
			r, err := Parse([]byte("230 ANIME\n1|Seikai no Monshou\n\n"), "")
			So(err, ShouldBeNil)
			So(r.Lines, ShouldResemble, [][]string{{"1", "Seikai no Monshou"}})

			r, err = Parse([]byte("230 ANIME\r\n1|Seikai no Monshou\r\n\r\n2|Seikai no Senki\r\n"), "")
			So(err, ShouldBeNil)
			So(r.Lines, ShouldResemble, [][]string{{"1", "Seikai no Monshou"}, {"2", "Seikai no Senki"}})

			r, err = Parse([]byte("330 NO SUCH ANIME\n\n"), "")
			So(err, ShouldBeNil)
			So(r.Lines, ShouldBeEmpty)
		})

		Convey("Reads a numeric tag before the code", func() {
			r, err := Parse([]byte("123 230 ANIME\n1|Seikai no Monshou"), "")
			So(err, ShouldBeNil)
			So(r.Tag, ShouldEqual, "123")
			So(r.Code, ShouldEqual, 230)
			So(r.Name, ShouldEqual, "ANIME")
		})

		Convey("Pure status replies have no data lines", func() {
			r, err := Parse([]byte("330 NO SUCH ANIME\n"), "")
			So(err, ShouldBeNil)
			So(r.Code, ShouldEqual, CodeNoSuchAnime)
			So(r.Lines, ShouldBeEmpty)
		})

		Convey("Reads a request tag before the code", func() {
			r, err := Parse([]byte("t42 505 ILLEGAL INPUT OR ACCESS DENIED"), "")
			So(err, ShouldBeNil)
			So(r.Tag, ShouldEqual, "t42")
			So(r.Code, ShouldEqual, CodeIllegalInput)
			So(r.Name, ShouldEqual, StatusName(CodeIllegalInput))
			So(r.IsError(), ShouldBeTrue)
		})

		Convey("Rejects data lines on an error status", func() {
			_, err := Parse([]byte("505 ILLEGAL INPUT OR ACCESS DENIED\n1|2|3"), "")
			var malformed *MalformedResponseError
			So(errors.As(err, &malformed), ShouldBeTrue)
			So(malformed.Reason, ShouldContainSubstring, "505")
		})

		Convey("Rejects broken status lines", func() {
			for _, payload := range []string{"", "\n", "ANIME", "23 ANIME", "2300 ANIME", "abc def ghi"} {
				_, err := Parse([]byte(payload), "")
				So(errors.As(err, new(*MalformedResponseError)), ShouldBeTrue)
			}
		})

		Convey("Rejects invalid UTF-8", func() {
			_, err := Parse([]byte("230 ANIME\n1|\xff\xfe"), "utf-8")
			var encErr *EncodingError
			So(errors.As(err, &encErr), ShouldBeTrue)
			So(encErr.Charset, ShouldEqual, "utf-8")
		})

		Convey("Rejects unknown charsets", func() {
			_, err := Parse([]byte(crest), "klingon")
			var encErr *EncodingError
			So(errors.As(err, &encErr), ShouldBeTrue)
			So(encErr.Charset, ShouldEqual, "klingon")
		})

		Convey("Decodes other declared charsets", func() {
			r, err := Parse([]byte("230 ANIME\n1|Pok\xe9mon"), "ISO-8859-1")
			So(err, ShouldBeNil)
			So(r.Lines[0][1], ShouldEqual, "Pokémon")
		})

		Convey("Inflates compressed replies", func() {
			r, err := Parse(compress([]byte(crest)), "")
			So(err, ShouldBeNil)
			So(r.Code, ShouldEqual, CodeAnime)
			So(r.Lines[0][6], ShouldEqual, "Crest of the Stars")
		})

		Convey("Fails on a corrupt compressed reply", func() {
			_, err := Parse([]byte{0, 0, 0xff, 0xff, 0xff}, "")
			So(errors.As(err, new(*MalformedResponseError)), ShouldBeTrue)
		})
	})
}

func TestInflate(t *testing.T) {
	Convey("Inflate", t, func() {
		So(IsCompressed([]byte(crest)), ShouldBeFalse)
		So(IsCompressed([]byte{0}), ShouldBeFalse)

		_, err := Inflate([]byte(crest))
		So(err, ShouldNotBeNil)

		out, err := Inflate(compress([]byte(crest)))
		So(err, ShouldBeNil)
		So(string(out), ShouldEqual, crest)
	})
}

func TestStatus(t *testing.T) {
	Convey("Status codes", t, func() {
		So(IsErrorStatus(CodeAnime), ShouldBeFalse)
		So(IsErrorStatus(CodeNoSuchAnime), ShouldBeFalse)
		So(IsErrorStatus(CodeBanned), ShouldBeTrue)
		So(StatusName(CodeFile), ShouldEqual, "FILE")
		So(StatusName(999), ShouldBeEmpty)
		So((&StatusError{Code: 601, Name: "ANIDB OUT OF SERVICE"}).Error(), ShouldContainSubstring, "601")
	})
}
