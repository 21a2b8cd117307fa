package file

import (
	"errors"
	"testing"

	"github.com/anisan-cli/anidb/codec"
	"github.com/anisan-cli/anidb/response"
	"github.com/anisan-cli/anidb/route"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

const sample = "220 FILE\n" +
	"312498|1|4|7|243203502|a3fa3b2d1dd6d2fb4c6bbb0b3aa4bb13|Seikai no Monshou|Crest of the Stars|01|Invasion|Anime Corner"

func TestTables(t *testing.T) {
	Convey("FILE tables", t, func() {
		Convey("Have the documented widths", func() {
			So(FTable.Width(), ShouldEqual, 5)
			So(ATable.Width(), ShouldEqual, 4)
			So(FTable.Empty().Hex(), ShouldHaveLength, 10)
			So(ATable.Empty().Hex(), ShouldHaveLength, 8)
		})

		Convey("Defaults", func() {
			So(DefaultFMask.Hex(), ShouldEqual, "70c0000000")
			So(DefaultAMask.Hex(), ShouldEqual, "00a0c080")
		})

		Convey("Define every bit once", func() {
			So(FTable.All().Hex(), ShouldEqual, "7ffafff9fe")
			So(ATable.All().Hex(), ShouldEqual, "fefcfcc1")
		})

		Convey("Field identifiers are unique across both tables", func() {
			ids := append(FTable.IDs(), ATable.IDs()...)
			ids = append(ids, FIDField.ID)
			So(lo.Uniq(ids), ShouldHaveLength, len(ids))
		})
	})
}

func TestDecode(t *testing.T) {
	Convey("Given a FILE reply", t, func() {
		result, err := Decode([]byte(sample), DefaultFMask, DefaultAMask)
		So(err, ShouldBeNil)
		So(result.Code, ShouldEqual, response.CodeFile)

		records, err := result.Records()
		So(err, ShouldBeNil)
		So(records, ShouldHaveLength, 1)

		f := records[0]

		Convey("The fixed file id comes first", func() {
			So(f.FID, ShouldEqual, 312498)
		})

		Convey("fmask fields precede amask fields", func() {
			So(f.AID.MustGet(), ShouldEqual, 1)
			So(f.EID.MustGet(), ShouldEqual, 4)
			So(f.GID.MustGet(), ShouldEqual, 7)
			So(f.Size.MustGet(), ShouldEqual, int64(243203502))
			So(f.ED2K.MustGet(), ShouldEqual, "a3fa3b2d1dd6d2fb4c6bbb0b3aa4bb13")
			So(f.RomanjiName.MustGet(), ShouldEqual, "Seikai no Monshou")
			So(f.EnglishName.MustGet(), ShouldEqual, "Crest of the Stars")
			So(f.EpNo.MustGet(), ShouldEqual, "01")
			So(f.EpName.MustGet(), ShouldEqual, "Invasion")
			So(f.GroupName.MustGet(), ShouldEqual, "Anime Corner")
		})

		Convey("Unrequested fields are absent", func() {
			So(f.MD5.IsAbsent(), ShouldBeTrue)
			So(f.KanjiName.IsAbsent(), ShouldBeTrue)
			So(f.AniDBFileName.IsAbsent(), ShouldBeTrue)
		})

		Convey("String names the episode", func() {
			So(f.String(), ShouldEqual, "Crest of the Stars - 01")
		})
	})

	Convey("Lists use the apostrophe separator", t, func() {
		fm := FTable.Empty().With(BitAudioCodecList, BitAudioBitrateList, BitIsDeprecated)
		am := ATable.Empty()
		result, err := Decode([]byte("220 FILE\n9|1|AAC'Vorbis|128'96"), fm, am)
		So(err, ShouldBeNil)

		f := result.Lines[0].Record
		So(f.AudioCodecList.MustGet(), ShouldResemble, []string{"AAC", "Vorbis"})
		So(f.AudioBitrateList.MustGet(), ShouldResemble, []int{128, 96})
		So(f.IsDeprecated.MustGet(), ShouldBeTrue)
	})

	Convey("Masks must be given in wire order", t, func() {
		_, err := codec.Decode([]byte(sample), Kind, DefaultAMask, DefaultFMask)
		So(errors.Is(err, codec.ErrMaskMismatch), ShouldBeTrue)
	})

	Convey("A broken fixed field fails the line", t, func() {
		result, err := Decode([]byte("220 FILE\nx|1|4|7|1|h|a|b|c|d|e"), DefaultFMask, DefaultAMask)
		So(err, ShouldBeNil)

		var typeErr *route.FieldTypeError
		So(errors.As(result.Lines[0].Err, &typeErr), ShouldBeTrue)
		So(typeErr.Field, ShouldEqual, FID)
	})

	Convey("No such file", t, func() {
		result, err := Decode([]byte("320 NO SUCH FILE"), DefaultFMask, DefaultAMask)
		So(err, ShouldBeNil)
		So(result.Code, ShouldEqual, response.CodeNoSuchFile)
		So(result.Lines, ShouldBeEmpty)
	})
}
