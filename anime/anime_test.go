package anime

import (
	"errors"
	"strings"
	"testing"

	"github.com/anisan-cli/anidb/response"
	"github.com/anisan-cli/anidb/route"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	crestMask  = "b2f0e0fc000000"
	categories = "Space,Future,Plot Continuity,SciFi,Space Travel,Shipboard,Other Planet,Novel,Genetic Modification,Action,Romance,Military,Large Breasts,Gunfights,Adventure,Human Enhancement,Nudity"
	crestLine  = "1|1999-1999|TV Series|" + categories + "|Seikai no Monshou|星界の紋章|Crest of the Stars||13|13|3|853|3225|756|110|875|11"
	crestReply = "230 ANIME\n" + crestLine
)

func TestTable(t *testing.T) {
	Convey("Amask table", t, func() {
		Convey("Has seven byte-groups", func() {
			So(Table.Width(), ShouldEqual, 7)
			So(Table.Empty().Hex(), ShouldEqual, "00000000000000")
		})

		Convey("Defines exactly the documented bits", func() {
			expected := uint64(128|32|16|8|4|2|1)<<(8*6) |
				uint64(128|64|32|16|8|4)<<(8*5) |
				uint64(128|64|32|16|8|4|2|1)<<(8*4) |
				uint64(128|64|32|16|8|4|2|1)<<(8*3) |
				uint64(128|64|32|16|1)<<(8*2) |
				uint64(128|64|32|16)<<(8*1) |
				uint64(128|64|32|16|8)

			So(Table.Valid(), ShouldEqual, expected)
			So(Table.All().Hex(), ShouldEqual, "bffcfffff1f0f8")
		})

		Convey("Default mask", func() {
			So(DefaultMask.Hex(), ShouldEqual, crestMask)
			So(DefaultMask.Count(), ShouldEqual, 17)
		})

		Convey("Lists the sample fields in reply order", func() {
			m, err := Table.Parse(crestMask)
			So(err, ShouldBeNil)

			var ids []string
			for f := range m.Fields() {
				ids = append(ids, f.ID)
			}
			So(ids, ShouldResemble, []string{
				AID, Year, Type, CategoryList,
				RomanjiName, KanjiName, EnglishName, OtherName,
				Episodes, HighestEpisodeNumber, SpecialEpCount,
				Rating, VoteCount, TempRating, TempVoteCount, AverageReviewRating, ReviewCount,
			})
		})
	})
}

func TestDecode(t *testing.T) {
	Convey("Given the Crest of the Stars reply", t, func() {
		m, err := Table.Parse(crestMask)
		So(err, ShouldBeNil)

		result, err := Decode([]byte(crestReply), m)
		So(err, ShouldBeNil)
		So(result.Code, ShouldEqual, response.CodeAnime)
		So(result.Lines, ShouldHaveLength, 1)
		So(result.Lines[0].Err, ShouldBeNil)

		a := result.Lines[0].Record

		Convey("Every requested field is decoded", func() {
			So(a.AID.MustGet(), ShouldEqual, 1)
			So(a.Year.MustGet(), ShouldEqual, "1999-1999")
			So(a.Type.MustGet(), ShouldEqual, "TV Series")
			So(a.CategoryList.MustGet(), ShouldResemble, strings.Split(categories, ","))
			So(a.CategoryList.MustGet(), ShouldHaveLength, 17)
			So(a.RomanjiName.MustGet(), ShouldEqual, "Seikai no Monshou")
			So(a.KanjiName.MustGet(), ShouldEqual, "星界の紋章")
			So(a.EnglishName.MustGet(), ShouldEqual, "Crest of the Stars")
			So(a.Episodes.MustGet(), ShouldEqual, 13)
			So(a.HighestEpisodeNumber.MustGet(), ShouldEqual, 13)
			So(a.SpecialEpCount.MustGet(), ShouldEqual, 3)
			So(a.Rating.MustGet(), ShouldEqual, 853)
			So(a.VoteCount.MustGet(), ShouldEqual, 3225)
			So(a.TempRating.MustGet(), ShouldEqual, 756)
			So(a.TempVoteCount.MustGet(), ShouldEqual, 110)
			So(a.AverageReviewRating.MustGet(), ShouldEqual, 875)
			So(a.ReviewCount.MustGet(), ShouldEqual, 11)
		})

		Convey("The empty other name is present and empty", func() {
			other, ok := a.OtherName.Get()
			So(ok, ShouldBeTrue)
			So(other, ShouldEqual, "")
		})

		Convey("Fields that were not requested are absent", func() {
			So(a.Picname.IsAbsent(), ShouldBeTrue)
			So(a.SynonymList.IsAbsent(), ShouldBeTrue)
			So(a.IsRestricted.IsAbsent(), ShouldBeTrue)
			So(a.ParodyCount.IsAbsent(), ShouldBeTrue)
		})

		Convey("Name prefers the English title", func() {
			So(a.Name(), ShouldEqual, "Crest of the Stars")
			So(a.String(), ShouldEqual, "Crest of the Stars")
		})
	})

	Convey("Reserved bits in the request mask are ignored", t, func() {
		m := Table.FromUint(DefaultMask.Uint64() | 1<<54 | 1<<41 | 1<<0)
		So(m.Hex(), ShouldEqual, "f2f2e0fc000001")

		result, err := Decode([]byte(crestReply), m)
		So(err, ShouldBeNil)
		So(result.Lines[0].Err, ShouldBeNil)
		So(result.Lines[0].Record.ReviewCount.MustGet(), ShouldEqual, 11)
	})

	Convey("A line one value short fails with a count mismatch", t, func() {
		short := "230 ANIME\n" + strings.TrimSuffix(crestLine, "|11")
		result, err := Decode([]byte(short), DefaultMask)
		So(err, ShouldBeNil)

		var countErr *route.FieldCountMismatchError
		So(errors.As(result.Lines[0].Err, &countErr), ShouldBeTrue)
		So(countErr.Expected, ShouldEqual, 17)
		So(countErr.Got, ShouldEqual, 16)
		So(result.Lines[0].Record, ShouldBeNil)
	})

	Convey("An error status with a data line is malformed", t, func() {
		_, err := Decode([]byte("505 ILLEGAL INPUT OR ACCESS DENIED\n"+crestLine), DefaultMask)
		So(errors.As(err, new(*response.MalformedResponseError)), ShouldBeTrue)
	})

	Convey("A narrow mask decodes a narrow line", t, func() {
		m := Table.Empty().With(BitAID, BitSynonymList, BitIsRestricted, BitCharacterIDList)
		result, err := Decode([]byte("230 ANIME\n1|CotS'Crest|0|28,29,30"), m)
		So(err, ShouldBeNil)

		a := result.Lines[0].Record
		So(a.SynonymList.MustGet(), ShouldResemble, []string{"CotS", "Crest"})
		So(a.IsRestricted.MustGet(), ShouldBeFalse)
		So(a.CharacterIDList.MustGet(), ShouldResemble, []int{28, 29, 30})
		So(a.Name(), ShouldEqual, "")
	})

	Convey("Blank lines do not become records", t, func() {
		m := Table.Empty().With(BitRomanjiName)
		result, err := Decode([]byte("230 ANIME\nSeikai no Monshou\n\n"), m)
		So(err, ShouldBeNil)
		So(result.Lines, ShouldHaveLength, 1)
		So(result.Lines[0].Record.RomanjiName.MustGet(), ShouldEqual, "Seikai no Monshou")

		result, err = Decode([]byte(crestReply+"\n\n"+crestLine+"\n"), DefaultMask)
		So(err, ShouldBeNil)
		records, err := result.Records()
		So(err, ShouldBeNil)
		So(records, ShouldHaveLength, 2)
	})
}
