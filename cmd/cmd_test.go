package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/anisan-cli/anidb/anime"
	"github.com/anisan-cli/anidb/codec"
	"github.com/anisan-cli/anidb/config"
	"github.com/anisan-cli/anidb/file"
	"github.com/anisan-cli/anidb/filesystem"
	"github.com/anisan-cli/anidb/key"
	"github.com/anisan-cli/anidb/mask"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestKinds(t *testing.T) {
	Convey("Given the registered kinds", t, func() {
		So(kindNames(), ShouldResemble, []string{"anime", "file"})

		Convey("When an unknown kind is asked for", func() {
			_, err := kindByName("manga")

			Convey("Then the error lists the available ones", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "[anime file]")
			})
		})

		Convey("When anime masks are built from field ids", func() {
			k := lo.Must(kindByName("anime"))
			masks, err := k.of(anime.AID, anime.RomanjiName)

			Convey("Then a single 7 byte mask is returned", func() {
				So(err, ShouldBeNil)
				So(masks, ShouldHaveLength, 1)
				So(masks[0].Hex(), ShouldEqual, "80800000000000")
			})
		})

		Convey("When a field id is misspelled", func() {
			k := lo.Must(kindByName("anime"))
			_, err := k.of("romanj_name")

			Convey("Then the closest id is suggested", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "did you mean romanji_name?")
			})
		})

		Convey("When file masks are built from ids of both tables", func() {
			k := lo.Must(kindByName("file"))
			masks, err := k.of(file.Size, file.EpName)

			Convey("Then each id lands in its own table", func() {
				So(err, ShouldBeNil)
				So(masks, ShouldHaveLength, 2)
				So(masks[0].Table(), ShouldEqual, file.FTable)
				So(masks[0].Has(file.BitSize), ShouldBeTrue)
				So(masks[0].Count(), ShouldEqual, 1)
				So(masks[1].Table(), ShouldEqual, file.ATable)
				So(masks[1].Has(file.BitEpName), ShouldBeTrue)
				So(masks[1].Count(), ShouldEqual, 1)
			})
		})

		Convey("When hex masks are parsed", func() {
			k := lo.Must(kindByName("file"))

			Convey("Then one mask per table is required", func() {
				_, err := k.parse([]string{"7ffafff9fe"})
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "2 masks")
			})

			Convey("Then a mask of the wrong width is rejected", func() {
				_, err := k.parse([]string{"7ffafff9", "fefcfcc1"})
				So(err, ShouldNotBeNil)

				var formatErr *mask.FormatError
				So(errors.As(err, &formatErr), ShouldBeTrue)
			})

			Convey("Then well formed masks round trip", func() {
				masks, err := k.parse([]string{"7FFAFFF9FE", "fefcfcc1"})
				So(err, ShouldBeNil)
				So(masks[0].Hex(), ShouldEqual, "7ffafff9fe")
				So(masks[1].Hex(), ShouldEqual, "fefcfcc1")
			})
		})
	})
}

func TestConfiguredMasks(t *testing.T) {
	Convey("Given a fresh config", t, func() {
		filesystem.SetMemMapFs()
		So(config.Setup(), ShouldBeNil)

		Convey("When the file kind reads its masks", func() {
			masks, err := lo.Must(kindByName("file")).configured()

			Convey("Then the defaults are returned", func() {
				So(err, ShouldBeNil)
				So(masks[0].Hex(), ShouldEqual, file.DefaultFMask.Hex())
				So(masks[1].Hex(), ShouldEqual, file.DefaultAMask.Hex())
			})
		})

		Convey("Then mask keys resolve to their tables", func() {
			table, ok := maskKeyTable(key.AniDBFileAmask)
			So(ok, ShouldBeTrue)
			So(table, ShouldEqual, file.ATable)

			table, ok = maskKeyTable(key.AniDBAmask)
			So(ok, ShouldBeTrue)
			So(table, ShouldEqual, anime.Table)

			_, ok = maskKeyTable(key.OutputJSON)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestDecodeKind(t *testing.T) {
	Convey("Given an anime reply with a broken line", t, func() {
		k := lo.Must(kindByName("anime"))
		masks := []mask.Mask{anime.Table.Empty().With(anime.BitAID, anime.BitRomanjiName)}
		payload := []byte("230 ANIME\n1|Seikai no Monshou\nx|Banner of the Stars\n")

		result, err := k.decode(codec.Options{}, payload, masks)

		Convey("Then both lines are reported", func() {
			So(err, ShouldBeNil)
			So(result.Code, ShouldEqual, 230)
			So(result.Lines, ShouldHaveLength, 2)
			So(result.Lines[0].Record, ShouldNotBeNil)
			So(result.Lines[0].Error, ShouldBeEmpty)
			So(result.Lines[1].Record, ShouldBeNil)
			So(result.Lines[1].Error, ShouldNotBeEmpty)
		})

		Convey("When the result is printed", func() {
			viper.Set(key.OutputWrap, -1)
			var buf bytes.Buffer
			So(printDecoded(&buf, k, masks, result), ShouldBeNil)

			Convey("Then the decoded values are shown", func() {
				So(buf.String(), ShouldContainSubstring, "Seikai no Monshou")
				So(buf.String(), ShouldNotContainSubstring, "Banner of the Stars")
			})
		})
	})

	Convey("Given a reply without data lines", t, func() {
		k := lo.Must(kindByName("anime"))
		masks := []mask.Mask{anime.DefaultMask}
		result, err := k.decode(codec.Options{}, []byte("330 NO SUCH ANIME\n"), masks)

		Convey("Then it prints a notice", func() {
			So(err, ShouldBeNil)

			var buf bytes.Buffer
			So(printDecoded(&buf, k, masks, result), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "no data lines")
		})
	})
}

func TestWireFields(t *testing.T) {
	Convey("Given file masks", t, func() {
		masks := []mask.Mask{
			file.FTable.Empty().With(file.BitSize, file.BitAID),
			file.ATable.Empty().With(file.BitEpName),
		}

		Convey("Then fid leads and the rest follow bit order per table", func() {
			ids := lo.Map(wireFields(file.Kind.Fixed, masks), func(f mask.Field, _ int) string { return f.ID })
			So(ids, ShouldResemble, []string{file.FID, file.AID, file.Size, file.EpName})
		})
	})
}

func TestFormatValue(t *testing.T) {
	Convey("Given decoded JSON values", t, func() {
		So(formatValue([]any{"a", 1}), ShouldEqual, "a, 1")
		So(formatValue([]any{}), ShouldContainSubstring, "(none)")
		So(formatValue(""), ShouldContainSubstring, `""`)
		So(formatValue("Crest"), ShouldEqual, "Crest")
		So(formatValue(true), ShouldEqual, "true")
	})
}

func TestRecordSchema(t *testing.T) {
	Convey("Given the file kind", t, func() {
		s := recordSchema(lo.Must(kindByName("file")))

		Convey("Then fid is the only required property", func() {
			So(s.Required, ShouldResemble, []string{file.FID})
			So(s.Properties.Len(), ShouldEqual, 1+file.FTable.Len()+file.ATable.Len())
		})

		Convey("Then table fields are nullable", func() {
			size, ok := s.Properties.Get(file.Size)
			So(ok, ShouldBeTrue)
			So(size.AnyOf, ShouldHaveLength, 2)
			So(size.AnyOf[0].Type, ShouldEqual, "integer")
			So(size.AnyOf[1].Type, ShouldEqual, "null")
		})

		Convey("Then list fields are arrays", func() {
			codecs, ok := s.Properties.Get(file.AudioCodecList)
			So(ok, ShouldBeTrue)
			So(codecs.AnyOf[0].Type, ShouldEqual, "array")
			So(codecs.AnyOf[0].Items.Type, ShouldEqual, "string")
		})
	})
}

func TestConfigValues(t *testing.T) {
	Convey("Given the config keys", t, func() {
		Convey("Mask values are checked against their table", func() {
			v, err := parseConfigValue(key.AniDBAmask, []string{"80800000000000"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "80800000000000")

			v, err = parseConfigValue(key.AniDBFileAmask, []string{"FEFCFCC1"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "fefcfcc1")

			_, err = parseConfigValue(key.AniDBFmask, []string{"b2f0e0fc000000"})
			So(errors.As(err, new(*mask.FormatError)), ShouldBeTrue)
		})

		Convey("Other values take the type of their default", func() {
			v, err := parseConfigValue(key.OutputWrap, []string{"80"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 80)

			_, err = parseConfigValue(key.OutputWrap, []string{"wide"})
			So(err, ShouldNotBeNil)

			v, err = parseConfigValue(key.OutputJSON, []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			v, err = parseConfigValue(key.CodecCharset, []string{"shift_jis"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "shift_jis")
		})

		Convey("A value is required", func() {
			_, err := parseConfigValue(key.CodecCharset, nil)
			So(err, ShouldNotBeNil)
		})

		Convey("Keys come from the argument before the flag", func() {
			k, err := configKey(configGetCmd, []string{key.AniDBFmask})
			So(err, ShouldBeNil)
			So(k, ShouldEqual, key.AniDBFmask)

			_, err = configKey(configGetCmd, nil)
			So(err, ShouldNotBeNil)

			_, err = configKey(configGetCmd, []string{"anidb.amsk"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.AniDBAmask)
		})
	})
}
