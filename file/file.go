// Package file describes the FILE command.
//
// A FILE reply line starts with the file id, then carries the fields selected
// by the fmask, then those selected by the file amask.
package file

import (
	"github.com/anisan-cli/anidb/codec"
	"github.com/anisan-cli/anidb/mask"
	"github.com/anisan-cli/anidb/response"
	"github.com/anisan-cli/anidb/route"
	"github.com/samber/mo"
)

// File is one FILE reply line.
type File struct {
	FID int `json:"fid"`

	AID              mo.Option[int]      `json:"aid"`
	EID              mo.Option[int]      `json:"eid"`
	GID              mo.Option[int]      `json:"gid"`
	MylistID         mo.Option[int]      `json:"mylist_id"`
	OtherEpisodes    mo.Option[[]string] `json:"other_episodes"`
	IsDeprecated     mo.Option[bool]     `json:"is_deprecated"`
	State            mo.Option[int]      `json:"state"`
	Size             mo.Option[int64]    `json:"size"`
	ED2K             mo.Option[string]   `json:"ed2k"`
	MD5              mo.Option[string]   `json:"md5"`
	SHA1             mo.Option[string]   `json:"sha1"`
	CRC32            mo.Option[string]   `json:"crc32"`
	VideoColourDepth mo.Option[string]   `json:"video_colour_depth"`
	Quality          mo.Option[string]   `json:"quality"`
	Source           mo.Option[string]   `json:"source"`
	AudioCodecList   mo.Option[[]string] `json:"audio_codec_list"`
	AudioBitrateList mo.Option[[]int]    `json:"audio_bitrate_list"`
	VideoCodec       mo.Option[string]   `json:"video_codec"`
	VideoBitrate     mo.Option[int]      `json:"video_bitrate"`
	VideoResolution  mo.Option[string]   `json:"video_resolution"`
	FileType         mo.Option[string]   `json:"file_type"`
	DubLanguage      mo.Option[string]   `json:"dub_language"`
	SubLanguage      mo.Option[string]   `json:"sub_language"`
	LengthInSeconds  mo.Option[int]      `json:"length_in_seconds"`
	Description      mo.Option[string]   `json:"description"`
	AiredDate        mo.Option[int]      `json:"aired_date"`
	AniDBFileName    mo.Option[string]   `json:"anidb_file_name"`
	MylistState      mo.Option[int]      `json:"mylist_state"`
	MylistFilestate  mo.Option[int]      `json:"mylist_filestate"`
	MylistViewed     mo.Option[int]      `json:"mylist_viewed"`
	MylistViewdate   mo.Option[int]      `json:"mylist_viewdate"`
	MylistStorage    mo.Option[string]   `json:"mylist_storage"`
	MylistSource     mo.Option[string]   `json:"mylist_source"`
	MylistOther      mo.Option[string]   `json:"mylist_other"`

	AnimeTotalEpisodes   mo.Option[int]      `json:"anime_total_episodes"`
	HighestEpisodeNumber mo.Option[int]      `json:"highest_episode_number"`
	Year                 mo.Option[string]   `json:"year"`
	Type                 mo.Option[string]   `json:"type"`
	RelatedAIDList       mo.Option[[]int]    `json:"related_aid_list"`
	RelatedAIDType       mo.Option[[]int]    `json:"related_aid_type"`
	CategoryList         mo.Option[[]string] `json:"category_list"`
	RomanjiName          mo.Option[string]   `json:"romanji_name"`
	KanjiName            mo.Option[string]   `json:"kanji_name"`
	EnglishName          mo.Option[string]   `json:"english_name"`
	OtherName            mo.Option[string]   `json:"other_name"`
	ShortNameList        mo.Option[[]string] `json:"short_name_list"`
	SynonymList          mo.Option[[]string] `json:"synonym_list"`
	EpNo                 mo.Option[string]   `json:"epno"`
	EpName               mo.Option[string]   `json:"ep_name"`
	EpRomanjiName        mo.Option[string]   `json:"ep_romanji_name"`
	EpKanjiName          mo.Option[string]   `json:"ep_kanji_name"`
	EpisodeRating        mo.Option[int]      `json:"episode_rating"`
	EpisodeVoteCount     mo.Option[int]      `json:"episode_vote_count"`
	GroupName            mo.Option[string]   `json:"group_name"`
	GroupShortName       mo.Option[string]   `json:"group_short_name"`
	DateAIDRecordUpdated mo.Option[int]      `json:"date_aid_record_updated"`
}

func (f *File) String() string {
	if name, ok := f.AniDBFileName.Get(); ok && name != "" {
		return name
	}

	title := f.EnglishName.OrElse(f.RomanjiName.OrEmpty())
	if ep, ok := f.EpNo.Get(); ok && title != "" {
		return title + " - " + ep
	}

	return title
}

// Build creates a File from routed values.
func Build(v route.Values) *File {
	return &File{
		FID: v.Int(FID).OrEmpty(),

		AID:              v.Int(AID),
		EID:              v.Int(EID),
		GID:              v.Int(GID),
		MylistID:         v.Int(MylistID),
		OtherEpisodes:    v.List(OtherEpisodes),
		IsDeprecated:     v.Bool(IsDeprecated),
		State:            v.Int(State),
		Size:             v.Int64(Size),
		ED2K:             v.String(ED2K),
		MD5:              v.String(MD5),
		SHA1:             v.String(SHA1),
		CRC32:            v.String(CRC32),
		VideoColourDepth: v.String(VideoColourDepth),
		Quality:          v.String(Quality),
		Source:           v.String(Source),
		AudioCodecList:   v.List(AudioCodecList),
		AudioBitrateList: v.IntList(AudioBitrateList),
		VideoCodec:       v.String(VideoCodec),
		VideoBitrate:     v.Int(VideoBitrate),
		VideoResolution:  v.String(VideoResolution),
		FileType:         v.String(FileType),
		DubLanguage:      v.String(DubLanguage),
		SubLanguage:      v.String(SubLanguage),
		LengthInSeconds:  v.Int(LengthInSeconds),
		Description:      v.String(Description),
		AiredDate:        v.Int(AiredDate),
		AniDBFileName:    v.String(AniDBFileName),
		MylistState:      v.Int(MylistState),
		MylistFilestate:  v.Int(MylistFilestate),
		MylistViewed:     v.Int(MylistViewed),
		MylistViewdate:   v.Int(MylistViewdate),
		MylistStorage:    v.String(MylistStorage),
		MylistSource:     v.String(MylistSource),
		MylistOther:      v.String(MylistOther),

		AnimeTotalEpisodes:   v.Int(AnimeTotalEpisodes),
		HighestEpisodeNumber: v.Int(HighestEpisodeNumber),
		Year:                 v.String(Year),
		Type:                 v.String(Type),
		RelatedAIDList:       v.IntList(RelatedAIDList),
		RelatedAIDType:       v.IntList(RelatedAIDType),
		CategoryList:         v.List(CategoryList),
		RomanjiName:          v.String(RomanjiName),
		KanjiName:            v.String(KanjiName),
		EnglishName:          v.String(EnglishName),
		OtherName:            v.String(OtherName),
		ShortNameList:        v.List(ShortNameList),
		SynonymList:          v.List(SynonymList),
		EpNo:                 v.String(EpNo),
		EpName:               v.String(EpName),
		EpRomanjiName:        v.String(EpRomanjiName),
		EpKanjiName:          v.String(EpKanjiName),
		EpisodeRating:        v.Int(EpisodeRating),
		EpisodeVoteCount:     v.Int(EpisodeVoteCount),
		GroupName:            v.String(GroupName),
		GroupShortName:       v.String(GroupShortName),
		DateAIDRecordUpdated: v.Int(DateAIDRecordUpdated),
	}
}

// Kind decodes "220 FILE" replies. The masks are the fmask followed by the file amask.
var Kind = codec.Kind[*File]{
	Name:   "file",
	Code:   response.CodeFile,
	Fixed:  []mask.Field{FIDField},
	Tables: []*mask.Table{FTable, ATable},
	Build:  Build,
}

// Decode decodes a FILE reply to a request that carried fmask and amask.
func Decode(payload []byte, fmask, amask mask.Mask) (*codec.Result[*File], error) {
	return codec.Decode(payload, Kind, fmask, amask)
}
